package main

import (
	"os"
	"strconv"
	"time"
)

func StringEnv(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

func IntEnv(key string, def int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		Logger.Warnf("invalid integer in %v, fallback to %v: %v", key, def, err)
		return def
	}
	return parsed
}

func DurationEnv(key string, def time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		Logger.Warnf("invalid duration in %v, fallback to %v: %v", key, def, err)
		return def
	}
	return parsed
}
