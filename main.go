package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		Logger.Warnf("failed to load .env: %v", err)
	}
	if len(os.Args) != 2 {
		Logger.Fatalf("usage: %v <output-dir>", os.Args[0])
	}

	harness := &Harness{
		Corpus:      StringEnv("CORPUS_ROOT", "data/pbo"),
		Manifest:    StringEnv("MANIFEST_PATH", "instances.txt"),
		Solver:      StringEnv("SOLVER_PATH", "solve_pb"),
		OutputDir:   os.Args[1],
		Concurrency: IntEnv("CONCURRENCY", DefaultConcurrency),
		Timeout:     DurationEnv("SOLVER_TIMEOUT", 0),
	}
	if url := StringEnv("RESULTS_DB_URL", ""); url != "" {
		harness.Storage = &Storage{URL: url}
	}

	Logger.Infof("host stat: %+v", HostStat())

	if err := harness.Run(context.Background()); err != nil {
		Logger.Fatalf("harness failed: %v", err)
	}
}
