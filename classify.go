package main

import "strings"

const (
	StatusFailure = "FAILURE"
	StatusTimeout = "TIMEOUT"
)

const statusPrefix = "s "

// Classify extracts the solver-reported status from captured stdout.
// A nonzero exit yields FAILURE regardless of output; otherwise the
// first "s " line wins; no such line is also a FAILURE.
func Classify(stdout string, exitCode int) string {
	if exitCode != 0 {
		return StatusFailure
	}
	for _, line := range strings.Split(stdout, "\n") {
		if status, ok := strings.CutPrefix(line, statusPrefix); ok {
			return status
		}
	}
	return StatusFailure
}
