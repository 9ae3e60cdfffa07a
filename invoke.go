package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"
)

// Invoker spawns the external solver. The solver contract is pure
// stdio: problem text on stdin, diagnostics on stderr, status lines on
// stdout, no arguments.
type Invoker struct {
	Path string
	// Timeout of zero means no limit: a hung solver occupies its
	// worker slot indefinitely.
	Timeout time.Duration
}

type Outcome struct {
	Stdout   string
	ExitCode int
	Seconds  float64
	TimedOut bool
}

// Invoke runs one solver subprocess to completion and measures wall
// clock around the whole spawn/wait, startup and flush overhead
// included. A nonzero solver exit is a data outcome, not an error;
// the error return covers spawn failures only.
func (i *Invoker) Invoke(ctx context.Context, input string, log io.Writer) (Outcome, error) {
	if i.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, i.Path)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stderr = log
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if i.Timeout > 0 {
		// solver children inheriting the stdout pipe must not keep
		// Wait alive past the kill
		cmd.WaitDelay = time.Second
	}

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	outcome := Outcome{Stdout: stdout.String(), Seconds: elapsed.Seconds()}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		outcome.TimedOut = true
		return outcome, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		outcome.ExitCode = exitErr.ExitCode()
		return outcome, nil
	}
	if err != nil {
		return outcome, err
	}
	return outcome, nil
}
