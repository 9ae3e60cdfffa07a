package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const DefaultConcurrency = 8

// ExecutionResult is produced exactly once per manifest instance.
type ExecutionResult struct {
	Input   string
	Status  string
	Seconds float64
}

type Harness struct {
	Corpus      string
	Manifest    string
	Solver      string
	OutputDir   string
	Concurrency int
	Timeout     time.Duration
	Storage     *Storage
	Out         io.Writer

	// overridable in tests
	execute func(ctx context.Context, ref InstanceRef) ExecutionResult
}

// Run drives the whole batch: manifest read and eager validation,
// output directory setup, bounded fan-out over the instances, and the
// single-writer result stream in completion order. Per-instance
// failures are data outcomes; Run itself fails only on setup errors.
func (h *Harness) Run(ctx context.Context) error {
	refs, err := ReadManifest(h.Manifest)
	if err != nil {
		return fmt.Errorf("failed to read manifest %v: %w", h.Manifest, err)
	}
	if err := ValidateManifest(h.Corpus, refs); err != nil {
		return fmt.Errorf("manifest validation failed: %w", err)
	}
	if err := os.MkdirAll(h.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %v: %w", h.OutputDir, err)
	}
	Logger.Infof("running %v instances with solver %v", len(refs), h.Solver)

	var db *sql.DB
	if h.Storage != nil {
		db, err = h.Storage.Connect()
		if err != nil {
			return fmt.Errorf("failed to connect to results db: %w", err)
		}
		defer db.Close()
		info := HostStat()
		err = h.Storage.InitResultsDb(db, map[string]any{
			"solver":   h.Solver,
			"manifest": h.Manifest,
			"arch":     info.Arch,
			"hostname": info.Hostname,
			"platform": info.Platform,
			"ram":      info.RAM,
			"cpu":      info.CPUCount,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize results db: %w", err)
		}
	}

	concurrency := h.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	execute := h.execute
	if execute == nil {
		execute = h.executeInstance
	}
	out := h.Out
	if out == nil {
		out = os.Stdout
	}

	tasks := make(chan InstanceRef)
	results := make(chan ExecutionResult)

	var workers sync.WaitGroup
	for range concurrency {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for ref := range tasks {
				results <- execute(ctx, ref)
			}
		}()
	}
	go func() {
		for _, ref := range refs {
			tasks <- ref
		}
		close(tasks)
		workers.Wait()
		close(results)
	}()

	// single consumer: result lines never interleave
	for result := range results {
		fmt.Fprintf(out, "%v\t%v\t%v\n", result.Input, result.Status, result.Seconds)
		if db != nil {
			if err := h.Storage.RecordResult(db, result); err != nil {
				Logger.Errorf("failed to record result for %v: %v", result.Input, err)
			}
		}
	}
	return nil
}

// executeInstance never lets an error escape the task boundary: every
// failure mode of one instance degrades to a FAILURE result for that
// instance only.
func (h *Harness) executeInstance(ctx context.Context, ref InstanceRef) ExecutionResult {
	input := ref.InputPath(h.Corpus)

	loader := &Loader{CorpusRoot: h.Corpus, OutputDir: h.OutputDir}
	text, logFile, err := loader.Load(ref)
	if err != nil {
		Logger.Errorf("failed to stage instance %v: %v", ref, err)
		return ExecutionResult{Input: input, Status: StatusFailure}
	}
	defer logFile.Close()

	invoker := &Invoker{Path: h.Solver, Timeout: h.Timeout}
	outcome, err := invoker.Invoke(ctx, text, logFile)
	if err != nil {
		Logger.Errorf("failed to run solver on %v: %v", ref, err)
		return ExecutionResult{Input: input, Status: StatusFailure, Seconds: outcome.Seconds}
	}
	if outcome.TimedOut {
		Logger.Warnf("solver timed out on %v after %vs", ref, outcome.Seconds)
		return ExecutionResult{Input: input, Status: StatusTimeout, Seconds: outcome.Seconds}
	}
	return ExecutionResult{
		Input:   input,
		Status:  Classify(outcome.Stdout, outcome.ExitCode),
		Seconds: outcome.Seconds,
	}
}
