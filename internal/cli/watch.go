package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	envvalidator "github.com/wajahatiqbal22/env-config-validator"
	"github.com/wajahatiqbal22/env-config-validator/internal/presentation/tui"
	"github.com/wajahatiqbal22/env-config-validator/internal/watch"
)

// RunWatch validates continuously, re-running whenever the schema or an env
// file changes, until interrupted.
func RunWatch(opts RunOptions) error {
	logger := createLogger(opts.Debug)
	tui.PrintBanner(envvalidator.Version)

	logger.Info("Starting watcher", "schema", opts.SchemaPath, "env_files", opts.EnvFiles)
	printSystemMessage("Watching '%s'. Press Ctrl+C to stop.", opts.SchemaPath)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	for {
		if !runWatchIteration(sigCtx, opts, logger) {
			break
		}
		logger.Info("Watcher restarting")
	}
	return nil
}

// runWatchIteration runs one validate-then-wait cycle. It returns false when
// the watcher should stop.
func runWatchIteration(parentCtx *SignalContext, opts RunOptions, logger *slog.Logger) bool {
	// Child context so each iteration can tear down its watchers without
	// cancelling the signal context.
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	eng, err := createEngine(opts, logger)
	if err != nil {
		logger.Error("Engine initialization failed", "err", err)
		printSystemMessage("Schema error: %v", err)
		return waitForFix(ctx, parentCtx, opts)
	}

	result := eng.Validate(ctx)
	printer := tui.NewPrinter(opts.out(), useColor(opts.NoColor))
	printer.PrintResult(result, eng.Schema())
	if opts.ShowValues {
		printer.PrintValues(result, eng.Schema())
	}

	watchCh, err := eng.Watch(ctx)
	if err != nil {
		logger.Error("Watch setup failed", "err", err)
		return false
	}

	printSystemMessage("Waiting for changes...")

	select {
	case <-parentCtx.Done():
		fmt.Printf("\n")
		printSystemMessage("Stopped (%v).", parentCtx.Signal())
		logger.Info("Stopping watcher (signal received)", "signal", parentCtx.Signal())
		return false
	case path, ok := <-watchCh:
		if !ok {
			return false
		}
		logger.Info("Change detected, revalidating", "path", path)
		printSystemMessage("Change detected in '%s'.", path)
		// Delay slightly so editors finish writing before we reload
		time.Sleep(100 * time.Millisecond)
		return true
	}
}

// waitForFix blocks until a watched file changes after a failed engine
// initialization, falling back to a fixed backoff when watching itself fails
// (e.g. the schema file does not exist yet).
func waitForFix(ctx context.Context, parentCtx *SignalContext, opts RunOptions) bool {
	paths := append([]string{opts.SchemaPath}, opts.EnvFiles...)
	watchCh, err := watch.Files(ctx, paths...)
	if err != nil {
		select {
		case <-parentCtx.Done():
			return false
		case <-time.After(2 * time.Second):
			return true
		}
	}

	select {
	case <-parentCtx.Done():
		return false
	case _, ok := <-watchCh:
		if ok {
			time.Sleep(100 * time.Millisecond)
		}
		return ok
	}
}
