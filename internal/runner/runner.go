package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/northwind-training/coursegen/internal/state"
	"github.com/northwind-training/coursegen/internal/ux"
)

// Runner drives a build: jobs run in order and every written file is
// recorded in the manifest.
type Runner struct {
	Jobs       []Job
	OutDir     string
	Dispatcher Dispatcher
	Logger     *slog.Logger

	State  *state.State
	Timing *state.Timing
}

// failAndHint records the final status, saves state (warning on error),
// flushes timing, prints a resume hint, and returns the given error.
func (r *Runner) failAndHint(status, job string, err error) error {
	r.State.Finish(status, job)
	if saveErr := r.State.Save(r.OutDir); saveErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save manifest: %v\n", saveErr)
	}
	if r.Timing != nil {
		if flushErr := r.Timing.Flush(r.OutDir); flushErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to flush timing: %v\n", flushErr)
		}
	}
	ux.ResumeHint("coursegen build")
	return err
}

// start opens a new manifest that keeps the artifacts of the previous
// build, so partial builds do not forget earlier files. Timing always
// starts empty and only describes the current run.
func (r *Runner) start() error {
	if err := state.EnsureDir(r.OutDir); err != nil {
		return err
	}
	prev, err := state.Load(r.OutDir)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	r.State = state.New(len(r.Jobs))
	r.State.Artifacts = prev.Artifacts

	r.Timing = &state.Timing{}
	if err := r.Timing.Flush(r.OutDir); err != nil {
		return fmt.Errorf("resetting timing: %w", err)
	}
	return r.State.Save(r.OutDir)
}

// record adds the files a job wrote to the manifest. It runs before the
// job's error is looked at, so files written ahead of a failure or an
// interrupt are still listed.
func (r *Runner) record(job string, paths []string) (int, error) {
	for n, p := range paths {
		a, err := r.State.Record(r.OutDir, p, job)
		if err != nil {
			return n, fmt.Errorf("job %q: recording %s: %w", job, p, err)
		}
		ux.Artifact(a)
	}
	return len(paths), nil
}

// Run executes every job in order.
func (r *Runner) Run(ctx context.Context) error {
	if r.Dispatcher == nil {
		r.Dispatcher = DefaultDispatcher{}
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}
	if err := r.start(); err != nil {
		return err
	}

	total := len(r.Jobs)
	files := 0
	for i, job := range r.Jobs {
		if ctx.Err() != nil {
			return r.failAndHint(state.StatusInterrupted, "", ctx.Err())
		}

		ux.JobHeader(i, total, job.Name, job.Kind)
		r.Timing.AddStart(job.Name)
		start := time.Now()
		r.Logger.Debug("job started", "job", job.Name, "kind", job.Kind, "target", job.Target)

		paths, err := r.Dispatcher.Dispatch(ctx, job)
		n, recErr := r.record(job.Name, paths)
		files += n

		if ctx.Err() != nil {
			return r.failAndHint(state.StatusInterrupted, job.Name, ctx.Err())
		}
		if err != nil {
			ux.JobFail(i, job.Name, err.Error())
			return r.failAndHint(state.StatusFailed, job.Name, fmt.Errorf("job %q failed: %w", job.Name, err))
		}
		if recErr != nil {
			ux.JobFail(i, job.Name, recErr.Error())
			return r.failAndHint(state.StatusFailed, job.Name, recErr)
		}

		duration := time.Since(start)
		r.Timing.AddEnd(job.Name)
		if err := r.Timing.Flush(r.OutDir); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to flush timing: %v\n", err)
		}
		r.State.Advance()
		if err := r.State.Save(r.OutDir); err != nil {
			return fmt.Errorf("saving manifest after job %q: %w", job.Name, err)
		}
		r.Logger.Debug("job finished", "job", job.Name, "files", len(paths), "duration", duration)
		ux.JobComplete(i, duration, len(paths))
	}

	r.State.Finish(state.StatusCompleted, "")
	if err := r.State.Save(r.OutDir); err != nil {
		return fmt.Errorf("saving final manifest: %w", err)
	}
	if err := r.Timing.Flush(r.OutDir); err != nil {
		return fmt.Errorf("flushing timing: %w", err)
	}
	ux.Success(total, files)
	return nil
}

// DryRunPrint prints the job plan without writing anything.
func (r *Runner) DryRunPrint() {
	total := len(r.Jobs)
	fmt.Printf("\n%sDry run — %d jobs into %s:%s\n\n", ux.Bold, total, r.OutDir, ux.Reset)
	for i, j := range r.Jobs {
		fmt.Printf("  %s%d.%s %s%s%s (%s)\n", ux.Cyan, i+1, ux.Reset, ux.Bold, j.Name, ux.Reset, j.Kind)
		if j.Target != "" {
			fmt.Printf("     into: %s\n", j.Target)
		}
		for _, o := range j.Outputs {
			fmt.Printf("     writes: %s\n", o)
		}
	}
	fmt.Println()
}
