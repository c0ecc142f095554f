package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"git.home.luguber.info/inful/docdraft/internal/logfields"
	"git.home.luguber.info/inful/docdraft/internal/metrics"
)

// Stage is one step of the build.
type Stage interface {
	Name() string
	Run(ctx context.Context, bc *BuildContext) error
}

// StageError wraps the error returned by a stage with the stage name.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return fmt.Sprintf("stage %s: %v", e.Stage, e.Err) }
func (e *StageError) Unwrap() error { return e.Err }

// Runner executes stages in order.
type Runner struct {
	stages []Stage
}

// NewRunner returns a Runner for the given stages.
func NewRunner(stages ...Stage) *Runner {
	return &Runner{stages: stages}
}

// Stages returns the names of the configured stages in execution order.
func (r *Runner) Stages() []string {
	names := make([]string, 0, len(r.stages))
	for _, st := range r.stages {
		names = append(names, st.Name())
	}
	return names
}

// Run executes every stage, recording timing and stopping on the first error.
// Cancellation is checked between stages.
func (r *Runner) Run(ctx context.Context, bc *BuildContext) error {
	log := bc.logger()
	rec := bc.recorder()

	for _, st := range r.stages {
		name := st.Name()
		if err := ctx.Err(); err != nil {
			rec.IncStageResult(name, metrics.ResultCanceled)
			log.Warn("Build canceled", logfields.Stage(name), logfields.Error(err))
			return &StageError{Stage: name, Err: err}
		}

		t0 := time.Now()
		err := st.Run(ctx, bc)
		dur := time.Since(t0)
		rec.ObserveStageDuration(name, dur)

		attrs := []any{logfields.Stage(name), logfields.DurationMS(float64(dur.Microseconds()) / 1000)}
		if err != nil {
			result := metrics.ResultFailed
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				result = metrics.ResultCanceled
			}
			rec.IncStageResult(name, result)
			log.Error("Stage failed", append(attrs, logfields.Error(err))...)
			return &StageError{Stage: name, Err: err}
		}

		rec.IncStageResult(name, metrics.ResultSuccess)
		log.Debug("Stage complete", attrs...)
	}
	return nil
}
