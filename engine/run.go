package engine

import (
	"context"
)

// Run advances the engine until the run is locked or finished. It stops
// early if ctx is cancelled or the step limit is reached. Run returns the
// number of steps performed and the error which stopped the run, if any.
func (e *Engine) Run(ctx context.Context) (int, error) {
	n := 0
	for !e.Done() {
		if n >= e.maxSteps {
			tracer().Errorf("run %s: no halt after %d steps", e.runID, n)
			return n, ErrStepLimit
		}
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		e.Advance()
		n++
	}
	return n, e.err
}

// StepN performs up to n steps and returns the number of steps taken.
// It stops early when the run is locked or finished.
func (e *Engine) StepN(n int) int {
	i := 0
	for ; i < n && !e.Done(); i++ {
		e.Advance()
	}
	return i
}
