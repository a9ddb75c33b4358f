package builder

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
)

// Result is the settled state of one pipeline.
type Result struct {
	BuildingIndex int
	TaskID        string
	Files         int
	Duration      time.Duration
	Err           error
}

// Outcome is the combined result of one build call.
// It settles exactly once, after every pipeline of the call settled.
type Outcome struct {
	// ID identifies the build call.
	ID string

	done    chan struct{}
	results []Result
	err     error
}

func newOutcome(id string, pipelines int) *Outcome {
	return &Outcome{
		ID:      id,
		done:    make(chan struct{}),
		results: make([]Result, pipelines),
	}
}

// Done is closed when the outcome settles.
func (o *Outcome) Done() <-chan struct{} {
	return o.done
}

// Wait blocks until the outcome settles or ctx is done.
func (o *Outcome) Wait(ctx context.Context) error {
	select {
	case <-o.done:
		return o.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the settled error, or nil while pipelines are still running.
func (o *Outcome) Err() error {
	select {
	case <-o.done:
		return o.err
	default:
		return nil
	}
}

// Results returns the per-pipeline results once settled, nil before.
func (o *Outcome) Results() []Result {
	select {
	case <-o.done:
		return slices.Clone(o.results)
	default:
		return nil
	}
}

func (o *Outcome) settle(policy FailurePolicy) error {
	if policy == FailurePolicyStrict {
		var failures []error
		for _, r := range o.results {
			if r.Err != nil {
				failures = append(failures, r.Err)
			}
		}
		if len(failures) > 0 {
			o.err = errors.Join(append([]error{domain.ErrBuildFailed}, failures...)...)
		}
	}
	close(o.done)
	return o.err
}
