// Package builder runs buildings as concurrent file pipelines.
package builder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FailurePolicy decides how pipeline failures affect the combined outcome.
type FailurePolicy uint8

const (
	// FailurePolicyStrict fails the combined outcome when any pipeline fails.
	FailurePolicyStrict FailurePolicy = iota
	// FailurePolicyTolerate settles the combined outcome successfully and only reports failures.
	FailurePolicyTolerate
)

// Builder turns buildings into pipelines and runs them.
type Builder struct {
	source   ports.Source
	sink     ports.Sink
	detector ports.ChangeDetector
	reporter ports.Reporter
	logger   ports.Logger
	tracer   ports.Tracer
	metrics  ports.Metrics

	policy      FailurePolicy
	concurrency int
}

// New creates a Builder with the given collaborators.
func New(
	source ports.Source,
	sink ports.Sink,
	detector ports.ChangeDetector,
	reporter ports.Reporter,
	log ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Builder {
	return &Builder{
		source:   source,
		sink:     sink,
		detector: detector,
		reporter: reporter,
		logger:   log,
		tracer:   tracer,
		metrics:  metrics,
	}
}

// WithFailurePolicy sets the failure policy of every following build call.
func (b *Builder) WithFailurePolicy(policy FailurePolicy) *Builder {
	b.policy = policy
	return b
}

// WithConcurrency limits the number of pipelines running at once.
// Zero or a negative value means no limit.
func (b *Builder) WithConcurrency(n int) *Builder {
	b.concurrency = n
	return b
}

// Build registers the tasks of every building and starts one pipeline per
// (building, task) pair. Malformed buildings and duplicate task identifiers
// are reported synchronously and nothing is started. Otherwise Build returns
// immediately with an Outcome that settles once every pipeline settled.
func (b *Builder) Build(
	ctx context.Context,
	rt *Runtime,
	hooks *domain.Hooks,
	buildings ...domain.Building,
) (*Outcome, error) {
	canonical, err := normalizeBuildings(buildings)
	if err != nil {
		return nil, err
	}
	chain := normalizeHooks(hooks)

	var ids []string
	for _, cb := range canonical {
		ids = append(ids, cb.taskIDs...)
	}
	if err := rt.Tasks.Reserve(ids...); err != nil {
		return nil, err
	}

	specs := b.plan(rt, canonical)

	planned := make([]string, len(specs))
	for i, spec := range specs {
		planned[i] = spec.taskID
	}
	b.tracer.EmitPlan(ctx, planned)

	outcome := newOutcome(uuid.NewString(), len(specs))
	b.logger.Debug(fmt.Sprintf("build %s: %d pipelines", outcome.ID, len(specs)))

	go b.launch(ctx, rt, chain, specs, outcome)

	return outcome, nil
}

// plan expands buildings into pipeline specs, dropping buildings whose guard flags are missing.
func (b *Builder) plan(rt *Runtime, canonical []*canonicalBuilding) []pipelineSpec {
	var specs []pipelineSpec
	for _, cb := range canonical {
		if !rt.Flags.AllPresent(cb.building.Flags...) {
			b.logger.Info(fmt.Sprintf("skipping building %d: requires %s", cb.index, strings.Join(cb.building.Flags, ", ")))
			continue
		}
		for _, id := range cb.taskIDs {
			specs = append(specs, pipelineSpec{
				building:  cb,
				taskID:    id,
				transform: cb.building.Tasks[id],
			})
		}
	}
	return specs
}

func (b *Builder) launch(ctx context.Context, rt *Runtime, chain hookChain, specs []pipelineSpec, outcome *Outcome) {
	start := time.Now()

	g := new(errgroup.Group)
	if b.concurrency > 0 {
		g.SetLimit(b.concurrency)
	}
	for i, spec := range specs {
		g.Go(func() error {
			outcome.results[i] = b.runPipeline(ctx, rt, chain, spec)
			return nil
		})
	}
	_ = g.Wait()

	err := outcome.settle(b.policy)
	b.metrics.ObserveBuild(time.Since(start), len(specs), err)
}
