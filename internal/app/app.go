// Package app implements the application layer for pipe-builder.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/changed"
	"github.com/FilipeBeck/pipe-builder/internal/adapters/metrics"
	"github.com/FilipeBeck/pipe-builder/internal/adapters/telemetry"
	"github.com/FilipeBeck/pipe-builder/internal/adapters/watcher"
	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/FilipeBeck/pipe-builder/internal/engine/builder"
	"github.com/spf13/pflag"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	catalog      ports.TransformCatalog
	source       ports.Source
	sink         ports.Sink
	hasher       ports.Hasher
	reporter     ports.Reporter
	logger       ports.Logger
	bridge       *telemetry.Bridge
	metrics      *metrics.Recorder
	runtime      *builder.Runtime
	newWatcher   func() (ports.Watcher, error)
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	catalog ports.TransformCatalog,
	source ports.Source,
	sink ports.Sink,
	hasher ports.Hasher,
	reporter ports.Reporter,
	log ports.Logger,
	bridge *telemetry.Bridge,
	recorder *metrics.Recorder,
	rt *builder.Runtime,
) *App {
	a := &App{
		configLoader: loader,
		catalog:      catalog,
		source:       source,
		sink:         sink,
		hasher:       hasher,
		reporter:     reporter,
		logger:       log,
		bridge:       bridge,
		metrics:      recorder,
		runtime:      rt,
		debounce:     watcher.DefaultDebounceWindow,
	}
	a.newWatcher = func() (ports.Watcher, error) {
		return watcher.NewWatcher(a.logger)
	}
	return a
}

// WithWatcherFactory replaces the constructor of the watcher used by watch mode.
// This is primarily used for testing.
func (a *App) WithWatcherFactory(fn func() (ports.Watcher, error)) *App {
	a.newWatcher = fn
	return a
}

// WithDebounce sets the window coalescing file events in watch mode.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// Runtime returns the runtime shared by every build of the process.
func (a *App) Runtime() *builder.Runtime {
	return a.runtime
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is the pipefile to load. Empty searches upwards from the working directory.
	ConfigPath string
	// FlagSet holds the command line flags copied into the flag registry.
	FlagSet *pflag.FlagSet
	// Defines are "name[=value]" flag definitions.
	Defines []string
	// Args are raw "--name[=value]" tokens given after "--".
	Args []string
	// Watch rebuilds whenever a source file changes, until the context ends.
	Watch bool
	// TolerateFailures settles the build successfully even when pipelines fail.
	TolerateFailures bool
	// Compare selects the change comparison mode: "mtime" or "content".
	Compare string
	// MetricsFile receives the collected metrics in the Prometheus text format.
	MetricsFile string
	// Concurrency limits the number of pipelines running at once. Zero means no limit.
	Concurrency int
}

// Run loads the pipefile and builds every building.
//
//nolint:cyclop // orchestration function
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	// 1. Load the project
	project, err := a.configLoader.Load(ctx, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if len(project.Buildings) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrNoBuildings, "pipefile declares no buildings"), "path", project.Path)
	}

	// 2. Populate the flag registry
	if err := a.loadFlags(opts); err != nil {
		return err
	}

	mode, err := changed.ParseMode(opts.Compare)
	if err != nil {
		return err
	}

	// 3. Initialize telemetry
	tracer, shutdown := a.setupTracer()
	defer shutdown(context.WithoutCancel(ctx))

	// 4. Initialize the builder
	policy := builder.FailurePolicyStrict
	if opts.TolerateFailures {
		policy = builder.FailurePolicyTolerate
	}
	b := builder.New(
		a.source,
		a.sink,
		changed.NewDetector(a.hasher, mode),
		a.reporter,
		a.logger,
		tracer,
		a.metrics,
	).WithFailurePolicy(policy).WithConcurrency(opts.Concurrency)

	// 5. Build, then keep rebuilding in watch mode
	err = a.build(ctx, b, a.runtime, project)
	if opts.Watch {
		if err != nil {
			a.logger.Error(err)
		}
		err = a.watch(ctx, b, project)
	}

	if opts.MetricsFile != "" {
		if werr := a.metrics.WriteTextfile(opts.MetricsFile); werr != nil {
			err = errors.Join(err, werr)
		}
	}
	return err
}

// setupTracer installs a tracer provider reporting spans to the bridge.
// Without a bridge pipelines are not traced.
func (a *App) setupTracer() (ports.Tracer, func(context.Context)) {
	if a.bridge == nil {
		return telemetry.NewNoOpTracer(), func(context.Context) {}
	}
	tp := telemetry.Setup(a.bridge)
	return telemetry.NewOTelTracerFrom(tp, telemetry.InstrumentationName), func(ctx context.Context) {
		_ = tp.Shutdown(ctx)
	}
}

func (a *App) loadFlags(opts RunOptions) error {
	registry := a.runtime.Flags
	if opts.FlagSet != nil {
		registry.LoadFlagSet(opts.FlagSet)
	}
	for _, def := range opts.Defines {
		if err := registry.Define(def); err != nil {
			return err
		}
	}
	return registry.LoadArgs(opts.Args)
}

// build starts every pipeline of the project and waits for the combined outcome.
func (a *App) build(ctx context.Context, b *builder.Builder, rt *builder.Runtime, project *domain.Project) error {
	outcome, err := b.Build(ctx, rt, project.Hooks, project.Buildings...)
	if err != nil {
		return err
	}
	return outcome.Wait(ctx)
}
