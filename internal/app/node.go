package app

import (
	"context"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"github.com/FilipeBeck/pipe-builder/internal/adapters/console"    //nolint:depguard // Wired in app layer
	"github.com/FilipeBeck/pipe-builder/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"github.com/FilipeBeck/pipe-builder/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"github.com/FilipeBeck/pipe-builder/internal/adapters/metrics"    //nolint:depguard // Wired in app layer
	"github.com/FilipeBeck/pipe-builder/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"github.com/FilipeBeck/pipe-builder/internal/adapters/transforms" //nolint:depguard // Wired in app layer
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/FilipeBeck/pipe-builder/internal/engine/builder"
	"github.com/FilipeBeck/pipe-builder/internal/engine/flags"
	"github.com/FilipeBeck/pipe-builder/internal/engine/ledger"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			transforms.NodeID,
			fs.SourceNodeID,
			fs.SinkNodeID,
			fs.HasherNodeID,
			console.NodeID,
			logger.NodeID,
			telemetry.NodeID,
			metrics.NodeID,
			flags.NodeID,
			ledger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[*config.Loader](ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := graft.Dep[*transforms.Catalog](ctx)
	if err != nil {
		return nil, err
	}
	source, err := graft.Dep[ports.Source](ctx)
	if err != nil {
		return nil, err
	}
	sink, err := graft.Dep[ports.Sink](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	bridge, err := graft.Dep[*telemetry.Bridge](ctx)
	if err != nil {
		return nil, err
	}
	recorder, err := graft.Dep[*metrics.Recorder](ctx)
	if err != nil {
		return nil, err
	}
	registry, err := graft.Dep[*flags.Registry](ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := graft.Dep[*ledger.Ledger](ctx)
	if err != nil {
		return nil, err
	}

	return New(
		loader,
		catalog,
		source,
		sink,
		hasher,
		reporter,
		log,
		bridge,
		recorder,
		builder.NewRuntime(registry, tasks),
	), nil
}
