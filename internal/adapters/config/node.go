package config

import (
	"context"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/logger"
	"github.com/FilipeBeck/pipe-builder/internal/adapters/transforms"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, transforms.NodeID},
		Run: func(ctx context.Context) (*Loader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			catalog, err := graft.Dep[*transforms.Catalog](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log, catalog), nil
		},
	})
}
