package transforms

import (
	"context"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/logger"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the transform catalog Graft node.
const NodeID graft.ID = "adapter.transforms"

func init() {
	graft.Register(graft.Node[*Catalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Catalog, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCatalog(log), nil
		},
	})
}
