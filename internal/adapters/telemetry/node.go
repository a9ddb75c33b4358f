package telemetry

import (
	"context"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/logger"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the span bridge Graft node.
const NodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer of every pipeline span.
const InstrumentationName = "pipe-builder"

func init() {
	graft.Register(graft.Node[*Bridge]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Bridge, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBridge(log), nil
		},
	})
}
