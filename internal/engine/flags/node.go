package flags

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the flag registry Graft node.
const NodeID graft.ID = "engine.flags"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})
}
