package ledger

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the task ledger Graft node.
const NodeID graft.ID = "engine.ledger"

func init() {
	graft.Register(graft.Node[*Ledger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Ledger, error) {
			return New(), nil
		},
	})
}
