package fs

import (
	"context"

	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// SourceNodeID is the unique identifier for the file source Graft node.
	SourceNodeID graft.ID = "adapter.fs.source"
	// SinkNodeID is the unique identifier for the file sink Graft node.
	SinkNodeID graft.ID = "adapter.fs.sink"
	// HasherNodeID is the unique identifier for the file hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.Source]{
		ID:        SourceNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Source, error) {
			return NewSource(), nil
		},
	})

	graft.Register(graft.Node[ports.Sink]{
		ID:        SinkNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Sink, error) {
			return NewSink(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
