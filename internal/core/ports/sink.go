package ports

import (
	"context"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
)

// Sink persists streams to a destination.
//
//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type Sink interface {
	// Write drains the stream into the destination and returns the number of files written.
	// It returns once the stream ended (end-of-stream) or failed.
	Write(ctx context.Context, stream *domain.Stream, location domain.DestLocation) (int, error)
}
