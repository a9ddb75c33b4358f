// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
)

// Source opens streams over source globs.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type Source interface {
	// Open returns a stream yielding every file matched by the location's globs.
	// Matching and reading happen lazily while the stream is consumed.
	Open(ctx context.Context, location domain.SourceLocation) (*domain.Stream, error)
}
