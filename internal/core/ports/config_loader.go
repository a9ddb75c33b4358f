package ports

import (
	"context"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
)

// ConfigLoader defines the interface for loading a pipefile.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the pipefile at path, or discovers one walking up from the
	// working directory when path is empty, and returns the project it declares.
	// Transforms resolved from the pipefile are bound to ctx.
	Load(ctx context.Context, path string) (*domain.Project, error)
}
