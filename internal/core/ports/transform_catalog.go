package ports

import (
	"context"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
)

// TransformCatalog resolves textual transform specs such as "ext:js" into transforms.
//
//go:generate mockgen -source=transform_catalog.go -destination=mocks/mock_transform_catalog.go -package=mocks
type TransformCatalog interface {
	// Resolve returns the transform named by spec. Transforms running external
	// commands stop when ctx is canceled.
	Resolve(ctx context.Context, spec string) (domain.Transform, error)
	// Names returns the names of every known transform.
	Names() []string
}
