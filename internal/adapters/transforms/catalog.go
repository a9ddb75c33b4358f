// Package transforms provides the named transforms a pipefile can reference.
package transforms

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TransformCatalog = (*Catalog)(nil)

// ArgSeparator splits a transform name from its argument, as in "ext:js".
const ArgSeparator = ":"

type factory func(ctx context.Context, c *Catalog, arg string) (domain.Transform, error)

var factories = map[string]factory{
	"log":    newLog,
	"ext":    newExt,
	"banner": newBanner,
	"eol":    newEOL,
	"skip":   newSkip,
	"exec":   newExec,
}

// Catalog implements ports.TransformCatalog.
type Catalog struct {
	logger ports.Logger
}

// NewCatalog creates a Catalog logging through logger.
func NewCatalog(logger ports.Logger) *Catalog {
	return &Catalog{logger: logger}
}

// Resolve returns the transform named by spec.
func (c *Catalog) Resolve(ctx context.Context, spec string) (domain.Transform, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, zerr.Wrap(domain.ErrInvalidTransformSpec, "empty transform spec")
	}

	name, arg, _ := strings.Cut(spec, ArgSeparator)
	create, ok := factories[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownTransform, "transform", name)
	}

	t, err := create(ctx, c, arg)
	if err != nil {
		return nil, zerr.With(err, "spec", spec)
	}
	return t, nil
}

// Names returns the names of every known transform, sorted.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(factories))
}

func requireArg(name, arg string) error {
	if arg == "" {
		return zerr.With(
			zerr.Wrap(domain.ErrInvalidTransformSpec, "missing argument, expected "+name+ArgSeparator+"<value>"),
			"transform", name,
		)
	}
	return nil
}
