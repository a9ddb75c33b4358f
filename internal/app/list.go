package app

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"go.trai.ch/zerr"
)

// ListOptions configuration for the List method.
type ListOptions struct {
	ConfigPath string
}

// List writes every building of the pipefile and the available transforms to w without building.
func (a *App) List(ctx context.Context, w io.Writer, opts ListOptions) error {
	project, err := a.configLoader.Load(ctx, opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	for i, b := range project.Buildings {
		source, dest := "<none>", "<none>"
		if b.Source != nil {
			source = strings.Join(domain.ResolveSource(b.Source).Globs, ", ")
		}
		if b.Destination != nil {
			dest = domain.ResolveDest(b.Destination).Path
		}

		_, _ = fmt.Fprintf(w, "building %d: %s -> %s\n", i, source, dest)
		_, _ = fmt.Fprintf(w, "  tasks: %s\n", strings.Join(slices.Sorted(maps.Keys(b.Tasks)), ", "))
		if b.Extension != "" {
			_, _ = fmt.Fprintf(w, "  extension: %s\n", b.Extension)
		}
		if len(b.Flags) > 0 {
			_, _ = fmt.Fprintf(w, "  flags: %s\n", strings.Join(b.Flags, ", "))
		}
	}

	if project.Hooks != nil {
		_, _ = fmt.Fprintf(w, "hooks: %d input, %d output\n",
			len(domain.HookEntries(project.Hooks.Input)),
			len(domain.HookEntries(project.Hooks.Output)),
		)
	}
	_, _ = fmt.Fprintf(w, "transforms: %s\n", strings.Join(a.catalog.Names(), ", "))
	return nil
}
