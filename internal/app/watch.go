package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/watcher"
	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/engine/builder"
	"github.com/bmatcuk/doublestar/v4"
)

// watch rebuilds the project after every debounced batch of source changes.
// Each rebuild forks the runtime so task identifiers can be registered again.
func (a *App) watch(ctx context.Context, b *builder.Builder, project *domain.Project) error {
	w, err := a.newWatcher()
	if err != nil {
		return err
	}
	defer func() {
		_ = w.Stop()
	}()

	roots := sourceRoots(project)
	if err := w.Start(ctx, roots...); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("watching %d director(ies) for changes", len(roots)))

	ignored := destinationDirs(project)
	triggers := make(chan []string, 1)
	d := watcher.NewDebouncer(a.debounce, func(paths []string) {
		select {
		case triggers <- paths:
		default:
			// A rebuild is already queued.
		}
	})
	defer d.Stop()

	go func() {
		for event := range w.Events() {
			if !within(ignored, event.Path) {
				d.Add(event.Path)
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-triggers:
			a.logger.Info(fmt.Sprintf("%d file(s) changed, rebuilding", len(paths)))
			if err := a.build(ctx, b, a.runtime.Fork(), project); err != nil && ctx.Err() == nil {
				a.logger.Error(err)
			}
		}
	}
}

// sourceRoots returns the static directory prefix of every positive source glob.
func sourceRoots(project *domain.Project) []string {
	var roots []string
	for _, b := range project.Buildings {
		if b.Source == nil {
			continue
		}
		loc := domain.ResolveSource(b.Source)
		cwd := workingDir(loc.Options.Cwd)
		for _, glob := range loc.Globs {
			if strings.HasPrefix(glob, "!") {
				continue
			}
			root, _ := doublestar.SplitPattern(filepath.ToSlash(absolute(cwd, glob)))
			roots = append(roots, filepath.FromSlash(root))
		}
	}
	slices.Sort(roots)
	return slices.Compact(roots)
}

// destinationDirs returns the absolute destination of every building.
func destinationDirs(project *domain.Project) []string {
	var dirs []string
	for _, b := range project.Buildings {
		if b.Destination == nil {
			continue
		}
		loc := domain.ResolveDest(b.Destination)
		dirs = append(dirs, absolute(workingDir(loc.Options.Cwd), loc.Path))
	}
	return dirs
}

func within(dirs []string, path string) bool {
	for _, dir := range dirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func workingDir(dir string) string {
	if dir != "" {
		return dir
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

func absolute(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}
