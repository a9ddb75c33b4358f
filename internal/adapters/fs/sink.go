package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Sink = (*Sink)(nil)

const (
	defaultDirMode  iofs.FileMode = 0o750
	defaultFileMode iofs.FileMode = 0o644
)

// Sink writes streams below a destination directory.
type Sink struct{}

// NewSink creates a new Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Write places every file at its path relative to its base under the destination.
// Unread files only get their parent directory created.
// A file whose relative path leaves its base is rejected.
// Written files are rebased onto the destination.
func (s *Sink) Write(ctx context.Context, stream *domain.Stream, location domain.DestLocation) (int, error) {
	cwd, err := resolveDir(location.Options.Cwd)
	if err != nil {
		return 0, err
	}
	dest := absolute(cwd, location.Path)
	opts := location.Options

	dirMode := opts.DirMode
	if dirMode == 0 {
		dirMode = defaultDirMode
	}

	written := 0
	for file, err := range stream.All() {
		if err != nil {
			return written, err
		}
		if err := ctx.Err(); err != nil {
			return written, err
		}

		rel := file.Relative()
		if !filepath.IsLocal(rel) {
			failure := zerr.With(zerr.Wrap(domain.ErrPathOutsideDestination, "file is not below its base"), "path", file.Path)
			return written, zerr.With(failure, "base", file.Base)
		}
		target := filepath.Join(dest, rel)

		if !opts.ShouldOverwrite() {
			if _, err := os.Stat(target); err == nil {
				continue
			} else if !errors.Is(err, iofs.ErrNotExist) {
				return written, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", target)
			}
		}

		if err := os.MkdirAll(filepath.Dir(target), dirMode); err != nil {
			return written, zerr.With(zerr.Wrap(domain.ErrDirCreateFailed, err.Error()), "path", filepath.Dir(target))
		}
		if file.Unread {
			continue
		}

		if err := writeFile(target, file.Contents, fileMode(opts.Mode, file.Mode)); err != nil {
			return written, err
		}

		file.Cwd = cwd
		file.Base = dest
		file.Path = target
		written++
	}
	return written, nil
}

func writeFile(path string, contents []byte, mode iofs.FileMode) error {
	if err := os.WriteFile(path, contents, mode); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, err.Error()), "path", path)
	}
	// WriteFile keeps the mode of files that already existed.
	if err := os.Chmod(path, mode); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, err.Error()), "path", path)
	}
	return nil
}

func fileMode(configured, source iofs.FileMode) iofs.FileMode {
	switch {
	case configured != 0:
		return configured
	case source != 0:
		return source
	default:
		return defaultFileMode
	}
}
