package transforms

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/zerr"
)

func newLog(_ context.Context, c *Catalog, _ string) (domain.Transform, error) {
	return func(s *domain.Stream, taskID string) (*domain.Stream, error) {
		return s.Tap(func(f *domain.File) {
			c.logger.Info(fmt.Sprintf("%s: %s", taskID, filepath.ToSlash(f.Relative())))
		}), nil
	}, nil
}

func newExt(_ context.Context, _ *Catalog, arg string) (domain.Transform, error) {
	if err := requireArg("ext", arg); err != nil {
		return nil, err
	}
	return mapFiles(func(f *domain.File) error {
		f.SetExt(arg)
		return nil
	}), nil
}

func newBanner(_ context.Context, _ *Catalog, arg string) (domain.Transform, error) {
	if err := requireArg("banner", arg); err != nil {
		return nil, err
	}
	header := []byte(arg + "\n")
	return mapFiles(func(f *domain.File) error {
		if !f.Unread {
			f.Contents = append(append([]byte(nil), header...), f.Contents...)
		}
		return nil
	}), nil
}

func newEOL(_ context.Context, _ *Catalog, _ string) (domain.Transform, error) {
	return mapFiles(func(f *domain.File) error {
		if !f.Unread {
			f.Contents = bytes.ReplaceAll(f.Contents, []byte("\r\n"), []byte("\n"))
		}
		return nil
	}), nil
}

func newSkip(_ context.Context, _ *Catalog, arg string) (domain.Transform, error) {
	if err := requireArg("skip", arg); err != nil {
		return nil, err
	}
	if !doublestar.ValidatePattern(arg) {
		return nil, zerr.With(domain.ErrInvalidGlob, "glob", arg)
	}
	return func(s *domain.Stream, _ string) (*domain.Stream, error) {
		return s.Filter(func(f *domain.File) (bool, error) {
			matched, err := doublestar.Match(arg, filepath.ToSlash(f.Relative()))
			return !matched, err
		}), nil
	}, nil
}

// mapFiles builds a transform editing a copy of every file.
func mapFiles(edit func(*domain.File) error) domain.Transform {
	return func(s *domain.Stream, _ string) (*domain.Stream, error) {
		return s.Map(func(f *domain.File) (*domain.File, error) {
			out := f.Clone()
			if err := edit(out); err != nil {
				return nil, err
			}
			return out, nil
		}), nil
	}
}
