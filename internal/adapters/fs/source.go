// Package fs provides file system adapters for reading, writing and hashing files.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/zerr"
)

var _ ports.Source = (*Source)(nil)

// negatePrefix marks a glob that excludes files matched by the other globs.
const negatePrefix = "!"

var errStopWalk = errors.New("stop walk")

// Source expands globs into streams of files read from disk.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Open validates the location's globs and returns a lazy stream over the matching files.
// Files are yielded in walk order; a file matched by several globs is yielded once.
// A glob without wildcards that matches nothing fails the stream unless AllowEmpty is set.
func (s *Source) Open(ctx context.Context, location domain.SourceLocation) (*domain.Stream, error) {
	cwd, err := resolveDir(location.Options.Cwd)
	if err != nil {
		return nil, err
	}

	var includes, excludes []string
	for _, glob := range location.Globs {
		pattern, negated := strings.CutPrefix(glob, negatePrefix)
		pattern = filepath.ToSlash(absolute(cwd, pattern))
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidGlob, "invalid glob"), "glob", glob)
		}
		if negated {
			excludes = append(excludes, pattern)
		} else {
			includes = append(includes, pattern)
		}
	}
	if len(includes) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidGlob, "no glob selects files"), "globs", location.Globs)
	}

	opts := location.Options
	base := ""
	if opts.Base != "" {
		base = absolute(cwd, opts.Base)
	}

	return domain.NewStream(func(yield func(*domain.File, error) bool) {
		seen := make(map[string]struct{})
		for _, pattern := range includes {
			root, rest := doublestar.SplitPattern(pattern)
			root = filepath.FromSlash(root)
			fileBase := base
			if fileBase == "" {
				fileBase = root
			}

			matched := 0
			err := doublestar.GlobWalk(os.DirFS(root), rest, func(path string, d iofs.DirEntry) error {
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() || (!opts.Dot && hasDotSegment(path)) {
					return nil
				}
				full := filepath.Join(root, filepath.FromSlash(path))
				if _, dup := seen[full]; dup || excluded(excludes, full) {
					return nil
				}
				seen[full] = struct{}{}

				file, err := readFile(full, cwd, fileBase, opts)
				if err != nil {
					return err
				}
				if file == nil {
					return nil
				}
				matched++
				if !yield(file, nil) {
					return errStopWalk
				}
				return nil
			})
			if errors.Is(err, errStopWalk) {
				return
			}
			if err != nil {
				yield(nil, zerr.With(zerr.Wrap(err, "failed to expand glob"), "glob", pattern))
				return
			}
			if matched == 0 && !opts.AllowEmpty && !hasMeta(rest) {
				yield(nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "file not found"), "path", pattern))
				return
			}
		}
	}), nil
}

func readFile(path, cwd, base string, opts domain.SourceOptions) (*domain.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", path)
	}
	if !opts.Since.IsZero() && !info.ModTime().After(opts.Since) {
		return nil, nil
	}

	file := &domain.File{
		Cwd:     cwd,
		Base:    base,
		Path:    path,
		Mode:    info.Mode().Perm(),
		ModTime: info.ModTime(),
	}
	if opts.SkipRead {
		file.Unread = true
	} else {
		contents, err := os.ReadFile(path) //nolint:gosec // Path comes from the caller's globs
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrFileReadFailed, err.Error()), "path", path)
		}
		file.Contents = contents
	}
	return file, nil
}

func excluded(patterns []string, path string) bool {
	slashed := filepath.ToSlash(path)
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, slashed); ok {
			return true
		}
	}
	return false
}

func hasDotSegment(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, ".") && segment != "." && segment != ".." {
			return true
		}
	}
	return false
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[{\`)
}

func absolute(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}

// resolveDir returns dir as an absolute path, defaulting to the process directory.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, "failed to get working directory")
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve directory"), "dir", dir)
	}
	return abs, nil
}
