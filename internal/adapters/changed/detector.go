// Package changed provides the change detection stage that drops up-to-date files.
package changed

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ChangeDetector = (*Detector)(nil)

// Mode selects how a source file is compared with its destination artifact.
type Mode string

const (
	// ModeModTime treats a file as changed when it is newer than its artifact.
	ModeModTime Mode = "mtime"
	// ModeContent treats a file as changed when its contents differ from its artifact.
	ModeContent Mode = "content"
)

// ParseMode returns the Mode named by s. An empty string selects ModeModTime.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeModTime:
		return ModeModTime, nil
	case ModeContent:
		return ModeContent, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrInvalidCompareMode, fmt.Sprintf("mode %q", s)), "mode", s)
	}
}

// Detector filters streams against the artifacts already present in a destination.
type Detector struct {
	hasher ports.Hasher
	mode   Mode
}

// NewDetector creates a Detector comparing with the given mode.
func NewDetector(hasher ports.Hasher, mode Mode) *Detector {
	return &Detector{hasher: hasher, mode: mode}
}

// Filter keeps files whose destination artifact is missing or out of date.
// The artifact path is the file's relative path under the destination, with its
// extension replaced when extension is not empty.
func (d *Detector) Filter(stream *domain.Stream, destination domain.DestLocation, extension string) *domain.Stream {
	root := destination.Path
	if !filepath.IsAbs(root) {
		root = filepath.Join(destination.Options.Cwd, root)
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}

	return stream.Filter(func(file *domain.File) (bool, error) {
		return d.changed(file, Target(root, file, extension))
	})
}

// Target returns the artifact path of file under root.
func Target(root string, file *domain.File, extension string) string {
	target := &domain.File{Path: filepath.Join(root, file.Relative())}
	if extension != "" {
		target.SetExt(extension)
	}
	return target.Path
}

func (d *Detector) changed(file *domain.File, target string) (bool, error) {
	info, err := os.Stat(target)
	if errors.Is(err, iofs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrPathStatFailed, err.Error()), "path", target)
	}

	if d.mode == ModeContent && !file.Unread {
		sum, err := d.hasher.HashFile(target)
		if err != nil {
			return false, err
		}
		return d.hasher.HashBytes(file.Contents) != sum, nil
	}

	return file.ModTime.After(info.ModTime()), nil
}
