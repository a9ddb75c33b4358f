package domain

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// File is a file-like record flowing through a pipeline.
type File struct {
	// Cwd is the working directory the source glob was resolved against.
	Cwd string
	// Base is the directory that Relative paths are computed from.
	Base string
	// Path is the absolute path of the record. Transforms may rewrite it.
	Path string
	// Contents holds the file data. Empty files have empty contents.
	Contents []byte
	// Unread marks records whose contents were never read.
	// Sinks only create the parent directory of unread records.
	Unread  bool
	Mode    fs.FileMode
	ModTime time.Time
}

// Relative returns the path of the file relative to its base.
func (f *File) Relative() string {
	rel, err := filepath.Rel(f.Base, f.Path)
	if err != nil {
		return filepath.Base(f.Path)
	}
	return rel
}

// Ext returns the extension of the file including the leading dot.
func (f *File) Ext() string {
	return filepath.Ext(f.Path)
}

// SetExt replaces the extension of the file path.
// The extension may be given with or without the leading dot.
func (f *File) SetExt(ext string) {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	f.Path = strings.TrimSuffix(f.Path, filepath.Ext(f.Path)) + ext
}

// Clone returns a deep copy of the file.
func (f *File) Clone() *File {
	c := *f
	c.Contents = bytes.Clone(f.Contents)
	return &c
}
