package domain

import (
	"io/fs"
	"time"
)

// Transform turns the in-flight stream of a pipeline into the stream handed to the next stage.
// It receives the identifier of the task the pipeline belongs to.
// A nil Transform stands for a pass-through stage.
type Transform func(stream *Stream, taskID string) (*Stream, error)

// WildcardExtension enables change detection without restricting the destination extension.
const WildcardExtension = "*"

// Building is one declarative unit of work: sources, destination and named tasks.
type Building struct {
	// Source is a Globs value or a SourceLocation.
	Source SourceSpec
	// Destination is a Path value or a DestLocation.
	Destination DestSpec
	// Extension enables change detection against the destination when set.
	// WildcardExtension compares by path only.
	Extension string
	// Tasks maps every task identifier to its transform. A nil transform copies files verbatim.
	Tasks map[string]Transform
	// Flags lists the guard flags that must all be present for the building to run.
	Flags []string
	// Messages are reported, joined, when a pipeline of the building finishes.
	Messages []string
}

// SourceSpec is either Globs or SourceLocation.
type SourceSpec interface {
	sourceLocation() SourceLocation
}

// DestSpec is either Path or DestLocation.
type DestSpec interface {
	destLocation() DestLocation
}

// Globs is the shorthand source form: one or more globs without options.
type Globs []string

func (g Globs) sourceLocation() SourceLocation {
	return SourceLocation{Globs: g}
}

// SourceOptions configure how source globs are read.
type SourceOptions struct {
	// Cwd is the directory relative globs are resolved against. Defaults to the process directory.
	Cwd string
	// Base overrides the directory relative paths are computed from. Defaults to the glob parent.
	Base string
	// Dot includes files and directories whose name starts with a dot.
	Dot bool
	// AllowEmpty tolerates globs that match no file.
	AllowEmpty bool
	// SkipRead yields unread records without contents.
	SkipRead bool
	// Since drops files not modified after the given time when set.
	Since time.Time
}

// SourceLocation is the canonical source form.
type SourceLocation struct {
	Globs   []string
	Options SourceOptions
}

func (s SourceLocation) sourceLocation() SourceLocation {
	return s
}

// Path is the shorthand destination form.
type Path string

func (p Path) destLocation() DestLocation {
	return DestLocation{Path: string(p)}
}

// DestOptions configure how files are written.
type DestOptions struct {
	// Cwd is the directory a relative destination is resolved against.
	Cwd string
	// Mode is the file mode for written files. Defaults to the mode of the source file.
	Mode fs.FileMode
	// DirMode is the mode for created directories.
	DirMode fs.FileMode
	// Overwrite controls whether existing files are replaced. Defaults to true.
	Overwrite *bool
}

// ShouldOverwrite reports whether existing files are replaced.
func (o DestOptions) ShouldOverwrite() bool {
	return o.Overwrite == nil || *o.Overwrite
}

// DestLocation is the canonical destination form.
type DestLocation struct {
	Path    string
	Options DestOptions
}

func (d DestLocation) destLocation() DestLocation {
	return d
}

// ResolveSource returns the canonical form of a source spec.
func ResolveSource(spec SourceSpec) SourceLocation {
	return spec.sourceLocation()
}

// ResolveDest returns the canonical form of a destination spec.
func ResolveDest(spec DestSpec) DestLocation {
	return spec.destLocation()
}

// Chain returns a transform applying ts in order. Nil entries are skipped.
func Chain(ts ...Transform) Transform {
	return func(stream *Stream, taskID string) (*Stream, error) {
		for _, t := range ts {
			if t == nil {
				continue
			}
			out, err := t(stream, taskID)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, ErrTransformReturnedNil
			}
			stream = out
		}
		return stream, nil
	}
}
