package domain

// PipeFileName is the name of the pipefile looked up from the working directory.
const PipeFileName = "pipe-builder.yaml"

// Project is the content of a pipefile: the buildings and the hooks shared by them.
type Project struct {
	// Path is the pipefile the project was loaded from.
	Path string
	// Root is the directory relative paths resolve against.
	Root      string
	Buildings []Building
	Hooks     *Hooks
}
