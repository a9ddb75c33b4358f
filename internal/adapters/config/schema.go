package config

import "gopkg.in/yaml.v3"

// SupportedVersion is the pipefile schema version understood by the loader.
const SupportedVersion = "1"

// Pipefile represents the structure of the pipe-builder.yaml configuration file.
type Pipefile struct {
	Version   string        `yaml:"version"`
	Root      string        `yaml:"root"`
	Hooks     HooksDTO      `yaml:"hooks"`
	Buildings []BuildingDTO `yaml:"buildings"`
}

// HooksDTO holds the shared hooks. Each side is a transform spec, a list of
// specs, or a mapping from flag name to spec(s) applied in declaration order.
type HooksDTO struct {
	Input  yaml.Node `yaml:"input"`
	Output yaml.Node `yaml:"output"`
}

// BuildingDTO represents a building definition in the configuration.
type BuildingDTO struct {
	// Source is a glob, a list of globs, or a SourceDTO mapping.
	Source yaml.Node `yaml:"source"`
	// Destination is a path or a DestDTO mapping.
	Destination yaml.Node `yaml:"destination"`
	Extension   string    `yaml:"extension"`
	// Tasks maps task identifiers to null, a transform spec, or a list of specs.
	Tasks map[string]yaml.Node `yaml:"tasks"`
	// Flags is a flag or a list of flags.
	Flags yaml.Node `yaml:"flags"`
	// Messages is a message or a list of messages.
	Messages yaml.Node `yaml:"messages"`
}

// SourceDTO is the long source form.
type SourceDTO struct {
	Globs      []string `yaml:"globs"`
	Cwd        string   `yaml:"cwd"`
	Base       string   `yaml:"base"`
	Dot        bool     `yaml:"dot"`
	AllowEmpty bool     `yaml:"allowEmpty"`
	SkipRead   bool     `yaml:"skipRead"`
	// Since is an RFC 3339 timestamp.
	Since string `yaml:"since"`
}

// DestDTO is the long destination form.
type DestDTO struct {
	Path string `yaml:"path"`
	Cwd  string `yaml:"cwd"`
	// Mode and DirMode are octal strings such as "0644".
	Mode      string `yaml:"mode"`
	DirMode   string `yaml:"dirMode"`
	Overwrite *bool  `yaml:"overwrite"`
}
