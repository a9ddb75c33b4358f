// Package config provides the pipefile loader for pipe-builder.
package config

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger  ports.Logger
	Catalog ports.TransformCatalog
}

// NewLoader creates a new Loader resolving transform specs through catalog.
func NewLoader(logger ports.Logger, catalog ports.TransformCatalog) *Loader {
	return &Loader{Logger: logger, Catalog: catalog}
}

// Load reads the pipefile at path. An empty path looks for domain.PipeFileName
// in the working directory and its parents.
func (l *Loader) Load(ctx context.Context, path string) (*domain.Project, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, "failed to get working directory")
		}
		if path, err = FindPipefile(cwd); err != nil {
			return nil, err
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var pipefile Pipefile
	if err := readAndUnmarshalYAML(abs, &pipefile); err != nil {
		return nil, err
	}

	switch pipefile.Version {
	case SupportedVersion:
	case "":
		l.Logger.Warn(fmt.Sprintf("%s declares no version, assuming %q", filepath.Base(abs), SupportedVersion))
	default:
		return nil, zerr.With(domain.ErrUnsupportedVersion, "version", pipefile.Version)
	}

	project := &domain.Project{
		Path: abs,
		Root: resolveRoot(abs, pipefile.Root),
	}

	if project.Hooks, err = l.buildHooks(ctx, pipefile.Hooks); err != nil {
		return nil, zerr.With(err, "path", abs)
	}

	for i := range pipefile.Buildings {
		b, err := l.buildBuilding(ctx, project.Root, &pipefile.Buildings[i])
		if err != nil {
			return nil, zerr.With(zerr.With(err, "building", i), "path", abs)
		}
		project.Buildings = append(project.Buildings, b)
	}

	return project, nil
}

// FindPipefile walks up from dir until it finds domain.PipeFileName.
func FindPipefile(dir string) (string, error) {
	current := dir
	for {
		candidate := filepath.Join(current, domain.PipeFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached root
			break
		}
		current = parent
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", dir)
}

func readAndUnmarshalYAML(path string, out any) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	return nil
}

func resolveRoot(configPath, root string) string {
	return resolveDir(filepath.Dir(configPath), root)
}

// resolveDir resolves dir against base. An empty dir is base itself.
func resolveDir(base, dir string) string {
	switch {
	case dir == "":
		return base
	case filepath.IsAbs(dir):
		return filepath.Clean(dir)
	default:
		return filepath.Join(base, dir)
	}
}

func (l *Loader) buildBuilding(ctx context.Context, root string, dto *BuildingDTO) (domain.Building, error) {
	source, err := decodeSource(root, &dto.Source)
	if err != nil {
		return domain.Building{}, err
	}
	dest, err := decodeDest(root, &dto.Destination)
	if err != nil {
		return domain.Building{}, err
	}

	tasks := make(map[string]domain.Transform, len(dto.Tasks))
	for id, node := range dto.Tasks {
		t, err := l.decodeTransform(ctx, &node)
		if err != nil {
			return domain.Building{}, zerr.With(err, "task", id)
		}
		tasks[id] = t
	}

	flags, err := decodeOptionalStrings(&dto.Flags)
	if err != nil {
		return domain.Building{}, zerr.With(err, "field", "flags")
	}
	messages, err := decodeOptionalStrings(&dto.Messages)
	if err != nil {
		return domain.Building{}, zerr.With(err, "field", "messages")
	}

	return domain.Building{
		Source:      source,
		Destination: dest,
		Extension:   dto.Extension,
		Tasks:       tasks,
		Flags:       flags,
		Messages:    messages,
	}, nil
}

func decodeSource(root string, node *yaml.Node) (domain.SourceSpec, error) {
	if isNull(node) {
		return nil, nil
	}
	switch node.Kind {
	case yaml.ScalarNode, yaml.SequenceNode:
		var globs []string
		if err := decodeStrings(node, &globs); err != nil {
			return nil, err
		}
		return domain.SourceLocation{Globs: globs, Options: domain.SourceOptions{Cwd: root}}, nil
	case yaml.MappingNode:
		var dto SourceDTO
		if err := node.Decode(&dto); err != nil {
			return nil, parseError(node, err.Error())
		}
		opts := domain.SourceOptions{
			Cwd:        resolveDir(root, dto.Cwd),
			Base:       dto.Base,
			Dot:        dto.Dot,
			AllowEmpty: dto.AllowEmpty,
			SkipRead:   dto.SkipRead,
		}
		if dto.Since != "" {
			since, err := time.Parse(time.RFC3339, dto.Since)
			if err != nil {
				return nil, parseError(node, "since must be an RFC 3339 timestamp")
			}
			opts.Since = since
		}
		return domain.SourceLocation{Globs: dto.Globs, Options: opts}, nil
	default:
		return nil, parseError(node, "source must be a glob, a list of globs or a mapping")
	}
}

func decodeDest(root string, node *yaml.Node) (domain.DestSpec, error) {
	if isNull(node) {
		return nil, nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return domain.DestLocation{Path: node.Value, Options: domain.DestOptions{Cwd: root}}, nil
	case yaml.MappingNode:
		var dto DestDTO
		if err := node.Decode(&dto); err != nil {
			return nil, parseError(node, err.Error())
		}
		opts := domain.DestOptions{
			Cwd:       resolveDir(root, dto.Cwd),
			Overwrite: dto.Overwrite,
		}
		var err error
		if opts.Mode, err = parseMode(node, dto.Mode); err != nil {
			return nil, err
		}
		if opts.DirMode, err = parseMode(node, dto.DirMode); err != nil {
			return nil, err
		}
		return domain.DestLocation{Path: dto.Path, Options: opts}, nil
	default:
		return nil, parseError(node, "destination must be a path or a mapping")
	}
}

func parseMode(node *yaml.Node, s string) (fs.FileMode, error) {
	if s == "" {
		return 0, nil
	}
	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, parseError(node, fmt.Sprintf("mode %q is not an octal permission", s))
	}
	return fs.FileMode(mode), nil
}

func (l *Loader) buildHooks(ctx context.Context, dto HooksDTO) (*domain.Hooks, error) {
	input, err := l.decodeHook(ctx, &dto.Input)
	if err != nil {
		return nil, zerr.With(err, "hook", "input")
	}
	output, err := l.decodeHook(ctx, &dto.Output)
	if err != nil {
		return nil, zerr.With(err, "hook", "output")
	}
	if input == nil && output == nil {
		return nil, nil
	}
	return &domain.Hooks{Input: input, Output: output}, nil
}

// decodeHook keeps the declaration order of a flag mapping.
func (l *Loader) decodeHook(ctx context.Context, node *yaml.Node) (domain.HookSpec, error) {
	if node.Kind != yaml.MappingNode {
		t, err := l.decodeTransform(ctx, node)
		if err != nil || t == nil {
			return nil, err
		}
		return domain.Unconditional(t), nil
	}

	entries := make(domain.Conditional, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		flag := node.Content[i].Value
		t, err := l.decodeTransform(ctx, node.Content[i+1])
		if err != nil {
			return nil, zerr.With(err, "flag", flag)
		}
		entries = append(entries, domain.HookEntry{Flag: flag, Transform: t})
	}
	return entries, nil
}

// decodeTransform resolves null, a spec, or a list of specs applied in order.
func (l *Loader) decodeTransform(ctx context.Context, node *yaml.Node) (domain.Transform, error) {
	if isNull(node) {
		return nil, nil
	}

	var specs []string
	if err := decodeStrings(node, &specs); err != nil {
		return nil, err
	}

	ts := make([]domain.Transform, 0, len(specs))
	for _, spec := range specs {
		t, err := l.Catalog.Resolve(ctx, spec)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	if len(ts) == 1 {
		return ts[0], nil
	}
	return domain.Chain(ts...), nil
}

// decodeStrings accepts a scalar or a sequence of scalars.
func decodeStrings(node *yaml.Node, out *[]string) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*out = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		if err := node.Decode(out); err != nil {
			return parseError(node, err.Error())
		}
		return nil
	default:
		return parseError(node, "expected a string or a list of strings")
	}
}

// decodeOptionalStrings is decodeStrings yielding nil for an absent or null node.
func decodeOptionalStrings(node *yaml.Node) ([]string, error) {
	if isNull(node) {
		return nil, nil
	}
	var out []string
	if err := decodeStrings(node, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// isNull reports whether node is absent or an explicit null.
func isNull(node *yaml.Node) bool {
	return node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}

func parseError(node *yaml.Node, msg string) error {
	return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, msg), "line", node.Line)
}
