package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/config"
	"github.com/FilipeBeck/pipe-builder/internal/adapters/transforms"
	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func writePipefile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.PipeFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log, transforms.NewCatalog(log))
}

func run(t *testing.T, tr domain.Transform, f *domain.File) *domain.File {
	t.Helper()
	require.NotNil(t, tr)
	out, err := tr(domain.FromFiles(f), "task")
	require.NoError(t, err)
	files, err := out.Collect()
	require.NoError(t, err)
	require.Len(t, files, 1)
	return files[0]
}

func TestLoad_ShorthandForms(t *testing.T) {
	dir := t.TempDir()
	path := writePipefile(t, dir, `
version: "1"
buildings:
  - source: src/**/*.ts
    destination: dist
    extension: js
    flags: [release]
    messages: [TypeScript, compiled]
    tasks:
      copy: null
      ts: ext:js
      banner: [ext:js, "banner:// built"]
  - source: [assets/**/*, "!assets/**/*.psd"]
    destination: public
    tasks:
      assets:
`)

	project, err := newLoader(t).Load(t.Context(), path)
	require.NoError(t, err)

	assert.Equal(t, path, project.Path)
	assert.Equal(t, dir, project.Root)
	assert.Nil(t, project.Hooks)
	require.Len(t, project.Buildings, 2)

	first := project.Buildings[0]
	assert.Equal(t,
		domain.SourceLocation{Globs: []string{"src/**/*.ts"}, Options: domain.SourceOptions{Cwd: dir}},
		domain.ResolveSource(first.Source),
	)
	assert.Equal(t,
		domain.DestLocation{Path: "dist", Options: domain.DestOptions{Cwd: dir}},
		domain.ResolveDest(first.Destination),
	)
	assert.Equal(t, "js", first.Extension)
	assert.Equal(t, []string{"release"}, first.Flags)
	assert.Equal(t, []string{"TypeScript", "compiled"}, first.Messages)

	require.Len(t, first.Tasks, 3)
	assert.Nil(t, first.Tasks["copy"])

	in := &domain.File{Base: "/src", Path: "/src/app.ts", Contents: []byte("x")}
	assert.Equal(t, "/src/app.js", run(t, first.Tasks["ts"], in).Path)

	built := run(t, first.Tasks["banner"], in)
	assert.Equal(t, "/src/app.js", built.Path)
	assert.Equal(t, "// built\nx", string(built.Contents))

	second := project.Buildings[1]
	assert.Equal(t, []string{"assets/**/*", "!assets/**/*.psd"}, domain.ResolveSource(second.Source).Globs)
	assert.Contains(t, second.Tasks, "assets")
	assert.Nil(t, second.Tasks["assets"])
}

func TestLoad_FlagsAndMessages(t *testing.T) {
	tests := []struct {
		name         string
		entries      string
		wantFlags    []string
		wantMessages []string
	}{
		{
			name:         "single values",
			entries:      "flags: --dev\n    messages: Compiled",
			wantFlags:    []string{"--dev"},
			wantMessages: []string{"Compiled"},
		},
		{
			name:         "lists",
			entries:      "flags: [--dev, release]\n    messages: [Sources, compiled]",
			wantFlags:    []string{"--dev", "release"},
			wantMessages: []string{"Sources", "compiled"},
		},
		{
			name:    "null",
			entries: "flags: null\n    messages: ~",
		},
		{
			name: "absent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePipefile(t, t.TempDir(), `
version: "1"
buildings:
  - source: a
    destination: b
    `+tt.entries+`
`)

			project, err := newLoader(t).Load(t.Context(), path)
			require.NoError(t, err)
			require.Len(t, project.Buildings, 1)
			assert.Equal(t, tt.wantFlags, project.Buildings[0].Flags)
			assert.Equal(t, tt.wantMessages, project.Buildings[0].Messages)
		})
	}
}

func TestLoad_LongForms(t *testing.T) {
	dir := t.TempDir()
	path := writePipefile(t, dir, `
version: "1"
root: web
buildings:
  - source:
      globs: ["**/*.css"]
      cwd: styles
      base: styles
      dot: true
      allowEmpty: true
      skipRead: true
      since: "2024-01-02T03:04:05Z"
    destination:
      path: out
      mode: "0640"
      dirMode: "0750"
      overwrite: false
    tasks:
      css: null
`)

	project, err := newLoader(t).Load(t.Context(), path)
	require.NoError(t, err)

	root := filepath.Join(dir, "web")
	assert.Equal(t, root, project.Root)
	require.Len(t, project.Buildings, 1)

	src := domain.ResolveSource(project.Buildings[0].Source)
	assert.Equal(t, []string{"**/*.css"}, src.Globs)
	assert.Equal(t, domain.SourceOptions{
		Cwd:        filepath.Join(root, "styles"),
		Base:       "styles",
		Dot:        true,
		AllowEmpty: true,
		SkipRead:   true,
		Since:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}, src.Options)

	dest := domain.ResolveDest(project.Buildings[0].Destination)
	assert.Equal(t, "out", dest.Path)
	assert.Equal(t, root, dest.Options.Cwd)
	assert.Equal(t, os.FileMode(0o640), dest.Options.Mode)
	assert.Equal(t, os.FileMode(0o750), dest.Options.DirMode)
	assert.False(t, dest.Options.ShouldOverwrite())
}

func TestLoad_Hooks(t *testing.T) {
	dir := t.TempDir()
	path := writePipefile(t, dir, `
version: "1"
hooks:
  input: eol
  output:
    release: "banner:/* release */"
    "--": ext:out
    debug: [eol, log]
buildings: []
`)

	project, err := newLoader(t).Load(t.Context(), path)
	require.NoError(t, err)
	require.NotNil(t, project.Hooks)

	input := domain.HookEntries(project.Hooks.Input)
	require.Len(t, input, 1)
	assert.Equal(t, domain.AlwaysFlag, input[0].Flag)

	output := domain.HookEntries(project.Hooks.Output)
	require.Len(t, output, 3)
	assert.Equal(t, "release", output[0].Flag)
	assert.Equal(t, domain.AlwaysFlag, output[1].Flag)
	assert.Equal(t, "debug", output[2].Flag)

	in := &domain.File{Base: "/b", Path: "/b/a.css", Contents: []byte("a")}
	assert.Equal(t, "/* release */\na", string(run(t, output[0].Transform, in).Contents))
	assert.Equal(t, "/b/a.out", run(t, output[1].Transform, in).Path)
}

func TestLoad_MissingVersionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(`pipe-builder.yaml declares no version, assuming "1"`)

	path := writePipefile(t, t.TempDir(), "buildings: []\n")

	project, err := config.NewLoader(log, transforms.NewCatalog(log)).Load(t.Context(), path)
	require.NoError(t, err)
	assert.Empty(t, project.Buildings)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "unsupported version",
			content: "version: \"2\"\n",
			want:    domain.ErrUnsupportedVersion,
		},
		{
			name:    "malformed yaml",
			content: "version: [\n",
			want:    domain.ErrConfigParseFailed,
		},
		{
			name: "unknown transform",
			content: `
version: "1"
buildings:
  - source: a
    destination: b
    tasks:
      t: minify
`,
			want: domain.ErrUnknownTransform,
		},
		{
			name: "bad mode",
			content: `
version: "1"
buildings:
  - source: a
    destination: {path: b, mode: "rw"}
    tasks: {t: null}
`,
			want: domain.ErrConfigParseFailed,
		},
		{
			name: "bad since",
			content: `
version: "1"
buildings:
  - source: {globs: [a], since: yesterday}
    destination: b
    tasks: {t: null}
`,
			want: domain.ErrConfigParseFailed,
		},
		{
			name: "source of wrong shape",
			content: `
version: "1"
buildings:
  - source: [[a]]
    destination: b
    tasks: {t: null}
`,
			want: domain.ErrConfigParseFailed,
		},
		{
			name: "flags of wrong shape",
			content: `
version: "1"
buildings:
  - source: a
    destination: b
    flags: {dev: true}
`,
			want: domain.ErrConfigParseFailed,
		},
		{
			name: "messages of wrong shape",
			content: `
version: "1"
buildings:
  - source: a
    destination: b
    messages: [[Compiled]]
`,
			want: domain.ErrConfigParseFailed,
		},
		{
			name: "hook with bad spec",
			content: `
version: "1"
hooks:
  input:
    release: "ext:"
`,
			want: domain.ErrInvalidTransformSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePipefile(t, t.TempDir(), tt.content)

			_, err := newLoader(t).Load(t.Context(), path)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoad_ReadFailure(t *testing.T) {
	_, err := newLoader(t).Load(t.Context(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}
