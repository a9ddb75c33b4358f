package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/fs"
	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileUnder(base, rel, contents string) *domain.File {
	return &domain.File{
		Base:     base,
		Path:     filepath.Join(base, rel),
		Contents: []byte(contents),
		Mode:     0o600,
	}
}

func TestSink_Write(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "out")

	files := []*domain.File{
		fileUnder(src, "a.txt", "a"),
		fileUnder(src, filepath.Join("lib", "b.txt"), "b"),
	}

	n, err := fs.NewSink().Write(t.Context(), domain.FromFiles(files...), domain.DestLocation{Path: dest})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := os.ReadFile(filepath.Join(dest, "lib", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "b", string(got))

	assert.Equal(t, filepath.Join(dest, "a.txt"), files[0].Path)
	assert.Equal(t, dest, files[0].Base)
}

func TestSink_RelativeDestination(t *testing.T) {
	cwd := t.TempDir()

	n, err := fs.NewSink().Write(t.Context(),
		domain.FromFiles(fileUnder("/src", "a.txt", "a")),
		domain.DestLocation{Path: "dist", Options: domain.DestOptions{Cwd: cwd}},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.FileExists(t, filepath.Join(cwd, "dist", "a.txt"))
}

func TestSink_Overwrite(t *testing.T) {
	dest := t.TempDir()
	writeTree(t, dest, map[string]string{"a.txt": "old"})

	keep := false
	n, err := fs.NewSink().Write(t.Context(),
		domain.FromFiles(fileUnder("/src", "a.txt", "new")),
		domain.DestLocation{Path: dest, Options: domain.DestOptions{Overwrite: &keep}},
	)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	got, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))

	n, err = fs.NewSink().Write(t.Context(),
		domain.FromFiles(fileUnder("/src", "a.txt", "new")),
		domain.DestLocation{Path: dest},
	)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err = os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestSink_Modes(t *testing.T) {
	dest := t.TempDir()

	_, err := fs.NewSink().Write(t.Context(),
		domain.FromFiles(fileUnder("/src", filepath.Join("sub", "a.sh"), "#!/bin/sh")),
		domain.DestLocation{Path: dest, Options: domain.DestOptions{Mode: 0o700, DirMode: 0o700}},
	)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dest, "sub", "a.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Join(dest, "sub"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
}

func TestSink_UnreadCreatesDirectoryOnly(t *testing.T) {
	dest := t.TempDir()
	file := &domain.File{Base: "/src", Path: filepath.Join("/src", "sub", "a.txt"), Unread: true}

	n, err := fs.NewSink().Write(t.Context(), domain.FromFiles(file), domain.DestLocation{Path: dest})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.DirExists(t, filepath.Join(dest, "sub"))
	assert.NoFileExists(t, filepath.Join(dest, "sub", "a.txt"))
}

func TestSink_WritesEmptyFiles(t *testing.T) {
	dest := t.TempDir()
	file := &domain.File{Base: "/src", Path: filepath.Join("/src", "empty.txt"), Contents: []byte{}}

	n, err := fs.NewSink().Write(t.Context(), domain.FromFiles(file), domain.DestLocation{Path: dest})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	info, err := os.Stat(filepath.Join(dest, "empty.txt"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestSink_RejectsPathsOutsideBase(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(root, "out")

	tests := []struct {
		name string
		file *domain.File
	}{
		{name: "sibling of base", file: fileUnder(filepath.Join(root, "src"), filepath.Join("..", "other", "a.txt"), "a")},
		{name: "base itself", file: &domain.File{Base: filepath.Join(root, "src"), Path: filepath.Join(root, "src"), Contents: []byte("a")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := fs.NewSink().Write(t.Context(), domain.FromFiles(tt.file), domain.DestLocation{Path: dest})
			require.ErrorIs(t, err, domain.ErrPathOutsideDestination)
			assert.Zero(t, n)
			assert.NoFileExists(t, filepath.Join(root, "other", "a.txt"))
		})
	}
}

func TestSink_StreamError(t *testing.T) {
	boom := domain.ErrFileReadFailed

	n, err := fs.NewSink().Write(t.Context(), domain.Failed(boom), domain.DestLocation{Path: t.TempDir()})
	require.ErrorIs(t, err, boom)
	assert.Zero(t, n)
}
