package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/fs"
	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_HashFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.txt": "same", "b.txt": "same", "c.txt": "different"})

	h := fs.NewHasher()

	a, err := h.HashFile(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	b, err := h.HashFile(filepath.Join(root, "b.txt"))
	require.NoError(t, err)
	c, err := h.HashFile(filepath.Join(root, "c.txt"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, h.HashBytes([]byte("same")), a)
}

func TestHasher_MissingFile(t *testing.T) {
	_, err := fs.NewHasher().HashFile(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, domain.ErrFileHashFailed)
}
