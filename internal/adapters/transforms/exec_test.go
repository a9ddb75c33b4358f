package transforms_test

import (
	"context"
	"testing"

	"github.com/FilipeBeck/pipe-builder/internal/adapters/transforms"
	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func execFile(t *testing.T, contents string) *domain.File {
	t.Helper()
	dir := t.TempDir()
	return &domain.File{Cwd: dir, Base: dir, Path: dir + "/in.txt", Contents: []byte(contents)}
}

func TestExec_PipesContents(t *testing.T) {
	c := transforms.NewCatalog(nil)

	got := apply(t, c, "exec:tr a-z A-Z", execFile(t, "hello"))

	require.Len(t, got, 1)
	assert.Equal(t, "HELLO", string(got[0].Contents))
}

func TestExec_ExposesTaskAndFile(t *testing.T) {
	c := transforms.NewCatalog(nil)
	in := execFile(t, "")

	got := apply(t, c, "exec:printf '%s' \"$PIPE_BUILDER_TASK\"", in)

	require.Len(t, got, 1)
	assert.Equal(t, "task", string(got[0].Contents))
}

func TestExec_EmptyOutputIsAnEmptyFile(t *testing.T) {
	c := transforms.NewCatalog(nil)
	in := execFile(t, "")
	in.Contents = nil
	in.Unread = true

	got := apply(t, c, "exec:cat", in)

	require.Len(t, got, 1)
	assert.False(t, got[0].Unread)
	assert.NotNil(t, got[0].Contents)
	assert.Empty(t, got[0].Contents)
}

func TestExec_StderrIsLoggedPerLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn("task: part1part2")
	log.EXPECT().Warn("task: tail")

	c := transforms.NewCatalog(log)
	script := "exec:printf part1 >&2; printf 'part2\\ntail' >&2; cat"

	got := apply(t, c, script, execFile(t, "body"))

	require.Len(t, got, 1)
	assert.Equal(t, "body", string(got[0].Contents))
}

func TestExec_Failure(t *testing.T) {
	c := transforms.NewCatalog(nil)

	tr, err := c.Resolve(t.Context(), "exec:false")
	require.NoError(t, err)

	out, err := tr(domain.FromFiles(execFile(t, "x")), "task")
	require.NoError(t, err)

	_, err = out.Collect()
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestExec_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	c := transforms.NewCatalog(nil)

	tr, err := c.Resolve(ctx, "exec:cat")
	require.NoError(t, err)

	out, err := tr(domain.FromFiles(execFile(t, "x")), "task")
	require.NoError(t, err)

	_, err = out.Collect()
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}
