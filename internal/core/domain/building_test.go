package domain_test

import (
	"testing"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSource(t *testing.T) {
	assert.Equal(t,
		domain.SourceLocation{Globs: []string{"src/**/*.ts"}},
		domain.ResolveSource(domain.Globs{"src/**/*.ts"}),
	)

	loc := domain.SourceLocation{
		Globs:   []string{"src/**/*"},
		Options: domain.SourceOptions{Base: "src", Dot: true},
	}
	assert.Equal(t, loc, domain.ResolveSource(loc))
}

func TestResolveDest(t *testing.T) {
	assert.Equal(t, domain.DestLocation{Path: "dist"}, domain.ResolveDest(domain.Path("dist")))

	loc := domain.DestLocation{Path: "dist", Options: domain.DestOptions{Mode: 0o644}}
	assert.Equal(t, loc, domain.ResolveDest(loc))
}

func TestDestOptions_ShouldOverwrite(t *testing.T) {
	no, yes := false, true

	assert.True(t, domain.DestOptions{}.ShouldOverwrite())
	assert.True(t, domain.DestOptions{Overwrite: &yes}.ShouldOverwrite())
	assert.False(t, domain.DestOptions{Overwrite: &no}.ShouldOverwrite())
}

func TestHookEntries(t *testing.T) {
	echo := func(s *domain.Stream, _ string) (*domain.Stream, error) { return s, nil }

	t.Run("nil spec", func(t *testing.T) {
		assert.Empty(t, domain.HookEntries(nil))
	})

	t.Run("nil unconditional", func(t *testing.T) {
		assert.Empty(t, domain.HookEntries(domain.Unconditional(nil)))
	})

	t.Run("unconditional is keyed by the always flag", func(t *testing.T) {
		entries := domain.HookEntries(domain.Unconditional(echo))
		if assert.Len(t, entries, 1) {
			assert.Equal(t, domain.AlwaysFlag, entries[0].Flag)
			assert.NotNil(t, entries[0].Transform)
		}
	})

	t.Run("conditional keeps declaration order", func(t *testing.T) {
		entries := domain.HookEntries(domain.Conditional{
			{Flag: "--prod", Transform: echo},
			{Flag: domain.AlwaysFlag, Transform: echo},
			{Flag: "--dev", Transform: echo},
		})
		flags := make([]string, len(entries))
		for i, e := range entries {
			flags[i] = e.Flag
		}
		assert.Equal(t, []string{"--prod", "--", "--dev"}, flags)
	})
}

func TestChain(t *testing.T) {
	var order []string
	step := func(name string) domain.Transform {
		return func(s *domain.Stream, taskID string) (*domain.Stream, error) {
			order = append(order, name+":"+taskID)
			return s, nil
		}
	}

	out, err := domain.Chain(step("a"), nil, step("b"))(domain.FromFiles(), "css")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, []string{"a:css", "b:css"}, order)
}

func TestChain_NilStream(t *testing.T) {
	broken := func(*domain.Stream, string) (*domain.Stream, error) { return nil, nil }

	_, err := domain.Chain(broken)(domain.FromFiles(), "css")
	require.ErrorIs(t, err, domain.ErrTransformReturnedNil)
}
