package flags_test

import (
	"testing"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/FilipeBeck/pipe-builder/internal/engine/flags"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_IsPresent(t *testing.T) {
	r := flags.NewRegistry()
	r.SetBool("--should-execute", true)
	r.SetBool("--not-execute", false)
	r.Set("--empty", "")
	r.Set("--zero", "0")
	r.Set("--mode", "prod")

	tests := []struct {
		token string
		want  bool
	}{
		{"--should-execute", true},
		{"--not-execute", false},
		{"--empty", false},
		{"--zero", false},
		{"--mode", true},
		{"--missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, r.IsPresent(tt.token))
		})
	}
}

func TestRegistry_SetOverwrites(t *testing.T) {
	r := flags.NewRegistry()
	r.SetBool("--dev", true)
	r.SetBool("--dev", false)

	v, ok := r.Lookup("--dev")
	require.True(t, ok)
	assert.Equal(t, "false", v)
	assert.False(t, r.IsPresent("--dev"))
}

func TestRegistry_LoadArgs(t *testing.T) {
	r := flags.NewRegistry()
	err := r.LoadArgs([]string{"--dev", "--mode=prod", "--no-minify", "--no-op=1"})
	require.NoError(t, err)

	assert.True(t, r.IsPresent("--dev"))
	v, _ := r.Lookup("--mode")
	assert.Equal(t, "prod", v)
	assert.False(t, r.IsPresent("--minify"))
	_, ok := r.Lookup("--minify")
	assert.True(t, ok)
	assert.True(t, r.IsPresent("--no-op"))
}

func TestRegistry_LoadArgs_Invalid(t *testing.T) {
	for _, arg := range []string{"dev", "--", "--=x"} {
		t.Run(arg, func(t *testing.T) {
			r := flags.NewRegistry()
			err := r.LoadArgs([]string{arg})
			require.ErrorIs(t, err, domain.ErrInvalidFlagArg)
		})
	}
}

func TestRegistry_Define(t *testing.T) {
	r := flags.NewRegistry()
	require.NoError(t, r.Define("dev"))
	require.NoError(t, r.Define("--target=es2020"))

	assert.True(t, r.IsPresent("--dev"))
	v, _ := r.Lookup("--target")
	assert.Equal(t, "es2020", v)
}

func TestRegistry_LoadFlagSet(t *testing.T) {
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	fs.Bool("overwrite-all", false, "")
	fs.Bool("watch", false, "")
	fs.String("config", "pipe-builder.yaml", "")
	require.NoError(t, fs.Parse([]string{"--overwrite-all", "--config", "other.yaml"}))

	r := flags.NewRegistry()
	r.LoadFlagSet(fs)

	assert.True(t, r.IsPresent(domain.OverwriteAllFlag))
	_, ok := r.Lookup("--watch")
	assert.False(t, ok, "unchanged flags are not copied")
	v, _ := r.Lookup("--config")
	assert.Equal(t, "other.yaml", v)
}

func TestRegistry_AllPresent(t *testing.T) {
	r := flags.NewRegistry()
	r.SetBool("--dev", true)
	r.SetBool("--lint", true)

	assert.True(t, r.AllPresent("--dev", "lint"))
	assert.False(t, r.AllPresent("--dev", "--prod"))
	assert.True(t, r.AllPresent())
}

func TestToken(t *testing.T) {
	assert.Equal(t, "--dev", flags.Token("dev"))
	assert.Equal(t, "--dev", flags.Token("--dev"))
}
