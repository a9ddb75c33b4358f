// Package flags implements the process-wide flag registry consulted by builds.
package flags

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"github.com/spf13/pflag"
	"go.trai.ch/zerr"
)

// negationPrefix turns "--no-name" into "--name=false".
const negationPrefix = "no-"

// Registry maps flag tokens ("--name") to their values.
// It is written at startup (or by tests) and read by every build.
type Registry struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]string)}
}

// Token returns the flag token for a bare flag name.
func Token(name string) string {
	if strings.HasPrefix(name, domain.FlagMarker) {
		return name
	}
	return domain.FlagMarker + name
}

// Set inserts or overwrites the value of token.
func (r *Registry) Set(token, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[token] = value
}

// SetBool stores a boolean value for token.
func (r *Registry) SetBool(token string, on bool) {
	r.Set(token, strconv.FormatBool(on))
}

// Lookup returns the raw value stored for token.
func (r *Registry) Lookup(token string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[token]
	return v, ok
}

// IsPresent reports whether token is set to a truthy value.
// Empty strings, "false" and "0" count as absent.
func (r *Registry) IsPresent(token string) bool {
	v, ok := r.Lookup(token)
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "", "false", "0":
		return false
	default:
		return true
	}
}

// AllPresent reports whether every token is present.
func (r *Registry) AllPresent(tokens ...string) bool {
	for _, t := range tokens {
		if !r.IsPresent(Token(t)) {
			return false
		}
	}
	return true
}

// Tokens returns a snapshot of the registry.
func (r *Registry) Tokens() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Define sets a flag from a "name" or "name=value" definition.
// A bare name is stored as true.
func (r *Registry) Define(def string) error {
	name, value, hasValue := strings.Cut(strings.TrimPrefix(def, domain.FlagMarker), "=")
	if name == "" {
		return invalidArg(def)
	}
	if !hasValue {
		value = "true"
	}
	r.Set(Token(name), value)
	return nil
}

// LoadArgs parses raw command-line tokens such as "--dev", "--mode=prod" and "--no-minify".
func (r *Registry) LoadArgs(args []string) error {
	for _, arg := range args {
		if !strings.HasPrefix(arg, domain.FlagMarker) || arg == domain.FlagMarker {
			return invalidArg(arg)
		}
		name := strings.TrimPrefix(arg, domain.FlagMarker)
		if rest, ok := strings.CutPrefix(name, negationPrefix); ok && !strings.Contains(name, "=") {
			r.SetBool(Token(rest), false)
			continue
		}
		if err := r.Define(name); err != nil {
			return err
		}
	}
	return nil
}

// LoadFlagSet copies every flag changed on the command line into the registry.
func (r *Registry) LoadFlagSet(fs *pflag.FlagSet) {
	fs.Visit(func(f *pflag.Flag) {
		r.Set(Token(f.Name), f.Value.String())
	})
}

func invalidArg(arg string) error {
	return zerr.With(zerr.Wrap(domain.ErrInvalidFlagArg, fmt.Sprintf("argument %q", arg)), "arg", arg)
}
