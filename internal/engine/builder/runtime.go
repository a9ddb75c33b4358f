package builder

import (
	"github.com/FilipeBeck/pipe-builder/internal/engine/flags"
	"github.com/FilipeBeck/pipe-builder/internal/engine/ledger"
)

// Runtime is the state shared by every build call of a process:
// the flag registry and the task identifier ledger.
type Runtime struct {
	Flags *flags.Registry
	Tasks *ledger.Ledger
}

// NewRuntime creates a Runtime. Nil arguments are replaced by empty instances.
func NewRuntime(registry *flags.Registry, tasks *ledger.Ledger) *Runtime {
	if registry == nil {
		registry = flags.NewRegistry()
	}
	if tasks == nil {
		tasks = ledger.New()
	}
	return &Runtime{Flags: registry, Tasks: tasks}
}

// Fork returns a Runtime sharing the flag registry with a fresh ledger.
// Watch mode uses it so every rebuild may register the same task identifiers again.
func (rt *Runtime) Fork() *Runtime {
	return &Runtime{Flags: rt.Flags, Tasks: ledger.New()}
}
