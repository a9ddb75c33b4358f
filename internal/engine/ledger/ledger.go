// Package ledger records every task identifier submitted in this process.
package ledger

import (
	"fmt"
	"slices"
	"sync"

	"github.com/FilipeBeck/pipe-builder/internal/core/domain"
	"go.trai.ch/zerr"
)

// Ledger enforces process-wide uniqueness of task identifiers.
// Identifiers are never released.
type Ledger struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{ids: make(map[string]struct{})}
}

// Register records a single task identifier.
func (l *Ledger) Register(id string) error {
	return l.Reserve(id)
}

// Reserve records every identifier, or none of them.
// A collision with an already registered identifier, or a repeated identifier
// within ids, returns ErrDuplicateTask and leaves the ledger unchanged.
func (l *Ledger) Reserve(ids ...string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		_, registered := l.ids[id]
		_, repeated := seen[id]
		if registered || repeated {
			return duplicate(id)
		}
		seen[id] = struct{}{}
	}

	for id := range seen {
		l.ids[id] = struct{}{}
	}
	return nil
}

func duplicate(id string) error {
	return zerr.With(zerr.Wrap(domain.ErrDuplicateTask, fmt.Sprintf("task %q", id)), "task", id)
}

// Contains reports whether id has been registered.
func (l *Ledger) Contains(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.ids[id]
	return ok
}

// IDs returns the registered identifiers in sorted order.
func (l *Ledger) IDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.ids))
	for id := range l.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
