package binding

import (
	"sync"

	"github.com/dshills/focusflow/internal/intent"
)

// tableKey identifies a binding by source and code.
type tableKey struct {
	source intent.Source
	code   string
}

// Table holds the active bindings, indexed by source and code.
// Lookups are safe for concurrent use; mutation goes through Apply.
type Table struct {
	mu       sync.RWMutex
	bindings map[tableKey]Binding
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{bindings: make(map[tableKey]Binding)}
}

// Apply validates and merges entries into the table. Later entries
// override earlier ones for the same source and code. Each malformed
// entry is rejected individually and reported; the rest of the table
// still applies.
func (t *Table) Apply(entries []Binding) []error {
	var rejected []error

	t.mu.Lock()
	defer t.mu.Unlock()

	for i, b := range entries {
		if err := b.Validate(); err != nil {
			rejected = append(rejected, &EntryError{Index: i, Code: b.Code, Err: err})
			continue
		}
		t.bindings[b.key()] = b
	}

	return rejected
}

// Replace swaps the whole table for the given entries, keeping the
// previous contents only where the new set is entirely invalid.
// Returns the per-entry rejections.
func (t *Table) Replace(entries []Binding) []error {
	valid := make(map[tableKey]Binding, len(entries))
	var rejected []error

	for i, b := range entries {
		if err := b.Validate(); err != nil {
			rejected = append(rejected, &EntryError{Index: i, Code: b.Code, Err: err})
			continue
		}
		valid[b.key()] = b
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(valid) == 0 && len(entries) > 0 {
		// A wholly invalid replacement must not leave the engine
		// without input; keep the previous table.
		return rejected
	}

	t.bindings = valid
	return rejected
}

// Lookup returns the binding for a source and code.
func (t *Table) Lookup(source intent.Source, code string) (Binding, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	b, ok := t.bindings[tableKey{source: source, code: code}]
	return b, ok
}

// Remove deletes the binding for a source and code. Removing an
// unbound code is a no-op.
func (t *Table) Remove(source intent.Source, code string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.bindings, tableKey{source: source, code: code})
}

// Len returns the number of bindings in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.bindings)
}

// All returns a copy of the table's bindings in unspecified order.
func (t *Table) All() []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Binding, 0, len(t.bindings))
	for _, b := range t.bindings {
		out = append(out, b)
	}
	return out
}
