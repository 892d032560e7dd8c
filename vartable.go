package kir

import "sync"

// MaxStyleVars is the number of slots in a VarTable.
const MaxStyleVars = 256

// VarTable holds named style variables referenced by VarRef colors. It is an
// explicit context object: layout, codec, and render calls that need variable
// resolution take a *VarTable rather than consulting process-wide state.
// Reads and writes are guarded so a table may be shared across goroutines,
// though the expected pattern is single-threaded setup followed by
// read-mostly use.
type VarTable struct {
	mu    sync.RWMutex
	names [MaxStyleVars]string
	vals  [MaxStyleVars]Color
}

// NewVarTable returns an empty table. Unset slots resolve to Transparent.
func NewVarTable() *VarTable {
	return &VarTable{}
}

// Set assigns a slot. Out-of-range indices are ignored.
func (t *VarTable) Set(index uint16, name string, c Color) {
	if int(index) >= MaxStyleVars {
		return
	}
	t.mu.Lock()
	t.names[index] = name
	t.vals[index] = c
	t.mu.Unlock()
}

// Color returns the color stored in a slot, or Transparent when the index is
// out of range or unset.
func (t *VarTable) Color(index uint16) Color {
	if int(index) >= MaxStyleVars {
		return Transparent()
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.vals[index]
}

// Name returns the label assigned to a slot, or "".
func (t *VarTable) Name(index uint16) string {
	if int(index) >= MaxStyleVars {
		return ""
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.names[index]
}

// Lookup finds a slot by name. The second return is false when no slot has
// that name.
func (t *VarTable) Lookup(name string) (uint16, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, n := range t.names {
		if n == name && n != "" {
			return uint16(i), true
		}
	}
	return 0, false
}
