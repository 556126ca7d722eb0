// Package tables provides a write-side helper for building the deduplicated
// string lookup tables (brick assets, materials, mods) a WriteData needs.
//
// It is optional: a caller that already has a deduplicated []string can
// assign it directly to WriteData's table fields and never touch this
// package. StringTable exists for callers assembling a table incrementally
// (e.g. while walking an in-memory brick graph) who want O(1) "have I seen
// this name" lookups instead of a linear scan per brick.
package tables

import "github.com/bricksave/brs/internal/hash"

// StringTable interns strings into a stable append-order index table.
//
// Lookup is by exact string equality (via a map[string]int); the xxHash64 of
// every interned name is tracked alongside it purely so HasCollision can
// report when two distinct names hash identically, which callers may want to
// know for diagnostics even though it never affects correctness here.
type StringTable struct {
	byName    map[string]int
	hashSeen  map[uint64]string
	names     []string
	collision bool
}

// NewStringTable creates an empty table.
func NewStringTable() *StringTable {
	return &StringTable{
		byName:   make(map[string]int),
		hashSeen: make(map[uint64]string),
	}
}

// Intern returns the index of name in the table, appending it if not already present.
func (t *StringTable) Intern(name string) int {
	if i, ok := t.byName[name]; ok {
		return i
	}

	h := hash.ID(name)
	if existing, ok := t.hashSeen[h]; ok && existing != name {
		t.collision = true
	} else {
		t.hashSeen[h] = name
	}

	i := len(t.names)
	t.names = append(t.names, name)
	t.byName[name] = i

	return i
}

// Names returns the interned names in the order they were added.
func (t *StringTable) Names() []string {
	return t.names
}

// Len returns the number of interned names.
func (t *StringTable) Len() int {
	return len(t.names)
}

// HasCollision reports whether two distinct interned names hashed identically.
func (t *StringTable) HasCollision() bool {
	return t.collision
}
