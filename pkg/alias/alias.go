// Package alias expands short category names such as "a" or "nn" into
// their canonical form before a query is resolved.
package alias

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrConflict is returned by Update when a key is already defined.
var ErrConflict = errors.New("alias already defined")

// Builtin is the shorthand table installed by Default.
var Builtin = map[string]string{
	"a":         "adjectives",
	"n":         "nouns",
	"v":         "verbs",
	"nm":        "names",
	"ip":        "ipsum",
	"adj":       "adjectives",
	"nn":        "nouns",
	"vb":        "verbs",
	"u":         "uuid",
	"uu":        "uuid",
	"adjective": "adjectives",
	"noun":      "nouns",
	"verb":      "verbs",
	"name":      "names",
}

// Table maps alias segments to names. It is safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	entries map[string]string
}

// New returns a table seeded with a copy of entries.
func New(entries map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(entries))}
	maps.Copy(t.entries, entries)
	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the shared process-wide table, seeded from Builtin.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = New(Builtin)
	})
	return defaultTable
}

// Expand replaces every '/'-separated segment of name that is a known alias.
// A call suffix such as "(8)" is kept. Each segment is looked up once and
// replacements are not expanded again.
func (t *Table) Expand(name string) string {
	if t == nil || name == "" {
		return name
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.entries) == 0 {
		return name
	}
	parts := strings.Split(name, "/")
	for i, p := range parts {
		key, call := p, ""
		if open := strings.IndexByte(p, '('); open > 0 {
			key, call = p[:open], p[open:]
		}
		if full, ok := t.entries[key]; ok {
			parts[i] = full + call
		}
	}
	return strings.Join(parts, "/")
}

// Lookup returns the expansion of a single segment.
func (t *Table) Lookup(segment string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	full, ok := t.entries[segment]
	return full, ok
}

// Update adds entries to the table. Without force, any key already present
// aborts the whole update with ErrConflict naming the offending keys.
func (t *Table) Update(entries map[string]string, force bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !force {
		var clashes []string
		for k := range entries {
			if _, ok := t.entries[k]; ok {
				clashes = append(clashes, k)
			}
		}
		if len(clashes) > 0 {
			slices.Sort(clashes)
			return fmt.Errorf("%w: %s (use force to overwrite)", ErrConflict, strings.Join(clashes, ", "))
		}
	}
	maps.Copy(t.entries, entries)
	return nil
}

// Remove deletes keys from the table.
func (t *Table) Remove(keys ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, k := range keys {
		delete(t.entries, k)
	}
}

// Entries returns a copy of the table.
func (t *Table) Entries() map[string]string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return maps.Clone(t.entries)
}

// Len returns the number of aliases.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
