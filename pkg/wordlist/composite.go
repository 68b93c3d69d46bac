package wordlist

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bastiangx/randomname/pkg/alias"
	"github.com/bastiangx/randomname/pkg/match"
)

// Composite is an ordered group of word lists. Its words are the
// concatenation of its children's words. Children may be added
// concurrently with reads.
type Composite struct {
	name string
	cfg  config

	mu       sync.RWMutex
	children []WordList
}

// NewComposite groups children under name.
func NewComposite(children []WordList, name string, opts ...Option) *Composite {
	return newComposite(slices.Clone(children), name, newConfig(opts))
}

func newComposite(children []WordList, name string, cfg config) *Composite {
	return &Composite{name: name, cfg: cfg, children: children}
}

// derive builds a composite sharing this one's settings.
func (c *Composite) derive(children []WordList, name string) *Composite {
	return newComposite(children, name, c.cfg)
}

// Combine returns the single list itself, or a Composite over all of them.
func Combine(lists []WordList, name string, opts ...Option) WordList {
	if len(lists) == 1 {
		return lists[0]
	}
	return NewComposite(lists, name, opts...)
}

// Concat returns an unnamed composite holding a followed by b.
func Concat(a, b WordList, opts ...Option) *Composite {
	return NewComposite([]WordList{a, b}, "", opts...)
}

// WithName returns a shallow copy named name. An unnamed composite is
// transparent in category paths.
func (c *Composite) WithName(name string) *Composite {
	return c.derive(c.snapshot(), name)
}

// Aliases returns the alias table used to expand queries.
func (c *Composite) Aliases() *alias.Table { return c.cfg.aliases }

// Policy returns the composite's own matching policy.
func (c *Composite) Policy() match.Policy { return c.cfg.policy }

// Children returns a copy of the direct children.
func (c *Composite) Children() []WordList { return c.snapshot() }

func (c *Composite) snapshot() []WordList {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.children)
}

// Squeeze returns the only child when there is exactly one, else c.
func (c *Composite) Squeeze() WordList {
	kids := c.snapshot()
	if len(kids) == 1 {
		return kids[0]
	}
	return c
}

// Add coerces value into a word list and appends it. When a child named
// name already exists, conflict decides the outcome. An empty name takes
// the coerced list's own name.
func (c *Composite) Add(value any, name string, conflict Conflict) error {
	wl, err := coerce(value, name, c.cfg)
	if err != nil {
		return err
	}
	if name == "" {
		name = wl.Name()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if conflict != Append && name != "" {
		for i, existing := range c.children {
			if existing.Name() != name {
				continue
			}
			switch conflict {
			case Fail:
				return fmt.Errorf("%w: %q already exists", ErrConflict, name)
			case Overwrite:
				c.children[i] = wl
			default:
				merged := append(existing.Words(), wl.Words()...)
				c.children[i] = newList(unique(merged), name, c.cfg)
			}
			return nil
		}
	}
	c.children = append(c.children, wl)
	return nil
}

// SubtractInPlace replaces every child with one that excludes the given
// words. Used to apply blacklists to a tree after construction.
func (c *Composite) SubtractInPlace(exclude Set) {
	if len(exclude) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, child := range c.children {
		c.children[i] = child.Subtract(exclude)
	}
}

func (c *Composite) Name() string { return c.name }

func (c *Composite) Len() int {
	n := 0
	for _, child := range c.snapshot() {
		n += child.Len()
	}
	return n
}

// locate finds the child holding global index i, scanning from child
// first whose words begin at global position base.
func locate(kids []WordList, i, first, base int) (rel, child, childBase int) {
	for j := first; j < len(kids); j++ {
		end := base + kids[j].Len()
		if i < end {
			return i - base, j, base
		}
		base = end
	}
	return i - base, len(kids), base
}

func (c *Composite) At(i int) (string, error) {
	kids := c.snapshot()
	n := 0
	for _, child := range kids {
		n += child.Len()
	}
	j, ok := index(i, n)
	if !ok {
		return "", fmt.Errorf("%w: %d of %d in %q", ErrOutOfRange, i, n, c.name)
	}
	rel, child, _ := locate(kids, j, 0, 0)
	return kids[child].At(rel)
}

func (c *Composite) Slice(start, stop int) []string {
	kids := c.snapshot()
	n := 0
	for _, child := range kids {
		n += child.Len()
	}
	start, stop = bounds(start, stop, n)
	if start >= stop {
		return []string{}
	}
	rs, js, bs := locate(kids, start, 0, 0)
	re, je, _ := locate(kids, stop, js, bs)
	if je >= len(kids) {
		je = len(kids) - 1
		re = kids[je].Len()
	}
	if js == je {
		return kids[js].Slice(rs, re)
	}
	out := kids[js].Slice(rs, End)
	for k := js + 1; k < je; k++ {
		out = append(out, kids[k].Words()...)
	}
	return append(out, kids[je].Slice(0, re)...)
}

func (c *Composite) Words() []string {
	var out []string
	for _, child := range c.snapshot() {
		out = append(out, child.Words()...)
	}
	return out
}

func (c *Composite) Contains(word string) bool {
	for _, child := range c.snapshot() {
		if child.Contains(word) {
			return true
		}
	}
	return false
}

// Sample draws one word according to the sample mode. Under
// UniformOverChildren an empty child is discarded and another drawn, so
// only the children actually chosen are loaded.
func (c *Composite) Sample() (string, error) {
	if c.cfg.mode == UniformOverWords {
		n := c.Len()
		if n == 0 {
			return "", emptyError(c.name)
		}
		return c.At(c.cfg.rand.IntN(n))
	}
	kids := c.snapshot()
	for len(kids) > 0 {
		i := c.cfg.rand.IntN(len(kids))
		w, err := kids[i].Sample()
		if err == nil {
			return w, nil
		}
		if !errors.Is(err, ErrEmpty) {
			return "", err
		}
		kids = slices.Delete(kids, i, i+1)
	}
	return "", emptyError(c.name)
}

func (c *Composite) SampleN(n int) ([]string, error) {
	return SampleUnique(c.Sample, n, SampleOptions{MaxAttempts: c.cfg.attempts})
}

// Filter returns a composite of the filtered children, dropping any left
// empty.
func (c *Composite) Filter(keep Predicate) WordList {
	var kept []WordList
	for _, child := range c.snapshot() {
		if f := child.Filter(keep); f.Len() > 0 {
			kept = append(kept, f)
		}
	}
	return c.derive(kept, c.name)
}

func (c *Composite) Subtract(exclude Set) WordList {
	kids := c.snapshot()
	for i, child := range kids {
		kids[i] = child.Subtract(exclude)
	}
	return c.derive(kids, c.name)
}

// MatchesName also accepts patterns that continue past this composite's
// name, such as "nouns/cats" for a composite called "nouns".
func (c *Composite) MatchesName(pattern string, parent match.Policy) bool {
	if match.Name(c.name, pattern, c.cfg.policy.Resolve(parent)) {
		return true
	}
	return c.name != "" && strings.HasPrefix(strings.Trim(pattern, "/"), c.name+"/")
}

// Get returns the direct children named exactly name, after alias
// expansion, squeezed to a single list when only one matches.
func (c *Composite) Get(name string) (WordList, error) {
	name = strings.Trim(c.cfg.aliases.Expand(name), "/")
	var found []WordList
	for _, child := range c.snapshot() {
		if child.Name() == name {
			found = append(found, child)
		}
	}
	if len(found) == 0 {
		return nil, c.unresolved(name, name)
	}
	return c.derive(found, name).Squeeze(), nil
}

// Walk calls fn for every leaf below c with its '/'-joined path. Unnamed
// composites add nothing to the path.
func (c *Composite) Walk(fn func(path string, leaf WordList) error) error {
	return c.walk("", fn)
}

func (c *Composite) walk(prefix string, fn func(string, WordList) error) error {
	for _, child := range c.snapshot() {
		p := joinName(prefix, child.Name())
		if sub, ok := child.(*Composite); ok {
			if err := sub.walk(p, fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(p, child); err != nil {
			return err
		}
	}
	return nil
}

// LeafNames lists the paths of all named leaves, in tree order.
func (c *Composite) LeafNames() []string {
	var names []string
	_ = c.Walk(func(p string, _ WordList) error {
		if p != "" {
			names = append(names, p)
		}
		return nil
	})
	return names
}
