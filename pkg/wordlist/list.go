package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bastiangx/randomname/pkg/match"
)

// List is an in-memory collection of literal words. It is immutable after
// construction and safe for concurrent use.
type List struct {
	name   string
	words  []string
	policy match.Policy
	rand   *Rand
}

// NewList copies words into a new List.
func NewList(words []string, name string, opts ...Option) *List {
	cfg := newConfig(opts)
	return newList(slices.Clone(words), name, cfg)
}

func newList(words []string, name string, cfg config) *List {
	return &List{name: name, words: words, policy: cfg.policy, rand: cfg.rand}
}

func (l *List) derive(words []string) *List {
	return &List{name: l.name, words: words, policy: l.policy, rand: l.rand}
}

// Copy returns a list with the same words under a new name.
func (l *List) Copy(name string) *List {
	return &List{name: name, words: l.words, policy: l.policy, rand: l.rand}
}

// WithWords returns a list with this one's name and settings holding words.
func (l *List) WithWords(words []string) *List {
	return l.derive(slices.Clone(words))
}

func (l *List) Name() string { return l.name }

func (l *List) Len() int { return len(l.words) }

func (l *List) At(i int) (string, error) {
	j, ok := index(i, len(l.words))
	if !ok {
		return "", fmt.Errorf("%w: %d of %d in %q", ErrOutOfRange, i, len(l.words), l.name)
	}
	return l.words[j], nil
}

func (l *List) Slice(start, stop int) []string {
	start, stop = bounds(start, stop, len(l.words))
	return slices.Clone(l.words[start:stop])
}

func (l *List) Words() []string { return slices.Clone(l.words) }

func (l *List) Contains(word string) bool { return slices.Contains(l.words, word) }

func (l *List) Sample() (string, error) {
	if len(l.words) == 0 {
		return "", emptyError(l.name)
	}
	return l.words[l.rand.IntN(len(l.words))], nil
}

func (l *List) SampleN(n int) ([]string, error) {
	return SampleUnique(l.Sample, n, SampleOptions{})
}

func (l *List) Filter(keep Predicate) WordList {
	var kept []string
	for _, w := range l.words {
		if keep(w) {
			kept = append(kept, w)
		}
	}
	return l.derive(kept)
}

func (l *List) Subtract(exclude Set) WordList {
	return l.Filter(func(w string) bool { return !exclude.Has(w) })
}

func (l *List) MatchesName(pattern string, parent match.Policy) bool {
	return match.Name(l.name, pattern, l.policy.Resolve(parent))
}

// DumpFile writes the words of wl to path, one per line, creating parent
// directories as needed. The result can be loaded back with NewFile.
func DumpFile(path string, wl WordList) error {
	if _, ok := wl.(*Func); ok {
		return fmt.Errorf("%w: cannot dump generator %q", ErrInvalidValue, wl.Name())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, word := range wl.Words() {
		w.WriteString(word)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Dump writes a readable tree of wl to w, one line per collection followed
// by its words when leaves is true.
func Dump(w io.Writer, wl WordList, leaves bool) error {
	return dump(w, wl, 0, leaves)
}

func dump(w io.Writer, wl WordList, depth int, leaves bool) error {
	indent := strings.Repeat("  ", depth)
	name := wl.Name()
	if name == "" {
		name = "(unnamed)"
	}
	if c, ok := wl.(*Composite); ok {
		kids := c.snapshot()
		if _, err := fmt.Fprintf(w, "%s%s/ [%d]\n", indent, name, len(kids)); err != nil {
			return err
		}
		for _, child := range kids {
			if err := dump(w, child, depth+1, leaves); err != nil {
				return err
			}
		}
		return nil
	}
	kind := "list"
	switch wl.(type) {
	case *File:
		kind = "file"
	case *Func:
		kind = "func"
	}
	if _, err := fmt.Fprintf(w, "%s%s (%s, %d words)\n", indent, name, kind, wl.Len()); err != nil {
		return err
	}
	if !leaves {
		return nil
	}
	if _, ok := wl.(*Func); ok {
		return nil
	}
	for _, word := range wl.Words() {
		if _, err := fmt.Fprintf(w, "%s  %s\n", indent, word); err != nil {
			return err
		}
	}
	return nil
}
