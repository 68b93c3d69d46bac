package wordlist

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/bastiangx/randomname/pkg/match"
)

// Generator produces one word per call. Arguments come from call-style
// queries such as "uuid/8" or "uuid(8)".
type Generator func(args ...string) (string, error)

// Func is a word list whose words come from a Generator. It presents a
// fixed virtual length; indexed slots are generated on first access and
// then stay stable. Sample always calls the generator afresh.
type Func struct {
	name    string
	fn      Generator
	args    []string
	keep    Predicate
	exclude Set
	cfg     config

	mu    sync.Mutex
	slots []string
	set   []bool
}

// NewFunc wraps fn as a word list called name.
func NewFunc(fn Generator, name string, opts ...Option) *Func {
	return newFunc(fn, name, nil, newConfig(opts))
}

func newFunc(fn Generator, name string, args []string, cfg config) *Func {
	return &Func{
		name:  name,
		fn:    fn,
		args:  args,
		cfg:   cfg,
		slots: make([]string, cfg.length),
		set:   make([]bool, cfg.length),
	}
}

func (f *Func) clone() *Func {
	c := newFunc(f.fn, f.name, f.args, f.cfg)
	c.keep = f.keep
	c.exclude = f.exclude
	return c
}

// WithArgs returns a copy that passes args to the generator.
func (f *Func) WithArgs(args ...string) *Func {
	c := f.clone()
	c.args = slices.Clone(args)
	return c
}

// Args returns the bound generator arguments.
func (f *Func) Args() []string { return slices.Clone(f.args) }

// Bind returns a copy with arguments taken from a call-style pattern
// addressing this function, or f itself when the pattern carries none.
func (f *Func) Bind(pattern string) *Func {
	name, args, ok := SplitCall(pattern)
	if !ok || name != f.name || len(args) == 0 {
		return f
	}
	return f.WithArgs(args...)
}

// SplitCall splits "name/arg1/arg2" or "name(arg1,arg2)" into the function
// name and its arguments.
func SplitCall(pattern string) (name string, args []string, ok bool) {
	pattern = strings.Trim(pattern, "/")
	if open := strings.IndexByte(pattern, '('); open > 0 && strings.HasSuffix(pattern, ")") {
		name = pattern[:open]
		inner := pattern[open+1 : len(pattern)-1]
		for _, a := range strings.Split(inner, ",") {
			if a = strings.TrimSpace(a); a != "" {
				args = append(args, a)
			}
		}
		return name, args, true
	}
	parts := strings.Split(pattern, "/")
	if parts[0] == "" {
		return "", nil, false
	}
	return parts[0], parts[1:], true
}

func (f *Func) accept(word string) bool {
	if f.exclude.Has(word) {
		return false
	}
	return f.keep == nil || f.keep(word)
}

func (f *Func) Name() string { return f.name }

func (f *Func) Len() int { return len(f.slots) }

// Sample calls the generator, retrying when the word is excluded or
// rejected by a filter.
func (f *Func) Sample() (string, error) {
	for i := 0; i < f.cfg.attempts; i++ {
		w, err := f.fn(f.args...)
		if err != nil {
			return "", fmt.Errorf("generator %q: %w", f.name, err)
		}
		if f.accept(w) {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: generator %q produced no acceptable word in %d attempts", ErrEmpty, f.name, f.cfg.attempts)
}

// SampleN calls Sample n times. Results may repeat unless the Func was
// built WithUnique(true).
func (f *Func) SampleN(n int) ([]string, error) {
	return SampleUnique(f.Sample, n, SampleOptions{
		MaxAttempts:     f.cfg.attempts,
		AllowDuplicates: !f.cfg.unique,
	})
}

// At returns the memoized word for slot i, generating it on first access.
func (f *Func) At(i int) (string, error) {
	j, ok := index(i, len(f.slots))
	if !ok {
		return "", fmt.Errorf("%w: %d of %d in %q", ErrOutOfRange, i, len(f.slots), f.name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.set[j] {
		return f.slots[j], nil
	}
	w, err := f.Sample()
	if err != nil {
		return "", err
	}
	f.slots[j], f.set[j] = w, true
	return w, nil
}

func (f *Func) Slice(start, stop int) []string {
	start, stop = bounds(start, stop, len(f.slots))
	out := make([]string, 0, stop-start)
	for i := start; i < stop; i++ {
		w, err := f.At(i)
		if err != nil {
			break
		}
		out = append(out, w)
	}
	return out
}

// Words materializes every slot.
func (f *Func) Words() []string { return f.Slice(0, End) }

// Contains checks only slots that were already generated.
func (f *Func) Contains(word string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, w := range f.slots {
		if f.set[i] && w == word {
			return true
		}
	}
	return false
}

// Filter returns a Func whose words all satisfy keep.
func (f *Func) Filter(keep Predicate) WordList {
	c := f.clone()
	if prev := f.keep; prev != nil {
		c.keep = func(w string) bool { return prev(w) && keep(w) }
	} else {
		c.keep = keep
	}
	return c
}

// Subtract returns a Func that never yields a word in exclude.
func (f *Func) Subtract(exclude Set) WordList {
	c := f.clone()
	c.exclude = f.exclude.Union(exclude)
	return c
}

// MatchesName also accepts call-style patterns naming this function,
// such as "uuid/8" or "uuid(8)", unless the policy is Exact.
func (f *Func) MatchesName(pattern string, parent match.Policy) bool {
	policy := f.cfg.policy.Resolve(parent)
	if match.Name(f.name, pattern, policy) {
		return true
	}
	if policy == match.Exact {
		return false
	}
	name, _, ok := SplitCall(pattern)
	return ok && f.name != "" && name == f.name
}
