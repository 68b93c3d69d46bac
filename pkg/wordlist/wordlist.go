/*
Package wordlist models named collections of words and the tree that
composes them.

Four variants implement WordList:

  - List holds literal words.
  - File reads one word per line from disk or an fs.FS, lazily.
  - Func produces words from a generator function and memoizes indexed slots.
  - Composite groups other collections and resolves category queries
    against its descendants' names.

Category queries are '/'-separated paths. A Composite resolves them with
match.Name under a configurable match.Policy and, when nothing matches,
returns an *UnresolvedError carrying the closest known names.

Sampling draws from a shared Rand (see Reseed) unless a collection was
built with WithRand.
*/
package wordlist

import (
	"math"
	"strings"

	"github.com/bastiangx/randomname/internal/utils"
	"github.com/bastiangx/randomname/pkg/alias"
	"github.com/bastiangx/randomname/pkg/match"
)

// End can be passed as a Slice stop to mean "through the last word".
const End = math.MaxInt

// DefaultFuncLength is the virtual length of a Func.
const DefaultFuncLength = 1000

// WordList is a named, sampleable collection of words.
//
// Len, Words, At and Slice always agree with each other. Filter and
// Subtract return new collections and leave the receiver untouched.
type WordList interface {
	Name() string
	Len() int
	// At supports negative indexes counted from the end.
	At(i int) (string, error)
	// Slice clamps like a Go slice expression would if it never panicked.
	Slice(start, stop int) []string
	Words() []string
	Contains(word string) bool
	Sample() (string, error)
	// SampleN returns up to n words. See SampleUnique.
	SampleN(n int) ([]string, error)
	Filter(keep Predicate) WordList
	Subtract(exclude Set) WordList
	// MatchesName reports whether pattern addresses this collection. parent
	// is the policy of the enclosing collection, used when this one inherits.
	MatchesName(pattern string, parent match.Policy) bool
}

// Predicate selects words.
type Predicate func(word string) bool

// GlobPredicate selects words matching a shell-style pattern.
func GlobPredicate(pattern string) Predicate {
	return func(word string) bool {
		return match.Glob(word, pattern)
	}
}

// Set is a set of words, typically a blacklist.
type Set map[string]struct{}

// NewSet builds a set from words.
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Has reports membership. A nil set has no members.
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Union returns a new set holding the members of both.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for w := range s {
		out[w] = struct{}{}
	}
	for w := range o {
		out[w] = struct{}{}
	}
	return out
}

// Find returns the words of wl matching a glob, as a List named pattern.
func Find(wl WordList, pattern string) *List {
	keep := GlobPredicate(pattern)
	var found []string
	for _, w := range wl.Words() {
		if keep(w) {
			found = append(found, w)
		}
	}
	return NewList(found, pattern)
}

// SampleMode selects how a Composite draws a single word.
type SampleMode int

const (
	// UniformOverChildren picks a child uniformly, then a word within it.
	UniformOverChildren SampleMode = iota
	// UniformOverWords picks uniformly over all words of all children.
	UniformOverWords
)

// ParseSampleMode maps a config value to a SampleMode.
func ParseSampleMode(s string) SampleMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uniform-over-words", "words":
		return UniformOverWords
	default:
		return UniformOverChildren
	}
}

func (m SampleMode) String() string {
	if m == UniformOverWords {
		return "uniform-over-words"
	}
	return "uniform-over-children"
}

// Conflict selects what Add does when a child with the same name exists.
type Conflict int

const (
	// Merge replaces the existing child with a deduplicated union.
	Merge Conflict = iota
	// Overwrite replaces the existing child.
	Overwrite
	// Append keeps both.
	Append
	// Fail returns ErrConflict.
	Fail
)

type config struct {
	policy   match.Policy
	rand     *Rand
	aliases  *alias.Table
	mode     SampleMode
	length   int
	attempts int
	unique   bool
}

// Option configures a collection at construction.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		policy:   match.Inherit,
		rand:     Shared(),
		length:   DefaultFuncLength,
		attempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithPolicy sets how broadly the collection's name accepts patterns.
func WithPolicy(p match.Policy) Option {
	return func(c *config) { c.policy = p }
}

// ExactMatch is WithPolicy(match.Exact).
func ExactMatch() Option {
	return WithPolicy(match.Exact)
}

// WithRand sets the random source.
func WithRand(r *Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rand = r
		}
	}
}

// WithAliases sets the alias table a Composite expands queries with.
func WithAliases(t *alias.Table) Option {
	return func(c *config) { c.aliases = t }
}

// WithSampleMode sets how a Composite draws single words.
func WithSampleMode(m SampleMode) Option {
	return func(c *config) { c.mode = m }
}

// WithLength sets the virtual length of a Func.
func WithLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.length = n
		}
	}
}

// WithMaxAttempts sets the retry budget for unique sampling and for a Func
// rejecting excluded or filtered words.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.attempts = n
		}
	}
}

// WithUnique makes Func.SampleN deduplicate its results.
func WithUnique(unique bool) Option {
	return func(c *config) { c.unique = unique }
}

// leafOptions carries the settings a derived leaf shares with its parent.
func (c config) leafOptions() []Option {
	return []Option{WithRand(c.rand), WithMaxAttempts(c.attempts), WithLength(c.length)}
}

// bounds clamps a slice range to [0, n], resolving negative starts.
func bounds(start, stop, n int) (int, int) {
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if stop < 0 {
		stop += n
		if stop < 0 {
			stop = 0
		}
	}
	if start > n {
		start = n
	}
	if stop > n {
		stop = n
	}
	if stop < start {
		stop = start
	}
	return start, stop
}

// index resolves a possibly negative index against length n.
func index(i, n int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

// unique returns words without repeats, keeping first occurrences.
func unique(words []string) []string {
	filter := utils.NewSeenFilter(len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if filter.ShouldInclude(w) {
			out = append(out, w)
		}
	}
	return out
}

func joinName(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	}
	return prefix + "/" + name
}
