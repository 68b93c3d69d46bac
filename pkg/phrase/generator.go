package phrase

import (
	"fmt"
	"strings"
	"sync"

	"github.com/bastiangx/randomname/internal/utils"
	"github.com/bastiangx/randomname/pkg/match"
	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the resolved-category cache.
const DefaultCacheSize = 128

// Options configures a Generator.
type Options struct {
	// Separator joins phrase words. Empty means DefaultSeparator.
	Separator string
	// Template is used when Generate gets no tokens.
	Template []string
	Case     Case
	// Literals lets bare unknown tokens appear verbatim in phrases.
	Literals    bool
	MaxAttempts int
	CacheSize   int
}

// DefaultTemplate produces adjective-noun phrases.
var DefaultTemplate = []string{"adjectives/", "nouns/"}

// Generator samples phrases from a wordlist tree. Each token resolves to a
// subset of the tree once; later calls reuse the cached subset until the
// tree changes.
type Generator struct {
	mu    sync.RWMutex
	root  *wordlist.Composite
	opts  Options
	cache *lru.Cache[string, *wordlist.Composite]

	hits   int
	misses int
}

var _ IGenerator = (*Generator)(nil)

// New creates a generator over root.
func New(root *wordlist.Composite, opts Options) (*Generator, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil wordlist tree", wordlist.ErrInvalidValue)
	}
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	if len(opts.Template) == 0 {
		opts.Template = DefaultTemplate
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = wordlist.DefaultMaxAttempts
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *wordlist.Composite](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create category cache: %w", err)
	}
	return &Generator{root: root, opts: opts, cache: cache}, nil
}

// Root returns the tree phrases are drawn from.
func (g *Generator) Root() *wordlist.Composite {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.root
}

// Options returns the generator's defaults.
func (g *Generator) Options() Options {
	return g.opts
}

// SetRoot swaps the tree and drops every cached subset.
func (g *Generator) SetRoot(root *wordlist.Composite) {
	g.mu.Lock()
	g.root = root
	g.mu.Unlock()
	g.cache.Purge()
}

// Invalidate drops cached subsets so the next call resolves tokens again.
func (g *Generator) Invalidate() {
	g.cache.Purge()
}

// Add coerces value into the tree as a new category.
func (g *Generator) Add(value any, name string, conflict wordlist.Conflict) error {
	if err := g.Root().Add(value, name, conflict); err != nil {
		return err
	}
	g.cache.Purge()
	return nil
}

// resolve returns the cached subset for one token.
func (g *Generator) resolve(token string, literals bool) (*wordlist.Composite, error) {
	key := token
	if literals {
		key = "\x00" + token
	}
	if sub, ok := g.cache.Get(key); ok {
		g.count(true)
		return sub, nil
	}
	g.count(false)
	root := g.Root()
	var (
		sub *wordlist.Composite
		err error
	)
	if literals {
		sub, err = root.SubsetLiterals(token)
	} else {
		sub, err = root.Subset(token)
	}
	if err != nil {
		return nil, err
	}
	g.cache.Add(key, sub)
	log.Debugf("Resolved category %q to %d lists", token, len(sub.Children()))
	return sub, nil
}

func (g *Generator) count(hit bool) {
	g.mu.Lock()
	if hit {
		g.hits++
	} else {
		g.misses++
	}
	g.mu.Unlock()
}

func (g *Generator) config(opts []Option) phraseConfig {
	cfg := phraseConfig{sep: g.opts.Separator, casing: g.opts.Case, literals: g.opts.Literals}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// slots resolves tokens to one subset per phrase word. Comma separated
// tokens share a slot.
func (g *Generator) slots(tokens []string, literals bool) ([]*wordlist.Composite, error) {
	if len(tokens) == 0 {
		tokens = g.opts.Template
	}
	subs := make([]*wordlist.Composite, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		sub, err := g.resolve(tok, literals)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("%w: no categories given", wordlist.ErrInvalidValue)
	}
	return subs, nil
}

func phrase(subs []*wordlist.Composite, cfg phraseConfig) (string, error) {
	words := make([]string, len(subs))
	for i, sub := range subs {
		w, err := sub.Sample()
		if err != nil {
			return "", err
		}
		words[i] = w
	}
	return cfg.casing.Apply(utils.JoinWords(words, cfg.sep)), nil
}

// Generate returns one phrase with a word from each token's category,
// joined by the separator. No tokens means the configured template.
func (g *Generator) Generate(tokens []string, opts ...Option) (string, error) {
	cfg := g.config(opts)
	subs, err := g.slots(tokens, cfg.literals)
	if err != nil {
		return "", err
	}
	return phrase(subs, cfg)
}

// GenerateN returns up to n distinct phrases. Fewer are returned when the
// categories cannot produce n different phrases.
func (g *Generator) GenerateN(n int, tokens []string, opts ...Option) ([]string, error) {
	cfg := g.config(opts)
	subs, err := g.slots(tokens, cfg.literals)
	if err != nil {
		return nil, err
	}
	return wordlist.SampleUnique(func() (string, error) {
		return phrase(subs, cfg)
	}, n, wordlist.SampleOptions{MaxAttempts: g.opts.MaxAttempts})
}

// GetName returns an adjective-noun phrase. Each subcategory is looked up
// under adjectives and nouns; empty slices mean any.
func (g *Generator) GetName(adjectives, nouns []string, sep string) (string, error) {
	opts := []Option{WithLiterals(false)}
	if sep != "" {
		opts = append(opts, WithSeparator(sep))
	}
	return g.Generate(NameTokens(adjectives, nouns), opts...)
}

// NameTokens returns the two tokens GetName generates from.
func NameTokens(adjectives, nouns []string) []string {
	return []string{prefixed("a", adjectives), prefixed("n", nouns)}
}

// prefixed turns subcategories into one comma separated token under group.
func prefixed(group string, subs []string) string {
	if len(subs) == 0 {
		return group + "/"
	}
	out := make([]string, len(subs))
	for i, s := range subs {
		out[i] = group + "/" + strings.Trim(s, "/")
	}
	return strings.Join(out, ",")
}

// Sample returns up to n distinct words drawn from the union of the
// categories. n <= 0 means DefaultSampleSize.
func (g *Generator) Sample(n int, tokens ...string) ([]string, error) {
	if n <= 0 {
		n = DefaultSampleSize
	}
	sub, err := g.Root().Subset(tokens...)
	if err != nil {
		return nil, err
	}
	return wordlist.SampleUnique(sub.Sample, n, wordlist.SampleOptions{MaxAttempts: g.opts.MaxAttempts})
}

// Available lists leaf category names. Filters are alias-expanded and
// matched the way category tokens are; a filter matching nothing fails
// with suggestions.
func (g *Generator) Available(filters ...string) ([]string, error) {
	root := g.Root()
	names := root.LeafNames()
	filters = wordlist.SplitPatterns(filters)
	if len(filters) == 0 {
		return names, nil
	}
	index := wordlist.NewIndex(names)
	var out []string
	seen := map[string]struct{}{}
	keep := func(name string) {
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	for _, f := range filters {
		expanded := root.Aliases().Expand(f)
		group := strings.Trim(expanded, "/")
		found := index.WithPrefix(group + "/")
		if index.Has(group) {
			found = append([]string{group}, found...)
		}
		if len(found) == 0 {
			for _, name := range names {
				if match.Name(name, expanded, match.Permissive) {
					found = append(found, name)
				}
			}
		}
		if len(found) == 0 {
			return nil, &wordlist.UnresolvedError{Query: f, Suggestions: root.CloseMatches(expanded)}
		}
		for _, name := range found {
			keep(name)
		}
	}
	return out, nil
}

// Search returns the distinct words matching a glob pattern, in list
// order, optionally restricted to categories. Generated lists are not
// searched.
func (g *Generator) Search(pattern string, within ...string) ([]string, error) {
	sub, err := g.Root().Subset(within...)
	if err != nil {
		return nil, err
	}
	var words []string
	err = sub.Walk(func(_ string, leaf wordlist.WordList) error {
		if _, ok := leaf.(*wordlist.Func); !ok {
			words = append(words, leaf.Words()...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok && !match.HasWildcard(prefix) {
		return wordlist.NewIndex(words).WithPrefix(prefix), nil
	}
	return distinct(wordlist.Find(wordlist.NewList(words, ""), pattern).Words()), nil
}

// distinct drops repeats while keeping first occurrences.
func distinct(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := words[:0]
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Reload re-reads every file-backed list that was loaded and drops
// cached subsets.
func (g *Generator) Reload() error {
	var errs []error
	for _, f := range g.Root().Files() {
		if !f.Loaded() {
			continue
		}
		if err := f.Reload(); err != nil {
			errs = append(errs, err)
		}
	}
	g.cache.Purge()
	if len(errs) > 0 {
		return fmt.Errorf("failed to reload %d lists: %w", len(errs), errs[0])
	}
	return nil
}

// Stats returns counters about the tree and the category cache.
func (g *Generator) Stats() map[string]int {
	root := g.Root()
	loaded := 0
	files := root.Files()
	for _, f := range files {
		if f.Loaded() {
			loaded++
		}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return map[string]int{
		"categories":    len(root.LeafNames()),
		"files":         len(files),
		"loadedFiles":   loaded,
		"cachedSubsets": g.cache.Len(),
		"cacheHits":     g.hits,
		"cacheMisses":   g.misses,
	}
}
