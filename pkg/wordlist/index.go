package wordlist

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Index is a prefix trie over a fixed set of keys, such as category paths
// or the words of a list. Lookups return keys in insertion order.
type Index struct {
	trie *patricia.Trie
	keys []string
}

// NewIndex indexes keys. Repeated keys are kept once.
func NewIndex(keys []string) *Index {
	x := &Index{trie: patricia.NewTrie()}
	for _, k := range keys {
		if x.trie.Insert(patricia.Prefix(k), len(x.keys)) {
			x.keys = append(x.keys, k)
		}
	}
	return x
}

// Index builds an Index of c's leaf names.
func (c *Composite) Index() *Index {
	return NewIndex(c.LeafNames())
}

// Len returns the number of distinct keys.
func (x *Index) Len() int { return len(x.keys) }

// Keys returns every key in insertion order.
func (x *Index) Keys() []string {
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

// Has reports whether key was indexed.
func (x *Index) Has(key string) bool {
	return x.trie.Get(patricia.Prefix(key)) != nil
}

// WithPrefix returns every key starting with prefix.
func (x *Index) WithPrefix(prefix string) []string {
	var positions []int
	err := x.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		if pos, ok := item.(int); ok {
			positions = append(positions, pos)
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting index subtree: %v", err)
	}
	sort.Ints(positions)
	out := make([]string, len(positions))
	for i, pos := range positions {
		out[i] = x.keys[pos]
	}
	return out
}
