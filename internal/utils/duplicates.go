package utils

// SeenFilter drops repeated words while preserving first occurrences.
// It is not safe for concurrent use.
type SeenFilter struct {
	seenWords map[string]bool
}

// NewSeenFilter creates a filter sized for n words.
func NewSeenFilter(n int) *SeenFilter {
	return &SeenFilter{seenWords: make(map[string]bool, n)}
}

// ShouldInclude reports whether word is new, recording it if so.
func (f *SeenFilter) ShouldInclude(word string) bool {
	if f.seenWords[word] {
		return false
	}
	f.seenWords[word] = true
	return true
}
