// Package phrase joins words sampled from resolved categories into phrases.
package phrase

// IGenerator defines the interface for phrase generators
type IGenerator interface {
	// Generate returns one phrase with a word from each token's category
	Generate(tokens []string, opts ...Option) (string, error)

	// GenerateN returns up to n distinct phrases
	GenerateN(n int, tokens []string, opts ...Option) ([]string, error)

	// GetName returns an adjective-noun phrase from the given subcategories
	GetName(adjectives, nouns []string, sep string) (string, error)

	// Sample returns up to n distinct words from the union of the categories
	Sample(n int, tokens ...string) ([]string, error)

	// Available lists category names, optionally narrowed by filters
	Available(filters ...string) ([]string, error)

	// Search returns the words matching a glob, optionally within categories
	Search(pattern string, within ...string) ([]string, error)

	// Reload re-reads file-backed lists and drops resolved categories
	Reload() error

	// Stats returns counters about the loaded tree and cache
	Stats() map[string]int
}
