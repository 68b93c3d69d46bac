package phrase

import (
	"sync"

	"github.com/bastiangx/randomname/pkg/config"
	"github.com/charmbracelet/log"
)

var (
	defaultMu  sync.Mutex
	defaultGen *Generator
)

// Init builds the process default generator from cfg and installs it.
func Init(cfg *config.Config, configDir string) (*Generator, error) {
	g, err := FromConfig(cfg, configDir)
	if err != nil {
		return nil, err
	}
	SetDefault(g)
	return g, nil
}

// SetDefault replaces the process default generator. Passing nil makes
// the next Default call rebuild it from builtin settings.
func SetDefault(g *Generator) {
	defaultMu.Lock()
	defaultGen = g
	defaultMu.Unlock()
}

// Default returns the process default generator, building one from
// config.DefaultConfig on first use.
func Default() (*Generator, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultGen != nil {
		return defaultGen, nil
	}
	g, err := FromConfig(config.DefaultConfig(), "")
	if err != nil {
		log.Errorf("Failed to build default generator: %v", err)
		return nil, err
	}
	defaultGen = g
	return g, nil
}

// Generate calls Generate on the default generator.
func Generate(tokens []string, opts ...Option) (string, error) {
	g, err := Default()
	if err != nil {
		return "", err
	}
	return g.Generate(tokens, opts...)
}

// GenerateN calls GenerateN on the default generator.
func GenerateN(n int, tokens []string, opts ...Option) ([]string, error) {
	g, err := Default()
	if err != nil {
		return nil, err
	}
	return g.GenerateN(n, tokens, opts...)
}

// GetName calls GetName on the default generator.
func GetName(adjectives, nouns []string, sep string) (string, error) {
	g, err := Default()
	if err != nil {
		return "", err
	}
	return g.GetName(adjectives, nouns, sep)
}

// Sample calls Sample on the default generator.
func Sample(n int, tokens ...string) ([]string, error) {
	g, err := Default()
	if err != nil {
		return nil, err
	}
	return g.Sample(n, tokens...)
}

// Available calls Available on the default generator.
func Available(filters ...string) ([]string, error) {
	g, err := Default()
	if err != nil {
		return nil, err
	}
	return g.Available(filters...)
}

// Search calls Search on the default generator.
func Search(pattern string, within ...string) ([]string, error) {
	g, err := Default()
	if err != nil {
		return nil, err
	}
	return g.Search(pattern, within...)
}
