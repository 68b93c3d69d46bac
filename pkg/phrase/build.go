package phrase

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/bastiangx/randomname/internal/utils"
	"github.com/bastiangx/randomname/pkg/alias"
	"github.com/bastiangx/randomname/pkg/config"
	"github.com/bastiangx/randomname/pkg/match"
	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/charmbracelet/log"
)

// TreeOptions returns the wordlist options described by cfg.
func TreeOptions(cfg *config.Config) []wordlist.Option {
	return []wordlist.Option{
		wordlist.WithAliases(alias.Default()),
		wordlist.WithPolicy(match.ParsePolicy(cfg.Lists.MatchPolicy)),
		wordlist.WithSampleMode(wordlist.ParseSampleMode(cfg.Lists.SampleMode)),
		wordlist.WithLength(cfg.Lists.FuncLength),
		wordlist.WithMaxAttempts(cfg.Generate.MaxAttempts),
	}
}

// BuildRoot assembles the category tree described by cfg.
//
// Each source is a builtin set name or a path searched in the working
// directory, configDir and next to the executable. Sources are flattened
// into one unnamed root so their categories are addressed directly, e.g.
// "nouns/cats". The builtin generators are added next, then the global and
// local blacklists are subtracted from everything.
func BuildRoot(cfg *config.Config, configDir string) (*wordlist.Composite, error) {
	start := time.Now()
	if cfg.Generate.Seed != 0 {
		wordlist.Reseed(cfg.Generate.Seed)
	}
	opts := TreeOptions(cfg)
	resolver := utils.NewPathResolver(configDir)
	log.Debugf("Resolving sources with %v", resolver.GetRuntimeInfo())
	root := wordlist.NewComposite(nil, "", opts...)

	for _, src := range cfg.Lists.Sources {
		p, _ := resolver.Resolve(src)
		wl, err := wordlist.Coerce(p, "", opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load source %q: %w", src, err)
		}
		children := []wordlist.WordList{wl}
		if c, ok := wl.(*wordlist.Composite); ok {
			children = c.Children()
		}
		for _, child := range children {
			if err := root.Add(child, "", wordlist.Append); err != nil {
				return nil, err
			}
		}
		log.Debugf("Loaded source %s (%d lists)", src, len(children))
	}

	funcs := Funcs(nil)
	for _, name := range slices.Sorted(maps.Keys(funcs)) {
		if err := root.Add(wordlist.Generated(funcs[name]), name, wordlist.Fail); err != nil {
			return nil, err
		}
	}

	for _, p := range []string{cfg.Lists.Blacklist, cfg.Lists.LocalBlacklist} {
		if p == "" {
			continue
		}
		exclude, err := readBlacklist(resolver, p)
		if err != nil {
			return nil, err
		}
		root.SubtractInPlace(exclude)
		log.Debugf("Applied blacklist %s (%d words)", p, len(exclude))
	}

	if cfg.Lists.Preload {
		if err := root.Preload(context.Background(), 0); err != nil {
			return nil, fmt.Errorf("failed to preload wordlists: %w", err)
		}
	}
	log.Debugf("Built wordlist tree with %d categories in %v", len(root.LeafNames()), time.Since(start))
	return root, nil
}

func readBlacklist(resolver *utils.PathResolver, p string) (wordlist.Set, error) {
	abs, ok := resolver.Resolve(p)
	if !ok {
		return nil, fmt.Errorf("%w: blacklist %q", wordlist.ErrNotFound, p)
	}
	f, err := wordlist.NewFile(abs, "blacklist")
	if err != nil {
		return nil, err
	}
	if err := f.Load(); err != nil {
		return nil, fmt.Errorf("failed to read blacklist %s: %w", p, err)
	}
	return wordlist.NewSet(f.Words()...), nil
}

// FromConfig builds the tree described by cfg and a Generator over it.
func FromConfig(cfg *config.Config, configDir string) (*Generator, error) {
	root, err := BuildRoot(cfg, configDir)
	if err != nil {
		return nil, err
	}
	return New(root, Options{
		Separator:   cfg.Generate.Separator,
		Template:    cfg.Generate.Template,
		Case:        ParseCase(cfg.Generate.Case),
		MaxAttempts: cfg.Generate.MaxAttempts,
		CacheSize:   cfg.Cache.Size,
	})
}
