package wordlist

import (
	"context"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Files returns every File leaf below c.
func (c *Composite) Files() []*File {
	var files []*File
	_ = c.Walk(func(_ string, leaf WordList) error {
		if f, ok := leaf.(*File); ok {
			files = append(files, f)
		}
		return nil
	})
	return files
}

// Preload reads every File below c that is not loaded yet, using at most
// workers goroutines (GOMAXPROCS when workers <= 0). The first read error
// cancels the remaining loads.
func (c *Composite) Preload(ctx context.Context, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()
	files := c.Files()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, f := range files {
		if f.Loaded() {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return f.Load()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	log.Debugf("Preloaded %d wordlist files in %v", len(files), time.Since(start))
	return nil
}
