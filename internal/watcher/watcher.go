// Package watcher reloads file-backed word lists when they change on disk.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bastiangx/randomname/internal/logger"
	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reloads Files whose origin changes. Directories are watched
// rather than files so editors that replace files on save are seen too.
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string][]*wordlist.File
	onChange func(path string)
	debounce time.Duration
	log      *log.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

// New watches the origins of files. onChange runs after each reload and
// may be nil.
func New(files []*wordlist.File, onChange func(path string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string][]*wordlist.File),
		onChange: onChange,
		debounce: DefaultDebounce,
		log:      logger.New("watcher"),
		pending:  make(map[string]struct{}),
	}
	dirs := map[string]struct{}{}
	for _, f := range files {
		origin := f.Origin()
		if origin == "" {
			continue
		}
		origin = filepath.Clean(origin)
		w.files[origin] = append(w.files[origin], f)
		dirs[filepath.Dir(origin)] = struct{}{}
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	w.log.Debugf("Watching %d files in %d directories", len(w.files), len(dirs))
	return w, nil
}

// SetDebounce changes how long events for one path are coalesced.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Len returns the number of watched paths.
func (w *Watcher) Len() int { return len(w.files) }

// Run handles events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return w.fsw.Close()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Errorf("Watch error: %v", err)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	if errors.Is(err, fsnotify.ErrClosed) {
		return nil
	}
	return err
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	path := filepath.Clean(ev.Name)
	if _, ok := w.files[path]; !ok {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, queued := w.pending[path]; queued {
		return
	}
	w.pending[path] = struct{}{}
	time.AfterFunc(w.debounce, func() { w.reload(path) })
}

// reload re-reads every loaded File built from path.
func (w *Watcher) reload(path string) {
	w.mu.Lock()
	delete(w.pending, path)
	w.mu.Unlock()

	reloaded := 0
	for _, f := range w.files[path] {
		if !f.Loaded() {
			continue
		}
		if err := f.Reload(); err != nil {
			w.log.Warnf("Reloading %s: %v", path, err)
			continue
		}
		reloaded++
	}
	w.log.Infof("Reloaded %s (%d lists)", path, reloaded)
	if w.onChange != nil {
		w.onChange(path)
	}
}
