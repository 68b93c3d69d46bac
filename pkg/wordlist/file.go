package wordlist

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bastiangx/randomname/pkg/match"
	"github.com/charmbracelet/log"
)

// File is a word list backed by a text file that is read on first use.
// Every read operation goes through an ensure-loaded guard, so the file is
// parsed at most once until Reload. It is safe for concurrent use.
type File struct {
	name    string
	path    string
	fsys    fs.FS
	origin  string
	exclude Set
	cfg     config

	mu   sync.Mutex
	list *List
}

// NewFile returns a lazily loaded list for the file at path. An empty name
// defaults to the file name without extension. A missing path fails with
// ErrNotFound; the contents are not read until first use.
func NewFile(path, name string, opts ...Option) (*File, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: wordlist file %q", ErrNotFound, path)
	}
	if name == "" {
		name = stem(path)
	}
	origin, err := filepath.Abs(path)
	if err != nil {
		origin = path
	}
	return newFile(nil, path, name, origin, newConfig(opts)), nil
}

// NewFSFile is NewFile reading from fsys.
func NewFSFile(fsys fs.FS, path, name string, opts ...Option) (*File, error) {
	if _, err := fs.Stat(fsys, path); err != nil {
		return nil, fmt.Errorf("%w: wordlist file %q", ErrNotFound, path)
	}
	if name == "" {
		name = stem(path)
	}
	return newFile(fsys, path, name, "", newConfig(opts)), nil
}

func newFile(fsys fs.FS, path, name, origin string, cfg config) *File {
	return &File{name: name, path: path, fsys: fsys, origin: origin, cfg: cfg}
}

func stem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Origin is the on-disk path of the file, or "" for embedded files.
func (f *File) Origin() string { return f.origin }

// Loaded reports whether the file has been read.
func (f *File) Loaded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list != nil
}

// Load reads the file if it has not been read yet.
func (f *File) Load() error {
	_, err := f.view()
	return err
}

// Reload discards the cached words and reads the file again.
func (f *File) Reload() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = nil
	return f.loadLocked()
}

func (f *File) view() (*List, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.list != nil {
		return f.list, nil
	}
	if err := f.loadLocked(); err != nil {
		return newList(nil, f.name, f.cfg), err
	}
	return f.list, nil
}

func (f *File) loadLocked() error {
	start := time.Now()
	var (
		data []byte
		err  error
	)
	if f.fsys != nil {
		data, err = fs.ReadFile(f.fsys, f.path)
	} else {
		data, err = os.ReadFile(f.path)
	}
	if err != nil {
		return fmt.Errorf("failed to read wordlist %s: %w", f.path, err)
	}
	words := ParseLines(data)
	if len(f.exclude) > 0 {
		kept := words[:0]
		for _, w := range words {
			if !f.exclude.Has(w) {
				kept = append(kept, w)
			}
		}
		words = kept
	}
	f.list = newList(words, f.name, f.cfg)
	log.Debugf("Loaded %d words from %s in %v", len(words), f.path, time.Since(start))
	return nil
}

// words returns the loaded list, logging read failures. Interface methods
// without an error return use it and see an empty list on failure.
func (f *File) words() *List {
	l, err := f.view()
	if err != nil {
		log.Errorf("Wordlist %q unavailable: %v", f.name, err)
	}
	return l
}

func (f *File) Name() string { return f.name }

func (f *File) Len() int { return f.words().Len() }

func (f *File) At(i int) (string, error) {
	l, err := f.view()
	if err != nil {
		return "", err
	}
	return l.At(i)
}

func (f *File) Slice(start, stop int) []string { return f.words().Slice(start, stop) }

func (f *File) Words() []string { return f.words().Words() }

func (f *File) Contains(word string) bool { return f.words().Contains(word) }

func (f *File) Sample() (string, error) {
	l, err := f.view()
	if err != nil {
		return "", err
	}
	return l.Sample()
}

func (f *File) SampleN(n int) ([]string, error) {
	return SampleUnique(f.Sample, n, SampleOptions{MaxAttempts: f.cfg.attempts})
}

// Filter loads the file and returns the kept words as a List.
func (f *File) Filter(keep Predicate) WordList {
	return f.words().Filter(keep)
}

// Subtract returns a new File over the same path that drops exclude on load.
// The receiver keeps its words.
func (f *File) Subtract(exclude Set) WordList {
	return &File{
		name:    f.name,
		path:    f.path,
		fsys:    f.fsys,
		origin:  f.origin,
		exclude: f.exclude.Union(exclude),
		cfg:     f.cfg,
	}
}

func (f *File) MatchesName(pattern string, parent match.Policy) bool {
	return match.Name(f.name, pattern, f.cfg.policy.Resolve(parent))
}
