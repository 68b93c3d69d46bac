package wordlist

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/bastiangx/randomname/words"
	"gopkg.in/yaml.v3"
)

type sourceKind int

const (
	kindWords sourceKind = iota + 1
	kindPath
	kindFS
	kindGenerator
	kindEntries
	kindExisting
)

// Source describes where a word list comes from. Build turns it into a
// WordList; Coerce accepts a Source or any of the plain values it wraps.
type Source struct {
	kind    sourceKind
	words   []string
	path    string
	fsys    fs.FS
	fn      Generator
	entries []Entry
	list    WordList
}

// Entry is one named member of an Entries source. Value is anything
// Coerce accepts.
type Entry struct {
	Name  string
	Value any
}

// Words is a source of literal words.
func Words(words ...string) Source {
	return Source{kind: kindWords, words: words}
}

// Path is a source read from disk: a directory tree of .txt files, a single
// word file, or a .yaml/.yml mapping. A relative path that does not exist
// on disk may name a builtin set.
func Path(p string) Source {
	return Source{kind: kindPath, path: p}
}

// FS is a directory tree source inside fsys.
func FS(fsys fs.FS, dir string) Source {
	return Source{kind: kindFS, fsys: fsys, path: dir}
}

// Generated is a source backed by a generator function.
func Generated(fn Generator) Source {
	return Source{kind: kindGenerator, fn: fn}
}

// Entries is a source of named members, built in order into a Composite.
func Entries(entries ...Entry) Source {
	return Source{kind: kindEntries, entries: entries}
}

// Existing wraps a WordList as a source.
func Existing(wl WordList) Source {
	return Source{kind: kindExisting, list: wl}
}

// Build creates the word list. name overrides the default name derived
// from the source.
func (s Source) Build(name string, opts ...Option) (WordList, error) {
	return s.build(name, newConfig(opts))
}

func (s Source) build(name string, cfg config) (WordList, error) {
	switch s.kind {
	case kindWords:
		return newList(slices.Clone(s.words), name, cfg), nil
	case kindPath:
		return buildPath(s.path, name, cfg)
	case kindFS:
		if name == "" {
			name = path.Base(s.path)
		}
		return fromFS(s.fsys, s.path, name, "", cfg)
	case kindGenerator:
		return newFunc(s.fn, name, nil, cfg), nil
	case kindEntries:
		return buildEntries(s.entries, name, cfg)
	case kindExisting:
		if s.list == nil {
			return nil, fmt.Errorf("%w: nil wordlist", ErrInvalidValue)
		}
		return s.list, nil
	}
	return nil, fmt.Errorf("%w: empty source", ErrInvalidValue)
}

// Coerce turns value into a WordList named name.
//
// Accepted values: a WordList (returned unchanged), a Source, []string,
// a path string, a Generator or compatible func, []Entry, and maps from
// names to any accepted value (built in sorted key order). Anything else
// fails with ErrInvalidValue; a missing path fails with ErrNotFound.
func Coerce(value any, name string, opts ...Option) (WordList, error) {
	return coerce(value, name, newConfig(opts))
}

func coerce(value any, name string, cfg config) (WordList, error) {
	switch v := value.(type) {
	case WordList:
		return v, nil
	case Source:
		return v.build(name, cfg)
	case []string:
		return Words(v...).build(name, cfg)
	case string:
		return Path(v).build(name, cfg)
	case Generator:
		return Generated(v).build(name, cfg)
	case func(...string) (string, error):
		return Generated(v).build(name, cfg)
	case func() (string, error):
		return Generated(func(...string) (string, error) { return v() }).build(name, cfg)
	case func() string:
		return Generated(func(...string) (string, error) { return v(), nil }).build(name, cfg)
	case []Entry:
		return Entries(v...).build(name, cfg)
	case map[string][]string:
		return Entries(sortedEntries(v)...).build(name, cfg)
	case map[string]any:
		return Entries(sortedEntries(v)...).build(name, cfg)
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrInvalidValue)
	}
	return nil, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, value)
}

func sortedEntries[V any](m map[string]V) []Entry {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]Entry, len(keys))
	for i, k := range keys {
		entries[i] = Entry{Name: k, Value: m[k]}
	}
	return entries
}

func buildEntries(entries []Entry, name string, cfg config) (WordList, error) {
	children := make([]WordList, 0, len(entries))
	for _, e := range entries {
		wl, err := coerce(e.Value, e.Name, cfg)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Name, err)
		}
		children = append(children, wl)
	}
	return newComposite(children, name, cfg), nil
}

func buildPath(p, name string, cfg config) (WordList, error) {
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if words.IsSet(p) {
				if name == "" {
					name = p
				}
				return fromFS(words.FS, p, name, "", cfg)
			}
			return nil, fmt.Errorf("%w: wordlist source %q", ErrNotFound, p)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", p, err)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = p
	}
	if info.IsDir() {
		if name == "" {
			name = filepath.Base(abs)
		}
		return fromFS(os.DirFS(abs), ".", name, abs, cfg)
	}
	if name == "" {
		name = stem(p)
	}
	if DetectFileFormat(p) == FormatYAML {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		return fromYAML(data, name, filepath.Dir(abs), cfg)
	}
	return newFile(nil, p, name, abs, cfg), nil
}

// fromFS builds a composite of every .txt file under dir, each named by its
// path relative to dir without extension. A .blacklist file removes its
// words from every list in its directory and below. Hidden directories
// are skipped.
func fromFS(fsys fs.FS, dir, name, origin string, cfg config) (*Composite, error) {
	blacklists := map[string]Set{}
	var files []string
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		switch DetectFileFormat(d.Name()) {
		case FormatBlacklist:
			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return fmt.Errorf("failed to read blacklist %s: %w", p, err)
			}
			blacklists[path.Dir(p)] = NewSet(ParseLines(data)...)
		case FormatText:
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no word files under %s", ErrNotFound, dir)
	}

	children := make([]WordList, 0, len(files))
	for _, p := range files {
		rel := p
		if dir != "." {
			rel = strings.TrimPrefix(p, dir+"/")
		}
		var fileOrigin string
		if origin != "" {
			fileOrigin = filepath.Join(origin, filepath.FromSlash(rel))
		}
		f := newFile(fsys, p, strings.TrimSuffix(rel, path.Ext(rel)), fileOrigin, cfg)
		f.exclude = inheritedBlacklist(blacklists, dir, p)
		children = append(children, f)
	}
	return newComposite(children, name, cfg), nil
}

func inheritedBlacklist(blacklists map[string]Set, root, p string) Set {
	var out Set
	for d := path.Dir(p); ; d = path.Dir(d) {
		if s, ok := blacklists[d]; ok {
			out = out.Union(s)
		}
		if d == root || d == "." || d == "/" {
			return out
		}
	}
}

// fromYAML builds a tree from a YAML mapping, keeping key order. Sequences
// become lists, nested mappings composites, and scalars are paths relative
// to baseDir.
func fromYAML(data []byte, name, baseDir string, cfg config) (WordList, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidValue)
		}
		node = node.Content[0]
	}
	return fromYAMLNode(node, name, baseDir, cfg)
}

func fromYAMLNode(node *yaml.Node, name, baseDir string, cfg config) (WordList, error) {
	switch node.Kind {
	case yaml.MappingNode:
		children := make([]WordList, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			child, err := fromYAMLNode(node.Content[i+1], key, baseDir, cfg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			children = append(children, child)
		}
		return newComposite(children, name, cfg), nil
	case yaml.SequenceNode:
		words := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: line %d: expected a word", ErrInvalidValue, item.Line)
			}
			if w := strings.TrimSpace(item.Value); w != "" {
				words = append(words, w)
			}
		}
		return newList(words, name, cfg), nil
	case yaml.ScalarNode:
		p := node.Value
		if !filepath.IsAbs(p) && !words.IsSet(p) {
			p = filepath.Join(baseDir, p)
		}
		return buildPath(p, name, cfg)
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias, name, baseDir, cfg)
	}
	return nil, fmt.Errorf("%w: unsupported YAML node at line %d", ErrInvalidValue, node.Line)
}
