// Package words embeds the builtin word sets. Each top-level directory is
// one set; its subdirectories are categories and each .txt file one list.
package words

import (
	"embed"
	"io/fs"
	"sort"
)

//go:embed all:common
var FS embed.FS

// DefaultSet is the builtin set loaded when no source is configured.
const DefaultSet = "common"

// Sets lists the builtin set names.
func Sets() []string {
	entries, err := fs.ReadDir(FS, ".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// IsSet reports whether name is a builtin set.
func IsSet(name string) bool {
	if !fs.ValidPath(name) || name == "." {
		return false
	}
	info, err := fs.Stat(FS, name)
	return err == nil && info.IsDir()
}
