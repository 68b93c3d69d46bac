package match

import "strings"

// Policy controls how broadly a category name accepts a query pattern.
type Policy int

const (
	// Inherit defers to the enclosing collection's policy.
	Inherit Policy = iota
	// Exact accepts only the name itself, ignoring surrounding slashes.
	Exact
	// Prefix also accepts globs and path prefixes of the name.
	Prefix
	// Permissive also accepts path suffixes and any full path segment.
	// Category lookups under Permissive search inside named groups, so a
	// bare subcategory such as "cats" finds "nouns/cats".
	Permissive
)

// ParsePolicy maps a config value to a Policy. Unknown values yield Permissive.
func ParsePolicy(s string) Policy {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return Exact
	case "prefix":
		return Prefix
	case "inherit":
		return Inherit
	default:
		return Permissive
	}
}

func (p Policy) String() string {
	switch p {
	case Inherit:
		return "inherit"
	case Exact:
		return "exact"
	case Prefix:
		return "prefix"
	default:
		return "permissive"
	}
}

// Resolve returns p, or parent when p is Inherit.
func (p Policy) Resolve(parent Policy) Policy {
	if p == Inherit {
		if parent == Inherit {
			return Permissive
		}
		return parent
	}
	return p
}

// Name reports whether a category called name is addressed by pattern.
//
// An empty name never matches. Under Permissive, with name "nouns/animals",
// the patterns "nouns", "nouns/", "nouns/*", "animals", "/animals" and
// "nouns/animals" all match, while "anouns" does not.
func Name(name, pattern string, policy Policy) bool {
	if name == "" {
		return false
	}
	trimmed := strings.Trim(pattern, "/")
	if trimmed == name {
		return true
	}
	if policy == Exact {
		return false
	}
	if trimmed != "" && Glob(name, trimmed) {
		return true
	}
	if strings.HasPrefix(name, strings.TrimRight(pattern, "/")+"/") {
		return true
	}
	if policy == Prefix {
		return false
	}
	if strings.HasSuffix(name, "/"+strings.TrimLeft(pattern, "/")) {
		return true
	}
	return trimmed != "" && Glob(name, "*/"+trimmed+"/*")
}
