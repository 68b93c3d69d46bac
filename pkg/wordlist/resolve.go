package wordlist

import (
	"strings"

	"github.com/bastiangx/randomname/pkg/match"
)

// LiteralsName names the list that collects unresolved tokens in
// SubsetLiterals.
const LiteralsName = "literals"

// SplitPatterns splits each pattern on ',' and drops blanks, so "a,n" and
// "a", "n" address the same categories.
func SplitPatterns(patterns []string) []string {
	var out []string
	for _, p := range patterns {
		for _, part := range strings.Split(p, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Subset returns a composite of every descendant addressed by patterns.
// With no patterns it returns c. A pattern that matches nothing fails
// with an *UnresolvedError.
func (c *Composite) Subset(patterns ...string) (*Composite, error) {
	return c.subset(patterns, false)
}

// SubsetLiterals is Subset where every bare pattern without '/' is a
// literal word, even when a category of that name exists. Literals are
// collected into one list named LiteralsName. Path patterns must resolve.
func (c *Composite) SubsetLiterals(patterns ...string) (*Composite, error) {
	return c.subset(patterns, true)
}

func (c *Composite) subset(patterns []string, literals bool) (*Composite, error) {
	names := SplitPatterns(patterns)
	if len(names) == 0 {
		return c, nil
	}
	var (
		matches []WordList
		words   []string
	)
	seen := map[WordList]struct{}{}
	for _, p := range names {
		if literals && !strings.Contains(p, "/") {
			words = append(words, p)
			continue
		}
		found, err := c.resolve(p, true, match.Inherit)
		if err != nil {
			return nil, err
		}
		for _, wl := range found {
			if _, dup := seen[wl]; dup {
				continue
			}
			seen[wl] = struct{}{}
			matches = append(matches, wl)
		}
	}
	if len(words) > 0 {
		matches = append(matches, newList(words, LiteralsName, c.cfg))
	}
	return c.derive(matches, strings.Join(names, ",")), nil
}

// resolve returns the descendants addressed by pattern.
//
// The pattern is alias-expanded and stripped of this composite's name.
// Each matching leaf is taken; a matching composite contributes either
// all of its children or, when the pattern continues past its name, the
// resolution of the remainder. Unnamed composites are always searched
// transparently. Named composites that do not match are searched only
// under match.Permissive, which is how "cats" reaches "nouns/cats".
func (c *Composite) resolve(pattern string, require bool, parent match.Policy) ([]WordList, error) {
	policy := c.cfg.policy.Resolve(parent)
	expanded := c.cfg.aliases.Expand(pattern)
	trimmed := strings.Trim(expanded, "/")
	if c.name != "" && trimmed == c.name {
		return []WordList{c}, nil
	}
	rest := expanded
	if c.name != "" {
		if after, ok := strings.CutPrefix(trimmed, c.name+"/"); ok {
			rest = after
		}
	}

	var out []WordList
	for _, child := range c.snapshot() {
		sub, isComposite := child.(*Composite)
		if !child.MatchesName(rest, policy) {
			if isComposite && (sub.name == "" || policy == match.Permissive) {
				found, _ := sub.resolve(rest, false, policy)
				out = append(out, found...)
			}
			continue
		}
		if !isComposite {
			if fn, ok := child.(*Func); ok {
				child = fn.Bind(rest)
			}
			out = append(out, child)
			continue
		}
		suffix, ok := strings.CutPrefix(strings.Trim(rest, "/"), sub.name+"/")
		if ok && suffix != "" && sub.name != "" {
			found, _ := sub.resolve(suffix, false, policy)
			out = append(out, found...)
			continue
		}
		out = append(out, sub.snapshot()...)
	}
	if len(out) == 0 && require {
		return nil, c.unresolved(pattern, expanded)
	}
	return out, nil
}

func (c *Composite) unresolved(query, expanded string) error {
	return &UnresolvedError{
		Query:       query,
		Suggestions: c.CloseMatches(expanded),
	}
}

// CloseMatches returns the leaf names most similar to query, best first.
func (c *Composite) CloseMatches(query string) []string {
	return match.CloseNames(query, c.LeafNames(), match.Options{})
}
