/*
Package match resolves user queries against category names.

It covers three concerns: shell-style globbing where '*' also crosses '/',
deciding whether a category name is addressed by a query pattern, and
ranking near-miss candidates when nothing matched.
*/
package match

import (
	"regexp"
	"strings"
	"sync"
)

var globCache sync.Map // pattern -> *regexp.Regexp

// HasWildcard reports whether s contains glob metacharacters.
func HasWildcard(s string) bool {
	return strings.ContainsAny(s, "*?[")
}

// Glob reports whether name matches the shell-style pattern.
// Unlike path.Match, '*' also matches '/'.
func Glob(name, pattern string) bool {
	re := compileGlob(pattern)
	if re == nil {
		return name == pattern
	}
	return re.MatchString(name)
}

func compileGlob(pattern string) *regexp.Regexp {
	if cached, ok := globCache.Load(pattern); ok {
		return cached.(*regexp.Regexp)
	}
	re, err := regexp.Compile(translateGlob(pattern))
	if err != nil {
		return nil
	}
	globCache.Store(pattern, re)
	return re
}

// translateGlob turns a glob into an anchored regular expression.
// Unterminated classes are taken literally.
func translateGlob(pattern string) string {
	var b strings.Builder
	b.WriteString(`(?s)\A`)
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '*':
			b.WriteString(".*")
			for i+1 < len(runes) && runes[i+1] == '*' {
				i++
			}
		case '?':
			b.WriteByte('.')
		case '[':
			j := i + 1
			if j < len(runes) && runes[j] == '!' {
				j++
			}
			if j < len(runes) && runes[j] == ']' {
				j++
			}
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j >= len(runes) {
				b.WriteString(`\[`)
				continue
			}
			class := string(runes[i+1 : j])
			i = j
			negate := strings.HasPrefix(class, "!")
			if negate {
				class = class[1:]
			}
			class = strings.ReplaceAll(class, `\`, `\\`)
			class = strings.ReplaceAll(class, `[`, `\[`)
			b.WriteByte('[')
			if negate {
				b.WriteByte('^')
			} else if strings.HasPrefix(class, "^") {
				b.WriteByte('\\')
			}
			b.WriteString(class)
			b.WriteByte(']')
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString(`\z`)
	return b.String()
}
