package utils

import (
	"strings"
)

// JoinWords joins words with sep, replacing spaces inside each word with
// sep so multi-word entries stay one visual unit.
func JoinWords(words []string, sep string) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strings.ReplaceAll(w, " ", sep))
	}
	return b.String()
}
