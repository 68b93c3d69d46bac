package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTokenLength bounds a single category token accepted from users.
const MaxTokenLength = 256

// ContainsControlChars reports whether s has any non-printing runes.
func ContainsControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// IsValidToken checks if a category token or literal from a client should
// be processed. It rejects empty, overlong, invalid UTF-8 and control
// character input.
func IsValidToken(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if len(s) > MaxTokenLength {
		return false
	}
	if !utf8.ValidString(s) {
		return false
	}
	return !ContainsControlChars(s)
}

// SplitFields splits a line of user input into tokens on whitespace.
func SplitFields(line string) []string {
	return strings.Fields(line)
}
