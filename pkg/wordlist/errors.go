package wordlist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound reports a missing source path or category.
	ErrNotFound = errors.New("not found")
	// ErrEmpty reports sampling from a collection with no words.
	ErrEmpty = errors.New("empty word list")
	// ErrConflict reports an Add under an existing name with the Fail strategy.
	ErrConflict = errors.New("conflicting wordlist")
	// ErrInvalidValue reports a value that cannot become a word list.
	ErrInvalidValue = errors.New("invalid wordlist value")
	// ErrUnresolved is matched by every *UnresolvedError.
	ErrUnresolved = errors.New("unresolved category")
	// ErrOutOfRange reports an index past either end of a collection.
	ErrOutOfRange = errors.New("index out of range")
)

// UnresolvedError is returned when a category query matches nothing.
// Suggestions holds the closest known category names, best first.
type UnresolvedError struct {
	Query       string
	Suggestions []string
}

func (e *UnresolvedError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("No matching wordlist '%s'. No close matches found.", e.Query)
	}
	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = "'" + s + "'"
	}
	return fmt.Sprintf("No matching wordlist '%s'. Did you mean %s?", e.Query, joinOr(quoted))
}

// Is lets errors.Is(err, ErrUnresolved) match.
func (e *UnresolvedError) Is(target error) bool {
	return target == ErrUnresolved
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

func emptyError(name string) error {
	if name == "" {
		return ErrEmpty
	}
	return fmt.Errorf("%w: %q", ErrEmpty, name)
}
