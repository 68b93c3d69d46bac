package phrase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultSeparator joins the words of a phrase.
const DefaultSeparator = "-"

// DefaultSampleSize is the Sample count when none is given.
const DefaultSampleSize = 10

// Case selects how a finished phrase is cased.
type Case string

const (
	CaseNone  Case = ""
	CaseLower Case = "lower"
	CaseUpper Case = "upper"
	CaseTitle Case = "title"
)

// ParseCase maps a config value to a Case. Unknown values leave phrases
// untouched.
func ParseCase(s string) Case {
	switch c := Case(strings.ToLower(strings.TrimSpace(s))); c {
	case CaseLower, CaseUpper, CaseTitle:
		return c
	default:
		return CaseNone
	}
}

// Apply cases s. A Caser is stateful, so one is made per call.
func (c Case) Apply(s string) string {
	switch c {
	case CaseLower:
		return cases.Lower(language.Und).String(s)
	case CaseUpper:
		return cases.Upper(language.Und).String(s)
	case CaseTitle:
		return cases.Title(language.Und).String(s)
	default:
		return s
	}
}

type phraseConfig struct {
	sep      string
	casing   Case
	literals bool
}

// Option adjusts a single Generate or GenerateN call.
type Option func(*phraseConfig)

// WithSeparator joins words with sep. Spaces inside words are replaced
// with sep too.
func WithSeparator(sep string) Option {
	return func(c *phraseConfig) { c.sep = sep }
}

// WithCase cases the finished phrase.
func WithCase(casing Case) Option {
	return func(c *phraseConfig) { c.casing = casing }
}

// WithLiterals makes every bare token without a '/' appear verbatim,
// even when it also names a category.
func WithLiterals(on bool) Option {
	return func(c *phraseConfig) { c.literals = on }
}
