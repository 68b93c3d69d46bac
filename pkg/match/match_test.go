package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlob(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"nouns/cats", "nouns/*", true},
		{"nouns/cats/big", "nouns/*", true},
		{"nouns/cats", "n*s", true},
		{"nouns/cats", "nouns/c?ts", true},
		{"nouns/cats", "nouns/[bc]ats", true},
		{"nouns/cats", "nouns/[!c]ats", false},
		{"nouns/cats", "verbs/*", false},
		{"a[b", "a[b", true},
		{"a.b", "a.b", true},
		{"axb", "a.b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name+"~"+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, Glob(tt.name, tt.pattern))
		})
	}
}

func TestNamePermissive(t *testing.T) {
	name := "nouns/animals"
	for _, p := range []string{"nouns", "nouns/", "nouns/*", "animals", "/animals", "nouns/animals", "/nouns/animals/"} {
		assert.True(t, Name(name, p, Permissive), "pattern %q", p)
	}
	for _, p := range []string{"anouns", "nouns/animalsxx", "ouns", "", "verbs"} {
		assert.False(t, Name(name, p, Permissive), "pattern %q", p)
	}
	assert.True(t, Name("asdf/qwer/zxcv", "qwer", Permissive))
	assert.False(t, Name("rand", "random", Permissive))
}

func TestNamePolicies(t *testing.T) {
	assert.False(t, Name("", "anything", Permissive))

	assert.True(t, Name("nouns/animals", "/nouns/animals/", Exact))
	assert.False(t, Name("nouns/animals", "nouns", Exact))
	assert.False(t, Name("nouns/animals", "nouns/*", Exact))

	assert.True(t, Name("nouns/animals", "nouns", Prefix))
	assert.True(t, Name("nouns/animals", "nouns/*", Prefix))
	assert.False(t, Name("nouns/animals", "animals", Prefix))
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, Exact, ParsePolicy("Exact"))
	assert.Equal(t, Prefix, ParsePolicy(" prefix "))
	assert.Equal(t, Permissive, ParsePolicy("bogus"))
	assert.Equal(t, Exact, Inherit.Resolve(Exact))
	assert.Equal(t, Permissive, Inherit.Resolve(Inherit))
	assert.Equal(t, Prefix, Prefix.Resolve(Exact))
}

func TestSequenceMatcherRatios(t *testing.T) {
	tests := []struct {
		a, b                   string
		ratio, quick, realQuik float64
	}{
		{"abcd", "bcde", 0.75, 0.75, 1.0},
		{"cats", "catz", 0.75, 0.75, 1.0},
		{"", "", 1.0, 1.0, 1.0},
		{"abc", "xyz", 0, 0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			sm := NewSequenceMatcher(tt.a, tt.b)
			assert.InDelta(t, tt.ratio, sm.Ratio(), 1e-9)
			assert.InDelta(t, tt.quick, sm.QuickRatio(), 1e-9)
			assert.InDelta(t, tt.realQuik, sm.RealQuickRatio(), 1e-9)
		})
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, 1.0, Score("nouns", "nouns", DefaultCutoff))
	assert.InDelta(t, 0.9, Score("noun", "nouns", DefaultCutoff), 1e-9)
	assert.InDelta(t, 0.75, Score("cats", "catz", DefaultCutoff), 1e-9)
	assert.InDelta(t, 2.0/7.0, Score("ma", "animals", DefaultCutoff), 1e-9)
	assert.Equal(t, 0.0, Score("xyz", "nouns", DefaultCutoff))
	assert.Equal(t, 1.0, Score("n*", "nouns", DefaultCutoff))
	assert.Equal(t, globMismatch, Score("x*", "nouns", DefaultCutoff))
}

func TestScoresWeightsDeeperSegments(t *testing.T) {
	scores := Scores("nouns/catz", []string{"nouns/cats"}, DefaultCutoff, DefaultSkew)
	require.Len(t, scores, 1)
	assert.InDelta(t, 1.0+1.1*0.75, scores[0], 1e-9)
}

func TestCloseMatchesSuggestsTypo(t *testing.T) {
	candidates := []string{"nouns/cats", "category", "verbs/move"}
	got := CloseNames("typo_category", candidates, Options{})
	assert.Equal(t, []string{"category"}, got)
}

func TestCloseMatchesOrderAndDropoff(t *testing.T) {
	got := CloseMatches("cats", []string{"cats", "nouns/cats", "dogs"}, Options{})
	require.Len(t, got, 2)
	assert.Equal(t, "nouns/cats", got[0].Name)
	assert.Equal(t, "cats", got[1].Name)
	assert.InDelta(t, 1.1, got[0].Score, 1e-9)
}

func TestCloseMatchesLimitAndZero(t *testing.T) {
	candidates := []string{"a1", "a2", "a3", "a4", "a5", "a6", "a7"}
	got := CloseNames("a", candidates, Options{Limit: 3})
	assert.Equal(t, []string{"a1", "a2", "a3"}, got)

	assert.Empty(t, CloseMatches("qqq", []string{"nouns", "verbs"}, Options{}))
	assert.Empty(t, CloseMatches("qqq", nil, Options{}))
}

func TestCloseMatchesDeterministic(t *testing.T) {
	candidates := []string{"adjectives/colors", "adjectives/sizes", "nouns/cats", "nouns/dogs"}
	first := CloseMatches("nouns/cts", candidates, Options{})
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CloseMatches("nouns/cts", candidates, Options{}))
	}
}

var benchNames = []string{
	"adjectives/colors", "adjectives/moods", "adjectives/sizes", "adjectives/textures",
	"nouns/cats", "nouns/dogs", "nouns/food", "nouns/places", "nouns/tools",
	"verbs/craft", "verbs/motion", "verbs/sound", "names/people", "ipsum/latin",
}

func BenchmarkCloseMatches(b *testing.B) {
	for i := 0; i < b.N; i++ {
		CloseMatches("nouns/catz", benchNames, Options{})
	}
}

func BenchmarkRatio(b *testing.B) {
	m := NewSequenceMatcher("textures", "texturez")
	for i := 0; i < b.N; i++ {
		m.Ratio()
	}
}
