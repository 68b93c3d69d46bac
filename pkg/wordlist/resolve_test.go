package wordlist

import (
	"errors"
	"strings"
	"testing"

	"github.com/bastiangx/randomname/pkg/alias"
	"github.com/bastiangx/randomname/pkg/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T, opts ...Option) *Composite {
	t.Helper()
	opts = append([]Option{WithAliases(alias.New(alias.Builtin))}, opts...)
	wl, err := Coerce(map[string]any{
		"adjectives": map[string][]string{
			"colors": {"red", "blue"},
			"sizes":  {"big", "small"},
		},
		"nouns": map[string][]string{
			"cats": {"tabby", "siamese"},
			"dogs": {"beagle"},
		},
		"category": []string{"misc"},
	}, "", opts...)
	require.NoError(t, err)
	root, ok := wl.(*Composite)
	require.True(t, ok)
	return root
}

func TestSubsetPaths(t *testing.T) {
	root := testTree(t)
	assert.Equal(t, []string{"adjectives/colors", "adjectives/sizes", "category", "nouns/cats", "nouns/dogs"}, root.LeafNames())

	tests := []struct {
		patterns []string
		want     []string
	}{
		{[]string{"nouns"}, []string{"tabby", "siamese", "beagle"}},
		{[]string{"nouns/"}, []string{"tabby", "siamese", "beagle"}},
		{[]string{"nouns/cats"}, []string{"tabby", "siamese"}},
		{[]string{"/nouns/cats/"}, []string{"tabby", "siamese"}},
		{[]string{"cats"}, []string{"tabby", "siamese"}},
		{[]string{"nouns/*"}, []string{"tabby", "siamese", "beagle"}},
		{[]string{"n/cats"}, []string{"tabby", "siamese"}},
		{[]string{"a/colors,n/dogs"}, []string{"red", "blue", "beagle"}},
		{[]string{"a/colors", "n/dogs"}, []string{"red", "blue", "beagle"}},
		{[]string{"colors", "adjectives/colors"}, []string{"red", "blue"}},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.patterns, "|"), func(t *testing.T) {
			sub, err := root.Subset(tt.patterns...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sub.Words())
		})
	}
}

func TestSubsetNamesResult(t *testing.T) {
	root := testTree(t)
	sub, err := root.Subset("a/colors, n/dogs")
	require.NoError(t, err)
	assert.Equal(t, "a/colors,n/dogs", sub.Name())

	same, err := root.Subset()
	require.NoError(t, err)
	assert.Same(t, root, same)
}

func TestSubsetUnresolvedSuggests(t *testing.T) {
	root := testTree(t)
	_, err := root.Subset("typo_category")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnresolved))

	var unresolved *UnresolvedError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, "typo_category", unresolved.Query)
	assert.Equal(t, []string{"category"}, unresolved.Suggestions)
	assert.Equal(t, "No matching wordlist 'typo_category'. Did you mean 'category'?", err.Error())

	_, err = root.Subset("qqqqqq")
	require.ErrorAs(t, err, &unresolved)
	assert.Empty(t, unresolved.Suggestions)
	assert.Equal(t, "No matching wordlist 'qqqqqq'. No close matches found.", err.Error())
}

func TestUnresolvedErrorListsAlternatives(t *testing.T) {
	err := &UnresolvedError{Query: "x", Suggestions: []string{"a", "b", "c"}}
	assert.Equal(t, "No matching wordlist 'x'. Did you mean 'a', 'b' or 'c'?", err.Error())
}

func TestSubsetRejectsPartialSegments(t *testing.T) {
	root := testTree(t)
	_, err := root.Subset("ouns")
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestSubsetLiterals(t *testing.T) {
	root := testTree(t)
	sub, err := root.SubsetLiterals("nouns/dogs", "hello", "world")
	require.NoError(t, err)
	kids := sub.Children()
	require.Len(t, kids, 2)
	assert.Equal(t, LiteralsName, kids[1].Name())
	assert.Equal(t, []string{"beagle", "hello", "world"}, sub.Words())

	_, err = root.SubsetLiterals("nouns/zebras")
	assert.ErrorIs(t, err, ErrUnresolved)
}

func TestSubsetLiteralsShadowCategories(t *testing.T) {
	root := testTree(t)
	sub, err := root.SubsetLiterals("a/colors", "cats", "n")
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue", "cats", "n"}, sub.Words())
}

func TestSubsetExactPolicy(t *testing.T) {
	root := testTree(t, WithPolicy(match.Exact))

	_, err := root.Subset("cats")
	assert.ErrorIs(t, err, ErrUnresolved)

	sub, err := root.Subset("nouns/cats")
	require.NoError(t, err)
	assert.Equal(t, []string{"tabby", "siamese"}, sub.Words())
}

func TestSubsetPrefixPolicy(t *testing.T) {
	root := testTree(t, WithPolicy(match.Prefix))

	_, err := root.Subset("cats")
	assert.ErrorIs(t, err, ErrUnresolved)

	sub, err := root.Subset("nouns/cats")
	require.NoError(t, err)
	assert.Equal(t, []string{"tabby", "siamese"}, sub.Words())

	sub, err = root.Subset("nouns")
	require.NoError(t, err)
	assert.Equal(t, []string{"tabby", "siamese", "beagle"}, sub.Words())
}

func TestSubsetBindsFuncArgs(t *testing.T) {
	root := testTree(t)
	echo := func(args ...string) (string, error) { return "id-" + strings.Join(args, ""), nil }
	require.NoError(t, root.Add(Generated(echo), "uuid", Merge))

	sub, err := root.Subset("uuid/8")
	require.NoError(t, err)
	w, err := sub.Sample()
	require.NoError(t, err)
	assert.Equal(t, "id-8", w)

	sub, err = root.Subset("u(4)")
	require.NoError(t, err)
	w, err = sub.Sample()
	require.NoError(t, err)
	assert.Equal(t, "id-4", w)
}

func TestSubsetThroughNamedSource(t *testing.T) {
	inner := testTree(t).WithName("builtin")
	root := NewComposite([]WordList{inner}, "")

	sub, err := root.Subset("builtin/nouns/dogs")
	require.NoError(t, err)
	assert.Equal(t, []string{"beagle"}, sub.Words())

	sub, err = root.Subset("nouns/dogs")
	require.NoError(t, err)
	assert.Equal(t, []string{"beagle"}, sub.Words())

	assert.Contains(t, root.LeafNames(), "builtin/nouns/dogs")
}

func TestSplitPatterns(t *testing.T) {
	assert.Equal(t, []string{"a", "n", "v"}, SplitPatterns([]string{"a, n", "", " v ,"}))
	assert.Empty(t, SplitPatterns(nil))
}
