package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPerSegment(t *testing.T) {
	tbl := New(Builtin)
	tests := []struct {
		in, want string
	}{
		{"a", "adjectives"},
		{"a/colors", "adjectives/colors"},
		{"n/a", "nouns/adjectives"},
		{"nouns/cats", "nouns/cats"},
		{"cats", "cats"},
		{"", ""},
		{"u", "uuid"},
		{"u/8", "uuid/8"},
		{"u(8)", "uuid(8)"},
		{"(8)", "(8)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, tbl.Expand(tt.in))
		})
	}
}

func TestExpandIsSinglePass(t *testing.T) {
	tbl := New(map[string]string{"x": "y", "y": "z"})
	assert.Equal(t, "y", tbl.Expand("x"))
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	assert.Equal(t, "a/b", tbl.Expand("a/b"))
}

func TestUpdateConflict(t *testing.T) {
	tbl := New(map[string]string{"a": "adjectives"})

	err := tbl.Update(map[string]string{"a": "animals", "b": "birds"}, false)
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "a")
	_, ok := tbl.Lookup("b")
	assert.False(t, ok, "a failed update must not apply partially")

	require.NoError(t, tbl.Update(map[string]string{"a": "animals"}, true))
	got, ok := tbl.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "animals", got)

	require.NoError(t, tbl.Update(map[string]string{"c": "colors"}, false))
	assert.Equal(t, 2, tbl.Len())

	tbl.Remove("c")
	assert.Equal(t, map[string]string{"a": "animals"}, tbl.Entries())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, "nouns", Default().Expand("nn"))
}
