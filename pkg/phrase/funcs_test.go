package phrase

import (
	"strconv"
	"testing"

	"github.com/bastiangx/randomname/pkg/wordlist"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncs(t *testing.T) {
	funcs := Funcs(wordlist.NewRand(7))

	id, err := funcs["uuid"]()
	require.NoError(t, err)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	short, err := funcs["uuid"]("8")
	require.NoError(t, err)
	assert.Len(t, short, 8)

	_, err = funcs["uuid"]("x")
	assert.ErrorIs(t, err, wordlist.ErrInvalidValue)

	u, err := funcs["ulid"]()
	require.NoError(t, err)
	assert.Len(t, u, 26)
	tail, err := funcs["ulid"]("6")
	require.NoError(t, err)
	assert.Len(t, tail, 6)

	h, err := funcs["hex"]("20")
	require.NoError(t, err)
	assert.Len(t, h, 20)
	_, err = strconv.ParseUint(h[:16], 16, 64)
	assert.NoError(t, err)

	for i := 0; i < 100; i++ {
		s, err := funcs["number"]("3", "5")
		require.NoError(t, err)
		n, err := strconv.Atoi(s)
		require.NoError(t, err)
		assert.True(t, n >= 3 && n <= 5, n)
	}
	_, err = funcs["number"]("0")
	assert.ErrorIs(t, err, wordlist.ErrInvalidValue)
}

func TestFuncsFollowSeed(t *testing.T) {
	a, err := Funcs(wordlist.NewRand(1))["uuid"]()
	require.NoError(t, err)
	b, err := Funcs(wordlist.NewRand(1))["uuid"]()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestULIDEntropyFollowsSeed(t *testing.T) {
	a, err := Funcs(wordlist.NewRand(3))["ulid"]()
	require.NoError(t, err)
	b, err := Funcs(wordlist.NewRand(3))["ulid"]()
	require.NoError(t, err)
	require.Len(t, a, 26)
	assert.Equal(t, a[10:], b[10:])

	tailA, err := Funcs(wordlist.NewRand(3))["ulid"]("16")
	require.NoError(t, err)
	tailB, err := Funcs(wordlist.NewRand(3))["ulid"]("16")
	require.NoError(t, err)
	assert.Equal(t, tailA, tailB)
	assert.Equal(t, a[10:], tailA)
}
