package wordlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(values ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		v := values[i%len(values)]
		i++
		return v, nil
	}
}

func TestSampleUniqueKeepsFirstSeenOrder(t *testing.T) {
	got, err := SampleUnique(sequence("a", "a", "b", "a", "c"), 3, SampleOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSampleUniqueStopsWhenExhausted(t *testing.T) {
	calls := 0
	produce := func() (string, error) {
		calls++
		return "same", nil
	}
	got, err := SampleUnique(produce, 5, SampleOptions{MaxAttempts: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{"same"}, got)
	assert.Equal(t, 11, calls, "one success plus one exhausted slot")
}

func TestSampleUniqueAllowDuplicates(t *testing.T) {
	got, err := SampleUnique(sequence("x"), 3, SampleOptions{AllowDuplicates: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, got)
}

func TestSampleUniqueErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := SampleUnique(func() (string, error) { return "", boom }, 2, SampleOptions{})
	assert.ErrorIs(t, err, boom)

	got, err := SampleUnique(sequence("a"), 0, SampleOptions{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSampleUniqueGeneric(t *testing.T) {
	n := 0
	got, err := SampleUnique(func() (int, error) { n++; return n % 3, nil }, 3, SampleOptions{})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, got)
}

func TestReseedRepeatsSharedDraws(t *testing.T) {
	l := NewList([]string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, "w")
	draw := func() []string {
		got, err := SampleUnique(l.Sample, 8, SampleOptions{AllowDuplicates: true})
		require.NoError(t, err)
		return got
	}
	Reseed(99)
	first := draw()
	Reseed(99)
	assert.Equal(t, first, draw())
}

func BenchmarkSampleUnique(b *testing.B) {
	l := NewList([]string{"red", "blue", "green", "mauve", "teal", "amber", "ivory", "coral"}, "colors")
	for i := 0; i < b.N; i++ {
		if _, err := SampleUnique(l.Sample, 5, SampleOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}
