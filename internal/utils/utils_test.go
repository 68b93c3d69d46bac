package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidToken(t *testing.T) {
	assert.True(t, IsValidToken("a/colors"))
	assert.True(t, IsValidToken("ice cream"))
	assert.False(t, IsValidToken(""))
	assert.False(t, IsValidToken("   "))
	assert.False(t, IsValidToken("a\x00"))
	assert.False(t, IsValidToken(string([]byte{0xff, 0xfe})))
	assert.False(t, IsValidToken(strings.Repeat("a", MaxTokenLength+1)))
}

func TestJoinWords(t *testing.T) {
	assert.Equal(t, "red-ice-cream", JoinWords([]string{"red", "ice cream"}, "-"))
	assert.Equal(t, "solo", JoinWords([]string{"solo"}, "_"))
	assert.Equal(t, "", JoinWords(nil, "-"))
}

func TestSeenFilter(t *testing.T) {
	f := NewSeenFilter(4)
	assert.True(t, f.ShouldInclude("cat"))
	assert.False(t, f.ShouldInclude("cat"))
	assert.True(t, f.ShouldInclude("Cat"))
}

func TestSaveAndLoadTOMLFile(t *testing.T) {
	type section struct {
		Name  string `toml:"name"`
		Count int    `toml:"count"`
	}
	path := filepath.Join(t.TempDir(), "out.toml")
	require.NoError(t, SaveTOMLFile(section{Name: "otter", Count: 3}, path))

	var got section
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, section{Name: "otter", Count: 3}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestParseTOMLWithRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("[generate]\ncount = 4\nsep = \"_\"\nlive = true\nlists = [\"a\", 1, \"b\"]\n"), 0644))

	data, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	section, ok := ExtractSection(data, "generate")
	require.True(t, ok)

	n, ok := ExtractInt(section, "count")
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	s, _ := ExtractString(section, "sep")
	assert.Equal(t, "_", s)
	b, _ := ExtractBool(section, "live")
	assert.True(t, b)
	lists, _ := ExtractStrings(section, "lists")
	assert.Equal(t, []string{"a", "b"}, lists)

	_, ok = ExtractInt(section, "sep")
	assert.False(t, ok)
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	res := CheckDirStatus(dir)
	require.NoError(t, res.Error)
	assert.True(t, res.Exists)
	assert.True(t, res.Writable)
	assert.True(t, FileExists(dir))
}

func TestPathResolver(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.txt"), []byte("x\n"), 0644))
	pr := NewPathResolver(dir)

	got, ok := pr.Resolve("mine.txt")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "mine.txt"), got)

	got, ok = pr.Resolve("common")
	assert.False(t, ok)
	assert.Equal(t, "common", got)

	assert.Equal(t, dir, pr.GetRuntimeInfo()["config_dir"])
}
