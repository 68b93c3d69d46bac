package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, []string{"common"}, cfg.Lists.Sources)
	assert.Equal(t, "-", cfg.Generate.Separator)
	assert.Equal(t, []string{"adjectives/", "nouns/"}, cfg.Generate.Template)
	assert.Equal(t, 10, cfg.Generate.DefaultCount)
	assert.Equal(t, 50, cfg.Generate.MaxAttempts)
	assert.Equal(t, 1000, cfg.Lists.FuncLength)
	assert.Positive(t, cfg.Cache.Size)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Generate.Separator = "_"
	cfg.Lists.Sources = []string{"common", "/tmp/mine"}
	cfg.Generate.Seed = 42
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[generate]\ndefault_count = \"ten\"\nseparator = \"_\"\n\n[lists]\nsources = [\"a\", \"b\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "_", cfg.Generate.Separator)
	assert.Equal(t, 10, cfg.Generate.DefaultCount, "mistyped value keeps its default")
	assert.Equal(t, []string{"a", "b"}, cfg.Lists.Sources)
}

func TestLoadConfigPartialRecoveryKeepsIntegers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[generate]\nseparator = 5\nmax_attempts = 7\nseed = 3\n\n[lists]\nfunc_length = 12\n\n[server]\nmax_count = 20\n\n[cache]\nsize = 9\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.Generate.Separator)
	assert.Equal(t, 7, cfg.Generate.MaxAttempts)
	assert.Equal(t, uint64(3), cfg.Generate.Seed)
	assert.Equal(t, 12, cfg.Lists.FuncLength)
	assert.Equal(t, 20, cfg.Server.MaxCount)
	assert.Equal(t, 9, cfg.Cache.Size)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[[ not toml"), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)
}

func TestApplyEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RANDOMNAME_GENERATE_SEPARATOR", ".")
	t.Setenv("RANDOMNAME_LISTS_SOURCES", "common,./mine")
	t.Setenv("RANDOMNAME_GENERATE_SEED", "7")
	t.Setenv("RANDOMNAME_CACHE_SIZE", "16")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg))
	assert.Equal(t, ".", cfg.Generate.Separator)
	assert.Equal(t, []string{"common", "./mine"}, cfg.Lists.Sources)
	assert.Equal(t, uint64(7), cfg.Generate.Seed)
	assert.Equal(t, 16, cfg.Cache.Size)
	assert.Equal(t, 10, cfg.Generate.DefaultCount, "unset variables keep file values")

	t.Setenv("RANDOMNAME_CACHE_SIZE", "lots")
	assert.Error(t, ApplyEnv(DefaultConfig()))
}

func TestApplyEnvReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RANDOMNAME_GENERATE_CASE=upper\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("RANDOMNAME_GENERATE_CASE") })

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnv(cfg))
	assert.Equal(t, "upper", cfg.Generate.Case)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg := DefaultConfig()
	cfg.Generate.Separator = "+"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "+", loaded.Generate.Separator)
}

func TestSet(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Set("generate.separator", "_"))
	require.NoError(t, cfg.Set("Generate.Template", "a/, n/cats"))
	require.NoError(t, cfg.Set("server.watch", "true"))
	require.NoError(t, cfg.Set("generate.seed", "12"))

	assert.Equal(t, "_", cfg.Generate.Separator)
	assert.Equal(t, []string{"a/", "n/cats"}, cfg.Generate.Template)
	assert.True(t, cfg.Server.Watch)
	assert.Equal(t, uint64(12), cfg.Generate.Seed)

	assert.Error(t, cfg.Set("separator", "_"))
	assert.Error(t, cfg.Set("generate.bogus", "x"))
	assert.Error(t, cfg.Set("cache.size", "big"))
}
