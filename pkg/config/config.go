/*
Package config manages TOML config for randomname.

Values come from builtin defaults, then the TOML file, then a .env file in
the working directory, then RANDOMNAME_* environment variables:

	[lists]
	sources = ["common"]
	sample_mode = "uniform-over-children"
	match_policy = "permissive"

	[generate]
	separator = "-"
	template = ["adjectives/", "nouns/"]

Environment names join the section and key, e.g. RANDOMNAME_GENERATE_SEPARATOR
or RANDOMNAME_LISTS_SOURCES (comma separated).
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bastiangx/randomname/internal/utils"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RANDOMNAME_"

// Config holds the entire config structure
type Config struct {
	Lists    ListsConfig    `toml:"lists" envPrefix:"LISTS_"`
	Generate GenerateConfig `toml:"generate" envPrefix:"GENERATE_"`
	Server   ServerConfig   `toml:"server" envPrefix:"SERVER_"`
	Cache    CacheConfig    `toml:"cache" envPrefix:"CACHE_"`
}

// ListsConfig selects word sources and how categories are matched.
type ListsConfig struct {
	Sources        []string `toml:"sources" env:"SOURCES"`
	Blacklist      string   `toml:"blacklist" env:"BLACKLIST"`
	LocalBlacklist string   `toml:"local_blacklist" env:"LOCAL_BLACKLIST"`
	SampleMode     string   `toml:"sample_mode" env:"SAMPLE_MODE"`
	MatchPolicy    string   `toml:"match_policy" env:"MATCH_POLICY"`
	FuncLength     int      `toml:"func_length" env:"FUNC_LENGTH"`
	Preload        bool     `toml:"preload" env:"PRELOAD"`
}

// GenerateConfig holds phrase generation defaults.
type GenerateConfig struct {
	Separator    string   `toml:"separator" env:"SEPARATOR"`
	DefaultCount int      `toml:"default_count" env:"DEFAULT_COUNT"`
	Template     []string `toml:"template" env:"TEMPLATE"`
	MaxAttempts  int      `toml:"max_attempts" env:"MAX_ATTEMPTS"`
	Case         string   `toml:"case" env:"CASE"`
	Seed         uint64   `toml:"seed" env:"SEED"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxCount  int  `toml:"max_count" env:"MAX_COUNT"`
	MaxTokens int  `toml:"max_tokens" env:"MAX_TOKENS"`
	Watch     bool `toml:"watch" env:"WATCH"`
}

// CacheConfig sizes the resolved-category cache.
type CacheConfig struct {
	Size int `toml:"size" env:"SIZE"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/randomname
// 2. ~/Library/Application Support/randomname (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "randomname")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "randomname")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/randomname/config.toml
// 3. Builtin defaults
//
// Environment overrides are applied on top of whichever was loaded.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	config, path := loadFileWithPriority(customConfigPath)
	if err := ApplyEnv(config); err != nil {
		return config, path, err
	}
	return config, path, nil
}

func loadFileWithPriority(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Lists: ListsConfig{
			Sources:     []string{"common"},
			SampleMode:  "uniform-over-children",
			MatchPolicy: "permissive",
			FuncLength:  1000,
		},
		Generate: GenerateConfig{
			Separator:    "-",
			DefaultCount: 10,
			Template:     []string{"adjectives/", "nouns/"},
			MaxAttempts:  50,
		},
		Server: ServerConfig{
			MaxCount:  1000,
			MaxTokens: 32,
		},
		Cache: CacheConfig{
			Size: 128,
		},
	}
}

// ApplyEnv loads a .env file from the working directory, if any, and then
// overrides config from RANDOMNAME_* variables.
func ApplyEnv(config *Config) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Ignoring unreadable .env file: %v", err)
	}
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("invalid environment override: %w", err)
	}
	config.normalize()
	return nil
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if len(c.Generate.Template) == 0 {
		c.Generate.Template = def.Generate.Template
	}
	if c.Generate.DefaultCount <= 0 {
		c.Generate.DefaultCount = def.Generate.DefaultCount
	}
	if c.Generate.MaxAttempts <= 0 {
		c.Generate.MaxAttempts = def.Generate.MaxAttempts
	}
	if c.Lists.FuncLength <= 0 {
		c.Lists.FuncLength = def.Lists.FuncLength
	}
	if c.Server.MaxCount <= 0 {
		c.Server.MaxCount = def.Server.MaxCount
	}
	if c.Server.MaxTokens <= 0 {
		c.Server.MaxTokens = def.Server.MaxTokens
	}
	if c.Cache.Size <= 0 {
		c.Cache.Size = def.Cache.Size
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse keeps every well-typed value of a file that failed to
// decode as a whole.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "lists"); ok {
		extractListsConfig(section, &config.Lists)
	}
	if section, ok := utils.ExtractSection(tempConfig, "generate"); ok {
		extractGenerateConfig(section, &config.Generate)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cache"); ok {
		if val, ok := utils.ExtractInt(section, "size"); ok {
			config.Cache.Size = val
		}
	}
	config.normalize()
	return config, nil
}

func extractListsConfig(data map[string]any, lists *ListsConfig) {
	if val, ok := utils.ExtractStrings(data, "sources"); ok {
		lists.Sources = val
	}
	if val, ok := utils.ExtractString(data, "blacklist"); ok {
		lists.Blacklist = val
	}
	if val, ok := utils.ExtractString(data, "local_blacklist"); ok {
		lists.LocalBlacklist = val
	}
	if val, ok := utils.ExtractString(data, "sample_mode"); ok {
		lists.SampleMode = val
	}
	if val, ok := utils.ExtractString(data, "match_policy"); ok {
		lists.MatchPolicy = val
	}
	if val, ok := utils.ExtractInt(data, "func_length"); ok {
		lists.FuncLength = val
	}
	if val, ok := utils.ExtractBool(data, "preload"); ok {
		lists.Preload = val
	}
}

func extractGenerateConfig(data map[string]any, gen *GenerateConfig) {
	if val, ok := utils.ExtractString(data, "separator"); ok {
		gen.Separator = val
	}
	if val, ok := utils.ExtractInt(data, "default_count"); ok {
		gen.DefaultCount = val
	}
	if val, ok := utils.ExtractStrings(data, "template"); ok {
		gen.Template = val
	}
	if val, ok := utils.ExtractInt(data, "max_attempts"); ok {
		gen.MaxAttempts = val
	}
	if val, ok := utils.ExtractString(data, "case"); ok {
		gen.Case = val
	}
	if val, ok := utils.ExtractInt(data, "seed"); ok && val >= 0 {
		gen.Seed = uint64(val)
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt(data, "max_count"); ok {
		server.MaxCount = val
	}
	if val, ok := utils.ExtractInt(data, "max_tokens"); ok {
		server.MaxTokens = val
	}
	if val, ok := utils.ExtractBool(data, "watch"); ok {
		server.Watch = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() (string, error) {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return "", err
	}
	return defaultPath, utils.SaveTOMLFile(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Set assigns one value addressed as "section.key", e.g.
// "generate.separator". List values are comma separated.
func (c *Config) Set(key, value string) error {
	section, field, ok := strings.Cut(strings.ToLower(key), ".")
	if !ok {
		return fmt.Errorf("config key %q must look like section.key", key)
	}
	list := func() []string {
		var out []string
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	var err error
	switch section + "." + field {
	case "lists.sources":
		c.Lists.Sources = list()
	case "lists.blacklist":
		c.Lists.Blacklist = value
	case "lists.local_blacklist":
		c.Lists.LocalBlacklist = value
	case "lists.sample_mode":
		c.Lists.SampleMode = value
	case "lists.match_policy":
		c.Lists.MatchPolicy = value
	case "lists.func_length":
		c.Lists.FuncLength, err = strconv.Atoi(value)
	case "lists.preload":
		c.Lists.Preload, err = strconv.ParseBool(value)
	case "generate.separator":
		c.Generate.Separator = value
	case "generate.default_count":
		c.Generate.DefaultCount, err = strconv.Atoi(value)
	case "generate.template":
		c.Generate.Template = list()
	case "generate.max_attempts":
		c.Generate.MaxAttempts, err = strconv.Atoi(value)
	case "generate.case":
		c.Generate.Case = value
	case "generate.seed":
		c.Generate.Seed, err = strconv.ParseUint(value, 10, 64)
	case "server.max_count":
		c.Server.MaxCount, err = strconv.Atoi(value)
	case "server.max_tokens":
		c.Server.MaxTokens, err = strconv.Atoi(value)
	case "server.watch":
		c.Server.Watch, err = strconv.ParseBool(value)
	case "cache.size":
		c.Cache.Size, err = strconv.Atoi(value)
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	if err != nil {
		return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
	}
	return nil
}
