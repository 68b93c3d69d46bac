package main

import (
	"fmt"
	"path/filepath"

	"github.com/bastiangx/randomname/internal/logger"
	"github.com/bastiangx/randomname/pkg/config"
	"github.com/bastiangx/randomname/pkg/phrase"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// app carries the flags and state shared by every command.
type app struct {
	configPath string
	debug      bool
	seed       uint64
	sep        string

	cfg        *config.Config
	activePath string
	gen        *phrase.Generator
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   AppName,
		Short: "Generate random human readable names and phrases",
		Long: `randomname samples one word per category from hierarchical word lists
and joins them into phrases such as "brave-otter".

Run without a command to print one adjective-noun name.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGet(cmd, nil, nil, 1)
		},
	}
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config.toml")
	cmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Toggle debug mode")
	cmd.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "Seed the random source for repeatable output")
	cmd.PersistentFlags().StringVar(&a.sep, "sep", "", "Word separator (default from config)")

	cmd.AddCommand(
		newGetCmd(a),
		newGenerateCmd(a),
		newSampleCmd(a),
		newAvailableCmd(a),
		newSearchCmd(a),
		newShowCmd(a),
		newServeCmd(a),
		newREPLCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// setup configures logging and loads config before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	logger.Setup(a.debug)
	cfg, path, err := config.LoadConfigWithPriority(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Generate.Seed = a.seed
	}
	if a.sep != "" {
		cfg.Generate.Separator = a.sep
	}
	a.cfg, a.activePath = cfg, path
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(path))
	return nil
}

// generator builds the phrase generator on first use.
func (a *app) generator() (*phrase.Generator, error) {
	if a.gen != nil {
		return a.gen, nil
	}
	configDir := ""
	if a.activePath != "" {
		configDir = filepath.Dir(a.activePath)
	}
	g, err := phrase.Init(a.cfg, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}
	a.gen = g
	return g, nil
}

// phraseOptions turns shared flags into per-call options.
func (a *app) phraseOptions(casing string, literals bool) []phrase.Option {
	opts := []phrase.Option{phrase.WithLiterals(literals)}
	if casing != "" {
		opts = append(opts, phrase.WithCase(phrase.ParseCase(casing)))
	}
	return opts
}
