package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/randomname/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit config.toml",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the active config file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), config.GetActiveConfigPath(a.activePath))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective config, env overrides included",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return toml.NewEncoder(cmd.OutOrStdout()).Encode(a.cfg)
			},
		},
		&cobra.Command{
			Use:   "rebuild",
			Short: "Overwrite the default config file with defaults",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := config.RebuildConfigFile()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <section.key> <value>",
			Short: "Set one value in the active config file",
			Example: `  randomname config set generate.separator _
  randomname config set lists.sources common,~/words`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if a.activePath == "" {
					return fmt.Errorf("no writable config file, pass --config")
				}
				cfg, err := config.LoadConfig(a.activePath)
				if err != nil {
					return err
				}
				if err := cfg.Set(args[0], args[1]); err != nil {
					return err
				}
				if err := config.SaveConfig(cfg, a.activePath); err != nil {
					return err
				}
				log.Debugf("Set %s in %s", args[0], a.activePath)
				return nil
			},
		},
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and project info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(w)
			title := r.NewStyle().Bold(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
				Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"}).
				Padding(0, 1)
			link := r.NewStyle().Italic(true).
				Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

			fmt.Fprintln(w, title.Render("randomname")+" readable random names")
			fmt.Fprintf(w, "version %s\n", Version)
			fmt.Fprintln(w, "use -h or --help to see available options")
			fmt.Fprintln(w, link.Render(gh))
			return nil
		},
	}
}
