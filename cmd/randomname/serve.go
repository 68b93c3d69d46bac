package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/randomname/internal/cli"
	"github.com/bastiangx/randomname/internal/watcher"
	"github.com/bastiangx/randomname/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve phrase requests as msgpack over stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watch || a.cfg.Server.Watch {
				if err := g.Root().Preload(ctx, 0); err != nil {
					return err
				}
				w, err := watcher.New(g.Root().Files(), func(string) { g.Invalidate() })
				if err != nil {
					return err
				}
				defer w.Close()
				go func() {
					if err := w.Run(ctx); err != nil {
						log.Errorf("Watcher stopped: %v", err)
					}
				}()
			}

			showStartupInfo(a.activePath)
			srv := server.NewServer(g, a.cfg.Server)
			errc := make(chan error, 1)
			go func() { errc <- srv.Start() }()
			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
				return nil
			}
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload word files when they change")
	return cmd
}

func newREPLCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Try category tokens interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			return cli.NewInputHandler(g, cmd.InOrStdin(), cmd.OutOrStdout(), count).Start()
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Phrases per line")
	return cmd
}

// showStartupInfo logs basic info about the server process to stderr.
func showStartupInfo(configPath string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	if configPath != "" {
		log.Infof("config: ( %s )", configPath)
	}
	log.Info("status: ready")
	log.SetLevel(currentLevel)
}
