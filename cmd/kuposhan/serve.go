package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/junkd0g/kuposhan/internal/server"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Long: `Serve the dashboard page and its JSON API:
  GET  /                        dashboard (?metric=, ?theme=)
  GET  /api/v1/dataset          every figure as JSON
  GET  /api/v1/view             rendered view (?metric=)
  POST /api/v1/reduce           apply a selector event to a view state
  GET  /api/v1/factor-map.svg   factor graph
  GET  /api/v1/health           liveness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			if err := validateConfig(cfg); err != nil {
				return err
			}

			srv, err := server.New(cfg)
			if err != nil {
				return exitError(ExitInvalidArgs, "kuposhan: %v", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.Run(ctx); err != nil {
				return exitError(ExitRenderFailure, "kuposhan: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides config and KUPOSHAN_ADDR)")
	return cmd
}
