package main

import (
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/junkd0g/kuposhan/internal/config"
	"github.com/junkd0g/kuposhan/internal/dataset"
	kuposhanlog "github.com/junkd0g/kuposhan/internal/log"
	"github.com/junkd0g/kuposhan/internal/view"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose    bool
	quiet      bool
	noColor    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "kuposhan",
		Short: "India child malnutrition dashboard",
		Long: `Kuposhan renders the NFHS-5 child malnutrition indicators for India
(stunting, wasting and underweight in children under five) as an interactive
dashboard. It serves the page over HTTP, writes it as a standalone file,
exports the figures and exposes them to MCP clients.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			kuposhanlog.Setup(g.verbose, g.quiet)
			if g.noColor {
				color.NoColor = true
			}
			return preflight()
		},
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "suppress non-essential output")
	root.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "config file (.yaml or .toml); defaults to .kuposhan.yaml or .kuposhan.toml in the working directory")

	root.AddCommand(newServeCmd(g))
	root.AddCommand(newRenderCmd(g))
	root.AddCommand(newExportCmd())
	root.AddCommand(newSummaryCmd())
	root.AddCommand(newMCPCmd(g))
	root.AddCommand(newVersionCmd())

	return root
}

// preflight checks the compiled-in data before anything is rendered.
func preflight() error {
	if err := dataset.Validate(); err != nil {
		return exitError(ExitRenderFailure, "kuposhan: %v", err)
	}
	if err := view.CheckInsights(); err != nil {
		slog.Warn("insight sentences disagree with the age table", "error", err)
	}
	return nil
}

// loadConfig reads .env, the config file and environment overrides.
// Callers apply their flags and then call config.Validate.
func loadConfig(g *globalFlags) (*config.Config, error) {
	if err := config.LoadEnv(""); err != nil {
		slog.Warn("failed to load .env", "error", err)
	}

	path := g.configPath
	if path == "" {
		path = "."
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "kuposhan: %v", err)
	}
	config.ApplyEnv(cfg)

	slog.Debug("config loaded", "path", path, "theme", cfg.Theme, "addr", cfg.Server.Addr)
	return cfg, nil
}

func validateConfig(cfg *config.Config) error {
	if err := config.Validate(cfg); err != nil {
		return exitError(ExitInvalidArgs, "kuposhan: %v", err)
	}
	return nil
}
