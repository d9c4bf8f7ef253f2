package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/junkd0g/kuposhan/internal/diagram"
)

func newRenderCmd(g *globalFlags) *cobra.Command {
	var (
		output  string
		theme   string
		widgets []string
		metric  metricFlag
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the dashboard as a standalone HTML file",
		Long: `Write the dashboard as a single HTML file. The indicator selector works
offline: the age panel for every indicator is embedded in the page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(g)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("theme") {
				cfg.Theme = theme
			}
			if cmd.Flags().Changed("widgets") {
				cfg.Widgets = widgets
			}
			if err := validateConfig(cfg); err != nil {
				return err
			}

			state := metric.State()
			slog.Debug("rendering dashboard", "metric", state.SelectedMetric, "output", output)

			if err := diagram.GenerateHTML(cmd.Context(), state, output, cfg.HTML()); err != nil {
				return exitError(ExitRenderFailure, "kuposhan: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Dashboard written to"), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "dashboard.html", "output HTML file")
	cmd.Flags().StringVar(&theme, "theme", "light", "light or dark")
	cmd.Flags().StringSliceVar(&widgets, "widgets", nil, "widgets to include, in order (default: all except factor_map)")
	addMetricFlag(cmd.Flags(), &metric)
	return cmd
}
