package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/junkd0g/kuposhan/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		format string
		chart  string
		output string
		metric metricFlag
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the figures as a spreadsheet, JSON or an image",
		Long: `Export the dashboard data:
  xlsx  one sheet per table plus the insight sentences
  json  the dataset and the rendered view
  png   a static chart picked by --chart:
          donut      age-group donut for --metric
          states     state-wise bars for --metric
          age-trend  age-wise lines for all three indicators
  svg   the stunting factor map`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return exitError(ExitInvalidArgs, "kuposhan: %v", err)
			}
			c, err := export.ParseChart(chart)
			if err != nil {
				return exitError(ExitInvalidArgs, "kuposhan: %v", err)
			}
			if output == "" {
				output = f.DefaultFileName(c)
			}

			if dir := filepath.Dir(output); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return exitError(ExitRenderFailure, "kuposhan: %v", err)
				}
			}
			file, err := os.Create(output) //nolint:gosec // user-provided output path
			if err != nil {
				return exitError(ExitRenderFailure, "kuposhan: %v", err)
			}

			if err := export.Write(cmd.Context(), file, f, metric.State(), c); err != nil {
				_ = file.Close()
				return exitError(ExitRenderFailure, "kuposhan: %v", err)
			}
			if err := file.Close(); err != nil {
				return exitError(ExitRenderFailure, "kuposhan: %v", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("Exported"), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "xlsx", "xlsx, json, png or svg")
	cmd.Flags().StringVar(&chart, "chart", "donut", "png chart: donut, states or age-trend")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default depends on format)")
	addMetricFlag(cmd.Flags(), &metric)
	return cmd
}
