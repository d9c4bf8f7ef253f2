package main

import (
	"github.com/spf13/cobra"

	"github.com/junkd0g/kuposhan/internal/summary"
)

func newSummaryCmd() *cobra.Command {
	var metric metricFlag

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return summary.Write(cmd.OutOrStdout(), metric.State())
		},
	}

	addMetricFlag(cmd.Flags(), &metric)
	return cmd
}
