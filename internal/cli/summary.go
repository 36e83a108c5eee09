package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newSummaryCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show headline statistics",
		Long:  "Show count, price, host, review, and availability statistics for the (optionally filtered) dataset.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				stats := query.SummaryStats(v)
				if isJSON() {
					return printJSON(stats)
				}
				printSummary(stats)
				return nil
			})
		},
	}

	addFilterFlags(cmd, &ff)
	return cmd
}
