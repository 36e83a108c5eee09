package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newTrendCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Show monthly review activity",
		Long:  "Count listings whose last review falls in each calendar month, in chronological order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				months := query.MonthlyReviewTrend(v)
				if isJSON() {
					return printJSON(months)
				}
				return printMonthCounts(months)
			})
		},
	}

	addFilterFlags(cmd, &ff)
	return cmd
}
