package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newCategoriesCmd() *cobra.Command {
	var ff filterFlags
	var entireHome bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show listing counts by host category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				var counts []query.CategoryCount
				if entireHome {
					counts = query.EntireHomeByHostSize(v)
				} else {
					counts = query.HostCategoryDistribution(v)
				}
				if isJSON() {
					return printJSON(counts)
				}
				return printCategoryCounts(counts)
			})
		},
	}

	cmd.Flags().BoolVar(&entireHome, "entire-home", false, "count only entire-home listings, bucketed by host size")
	addFilterFlags(cmd, &ff)
	return cmd
}
