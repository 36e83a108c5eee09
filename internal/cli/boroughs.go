package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newBoroughsCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "boroughs",
		Short: "Show statistics by borough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				stats := query.StatsByBorough(v)
				if isJSON() {
					return printJSON(stats)
				}
				return printBoroughStats(stats)
			})
		},
	}

	addFilterFlags(cmd, &ff)
	return cmd
}
