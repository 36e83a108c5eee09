package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newUncertaintyCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "uncertainty",
		Short: "Show confidence intervals for price and revenue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				u := query.UncertaintyStats(v)
				if isJSON() {
					return printJSON(u)
				}
				printUncertainty(u)
				return nil
			})
		},
	}

	addFilterFlags(cmd, &ff)
	return cmd
}
