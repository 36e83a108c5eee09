package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newCommercialCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "commercial",
		Short: "Compare commercial and regular listings",
		Long:  "Compare median price, availability, and reviews between commercial listings (high availability or multi-listing hosts) and the rest.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				cmp := query.CompareCommercial(v)
				if isJSON() {
					return printJSON(cmp)
				}
				return printCommercialComparison(cmp)
			})
		},
	}

	addFilterFlags(cmd, &ff)
	return cmd
}
