package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newValueCmd() *cobra.Command {
	var ff filterFlags
	var top int
	var byBorough bool

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Rank listings by reviews per dollar",
		Long:  "Rank practical stays (minimum nights of 7 or fewer) by reviews per dollar, or show the mean value score per borough.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				if byBorough {
					values := query.ValueScoreByBorough(v)
					if isJSON() {
						return printJSON(values)
					}
					return printBoroughValues(values)
				}

				listings := query.TopValueListings(v, top)
				if isJSON() {
					return printJSON(listings)
				}
				return printValueListings(listings)
			})
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "number of listings to show")
	cmd.Flags().BoolVar(&byBorough, "by-borough", false, "show mean value score per borough instead")
	addFilterFlags(cmd, &ff)
	return cmd
}
