package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newHistogramCmd() *cobra.Command {
	var ff filterFlags
	var bins int

	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Show the price distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				h := query.PriceHistogram(v, bins)
				if isJSON() {
					return printJSON(h)
				}
				return printHistogram(h)
			})
		},
	}

	cmd.Flags().IntVar(&bins, "bins", query.DefaultHistogramBins, "number of histogram bins")
	addFilterFlags(cmd, &ff)
	return cmd
}
