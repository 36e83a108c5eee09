package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newRoiCmd() *cobra.Command {
	var ff filterFlags
	var top int

	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Rank market segments by estimated revenue",
		Long:  "Group listings by borough and room type, compute median price and availability, and rank segments by estimated annual revenue at 70% occupancy.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				segments := query.ROIBySegment(v, top)
				if isJSON() {
					return printJSON(segments)
				}
				return printROISegments(segments)
			})
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "number of segments to show")
	addFilterFlags(cmd, &ff)
	return cmd
}
