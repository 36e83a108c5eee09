package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newRoomsCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Show statistics by room type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				stats := query.StatsByRoomType(v)
				if isJSON() {
					return printJSON(stats)
				}
				return printRoomTypeStats(stats)
			})
		},
	}

	addFilterFlags(cmd, &ff)
	return cmd
}
