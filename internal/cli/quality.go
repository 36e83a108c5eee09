package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newQualityCmd() *cobra.Command {
	var ff filterFlags

	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Show data completeness metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				report := query.DataQualityScore(v)
				missing := query.MissingDataStats(v)
				if isJSON() {
					return printJSON(map[string]any{
						"quality": report,
						"missing": missing,
					})
				}
				return printQuality(report, missing)
			})
		},
	}

	addFilterFlags(cmd, &ff)
	return cmd
}
