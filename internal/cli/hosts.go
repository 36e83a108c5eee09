package cli

import (
	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/query"
)

func newHostsCmd() *cobra.Command {
	var ff filterFlags
	var top int

	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Rank hosts by listing count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				hosts := query.TopHosts(v, top)
				if isJSON() {
					return printJSON(hosts)
				}
				return printHostRanks(hosts)
			})
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "number of hosts to show")
	addFilterFlags(cmd, &ff)
	return cmd
}
