package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNeighbourhoodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neighbourhoods [borough...]",
		Short: "List neighbourhood names",
		Long:  "List sorted distinct neighbourhood names, optionally restricted to the given boroughs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := loadManager()
			if err != nil {
				return err
			}

			names := mgr.Dataset().Neighbourhoods(args)
			if isJSON() {
				return printJSON(names)
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}

	return cmd
}
