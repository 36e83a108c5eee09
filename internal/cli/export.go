package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/export"
)

func newExportCmd() *cobra.Command {
	var ff filterFlags
	var columns []string

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export the filtered view to CSV",
		Long:  "Write the (optionally filtered) listings to a CSV file, projected to the standard export columns or a custom subset.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			return withView(&ff, func(v dataset.View, mgr *dashboard.Manager) error {
				if err := export.CSV(v, path, columns); err != nil {
					return fmt.Errorf("exporting listings: %w", err)
				}
				if !isJSON() {
					fmt.Printf("Exported %d listings to %s\n", v.Len(), path)
					return nil
				}
				return printJSON(map[string]any{"path": path, "rows": v.Len()})
			})
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", nil, "columns to export (default: standard projection)")
	addFilterFlags(cmd, &ff)
	return cmd
}
