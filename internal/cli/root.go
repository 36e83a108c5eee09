// Package cli defines the cobra command tree for bnbstat.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
)

var (
	flagFormat string
	flagData   string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bnbstat",
		Short:         "Analyze NYC Airbnb listings",
		Long:          "An analytics engine over the NYC Airbnb listings dataset. Load a CSV once, then slice it with filters and run summary, ranking, distribution, and quality queries from the command line or over the JSON API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagData, "data", "", "listings CSV path (default: config data_path or $BNBSTAT_DATA)")

	root.AddCommand(
		newSummaryCmd(),
		newBoroughsCmd(),
		newRoomsCmd(),
		newHostsCmd(),
		newValueCmd(),
		newRoiCmd(),
		newCommercialCmd(),
		newCategoriesCmd(),
		newTrendCmd(),
		newHistogramCmd(),
		newNeighbourhoodsCmd(),
		newQualityCmd(),
		newUncertaintyCmd(),
		newSampleCmd(),
		newExportCmd(),
		newPresetCmd(),
		newServeCmd(),
		newVersionCmd(),
	)

	return root
}

// dataPath resolves the dataset path from the --data flag, the
// BNBSTAT_DATA environment variable, or the config file, in that order.
func dataPath() (string, error) {
	if flagData != "" {
		return flagData, nil
	}
	if v := os.Getenv("BNBSTAT_DATA"); v != "" {
		return v, nil
	}
	cfg, err := loadConfig()
	if err == nil && cfg.DataPath != "" {
		return cfg.DataPath, nil
	}
	return "", fmt.Errorf("no dataset configured: pass --data, set BNBSTAT_DATA, or set data_path in the config file")
}

// loadManager loads the dataset synchronously into a fresh manager.
func loadManager() (*dashboard.Manager, error) {
	path, err := dataPath()
	if err != nil {
		return nil, err
	}

	mgr := dashboard.New()
	if err := mgr.LoadSync(path); err != nil {
		return nil, err
	}
	return mgr, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
