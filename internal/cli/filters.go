package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bnbstat/internal/dashboard"
	"bnbstat/internal/dataset"
	"bnbstat/internal/filter"
)

// filterFlags collects the shared filter flags of analysis commands.
type filterFlags struct {
	boroughs       []string
	neighbourhood  string
	roomTypes      []string
	priceMin       float64
	priceMax       float64
	maxNights      int
	minReviews     int
	hostCategory   string
	commercialOnly bool
	preset         string
}

// addFilterFlags registers the filter flag set on cmd.
func addFilterFlags(cmd *cobra.Command, ff *filterFlags) {
	cmd.Flags().StringSliceVar(&ff.boroughs, "borough", nil, "restrict to boroughs (repeatable)")
	cmd.Flags().StringVar(&ff.neighbourhood, "neighbourhood", "", "restrict to one neighbourhood")
	cmd.Flags().StringSliceVar(&ff.roomTypes, "room-type", nil, "restrict to room types (repeatable)")
	cmd.Flags().Float64Var(&ff.priceMin, "price-min", 0, "minimum nightly price (0 disables)")
	cmd.Flags().Float64Var(&ff.priceMax, "price-max", 0, "maximum nightly price (0 disables)")
	cmd.Flags().IntVar(&ff.maxNights, "max-nights", 0, "maximum minimum-nights requirement (0 disables)")
	cmd.Flags().IntVar(&ff.minReviews, "min-reviews", 0, "minimum review count")
	cmd.Flags().StringVar(&ff.hostCategory, "host-category", "", `host category bucket (e.g. "Mega (10+)")`)
	cmd.Flags().BoolVar(&ff.commercialOnly, "commercial", false, "commercial listings only")
	cmd.Flags().StringVar(&ff.preset, "preset", "", "use a saved filter preset (other filter flags are ignored)")
}

// spec builds the filter spec from the flags, or from a saved preset
// when --preset is given.
func (ff *filterFlags) spec() (filter.Spec, error) {
	if ff.preset != "" {
		cfg, err := loadConfig()
		if err != nil {
			return filter.Spec{}, err
		}
		spec, ok := cfg.Presets[ff.preset]
		if !ok {
			return filter.Spec{}, fmt.Errorf("unknown filter preset %q", ff.preset)
		}
		return spec, nil
	}

	return filter.Spec{
		Boroughs:         ff.boroughs,
		Neighbourhood:    ff.neighbourhood,
		RoomTypes:        ff.roomTypes,
		PriceMin:         ff.priceMin,
		PriceMax:         ff.priceMax,
		MaxMinimumNights: ff.maxNights,
		MinReviews:       ff.minReviews,
		HostCategory:     ff.hostCategory,
		CommercialOnly:   ff.commercialOnly,
	}, nil
}

// withView loads the dataset, applies the filter flags, and calls fn
// with the resulting view. A filter matching zero rows reports the
// condition and skips fn; it is not an error.
func withView(ff *filterFlags, fn func(v dataset.View, mgr *dashboard.Manager) error) error {
	mgr, err := loadManager()
	if err != nil {
		return err
	}

	spec, err := ff.spec()
	if err != nil {
		return err
	}

	if !spec.IsZero() {
		err := mgr.ApplyFilters(spec)
		if err == filter.ErrEmptyResult {
			fmt.Println("No listings match the given filters. Loosen a filter and try again.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	return fn(mgr.View(), mgr)
}
