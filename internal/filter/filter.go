// Package filter applies structured filter specifications to a dataset,
// producing index-set views over the immutable base rows.
package filter

import (
	"errors"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

// ErrEmptyResult reports that a filter matched zero rows. Callers should
// keep their previous view; this is a guard condition, not a failure.
var ErrEmptyResult = errors.New("filter matched no listings")

// Spec describes one filter selection. The zero value of every field
// means "no restriction": empty sets match everything, a zero PriceMin
// or PriceMax disables that price bound, a zero MaxMinimumNights
// disables the minimum-nights clause, and "all" (or empty) disables
// the neighbourhood and host-category clauses.
type Spec struct {
	Boroughs         []string `json:"boroughs,omitempty" yaml:"boroughs,omitempty"`
	Neighbourhood    string   `json:"neighbourhood,omitempty" yaml:"neighbourhood,omitempty"`
	RoomTypes        []string `json:"room_types,omitempty" yaml:"room_types,omitempty"`
	PriceMin         float64  `json:"price_min,omitempty" yaml:"price_min,omitempty"`
	PriceMax         float64  `json:"price_max,omitempty" yaml:"price_max,omitempty"`
	MaxMinimumNights int      `json:"max_minimum_nights,omitempty" yaml:"max_minimum_nights,omitempty"`
	MinReviews       int      `json:"min_reviews,omitempty" yaml:"min_reviews,omitempty"`
	HostCategory     string   `json:"host_category,omitempty" yaml:"host_category,omitempty"`
	CommercialOnly   bool     `json:"commercial_only,omitempty" yaml:"commercial_only,omitempty"`
}

// IsZero reports whether the spec restricts nothing.
func (s Spec) IsZero() bool {
	return len(s.Boroughs) == 0 &&
		(s.Neighbourhood == "" || s.Neighbourhood == "all") &&
		len(s.RoomTypes) == 0 &&
		s.PriceMax == 0 && s.PriceMin == 0 &&
		s.MaxMinimumNights == 0 &&
		s.MinReviews == 0 &&
		(s.HostCategory == "" || s.HostCategory == "all") &&
		!s.CommercialOnly
}

// Matches reports whether a single listing passes every clause of the
// spec. Unset clauses are vacuously true.
func (s Spec) Matches(l *listing.Listing) bool {
	if len(s.Boroughs) > 0 && !contains(s.Boroughs, l.NeighbourhoodGroup) {
		return false
	}
	if s.Neighbourhood != "" && s.Neighbourhood != "all" && l.Neighbourhood != s.Neighbourhood {
		return false
	}
	if len(s.RoomTypes) > 0 && !contains(s.RoomTypes, string(l.RoomType)) {
		return false
	}
	if s.PriceMin > 0 && l.Price < s.PriceMin {
		return false
	}
	if s.PriceMax > 0 && l.Price > s.PriceMax {
		return false
	}
	if s.MaxMinimumNights > 0 && l.MinimumNights > s.MaxMinimumNights {
		return false
	}
	if s.MinReviews > 0 && l.NumberOfReviews < s.MinReviews {
		return false
	}
	if s.HostCategory != "" && s.HostCategory != "all" && string(l.HostCategory) != s.HostCategory {
		return false
	}
	if s.CommercialOnly && !l.IsCommercial {
		return false
	}
	return true
}

// Apply evaluates the spec against every base row of ds and returns the
// matching view. The base dataset is never mutated. If no row matches,
// Apply returns the zero view and ErrEmptyResult; callers decide
// whether to keep an earlier view.
func Apply(ds *dataset.Dataset, spec Spec) (dataset.View, error) {
	if ds == nil || ds.Len() == 0 {
		return dataset.View{}, ErrEmptyResult
	}

	var idx []int
	for i := 0; i < ds.Len(); i++ {
		if spec.Matches(ds.Row(i)) {
			idx = append(idx, i)
		}
	}

	if len(idx) == 0 {
		return dataset.View{}, ErrEmptyResult
	}
	return dataset.NewView(ds, idx), nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
