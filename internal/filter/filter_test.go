package filter

import (
	"testing"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

// fixture builds a small dataset with a predictable spread of boroughs,
// room types, and prices.
func fixture() *dataset.Dataset {
	var rows []listing.Listing
	add := func(n int, borough, hood string, room listing.RoomType, price float64, nights, reviews, avail, hostListings int) {
		for i := 0; i < n; i++ {
			rows = append(rows, listing.Listing{
				ID:                 int64(len(rows) + 1),
				HostID:             int64(len(rows) + 1),
				NeighbourhoodGroup: borough,
				Neighbourhood:      hood,
				RoomType:           room,
				Price:              price,
				MinimumNights:      nights,
				NumberOfReviews:    reviews,
				Availability365:    avail,
				HostListingsCount:  hostListings,
				Latitude:           40.7,
				Longitude:          -73.9,
			})
		}
	}

	add(60, "Manhattan", "Harlem", listing.RoomEntireHome, 200, 2, 50, 100, 1)
	add(25, "Brooklyn", "Williamsburg", listing.RoomPrivateRoom, 80, 1, 10, 350, 1)
	add(15, "Queens", "Astoria", listing.RoomSharedRoom, 40, 5, 2, 30, 7)
	return dataset.New(rows)
}

func TestApplyBoroughFilter(t *testing.T) {
	ds := fixture()

	view, err := Apply(ds, Spec{Boroughs: []string{"Manhattan"}})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if view.Len() != 60 {
		t.Errorf("got %d rows, want 60", view.Len())
	}
	for i := 0; i < view.Len(); i++ {
		if view.Row(i).NeighbourhoodGroup != "Manhattan" {
			t.Fatalf("row %d is %q, want Manhattan", i, view.Row(i).NeighbourhoodGroup)
		}
	}
}

func TestApplyEmptyResult(t *testing.T) {
	ds := fixture()

	_, err := Apply(ds, Spec{Boroughs: []string{"Bronx"}})
	if err != ErrEmptyResult {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestApplyZeroSpecMatchesEverything(t *testing.T) {
	ds := fixture()

	view, err := Apply(ds, Spec{})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if view.Len() != ds.Len() {
		t.Errorf("got %d rows, want %d", view.Len(), ds.Len())
	}
}

func TestApplyClauses(t *testing.T) {
	ds := fixture()

	tests := []struct {
		name string
		spec Spec
		want int
	}{
		{"neighbourhood", Spec{Neighbourhood: "Williamsburg"}, 25},
		{"neighbourhood all", Spec{Neighbourhood: "all"}, 100},
		{"room type", Spec{RoomTypes: []string{"Private room"}}, 25},
		{"price range", Spec{PriceMin: 50, PriceMax: 100}, 25},
		{"price min only", Spec{PriceMin: 150}, 60},
		{"price max only", Spec{PriceMax: 90}, 40},
		{"price range wide", Spec{PriceMax: 1000}, 100},
		{"max nights", Spec{MaxMinimumNights: 2}, 85},
		{"min reviews", Spec{MinReviews: 11}, 60},
		{"host category", Spec{HostCategory: "Medium (6-10)"}, 15},
		{"host category all", Spec{HostCategory: "all"}, 100},
		{"commercial only", Spec{CommercialOnly: true}, 40},
		{"conjunction", Spec{Boroughs: []string{"Manhattan", "Brooklyn"}, PriceMax: 100}, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := Apply(ds, tt.spec)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if view.Len() != tt.want {
				t.Errorf("got %d rows, want %d", view.Len(), tt.want)
			}
		})
	}
}

func TestApplyIdempotent(t *testing.T) {
	ds := fixture()
	spec := Spec{Boroughs: []string{"Manhattan"}, PriceMax: 500}

	first, err := Apply(ds, spec)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	second, err := Apply(ds, spec)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for i := 0; i < first.Len(); i++ {
		if first.Index(i) != second.Index(i) {
			t.Fatalf("row order differs at %d", i)
		}
	}
}

func TestApplyMonotonic(t *testing.T) {
	ds := fixture()

	loose, err := Apply(ds, Spec{PriceMax: 1000})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// Tightening any single clause never grows the result.
	tighter := []Spec{
		{PriceMax: 100},
		{PriceMax: 1000, MinReviews: 5},
		{PriceMax: 1000, MaxMinimumNights: 1},
		{PriceMax: 1000, Boroughs: []string{"Queens"}},
		{PriceMax: 1000, CommercialOnly: true},
	}
	for _, spec := range tighter {
		view, err := Apply(ds, spec)
		if err == ErrEmptyResult {
			continue
		}
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if view.Len() > loose.Len() {
			t.Errorf("spec %+v grew the result: %d > %d", spec, view.Len(), loose.Len())
		}
	}
}

func TestApplyNilDataset(t *testing.T) {
	_, err := Apply(nil, Spec{})
	if err != ErrEmptyResult {
		t.Fatalf("expected ErrEmptyResult on nil dataset, got %v", err)
	}
}

func TestSpecIsZero(t *testing.T) {
	if !(Spec{}).IsZero() {
		t.Error("zero spec should be zero")
	}
	if !(Spec{Neighbourhood: "all", HostCategory: "all"}).IsZero() {
		t.Error(`"all" selectors restrict nothing`)
	}
	if (Spec{CommercialOnly: true}).IsZero() {
		t.Error("commercial-only spec is not zero")
	}
}
