package listing

import (
	"testing"
	"time"
)

func TestCommercial(t *testing.T) {
	tests := []struct {
		name         string
		availability int
		hostListings int
		want         bool
	}{
		{"low availability, few listings", 100, 1, false},
		{"high availability", 301, 1, true},
		{"availability at threshold", 300, 1, false},
		{"many listings", 10, 6, true},
		{"listings at threshold", 10, 5, false},
		{"both high", 365, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Commercial(tt.availability, tt.hostListings); got != tt.want {
				t.Errorf("Commercial(%d, %d) = %v, want %v",
					tt.availability, tt.hostListings, got, tt.want)
			}
		})
	}
}

func TestPriceCategoryFor(t *testing.T) {
	tests := []struct {
		price float64
		want  PriceCategory
	}{
		{25, PriceBudget},
		{50, PriceBudget},
		{50.01, PriceEconomy},
		{100, PriceEconomy},
		{150, PriceMidRange},
		{200, PriceMidRange},
		{350, PriceUpscale},
		{500, PriceUpscale},
		{501, PriceLuxury},
		{1000, PriceLuxury},
	}

	for _, tt := range tests {
		if got := PriceCategoryFor(tt.price); got != tt.want {
			t.Errorf("PriceCategoryFor(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestHostCategoryFor(t *testing.T) {
	tests := []struct {
		count int
		want  HostCategory
	}{
		{1, HostSingle},
		{2, HostSmall},
		{5, HostSmall},
		{6, HostMedium},
		{10, HostMedium},
		{11, HostMega},
		{100, HostMega},
	}

	for _, tt := range tests {
		if got := HostCategoryFor(tt.count); got != tt.want {
			t.Errorf("HostCategoryFor(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}

func TestValueScoreVariants(t *testing.T) {
	// The derived column is scaled by 100; rankings use the raw ratio.
	scaled := LoadValueScore(50, 99)
	if scaled != 50.0 {
		t.Errorf("LoadValueScore(50, 99) = %v, want 50", scaled)
	}

	raw := ReviewsPerDollar(50, 99)
	if raw != 0.5 {
		t.Errorf("ReviewsPerDollar(50, 99) = %v, want 0.5", raw)
	}
}

func TestEstimatedAnnualRevenue(t *testing.T) {
	got := EstimatedAnnualRevenue(150, 200)
	if got != 21000 {
		t.Errorf("EstimatedAnnualRevenue(150, 200) = %v, want 21000", got)
	}
}

func TestDerive(t *testing.T) {
	review := time.Date(2019, 6, 23, 0, 0, 0, 0, time.UTC)
	l := Listing{
		Price:             120,
		NumberOfReviews:   10,
		Availability365:   310,
		HostListingsCount: 1,
		LastReview:        &review,
	}
	l.Derive()

	if !l.IsCommercial {
		t.Error("expected availability 310 to flag the listing commercial")
	}
	if l.PriceCategory != PriceMidRange {
		t.Errorf("price category = %q, want %q", l.PriceCategory, PriceMidRange)
	}
	if l.HostCategory != HostSingle {
		t.Errorf("host category = %q, want %q", l.HostCategory, HostSingle)
	}
	if l.ReviewMonth != "2019-06" {
		t.Errorf("review month = %q, want 2019-06", l.ReviewMonth)
	}
	if l.ReviewYear != 2019 {
		t.Errorf("review year = %d, want 2019", l.ReviewYear)
	}
	wantScore := 10.0 / 121.0 * 100
	if l.ValueScore != wantScore {
		t.Errorf("value score = %v, want %v", l.ValueScore, wantScore)
	}
	if l.EstimatedAnnualRevenue != 120*310*0.7 {
		t.Errorf("revenue = %v, want %v", l.EstimatedAnnualRevenue, 120*310*0.7)
	}
}

func TestDeriveNoReview(t *testing.T) {
	l := Listing{Price: 80, NumberOfReviews: 0}
	l.Derive()

	if l.ReviewMonth != "" {
		t.Errorf("review month = %q, want empty", l.ReviewMonth)
	}
	if l.ReviewYear != 0 {
		t.Errorf("review year = %d, want 0", l.ReviewYear)
	}
}
