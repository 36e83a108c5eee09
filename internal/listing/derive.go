package listing

import "time"

// Cleaning thresholds. Rows outside these bounds are dropped at load
// time, never clipped.
const (
	MinPrice         = 10.0
	MaxPrice         = 1000.0
	MaxMinimumNights = 31
)

// OccupancyRate is the assumed occupancy used for revenue estimates.
const OccupancyRate = 0.7

// Commercial returns true when a listing looks professionally operated:
// nearly year-round availability or a host running many listings.
func Commercial(availability365, hostListingsCount int) bool {
	return availability365 > 300 || hostListingsCount > 5
}

// PriceCategoryFor buckets a nightly price. Prices at a bucket edge fall
// into the lower bucket, matching half-open (lo, hi] intervals.
func PriceCategoryFor(price float64) PriceCategory {
	switch {
	case price <= 50:
		return PriceBudget
	case price <= 100:
		return PriceEconomy
	case price <= 200:
		return PriceMidRange
	case price <= 500:
		return PriceUpscale
	default:
		return PriceLuxury
	}
}

// HostCategoryFor buckets a host's listing count using (0,1], (1,5],
// (5,10], (10,inf) edges.
func HostCategoryFor(count int) HostCategory {
	switch {
	case count <= 1:
		return HostSingle
	case count <= 5:
		return HostSmall
	case count <= 10:
		return HostMedium
	default:
		return HostMega
	}
}

// LoadValueScore is the derived-column value score: reviews per dollar,
// scaled by 100. Query-level rankings use the unscaled variant instead;
// the two are deliberately distinct.
func LoadValueScore(numberOfReviews int, price float64) float64 {
	return float64(numberOfReviews) / (price + 1) * 100
}

// ReviewsPerDollar is the unscaled value score used by top-value and
// by-borough rankings.
func ReviewsPerDollar(numberOfReviews int, price float64) float64 {
	return float64(numberOfReviews) / (price + 1)
}

// EstimatedAnnualRevenue assumes OccupancyRate of the listing's open days.
func EstimatedAnnualRevenue(price float64, availability365 int) float64 {
	return price * float64(availability365) * OccupancyRate
}

// ReviewMonth formats a review date as a year-month key ("2019-06").
func ReviewMonth(t time.Time) string {
	return t.Format("2006-01")
}

// Derive fills in every derived field of l except HostListingRows and
// HostSize, which depend on dataset-wide host counts and are set by the
// loader after all rows are collected.
func (l *Listing) Derive() {
	if l.LastReview != nil {
		l.ReviewMonth = ReviewMonth(*l.LastReview)
		l.ReviewYear = l.LastReview.Year()
	}
	l.IsCommercial = Commercial(l.Availability365, l.HostListingsCount)
	l.PriceCategory = PriceCategoryFor(l.Price)
	l.HostCategory = HostCategoryFor(l.HostListingsCount)
	l.ValueScore = LoadValueScore(l.NumberOfReviews, l.Price)
	l.EstimatedAnnualRevenue = EstimatedAnnualRevenue(l.Price, l.Availability365)
}
