// Package listing provides the listing domain model and derived-column rules.
package listing

import "time"

// RoomType is one of the three Airbnb room types.
type RoomType string

const (
	RoomEntireHome  RoomType = "Entire home/apt"
	RoomPrivateRoom RoomType = "Private room"
	RoomSharedRoom  RoomType = "Shared room"
)

// Boroughs are the five NYC neighbourhood groups.
var Boroughs = []string{"Bronx", "Brooklyn", "Manhattan", "Queens", "Staten Island"}

// PriceCategory is an ordered price bucket label.
type PriceCategory string

const (
	PriceBudget   PriceCategory = "Budget ($0-50)"
	PriceEconomy  PriceCategory = "Economy ($50-100)"
	PriceMidRange PriceCategory = "Mid-range ($100-200)"
	PriceUpscale  PriceCategory = "Upscale ($200-500)"
	PriceLuxury   PriceCategory = "Luxury ($500+)"
)

// HostCategory is an ordered bucket of how many listings a host operates.
type HostCategory string

const (
	HostSingle HostCategory = "Single (1)"
	HostSmall  HostCategory = "Small (2-5)"
	HostMedium HostCategory = "Medium (6-10)"
	HostMega   HostCategory = "Mega (10+)"
)

// HostCategories returns the host category labels in bucket order.
func HostCategories() []HostCategory {
	return []HostCategory{HostSingle, HostSmall, HostMedium, HostMega}
}

// Listing is one cleaned row of the dataset. Derived fields are computed
// once at load time and never mutated afterwards.
type Listing struct {
	ID                 int64    `json:"id"`
	Name               *string  `json:"name,omitempty"`
	HostID             int64    `json:"host_id"`
	HostName           *string  `json:"host_name,omitempty"`
	NeighbourhoodGroup string   `json:"neighbourhood_group"`
	Neighbourhood      string   `json:"neighbourhood"`
	Latitude           float64  `json:"latitude"`
	Longitude          float64  `json:"longitude"`
	RoomType           RoomType `json:"room_type"`
	Price              float64  `json:"price"`
	MinimumNights      int      `json:"minimum_nights"`
	NumberOfReviews    int      `json:"number_of_reviews"`
	LastReview         *time.Time `json:"last_review,omitempty"`
	ReviewsPerMonth    *float64   `json:"reviews_per_month,omitempty"`
	HostListingsCount  int        `json:"calculated_host_listings_count"`
	Availability365    int        `json:"availability_365"`

	// Derived columns.
	ReviewMonth     string        `json:"review_month,omitempty"`
	ReviewYear      int           `json:"review_year,omitempty"`
	IsCommercial    bool          `json:"is_commercial"`
	PriceCategory   PriceCategory `json:"price_category"`
	HostListingRows int           `json:"host_listing_count"`
	HostSize        HostCategory  `json:"host_size"`
	HostCategory    HostCategory  `json:"host_category"`
	ValueScore      float64       `json:"value_score"`
	EstimatedAnnualRevenue float64 `json:"estimated_annual_revenue"`
}
