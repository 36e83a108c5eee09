package query

import (
	"sort"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

// ROISegment holds investment metrics for one (borough, room type) pair.
type ROISegment struct {
	Borough            string  `json:"borough"`
	RoomType           string  `json:"room_type"`
	MedianPrice        float64 `json:"median_price"`
	MedianAvailability float64 `json:"median_availability"`
	MedianReviews      float64 `json:"median_reviews"`
	EstimatedRevenue   float64 `json:"estimated_annual_revenue"`
}

// ROIBySegment groups v by (borough, room type), computes median price,
// availability, and reviews, derives revenue at the assumed occupancy
// rate, and returns the topN segments by revenue descending.
func ROIBySegment(v dataset.View, topN int) []ROISegment {
	if v.Len() == 0 || topN <= 0 {
		return nil
	}

	type segKey struct {
		borough  string
		roomType string
	}
	members := make(map[segKey][]int)
	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		k := segKey{borough: r.NeighbourhoodGroup, roomType: string(r.RoomType)}
		members[k] = append(members[k], i)
	}

	keys := make([]segKey, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].borough != keys[j].borough {
			return keys[i].borough < keys[j].borough
		}
		return keys[i].roomType < keys[j].roomType
	})

	out := make([]ROISegment, 0, len(keys))
	for _, k := range keys {
		var prices, avails, reviews []float64
		for _, i := range members[k] {
			r := v.Row(i)
			prices = append(prices, r.Price)
			avails = append(avails, float64(r.Availability365))
			reviews = append(reviews, float64(r.NumberOfReviews))
		}
		medPrice := median(prices)
		medAvail := median(avails)
		out = append(out, ROISegment{
			Borough:            k.borough,
			RoomType:           k.roomType,
			MedianPrice:        medPrice,
			MedianAvailability: medAvail,
			MedianReviews:      median(reviews),
			EstimatedRevenue:   medPrice * medAvail * listing.OccupancyRate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EstimatedRevenue > out[j].EstimatedRevenue
	})

	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
