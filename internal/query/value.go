package query

import (
	"sort"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

// maxPracticalNights caps minimum-stay length for traveler-facing value
// rankings.
const maxPracticalNights = 7

// ValueListing is one entry of the top-value ranking.
type ValueListing struct {
	Name            string  `json:"name"`
	Neighbourhood   string  `json:"neighbourhood"`
	Price           float64 `json:"price"`
	NumberOfReviews int     `json:"number_of_reviews"`
	RoomType        string  `json:"room_type"`
	ValueScore      float64 `json:"value_score"`
	MinimumNights   int     `json:"minimum_nights"`
}

// TopValueListings ranks listings with minimum_nights <= 7 by reviews
// per dollar, descending, ties in view order. The score here is the
// unscaled variant, not the derived value_score column.
func TopValueListings(v dataset.View, n int) []ValueListing {
	if v.Len() == 0 || n <= 0 {
		return nil
	}

	var out []ValueListing
	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		if r.MinimumNights > maxPracticalNights {
			continue
		}
		name := ""
		if r.Name != nil {
			name = *r.Name
		}
		out = append(out, ValueListing{
			Name:            name,
			Neighbourhood:   r.Neighbourhood,
			Price:           r.Price,
			NumberOfReviews: r.NumberOfReviews,
			RoomType:        string(r.RoomType),
			ValueScore:      listing.ReviewsPerDollar(r.NumberOfReviews, r.Price),
			MinimumNights:   r.MinimumNights,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ValueScore > out[j].ValueScore
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// BoroughValue is the mean reviews-per-dollar score for one borough.
type BoroughValue struct {
	Borough    string  `json:"borough"`
	ValueScore float64 `json:"value_score"`
}

// ValueScoreByBorough computes the mean unscaled value score per
// borough, sorted by borough name.
func ValueScoreByBorough(v dataset.View) []BoroughValue {
	groups := groupIndices(v, func(i int) string { return v.Row(i).NeighbourhoodGroup })

	out := make([]BoroughValue, 0, len(groups.keys))
	for _, borough := range groups.keys {
		idx := groups.members[borough]
		scores := make([]float64, 0, len(idx))
		for _, i := range idx {
			r := v.Row(i)
			scores = append(scores, listing.ReviewsPerDollar(r.NumberOfReviews, r.Price))
		}
		out = append(out, BoroughValue{Borough: borough, ValueScore: mean(scores)})
	}
	return out
}
