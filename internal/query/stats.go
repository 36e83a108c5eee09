// Package query is the catalog of analytical queries computed against a
// filtered view. Every query is a pure function of its view argument and
// returns an empty or zero-valued result for empty or absent data.
package query

import (
	"math"
	"sort"

	"bnbstat/internal/dataset"
)

// Summary holds the headline statistics for a view.
type Summary struct {
	TotalListings   int     `json:"total_listings"`
	AvgPrice        float64 `json:"avg_price"`
	MedianPrice     float64 `json:"median_price"`
	TotalHosts      int     `json:"total_hosts"`
	AvgReviews      float64 `json:"avg_reviews"`
	TotalReviews    int     `json:"total_reviews"`
	CommercialCount int     `json:"commercial_count"`
	AvgAvailability float64 `json:"avg_availability"`
}

// SummaryStats computes the headline statistics for v.
func SummaryStats(v dataset.View) Summary {
	n := v.Len()
	if n == 0 {
		return Summary{}
	}

	var (
		prices       = make([]float64, 0, n)
		hosts        = make(map[int64]bool, n)
		totalReviews int
		commercial   int
		availSum     float64
	)
	for i := 0; i < n; i++ {
		r := v.Row(i)
		prices = append(prices, r.Price)
		hosts[r.HostID] = true
		totalReviews += r.NumberOfReviews
		if r.IsCommercial {
			commercial++
		}
		availSum += float64(r.Availability365)
	}

	return Summary{
		TotalListings:   n,
		AvgPrice:        mean(prices),
		MedianPrice:     median(prices),
		TotalHosts:      len(hosts),
		AvgReviews:      float64(totalReviews) / float64(n),
		TotalReviews:    totalReviews,
		CommercialCount: commercial,
		AvgAvailability: availSum / float64(n),
	}
}

// BoroughStats holds grouped statistics for one neighbourhood group.
type BoroughStats struct {
	Borough         string  `json:"borough"`
	Count           int     `json:"count"`
	AvgPrice        float64 `json:"avg_price"`
	MedianPrice     float64 `json:"median_price"`
	TotalReviews    int     `json:"total_reviews"`
	AvgAvailability float64 `json:"avg_availability"`
}

// StatsByBorough groups v by neighbourhood group, sorted by borough name.
func StatsByBorough(v dataset.View) []BoroughStats {
	groups := groupIndices(v, func(i int) string { return v.Row(i).NeighbourhoodGroup })

	out := make([]BoroughStats, 0, len(groups.keys))
	for _, borough := range groups.keys {
		idx := groups.members[borough]
		var prices []float64
		var reviews int
		var availSum float64
		for _, i := range idx {
			r := v.Row(i)
			prices = append(prices, r.Price)
			reviews += r.NumberOfReviews
			availSum += float64(r.Availability365)
		}
		out = append(out, BoroughStats{
			Borough:         borough,
			Count:           len(idx),
			AvgPrice:        round2(mean(prices)),
			MedianPrice:     round2(median(prices)),
			TotalReviews:    reviews,
			AvgAvailability: round2(availSum / float64(len(idx))),
		})
	}
	return out
}

// RoomTypeStats holds grouped statistics for one room type.
type RoomTypeStats struct {
	RoomType    string  `json:"room_type"`
	Count       int     `json:"count"`
	AvgPrice    float64 `json:"avg_price"`
	MedianPrice float64 `json:"median_price"`
	AvgReviews  float64 `json:"avg_reviews"`
}

// StatsByRoomType groups v by room type, sorted by room type name.
func StatsByRoomType(v dataset.View) []RoomTypeStats {
	groups := groupIndices(v, func(i int) string { return string(v.Row(i).RoomType) })

	out := make([]RoomTypeStats, 0, len(groups.keys))
	for _, rt := range groups.keys {
		idx := groups.members[rt]
		var prices []float64
		var reviews int
		for _, i := range idx {
			r := v.Row(i)
			prices = append(prices, r.Price)
			reviews += r.NumberOfReviews
		}
		out = append(out, RoomTypeStats{
			RoomType:    rt,
			Count:       len(idx),
			AvgPrice:    round2(mean(prices)),
			MedianPrice: round2(median(prices)),
			AvgReviews:  round2(float64(reviews) / float64(len(idx))),
		})
	}
	return out
}

// PartitionStats holds median statistics for one side of the
// commercial/regular split.
type PartitionStats struct {
	Count              int     `json:"count"`
	MedianPrice        float64 `json:"median_price"`
	MedianAvailability float64 `json:"median_availability"`
	MedianReviews      float64 `json:"median_reviews"`
}

// CommercialComparison compares commercial and regular listings.
type CommercialComparison struct {
	Commercial PartitionStats `json:"commercial"`
	Regular    PartitionStats `json:"regular"`
}

// CompareCommercial partitions v on the is_commercial flag and computes
// median price, availability, and reviews for each side.
func CompareCommercial(v dataset.View) CommercialComparison {
	var com, reg []int
	for i := 0; i < v.Len(); i++ {
		if v.Row(i).IsCommercial {
			com = append(com, i)
		} else {
			reg = append(reg, i)
		}
	}
	return CommercialComparison{
		Commercial: partitionStats(v, com),
		Regular:    partitionStats(v, reg),
	}
}

func partitionStats(v dataset.View, idx []int) PartitionStats {
	if len(idx) == 0 {
		return PartitionStats{}
	}
	var prices, avails, reviews []float64
	for _, i := range idx {
		r := v.Row(i)
		prices = append(prices, r.Price)
		avails = append(avails, float64(r.Availability365))
		reviews = append(reviews, float64(r.NumberOfReviews))
	}
	return PartitionStats{
		Count:              len(idx),
		MedianPrice:        median(prices),
		MedianAvailability: median(avails),
		MedianReviews:      median(reviews),
	}
}

// Interval is a mean with its 95% confidence bounds.
type Interval struct {
	Mean          float64 `json:"mean"`
	Lower         float64 `json:"ci_lower"`
	Upper         float64 `json:"ci_upper"`
	MarginOfError float64 `json:"margin_of_error"`
}

// Uncertainty holds 95% confidence intervals for price and estimated
// annual revenue.
type Uncertainty struct {
	Price   Interval `json:"price"`
	Revenue Interval `json:"revenue"`
}

// UncertaintyStats computes mean ± 1.96·stderr for price and revenue.
func UncertaintyStats(v dataset.View) Uncertainty {
	n := v.Len()
	if n == 0 {
		return Uncertainty{}
	}

	prices := make([]float64, 0, n)
	revenues := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		r := v.Row(i)
		prices = append(prices, r.Price)
		revenues = append(revenues, r.EstimatedAnnualRevenue)
	}

	return Uncertainty{
		Price:   confidenceInterval(prices),
		Revenue: confidenceInterval(revenues),
	}
}

func confidenceInterval(xs []float64) Interval {
	m := mean(xs)
	margin := 1.96 * stddev(xs) / math.Sqrt(float64(len(xs)))
	return Interval{
		Mean:          round2(m),
		Lower:         round2(m - margin),
		Upper:         round2(m + margin),
		MarginOfError: round2(margin),
	}
}

// grouping collects view-row indices per key with keys sorted.
type grouping struct {
	keys    []string
	members map[string][]int
}

func groupIndices(v dataset.View, key func(i int) string) grouping {
	members := make(map[string][]int)
	for i := 0; i < v.Len(); i++ {
		k := key(i)
		members[k] = append(members[k], i)
	}
	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return grouping{keys: keys, members: members}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// median averages the two middle values for even-length input.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// stddev is the population standard deviation.
func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
