package query

import (
	"sort"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

// HostRank is one entry of the top-hosts ranking.
type HostRank struct {
	HostID       int64   `json:"host_id"`
	HostName     string  `json:"host_name"`
	ListingCount int     `json:"listing_count"`
	AvgPrice     float64 `json:"avg_price"`
	TotalReviews int     `json:"total_reviews"`
}

// TopHosts ranks hosts by listing count within the view, descending.
// Ties keep first-appearance order so results are deterministic.
func TopHosts(v dataset.View, n int) []HostRank {
	if v.Len() == 0 || n <= 0 {
		return nil
	}

	index := make(map[int64]int)
	var ranks []HostRank
	priceSums := make(map[int64]float64)

	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		pos, ok := index[r.HostID]
		if !ok {
			pos = len(ranks)
			index[r.HostID] = pos
			name := ""
			if r.HostName != nil {
				name = *r.HostName
			}
			ranks = append(ranks, HostRank{HostID: r.HostID, HostName: name})
		}
		ranks[pos].ListingCount++
		ranks[pos].TotalReviews += r.NumberOfReviews
		priceSums[r.HostID] += r.Price
	}

	for i := range ranks {
		ranks[i].AvgPrice = round2(priceSums[ranks[i].HostID] / float64(ranks[i].ListingCount))
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].ListingCount > ranks[j].ListingCount
	})

	if len(ranks) > n {
		ranks = ranks[:n]
	}
	return ranks
}

// CategoryCount is a row count for one host category bucket.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// HostCategoryDistribution counts view rows per host category. All four
// buckets are reported, in bucket order, so charts keep a stable axis.
func HostCategoryDistribution(v dataset.View) []CategoryCount {
	counts := make(map[listing.HostCategory]int)
	for i := 0; i < v.Len(); i++ {
		counts[v.Row(i).HostCategory]++
	}

	out := make([]CategoryCount, 0, 4)
	for _, c := range listing.HostCategories() {
		out = append(out, CategoryCount{Category: string(c), Count: counts[c]})
	}
	return out
}

// EntireHomeByHostSize counts "Entire home/apt" listings per host-size
// bucket, a proxy for regulatory exposure from multi-listing hosts.
func EntireHomeByHostSize(v dataset.View) []CategoryCount {
	counts := make(map[listing.HostCategory]int)
	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		if r.RoomType == listing.RoomEntireHome {
			counts[r.HostSize]++
		}
	}

	out := make([]CategoryCount, 0, 4)
	for _, c := range listing.HostCategories() {
		out = append(out, CategoryCount{Category: string(c), Count: counts[c]})
	}
	return out
}
