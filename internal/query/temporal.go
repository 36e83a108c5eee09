package query

import (
	"sort"

	"bnbstat/internal/dataset"
)

// MonthCount is the review count for one calendar month.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// MonthlyReviewTrend counts rows with a last review in each calendar
// month, in chronological order. Rows without a review date are skipped.
func MonthlyReviewTrend(v dataset.View) []MonthCount {
	counts := make(map[string]int)
	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		if r.LastReview == nil {
			continue
		}
		counts[r.ReviewMonth]++
	}

	months := make([]string, 0, len(counts))
	for m := range counts {
		months = append(months, m)
	}
	// Year-month keys sort chronologically as strings.
	sort.Strings(months)

	out := make([]MonthCount, 0, len(months))
	for _, m := range months {
		out = append(out, MonthCount{Month: m, Count: counts[m]})
	}
	return out
}
