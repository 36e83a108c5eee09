package query

import "bnbstat/internal/dataset"

// DefaultHistogramBins matches the dashboard's price chart resolution.
const DefaultHistogramBins = 50

// Histogram is a frequency distribution: len(Counts) bins with
// len(Counts)+1 edges.
type Histogram struct {
	Counts []int     `json:"counts"`
	Edges  []float64 `json:"edges"`
}

// PriceHistogram computes equal-width frequency counts over the price
// domain of the view. The last bin includes its upper edge.
func PriceHistogram(v dataset.View, bins int) Histogram {
	if v.Len() == 0 || bins <= 0 {
		return Histogram{}
	}

	lo := v.Row(0).Price
	hi := lo
	for i := 1; i < v.Len(); i++ {
		p := v.Row(i).Price
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	// Degenerate domain: center a unit range on the single value.
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for i := 0; i < v.Len(); i++ {
		b := int((v.Row(i).Price - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}

	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	return Histogram{Counts: counts, Edges: edges}
}
