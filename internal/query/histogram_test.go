package query

import (
	"testing"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

func TestPriceHistogram(t *testing.T) {
	v := viewOf(
		listing.Listing{Price: 10},
		listing.Listing{Price: 20},
		listing.Listing{Price: 30},
		listing.Listing{Price: 40},
	)

	h := PriceHistogram(v, 3)
	if len(h.Counts) != 3 || len(h.Edges) != 4 {
		t.Fatalf("got %d counts / %d edges, want 3 / 4", len(h.Counts), len(h.Edges))
	}

	// The maximum lands in the last bin, not past it.
	wantCounts := []int{1, 1, 2}
	for i, want := range wantCounts {
		if h.Counts[i] != want {
			t.Errorf("bin %d = %d, want %d", i, h.Counts[i], want)
		}
	}
	wantEdges := []float64{10, 20, 30, 40}
	for i, want := range wantEdges {
		if h.Edges[i] != want {
			t.Errorf("edge %d = %v, want %v", i, h.Edges[i], want)
		}
	}
}

func TestPriceHistogramSingleValue(t *testing.T) {
	v := viewOf(
		listing.Listing{Price: 100},
		listing.Listing{Price: 100},
	)

	h := PriceHistogram(v, 4)
	if len(h.Counts) != 4 || len(h.Edges) != 5 {
		t.Fatalf("got %d counts / %d edges, want 4 / 5", len(h.Counts), len(h.Edges))
	}
	if h.Edges[0] != 99.5 || h.Edges[4] != 100.5 {
		t.Errorf("domain = [%v, %v], want [99.5, 100.5]", h.Edges[0], h.Edges[4])
	}
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != 2 {
		t.Errorf("counted %d rows, want 2", total)
	}
}

func TestPriceHistogramEdges(t *testing.T) {
	if h := PriceHistogram(dataset.View{}, 10); h.Counts != nil || h.Edges != nil {
		t.Errorf("empty view histogram = %+v, want zero value", h)
	}
	v := viewOf(listing.Listing{Price: 50})
	if h := PriceHistogram(v, 0); h.Counts != nil {
		t.Errorf("bins=0 histogram = %+v, want zero value", h)
	}
}
