package query

import (
	"testing"
	"time"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

func qualityFixture() dataset.View {
	rpm := 0.8
	return viewOf(
		listing.Listing{Name: strPtr("A"), HostName: strPtr("H"), LastReview: datePtr(2019, time.June, 1), ReviewsPerMonth: &rpm, Price: 100},
		listing.Listing{Name: strPtr("B"), HostName: strPtr("H"), Price: 100},
		listing.Listing{Name: strPtr("C"), HostName: strPtr("H"), Price: 100},
		listing.Listing{Name: strPtr("D"), HostName: strPtr("H"), LastReview: datePtr(2019, time.July, 1), Price: 100},
	)
}

func TestMissingDataStats(t *testing.T) {
	got := MissingDataStats(qualityFixture())

	// name and host_name are fully present, so only two columns report.
	want := []MissingColumn{
		{Column: "last_review", Count: 2, Percentage: 50},
		{Column: "reviews_per_month", Count: 3, Percentage: 75},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d columns, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMissingDataStatsEmpty(t *testing.T) {
	if got := MissingDataStats(dataset.View{}); got != nil {
		t.Errorf("empty view = %v, want nil", got)
	}
}

func TestDataQualityScore(t *testing.T) {
	got := DataQualityScore(qualityFixture())

	if got.TotalRecords != 4 {
		t.Errorf("total records = %d, want 4", got.TotalRecords)
	}
	if got.MissingCells != 5 {
		t.Errorf("missing cells = %d, want 5", got.MissingCells)
	}
	// 59 of 64 cells present, to one decimal.
	if got.Completeness != 92.2 {
		t.Errorf("completeness = %v, want 92.2", got.Completeness)
	}
	if got.Score != got.Completeness {
		t.Errorf("score = %v, want completeness %v", got.Score, got.Completeness)
	}
	if got.OutliersFiltered != 0 {
		t.Errorf("outliers = %d, want 0 (prices are in band)", got.OutliersFiltered)
	}
}

func TestDataQualityScoreFlagsOutliers(t *testing.T) {
	rpm := 1.0
	v := viewOf(
		listing.Listing{Name: strPtr("A"), HostName: strPtr("H"), LastReview: datePtr(2019, time.June, 1), ReviewsPerMonth: &rpm, Price: 5},
	)

	got := DataQualityScore(v)
	if got.OutliersFiltered != 1 {
		t.Errorf("outliers = %d, want 1 (price below band)", got.OutliersFiltered)
	}
}

func TestDataQualityScoreEmpty(t *testing.T) {
	if got := DataQualityScore(dataset.View{}); got != (QualityReport{}) {
		t.Errorf("empty view report = %+v, want zero value", got)
	}
}
