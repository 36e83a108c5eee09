package query

import (
	"log/slog"
	"math"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

// schemaColumns is the raw column count used for cell-completeness
// accounting. The denominator is the 16-column input schema, not the
// wider derived frame. Post-cleaning, only the four key columns can be
// null.
const schemaColumns = 16

// keyColumns are the nullable columns tracked by missing-data reports.
var keyColumns = []string{"name", "host_name", "last_review", "reviews_per_month"}

// MissingColumn reports nulls for one column of the view.
type MissingColumn struct {
	Column     string  `json:"column"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MissingDataStats reports null counts for the key columns. Columns
// with no missing values are omitted.
func MissingDataStats(v dataset.View) []MissingColumn {
	n := v.Len()
	if n == 0 {
		return nil
	}

	counts := missingByColumn(v)
	var out []MissingColumn
	for _, col := range keyColumns {
		if counts[col] == 0 {
			continue
		}
		out = append(out, MissingColumn{
			Column:     col,
			Count:      counts[col],
			Percentage: round1(float64(counts[col]) / float64(n) * 100),
		})
	}
	return out
}

// QualityReport summarizes dataset completeness.
type QualityReport struct {
	Score            float64 `json:"score"`
	TotalRecords     int     `json:"total_records"`
	MissingCells     int     `json:"missing_cells"`
	Completeness     float64 `json:"completeness"`
	OutliersFiltered int     `json:"outliers_filtered"`
}

// DataQualityScore computes overall cell completeness and re-checks the
// price band. Out-of-band rows should be impossible after cleaning; a
// non-zero count is logged as a derivation defect.
func DataQualityScore(v dataset.View) QualityReport {
	n := v.Len()
	if n == 0 {
		return QualityReport{}
	}

	counts := missingByColumn(v)
	missing := 0
	for _, c := range counts {
		missing += c
	}

	outliers := 0
	for i := 0; i < n; i++ {
		p := v.Row(i).Price
		if p < listing.MinPrice || p > listing.MaxPrice {
			outliers++
		}
	}
	if outliers > 0 {
		slog.Warn("price outliers survived cleaning", "count", outliers)
	}

	totalCells := n * schemaColumns
	completeness := round1(float64(totalCells-missing) / float64(totalCells) * 100)

	return QualityReport{
		Score:            completeness,
		TotalRecords:     n,
		MissingCells:     missing,
		Completeness:     completeness,
		OutliersFiltered: outliers,
	}
}

func missingByColumn(v dataset.View) map[string]int {
	counts := make(map[string]int, len(keyColumns))
	for i := 0; i < v.Len(); i++ {
		r := v.Row(i)
		if r.Name == nil {
			counts["name"]++
		}
		if r.HostName == nil {
			counts["host_name"]++
		}
		if r.LastReview == nil {
			counts["last_review"]++
		}
		if r.ReviewsPerMonth == nil {
			counts["reviews_per_month"]++
		}
	}
	return counts
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
