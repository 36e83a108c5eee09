// Package export writes filtered views back out as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"bnbstat/internal/dataset"
	"bnbstat/internal/listing"
)

// DefaultColumns is the standard export projection.
var DefaultColumns = []string{
	"name",
	"neighbourhood_group",
	"neighbourhood",
	"room_type",
	"price",
	"number_of_reviews",
	"availability_365",
	"host_category",
}

// columnValue extracts one exportable column from a listing.
var columnValue = map[string]func(*listing.Listing) string{
	"name": func(l *listing.Listing) string {
		if l.Name == nil {
			return ""
		}
		return *l.Name
	},
	"neighbourhood_group": func(l *listing.Listing) string { return l.NeighbourhoodGroup },
	"neighbourhood":       func(l *listing.Listing) string { return l.Neighbourhood },
	"room_type":           func(l *listing.Listing) string { return string(l.RoomType) },
	"price": func(l *listing.Listing) string {
		return strconv.FormatFloat(l.Price, 'f', -1, 64)
	},
	"number_of_reviews": func(l *listing.Listing) string { return strconv.Itoa(l.NumberOfReviews) },
	"availability_365":  func(l *listing.Listing) string { return strconv.Itoa(l.Availability365) },
	"host_category":     func(l *listing.Listing) string { return string(l.HostCategory) },
}

// CSV writes the view projected to the given columns, header first, one
// row per listing in view order. Unknown column names are skipped
// silently. A nil or empty columns slice exports DefaultColumns.
func CSV(v dataset.View, path string, columns []string) error {
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	// Keep only columns the view can provide.
	var cols []string
	for _, c := range columns {
		if _, ok := columnValue[c]; ok {
			cols = append(cols, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing header to %s: %w", path, err)
	}

	row := make([]string, len(cols))
	for i := 0; i < v.Len(); i++ {
		l := v.Row(i)
		for j, c := range cols {
			row[j] = columnValue[c](l)
		}
		if err := w.Write(row); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
