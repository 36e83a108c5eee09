package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"bnbstat/internal/listing"
)

// RequiredColumns must all be present in the input header.
var RequiredColumns = []string{
	"price",
	"minimum_nights",
	"latitude",
	"longitude",
	"availability_365",
	"calculated_host_listings_count",
	"host_id",
	"number_of_reviews",
	"room_type",
	"neighbourhood_group",
	"neighbourhood",
}

const reviewDateLayout = "2006-01-02"

// columns maps header names to field positions. Optional columns that
// are absent map to -1.
type columns struct {
	id, name, hostID, hostName           int
	neighbourhoodGroup, neighbourhood    int
	latitude, longitude, roomType, price int
	minimumNights, numberOfReviews       int
	lastReview, reviewsPerMonth          int
	hostListingsCount, availability365   int
}

// Load reads, cleans, and derives a dataset from a CSV file. The whole
// file is read into memory; the result is immutable.
func Load(path string) (*Dataset, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	return build(path, rows), nil
}

// readRows parses the file and applies the cleaning rules, in order:
// price outside [10,1000] dropped, minimum_nights >= 31 dropped, null
// latitude/longitude/price dropped, unparsable last_review kept as null.
func readRows(path string) ([]listing.Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	cols, missing := mapColumns(header)
	if len(missing) > 0 {
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	var rows []listing.Listing
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		l, ok := parseRow(record, cols)
		if ok {
			rows = append(rows, l)
		}
	}

	return rows, nil
}

// build computes dataset-wide host listing counts and the remaining
// derived columns over the surviving rows.
func build(path string, rows []listing.Listing) *Dataset {
	hostCounts := make(map[int64]int, len(rows))
	for i := range rows {
		hostCounts[rows[i].HostID]++
	}
	for i := range rows {
		l := &rows[i]
		l.HostListingRows = hostCounts[l.HostID]
		l.HostSize = listing.HostCategoryFor(l.HostListingRows)
		l.Derive()
	}
	return &Dataset{rows: rows, path: path, loadedAt: time.Now()}
}

func mapColumns(header []string) (columns, []string) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		pos[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := pos[name]; !ok {
			missing = append(missing, name)
		}
	}

	at := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	return columns{
		id:                 at("id"),
		name:               at("name"),
		hostID:             at("host_id"),
		hostName:           at("host_name"),
		neighbourhoodGroup: at("neighbourhood_group"),
		neighbourhood:      at("neighbourhood"),
		latitude:           at("latitude"),
		longitude:          at("longitude"),
		roomType:           at("room_type"),
		price:              at("price"),
		minimumNights:      at("minimum_nights"),
		numberOfReviews:    at("number_of_reviews"),
		lastReview:         at("last_review"),
		reviewsPerMonth:    at("reviews_per_month"),
		hostListingsCount:  at("calculated_host_listings_count"),
		availability365:    at("availability_365"),
	}, missing
}

// parseRow converts a CSV record into a Listing, applying the row-level
// cleaning rules. Returns false if the row must be dropped.
func parseRow(record []string, cols columns) (listing.Listing, bool) {
	price, ok := parseFloat(field(record, cols.price))
	if !ok || price < listing.MinPrice || price > listing.MaxPrice {
		return listing.Listing{}, false
	}

	minNights, ok := parseInt(field(record, cols.minimumNights))
	if !ok || minNights >= listing.MaxMinimumNights {
		return listing.Listing{}, false
	}

	lat, ok := parseFloat(field(record, cols.latitude))
	if !ok {
		return listing.Listing{}, false
	}
	lon, ok := parseFloat(field(record, cols.longitude))
	if !ok {
		return listing.Listing{}, false
	}

	l := listing.Listing{
		Price:              price,
		MinimumNights:      minNights,
		Latitude:           lat,
		Longitude:          lon,
		NeighbourhoodGroup: field(record, cols.neighbourhoodGroup),
		Neighbourhood:      field(record, cols.neighbourhood),
		RoomType:           listing.RoomType(field(record, cols.roomType)),
	}

	l.ID, _ = parseInt64(field(record, cols.id))
	l.HostID, _ = parseInt64(field(record, cols.hostID))
	l.Name = optionalString(field(record, cols.name))
	l.HostName = optionalString(field(record, cols.hostName))

	if n, ok := parseInt(field(record, cols.numberOfReviews)); ok {
		l.NumberOfReviews = n
	}
	if n, ok := parseInt(field(record, cols.hostListingsCount)); ok {
		l.HostListingsCount = n
	}
	if n, ok := parseInt(field(record, cols.availability365)); ok {
		l.Availability365 = n
	}

	// Unparsable review dates become null rather than dropping the row.
	if raw := field(record, cols.lastReview); raw != "" {
		if t, err := time.Parse(reviewDateLayout, raw); err == nil {
			l.LastReview = &t
		}
	}
	if v, ok := parseFloat(field(record, cols.reviewsPerMonth)); ok {
		l.ReviewsPerMonth = &v
	}

	return l, true
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int, bool) {
	v, ok := parseInt64(s)
	return int(v), ok
}

func parseInt64(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	// Some exports write integer columns as floats ("3.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}
