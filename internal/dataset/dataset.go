// Package dataset provides CSV ingestion and the immutable in-memory
// dataset that filtering and queries operate on.
package dataset

import (
	"sort"
	"time"

	"bnbstat/internal/listing"
)

// Dataset is the cleaned, derived base dataset. Rows are immutable once
// loaded; filters and queries only ever reference them by index.
type Dataset struct {
	rows     []listing.Listing
	path     string
	loadedAt time.Time
}

// New builds a dataset from already-cleaned rows, computing the
// dataset-wide derived columns. Useful for programmatic construction
// and tests; CSV ingestion should go through Load.
func New(rows []listing.Listing) *Dataset {
	return build("", rows)
}

// Len returns the number of retained rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Path returns the file the dataset was loaded from.
func (d *Dataset) Path() string { return d.path }

// LoadedAt returns when the dataset finished loading.
func (d *Dataset) LoadedAt() time.Time { return d.loadedAt }

// Row returns the i-th base row.
func (d *Dataset) Row(i int) *listing.Listing { return &d.rows[i] }

// All returns a view over every row in the dataset.
func (d *Dataset) All() View {
	if d == nil {
		return View{}
	}
	idx := make([]int, len(d.rows))
	for i := range idx {
		idx[i] = i
	}
	return View{ds: d, idx: idx}
}

// Boroughs returns the distinct neighbourhood groups present, sorted.
func (d *Dataset) Boroughs() []string {
	return d.distinct(func(l *listing.Listing) string { return l.NeighbourhoodGroup })
}

// RoomTypes returns the distinct room types present, sorted.
func (d *Dataset) RoomTypes() []string {
	return d.distinct(func(l *listing.Listing) string { return string(l.RoomType) })
}

// Neighbourhoods returns sorted distinct neighbourhood names, restricted
// to the given boroughs. An empty borough set means all neighbourhoods.
func (d *Dataset) Neighbourhoods(boroughs []string) []string {
	if d == nil {
		return nil
	}
	want := make(map[string]bool, len(boroughs))
	for _, b := range boroughs {
		if b != "" && b != "all" {
			want[b] = true
		}
	}
	seen := make(map[string]bool)
	var out []string
	for i := range d.rows {
		r := &d.rows[i]
		if len(want) > 0 && !want[r.NeighbourhoodGroup] {
			continue
		}
		if !seen[r.Neighbourhood] {
			seen[r.Neighbourhood] = true
			out = append(out, r.Neighbourhood)
		}
	}
	sort.Strings(out)
	return out
}

func (d *Dataset) distinct(key func(*listing.Listing) string) []string {
	if d == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for i := range d.rows {
		k := key(&d.rows[i])
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// View is an ordered index set over a Dataset's rows. Views never copy
// row payloads; they are cheap to create and safe to share.
type View struct {
	ds  *Dataset
	idx []int
}

// NewView builds a view from explicit row indices. The indices are not
// copied; callers must not mutate the slice afterwards.
func NewView(ds *Dataset, idx []int) View {
	return View{ds: ds, idx: idx}
}

// Len returns the number of rows in the view.
func (v View) Len() int { return len(v.idx) }

// Row returns the i-th row of the view.
func (v View) Row(i int) *listing.Listing { return v.ds.Row(v.idx[i]) }

// Index returns the base-dataset index of the i-th view row.
func (v View) Index(i int) int { return v.idx[i] }

// Dataset returns the backing dataset (nil for the zero view).
func (v View) Dataset() *Dataset { return v.ds }

// Indices returns a copy of the view's row indices.
func (v View) Indices() []int {
	out := make([]int, len(v.idx))
	copy(out, v.idx)
	return out
}
