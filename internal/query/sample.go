package query

import (
	"math/rand"

	"bnbstat/internal/dataset"
)

// DefaultSampleSize caps how many points a map render receives.
const DefaultSampleSize = 5000

// mapSampleSeed keeps samples reproducible across calls and runs.
const mapSampleSeed = 42

// MapSample returns the full view when it has at most n rows, otherwise
// a fixed-seed random sample of n rows. The same view always yields the
// same sample.
func MapSample(v dataset.View, n int) dataset.View {
	if n <= 0 || v.Len() <= n {
		return v
	}

	r := rand.New(rand.NewSource(mapSampleSeed))
	perm := r.Perm(v.Len())

	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = v.Index(perm[i])
	}
	return dataset.NewView(v.Dataset(), idx)
}
