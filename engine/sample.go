package engine

import (
	"math/rand"
	"sort"

	"github.com/yousemazhar/crashboard/dataset"
)

// ============================================================================
// GEOGRAPHIC SAMPLER — Deterministic map-point selection
// ============================================================================
// Map rendering caps the number of points. The sample is drawn with a fixed
// seed so that repeated requests with identical filters return bit-identical
// point sets. Coordinates are only trusted inside the city's latitude band
// and when non-zero.
// ============================================================================

// Latitude bounds of usable coordinates.
const (
	minValidLat = 40.0
	maxValidLat = 41.0
)

// hasValidCoordinates reports whether a record's location is usable.
func hasValidCoordinates(r *dataset.Record) bool {
	return r.Latitude >= minValidLat && r.Latitude <= maxValidLat &&
		r.Latitude != 0 && r.Longitude != 0
}

// SampleCoordinates restricts a view to records with valid coordinates and
// returns up to cap map points. When more than cap records qualify, a
// reproducible random sample of exactly cap is drawn using seed; the
// selected points keep their base-table order. Returns the points and the
// number of eligible records.
func SampleCoordinates(view View, cap int, seed int64) ([]MapPoint, int) {
	located := FilterRecords(view, hasValidCoordinates)
	eligible := located.Len()
	if eligible == 0 {
		return nil, 0
	}

	positions := make([]int, eligible)
	for i := range positions {
		positions[i] = i
	}

	if cap > 0 && eligible > cap {
		rng := rand.New(rand.NewSource(seed))
		perm := rng.Perm(eligible)[:cap]
		sort.Ints(perm)
		positions = perm
	}

	points := make([]MapPoint, len(positions))
	for i, p := range positions {
		r := located.At(p)
		points[i] = MapPoint{Lat: r.Latitude, Lon: r.Longitude}
	}
	return points, eligible
}
