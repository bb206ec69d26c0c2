// Package geo computes great-circle distances and proximity rankings over
// records that carry coordinates.
package geo

import (
	"math"
	"sort"

	"github.com/wanderfolk/wayfarer/internal/model"
)

// EarthRadiusKm is the mean radius of the Earth used by the haversine formula.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in
// kilometers, using the haversine formula. Inputs are decimal degrees.
func Distance(a, b model.Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Nearest returns the index of the candidate closest to target, plus the
// distance in km. Ties keep the earlier candidate. Returns -1 when there
// are no candidates.
func Nearest[T any](target model.Coordinates, candidates []T, at func(T) model.Coordinates) (int, float64) {
	best := -1
	bestKm := math.Inf(1)

	for i, c := range candidates {
		km := Distance(target, at(c))
		if km < bestKm {
			best = i
			bestKm = km
		}
	}

	return best, bestKm
}

// ByProximity returns a fresh slice of items ordered by ascending distance
// to target. The input slice is not modified; the sort is stable, so
// equidistant items keep their original relative order.
func ByProximity[T any](target model.Coordinates, items []T, at func(T) model.Coordinates) []T {
	out := make([]T, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		return Distance(target, at(out[i])) < Distance(target, at(out[j]))
	})

	return out
}
