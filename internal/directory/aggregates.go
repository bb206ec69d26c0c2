// Package directory exposes the per-domain search services: typed criteria
// over the shared filter engine, plus the derived aggregates the dashboards
// consume (counts, rankings, proximity).
package directory

import (
	"sort"

	"github.com/wanderfolk/wayfarer/internal/model"
)

// CountBy groups records by a categorical field and counts occurrences.
func CountBy[T any](records []T, key func(T) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		counts[key(r)]++
	}
	return counts
}

// CityPopularity is one entry of the popular-cities ranking.
type CityPopularity struct {
	City      model.City
	Providers int
}

// PopularCities counts how many movers serve each city, ranks count
// descending and truncates to limit. The sort is stable: cities tied on
// provider count keep city-catalog order.
func PopularCities(cities []model.City, movers []model.MovingCompany, limit int) []CityPopularity {
	counts := make(map[string]int, len(cities))
	for _, mover := range movers {
		for _, cityID := range mover.Cities {
			counts[cityID]++
		}
	}

	ranked := make([]CityPopularity, 0, len(cities))
	for _, city := range cities {
		if n := counts[city.ID]; n > 0 {
			ranked = append(ranked, CityPopularity{City: city, Providers: n})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Providers > ranked[j].Providers
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// byRatingDesc orders records rating-descending for directory listings.
// Stable, so equal ratings keep catalog order. Returns a fresh slice.
func byRatingDesc[T any](records []T, rating func(T) float64) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return rating(out[i]) > rating(out[j])
	})
	return out
}
