package directory

import (
	"github.com/wanderfolk/wayfarer/internal/catalog"
	"github.com/wanderfolk/wayfarer/internal/filter"
	"github.com/wanderfolk/wayfarer/internal/model"
)

// MoverCriteria is the moving-provider filter surface.
type MoverCriteria struct {
	MaxPrice  *float64
	MinRating *float64
	Query     string
	Regions   []string
	Services  []string
}

var moverSchema = filter.MustSchema(map[string]filter.Field[model.MovingCompany]{
	"regions": {
		Kind: filter.AnyOf,
		Tags: func(m model.MovingCompany) []string { return m.Regions },
	},
	"services": {
		Kind: filter.AllOf,
		Tags: func(m model.MovingCompany) []string { return m.Services },
	},
	// Ceiling applies to the entry price of the band: a provider is
	// affordable when its cheapest move fits the budget.
	"maxPrice": {
		Kind:   filter.MaxNumeric,
		Number: func(m model.MovingCompany) (float64, bool) { return m.PriceBand.MinUSD, m.PriceBand.MinUSD > 0 },
	},
	"rating": {
		Kind:   filter.RangeNumeric,
		Number: func(m model.MovingCompany) (float64, bool) { return m.Rating, m.Rating > 0 },
	},
	"query": {
		Kind:  filter.Substring,
		Texts: func(m model.MovingCompany) []string { return []string{m.Name, m.Description} },
	},
})

// MoverSearch filters the moving-provider catalog.
type MoverSearch struct {
	catalogs *catalog.Catalogs
	cached   *filter.Cached[model.MovingCompany]
}

// NewMoverSearch builds a search service over the loaded catalog.
func NewMoverSearch(c *catalog.Catalogs) *MoverSearch {
	return &MoverSearch{
		catalogs: c,
		cached:   filter.NewCached(moverSchema, c.Movers),
	}
}

func (s *MoverSearch) criteria(crit MoverCriteria) (*filter.Criteria[model.MovingCompany], error) {
	fc := moverSchema.NewCriteria()

	values := map[string]any{
		"regions":  crit.Regions,
		"services": crit.Services,
		"query":    crit.Query,
		"rating":   filter.Range{Min: crit.MinRating},
	}
	if crit.MaxPrice != nil {
		values["maxPrice"] = *crit.MaxPrice
	}

	if err := fc.ReplaceAll(values); err != nil {
		return nil, err
	}
	return fc, nil
}

// Search returns the movers matching the criteria, rating-descending.
func (s *MoverSearch) Search(crit MoverCriteria) ([]model.MovingCompany, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return nil, err
	}

	matched := s.cached.Filter(fc)
	return byRatingDesc(matched, func(m model.MovingCompany) float64 { return m.Rating }), nil
}

// ActiveFilterCount reports how many constraints the criteria impose.
func (s *MoverSearch) ActiveFilterCount(crit MoverCriteria) (int, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return 0, err
	}
	return fc.ActiveCount(), nil
}

// PopularCities ranks cities by how many movers serve them.
func (s *MoverSearch) PopularCities(limit int) []CityPopularity {
	return PopularCities(s.catalogs.Cities, s.cached.Catalog(), limit)
}
