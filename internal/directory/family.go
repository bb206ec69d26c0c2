package directory

import (
	"github.com/wanderfolk/wayfarer/internal/catalog"
	"github.com/wanderfolk/wayfarer/internal/filter"
	"github.com/wanderfolk/wayfarer/internal/model"
)

// FamilyCriteria is the family-services filter surface. Region narrows by
// the configured region-to-country table, since these records carry only a
// country.
type FamilyCriteria struct {
	MaxMonthly *float64
	City       string
	Country    string
	Region     string
	Kind       string
	Query      string
	Languages  []string
}

var familySchema = filter.MustSchema(map[string]filter.Field[model.FamilyService]{
	"city": {
		Kind:   filter.Equals,
		String: func(f model.FamilyService) string { return f.City },
	},
	"country": {
		Kind:   filter.Equals,
		String: func(f model.FamilyService) string { return f.Country },
	},
	"kind": {
		Kind:   filter.Equals,
		String: func(f model.FamilyService) string { return string(f.Kind) },
	},
	// Region expands to a country list through catalog data.
	"regionCountries": {
		Kind: filter.AnyOf,
		Tags: func(f model.FamilyService) []string { return []string{f.Country} },
	},
	"languages": {
		Kind: filter.AnyOf,
		Tags: func(f model.FamilyService) []string { return f.Languages },
	},
	"maxMonthly": {
		Kind:   filter.MaxNumeric,
		Number: func(f model.FamilyService) (float64, bool) { return f.MonthlyFeeUSD, f.MonthlyFeeUSD > 0 },
	},
	"query": {
		Kind:  filter.Substring,
		Texts: func(f model.FamilyService) []string { return []string{f.Name, f.Description} },
	},
})

// FamilySearch filters the family-services catalog.
type FamilySearch struct {
	catalogs *catalog.Catalogs
	cached   *filter.Cached[model.FamilyService]
}

// NewFamilySearch builds a search service over the loaded catalog.
func NewFamilySearch(c *catalog.Catalogs) *FamilySearch {
	return &FamilySearch{
		catalogs: c,
		cached:   filter.NewCached(familySchema, c.FamilyServices),
	}
}

func (s *FamilySearch) criteria(crit FamilyCriteria) (*filter.Criteria[model.FamilyService], error) {
	fc := familySchema.NewCriteria()

	values := map[string]any{
		"city":      crit.City,
		"country":   crit.Country,
		"kind":      crit.Kind,
		"languages": crit.Languages,
		"query":     crit.Query,
	}
	if crit.MaxMonthly != nil {
		values["maxMonthly"] = *crit.MaxMonthly
	}
	if crit.Region != "" {
		// An unknown region expands to a single impossible country so the
		// constraint stays active and matches nothing.
		countries := s.catalogs.CountriesInRegion(crit.Region)
		if len(countries) == 0 {
			countries = []string{"\x00unknown-region"}
		}
		values["regionCountries"] = countries
	}

	if err := fc.ReplaceAll(values); err != nil {
		return nil, err
	}
	return fc, nil
}

// Search returns the family services matching the criteria,
// rating-descending.
func (s *FamilySearch) Search(crit FamilyCriteria) ([]model.FamilyService, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return nil, err
	}

	matched := s.cached.Filter(fc)
	return byRatingDesc(matched, func(f model.FamilyService) float64 { return f.Rating }), nil
}

// ActiveFilterCount reports how many constraints the criteria impose.
func (s *FamilySearch) ActiveFilterCount(crit FamilyCriteria) (int, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return 0, err
	}
	return fc.ActiveCount(), nil
}

// CountByKind totals the full catalog per service kind.
func (s *FamilySearch) CountByKind() map[string]int {
	return CountBy(s.cached.Catalog(), func(f model.FamilyService) string { return string(f.Kind) })
}
