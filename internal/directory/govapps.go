package directory

import (
	"strconv"

	"github.com/wanderfolk/wayfarer/internal/catalog"
	"github.com/wanderfolk/wayfarer/internal/filter"
	"github.com/wanderfolk/wayfarer/internal/model"
)

// GovAppCriteria is the government-apps filter surface.
type GovAppCriteria struct {
	Country     string
	CountryCode string
	Query       string
	Categories  []string
	Platforms   []string
	FreeOnly    bool
}

var govAppSchema = filter.MustSchema(map[string]filter.Field[model.GovernmentApp]{
	"country": {
		Kind:   filter.Equals,
		String: func(a model.GovernmentApp) string { return a.Country },
	},
	"countryCode": {
		Kind:   filter.Equals,
		String: func(a model.GovernmentApp) string { return a.CountryCode },
	},
	"free": {
		Kind:   filter.Equals,
		String: func(a model.GovernmentApp) string { return strconv.FormatBool(a.Free) },
	},
	"categories": {
		Kind: filter.AnyOf,
		Tags: func(a model.GovernmentApp) []string { return a.Categories },
	},
	"platforms": {
		Kind: filter.AnyOf,
		Tags: func(a model.GovernmentApp) []string { return a.Platforms },
	},
	"query": {
		Kind:  filter.Substring,
		Texts: func(a model.GovernmentApp) []string { return []string{a.Name, a.Description} },
	},
})

// GovAppSearch filters the government-app catalog.
type GovAppSearch struct {
	cached *filter.Cached[model.GovernmentApp]
}

// NewGovAppSearch builds a search service over the loaded catalog.
func NewGovAppSearch(c *catalog.Catalogs) *GovAppSearch {
	return &GovAppSearch{cached: filter.NewCached(govAppSchema, c.GovernmentApps)}
}

func (s *GovAppSearch) criteria(crit GovAppCriteria) (*filter.Criteria[model.GovernmentApp], error) {
	fc := govAppSchema.NewCriteria()

	values := map[string]any{
		"country":     crit.Country,
		"countryCode": crit.CountryCode,
		"categories":  crit.Categories,
		"platforms":   crit.Platforms,
		"query":       crit.Query,
	}
	if crit.FreeOnly {
		values["free"] = "true"
	}

	if err := fc.ReplaceAll(values); err != nil {
		return nil, err
	}
	return fc, nil
}

// Search returns the apps matching the criteria, rating-descending.
func (s *GovAppSearch) Search(crit GovAppCriteria) ([]model.GovernmentApp, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return nil, err
	}

	matched := s.cached.Filter(fc)
	return byRatingDesc(matched, func(a model.GovernmentApp) float64 { return a.Rating }), nil
}

// ActiveFilterCount reports how many constraints the criteria impose.
func (s *GovAppSearch) ActiveFilterCount(crit GovAppCriteria) (int, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return 0, err
	}
	return fc.ActiveCount(), nil
}

// CountByCategory totals the full catalog per app category. Apps carrying
// several categories count once per category.
func (s *GovAppSearch) CountByCategory() map[string]int {
	counts := make(map[string]int)
	for _, app := range s.cached.Catalog() {
		for _, cat := range app.Categories {
			counts[cat]++
		}
	}
	return counts
}
