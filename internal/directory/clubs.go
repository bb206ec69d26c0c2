package directory

import (
	"github.com/wanderfolk/wayfarer/internal/catalog"
	"github.com/wanderfolk/wayfarer/internal/filter"
	"github.com/wanderfolk/wayfarer/internal/model"
)

// ClubCriteria is the club directory's filter surface. Zero values are
// inactive constraints.
type ClubCriteria struct {
	PriceMin    *float64
	PriceMax    *float64
	MaxWaitlist *float64
	City        string
	Country     string
	Region      string
	Category    string
	Query       string
	Amenities   []string
}

var clubSchema = filter.MustSchema(map[string]filter.Field[model.Club]{
	"city": {
		Kind:   filter.Equals,
		String: func(c model.Club) string { return c.City },
	},
	"country": {
		Kind:   filter.Equals,
		String: func(c model.Club) string { return c.Country },
	},
	"region": {
		Kind:   filter.Equals,
		String: func(c model.Club) string { return c.Region },
	},
	"category": {
		Kind:   filter.Equals,
		String: func(c model.Club) string { return string(c.Category) },
	},
	"amenities": {
		Kind: filter.AllOf,
		Tags: func(c model.Club) []string { return c.Amenities },
	},
	"priceRange": {
		Kind:   filter.RangeNumeric,
		Number: func(c model.Club) (float64, bool) { return c.AnnualFeeUSD, c.AnnualFeeUSD > 0 },
	},
	"maxWaitlist": {
		Kind:   filter.MaxNumeric,
		Number: func(c model.Club) (float64, bool) { return c.WaitlistMonths, true },
	},
	"query": {
		Kind:  filter.Substring,
		Texts: func(c model.Club) []string { return []string{c.Name, c.Description} },
	},
})

// ClubSearch filters the club catalog.
type ClubSearch struct {
	cached *filter.Cached[model.Club]
}

// NewClubSearch builds a search service over the loaded catalog.
func NewClubSearch(c *catalog.Catalogs) *ClubSearch {
	return &ClubSearch{cached: filter.NewCached(clubSchema, c.Clubs)}
}

func (s *ClubSearch) criteria(crit ClubCriteria) (*filter.Criteria[model.Club], error) {
	fc := clubSchema.NewCriteria()

	values := map[string]any{
		"city":      crit.City,
		"country":   crit.Country,
		"region":    crit.Region,
		"category":  crit.Category,
		"query":     crit.Query,
		"amenities": crit.Amenities,
		"priceRange": filter.Range{
			Min: crit.PriceMin,
			Max: crit.PriceMax,
		},
	}
	if crit.MaxWaitlist != nil {
		values["maxWaitlist"] = *crit.MaxWaitlist
	}

	if err := fc.ReplaceAll(values); err != nil {
		return nil, err
	}
	return fc, nil
}

// Search returns the clubs matching the criteria, rating-descending.
func (s *ClubSearch) Search(crit ClubCriteria) ([]model.Club, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return nil, err
	}

	matched := s.cached.Filter(fc)
	return byRatingDesc(matched, func(c model.Club) float64 { return c.Rating }), nil
}

// ActiveFilterCount reports how many constraints the criteria impose.
func (s *ClubSearch) ActiveFilterCount(crit ClubCriteria) (int, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return 0, err
	}
	return fc.ActiveCount(), nil
}

// CountByCategory totals the full catalog per club category.
func (s *ClubSearch) CountByCategory() map[string]int {
	return CountBy(s.cached.Catalog(), func(c model.Club) string { return string(c.Category) })
}

// CountByCountry totals a result set per country.
func (s *ClubSearch) CountByCountry(clubs []model.Club) map[string]int {
	return CountBy(clubs, func(c model.Club) string { return c.Country })
}
