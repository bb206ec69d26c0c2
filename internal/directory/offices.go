package directory

import (
	"github.com/wanderfolk/wayfarer/internal/catalog"
	"github.com/wanderfolk/wayfarer/internal/filter"
	"github.com/wanderfolk/wayfarer/internal/geo"
	"github.com/wanderfolk/wayfarer/internal/model"
)

// OfficeCriteria is the remote-office filter surface.
type OfficeCriteria struct {
	MinCapacity *float64
	MaxDeskDay  *float64
	City        string
	Country     string
	Region      string
	Query       string
	Amenities   []string
}

var officeSchema = filter.MustSchema(map[string]filter.Field[model.RemoteOffice]{
	"city": {
		Kind:   filter.Equals,
		String: func(o model.RemoteOffice) string { return o.City },
	},
	"country": {
		Kind:   filter.Equals,
		String: func(o model.RemoteOffice) string { return o.Country },
	},
	"region": {
		Kind:   filter.Equals,
		String: func(o model.RemoteOffice) string { return o.Region },
	},
	"amenities": {
		Kind: filter.AllOf,
		Tags: func(o model.RemoteOffice) []string { return o.Amenities },
	},
	"capacity": {
		Kind:   filter.RangeNumeric,
		Number: func(o model.RemoteOffice) (float64, bool) { return o.Capacity, o.Capacity > 0 },
	},
	"maxDeskDay": {
		Kind:   filter.MaxNumeric,
		Number: func(o model.RemoteOffice) (float64, bool) { return o.DeskDayUSD, o.DeskDayUSD > 0 },
	},
	"query": {
		Kind:  filter.Substring,
		Texts: func(o model.RemoteOffice) []string { return []string{o.Name, o.Description} },
	},
})

// OfficeSearch filters the remote-office catalog.
type OfficeSearch struct {
	cached *filter.Cached[model.RemoteOffice]
}

// NewOfficeSearch builds a search service over the loaded catalog.
func NewOfficeSearch(c *catalog.Catalogs) *OfficeSearch {
	return &OfficeSearch{cached: filter.NewCached(officeSchema, c.Offices)}
}

func (s *OfficeSearch) criteria(crit OfficeCriteria) (*filter.Criteria[model.RemoteOffice], error) {
	fc := officeSchema.NewCriteria()

	values := map[string]any{
		"city":      crit.City,
		"country":   crit.Country,
		"region":    crit.Region,
		"amenities": crit.Amenities,
		"query":     crit.Query,
		"capacity":  filter.Range{Min: crit.MinCapacity},
	}
	if crit.MaxDeskDay != nil {
		values["maxDeskDay"] = *crit.MaxDeskDay
	}

	if err := fc.ReplaceAll(values); err != nil {
		return nil, err
	}
	return fc, nil
}

// Search returns the offices matching the criteria, rating-descending.
func (s *OfficeSearch) Search(crit OfficeCriteria) ([]model.RemoteOffice, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return nil, err
	}

	matched := s.cached.Filter(fc)
	return byRatingDesc(matched, func(o model.RemoteOffice) float64 { return o.Rating }), nil
}

// ActiveFilterCount reports how many constraints the criteria impose.
func (s *OfficeSearch) ActiveFilterCount(crit OfficeCriteria) (int, error) {
	fc, err := s.criteria(crit)
	if err != nil {
		return 0, err
	}
	return fc.ActiveCount(), nil
}

// NearestTo orders a result set by ascending distance from target.
func (s *OfficeSearch) NearestTo(target model.Coordinates, offices []model.RemoteOffice) []model.RemoteOffice {
	return geo.ByProximity(target, offices, func(o model.RemoteOffice) model.Coordinates { return o.Coordinates })
}

// Nearest returns the single closest office in the catalog and its distance
// in km, or nil when the catalog is empty.
func (s *OfficeSearch) Nearest(target model.Coordinates) (*model.RemoteOffice, float64) {
	idx, km := geo.Nearest(target, s.cached.Catalog(), func(o model.RemoteOffice) model.Coordinates { return o.Coordinates })
	if idx < 0 {
		return nil, 0
	}
	office := s.cached.Catalog()[idx]
	return &office, km
}
