package directory

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderfolk/wayfarer/internal/catalog"
	"github.com/wanderfolk/wayfarer/internal/model"
)

func floatPtr(f float64) *float64 { return &f }

func loadCatalogs(t *testing.T) *catalog.Catalogs {
	t.Helper()
	c, err := catalog.Load()
	require.NoError(t, err)
	return c
}

func TestClubSearchByCity(t *testing.T) {
	s := NewClubSearch(loadCatalogs(t))

	got, err := s.Search(ClubCriteria{City: "Dubai"})
	require.NoError(t, err)

	require.NotEmpty(t, got)
	for _, club := range got {
		assert.Equal(t, "Dubai", club.City)
	}
}

func TestClubSearchRatingDescending(t *testing.T) {
	s := NewClubSearch(loadCatalogs(t))

	got, err := s.Search(ClubCriteria{})
	require.NoError(t, err)

	require.NotEmpty(t, got)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
		return got[i].Rating > got[j].Rating
	}))
}

func TestClubSearchAmenitiesAndPrice(t *testing.T) {
	s := NewClubSearch(loadCatalogs(t))

	got, err := s.Search(ClubCriteria{
		Amenities: []string{"pool", "gym"},
		PriceMin:  floatPtr(5000),
		PriceMax:  floatPtr(20000),
	})
	require.NoError(t, err)

	require.NotEmpty(t, got)
	for _, club := range got {
		assert.Contains(t, club.Amenities, "pool")
		assert.Contains(t, club.Amenities, "gym")
		assert.GreaterOrEqual(t, club.AnnualFeeUSD, 5000.0)
		assert.LessOrEqual(t, club.AnnualFeeUSD, 20000.0)
	}
}

func TestClubActiveFilterCount(t *testing.T) {
	s := NewClubSearch(loadCatalogs(t))

	count, err := s.ActiveFilterCount(ClubCriteria{})
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = s.ActiveFilterCount(ClubCriteria{
		City:        "Dubai",
		Amenities:   []string{"pool"},
		MaxWaitlist: floatPtr(12),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestClubCountByCategory(t *testing.T) {
	c := loadCatalogs(t)
	s := NewClubSearch(c)

	counts := s.CountByCategory()

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(c.Clubs), total)
	assert.Positive(t, counts["social"])
}

func TestMoverSearchRegionsAndServices(t *testing.T) {
	s := NewMoverSearch(loadCatalogs(t))

	got, err := s.Search(MoverCriteria{
		Regions:  []string{"Europe"},
		Services: []string{"packing", "storage"},
	})
	require.NoError(t, err)

	require.NotEmpty(t, got)
	for _, mover := range got {
		assert.Contains(t, mover.Regions, "Europe")
		assert.Contains(t, mover.Services, "packing")
		assert.Contains(t, mover.Services, "storage")
	}
}

func TestMoverSearchMaxPrice(t *testing.T) {
	s := NewMoverSearch(loadCatalogs(t))

	got, err := s.Search(MoverCriteria{MaxPrice: floatPtr(2000)})
	require.NoError(t, err)

	require.NotEmpty(t, got)
	for _, mover := range got {
		assert.LessOrEqual(t, mover.PriceBand.MinUSD, 2000.0)
	}
}

func TestPopularCitiesRanking(t *testing.T) {
	c := loadCatalogs(t)
	s := NewMoverSearch(c)

	ranked := s.PopularCities(0)
	require.NotEmpty(t, ranked)

	assert.True(t, sort.SliceIsSorted(ranked, func(i, j int) bool {
		return ranked[i].Providers > ranked[j].Providers
	}))

	// Lisbon and London tie on coverage; the stable sort keeps city
	// catalog order, and Lisbon is listed first.
	assert.Equal(t, "lisbon", ranked[0].City.ID)
	assert.Equal(t, "london", ranked[1].City.ID)

	limited := s.PopularCities(3)
	assert.Len(t, limited, 3)
	assert.Equal(t, ranked[:3], limited)
}

func TestFamilySearchRegionExpansion(t *testing.T) {
	c := loadCatalogs(t)
	s := NewFamilySearch(c)

	europe, err := s.Search(FamilyCriteria{Region: "Europe"})
	require.NoError(t, err)

	require.NotEmpty(t, europe)
	countries := c.CountriesInRegion("Europe")
	for _, svc := range europe {
		assert.Contains(t, countries, svc.Country)
	}

	// Unknown regions match nothing rather than erroring.
	none, err := s.Search(FamilyCriteria{Region: "Atlantis"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFamilySearchLanguagesAnyOf(t *testing.T) {
	s := NewFamilySearch(loadCatalogs(t))

	got, err := s.Search(FamilyCriteria{Languages: []string{"spanish", "thai"}})
	require.NoError(t, err)

	require.NotEmpty(t, got)
	for _, svc := range got {
		hasOne := false
		for _, lang := range svc.Languages {
			if lang == "spanish" || lang == "thai" {
				hasOne = true
			}
		}
		assert.True(t, hasOne, "service %s matches neither language", svc.ID)
	}
}

func TestFamilyCountByKind(t *testing.T) {
	c := loadCatalogs(t)
	s := NewFamilySearch(c)

	counts := s.CountByKind()

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(c.FamilyServices), total)
}

func TestOfficeSearchBudget(t *testing.T) {
	s := NewOfficeSearch(loadCatalogs(t))

	got, err := s.Search(OfficeCriteria{MaxDeskDay: floatPtr(20), Amenities: []string{"cafe"}})
	require.NoError(t, err)

	require.NotEmpty(t, got)
	for _, office := range got {
		assert.LessOrEqual(t, office.DeskDayUSD, 20.0)
		assert.Contains(t, office.Amenities, "cafe")
	}
}

func TestOfficeNearest(t *testing.T) {
	c := loadCatalogs(t)
	s := NewOfficeSearch(c)

	lisbon, err := c.CityByID("lisbon")
	require.NoError(t, err)

	office, km := s.Nearest(lisbon.Coordinates)
	require.NotNil(t, office)
	assert.Equal(t, "office-tejo-docks", office.ID)
	assert.Less(t, km, 10.0)

	all, err := s.Search(OfficeCriteria{})
	require.NoError(t, err)
	ordered := s.NearestTo(lisbon.Coordinates, all)
	assert.Equal(t, "office-tejo-docks", ordered[0].ID)
}

func TestGovAppSearch(t *testing.T) {
	s := NewGovAppSearch(loadCatalogs(t))

	got, err := s.Search(GovAppCriteria{CountryCode: "SG"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Singpass", got[0].Name)

	taxApps, err := s.Search(GovAppCriteria{Categories: []string{"tax"}})
	require.NoError(t, err)
	require.NotEmpty(t, taxApps)
	for _, app := range taxApps {
		assert.Contains(t, app.Categories, "tax")
	}

	iosApps, err := s.Search(GovAppCriteria{Platforms: []string{"ios"}, FreeOnly: true})
	require.NoError(t, err)
	for _, app := range iosApps {
		assert.Contains(t, app.Platforms, "ios")
		assert.True(t, app.Free)
	}
}

func TestCountBy(t *testing.T) {
	records := []model.Club{
		{ID: "a", Country: "Portugal"},
		{ID: "b", Country: "Portugal"},
		{ID: "c", Country: "France"},
	}

	counts := CountBy(records, func(c model.Club) string { return c.Country })

	assert.Equal(t, map[string]int{"Portugal": 2, "France": 1}, counts)
}
