package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderfolk/wayfarer/internal/model"
)

func floatPtr(f float64) *float64 { return &f }

func clubSchema(t *testing.T) *Schema[model.Club] {
	t.Helper()

	schema, err := NewSchema(map[string]Field[model.Club]{
		"city": {
			Kind:   Equals,
			String: func(c model.Club) string { return c.City },
		},
		"category": {
			Kind:   Equals,
			String: func(c model.Club) string { return string(c.Category) },
		},
		"amenities": {
			Kind: AllOf,
			Tags: func(c model.Club) []string { return c.Amenities },
		},
		"priceRange": {
			Kind:   RangeNumeric,
			Number: func(c model.Club) (float64, bool) { return c.AnnualFeeUSD, c.AnnualFeeUSD > 0 },
		},
		"maxWaitlist": {
			Kind:   MaxNumeric,
			Number: func(c model.Club) (float64, bool) { return c.WaitlistMonths, true },
		},
		"query": {
			Kind:  Substring,
			Texts: func(c model.Club) []string { return []string{c.Name, c.Description} },
		},
	})
	require.NoError(t, err)
	return schema
}

func testClubs() []model.Club {
	return []model.Club{
		{
			ID:           "club-1",
			Name:         "Marina Yacht Club",
			City:         "Dubai",
			Category:     model.ClubSocial,
			Description:  "Waterfront Yacht Club with private berths",
			Amenities:    []string{"pool", "gym", "spa"},
			AnnualFeeUSD: 12000,
		},
		{
			ID:           "club-2",
			Name:         "The Colonnade",
			City:         "London",
			Category:     model.ClubBusiness,
			Description:  "Members' dining rooms and a working library",
			Amenities:    []string{"pool"},
			AnnualFeeUSD: 50000,
		},
		{
			ID:           "club-3",
			Name:         "Desert Pines",
			City:         "Dubai",
			Category:     model.ClubSports,
			Description:  "Championship golf and racquet sports",
			Amenities:    []string{"gym", "courts"},
			AnnualFeeUSD: 8000,
		},
	}
}

func TestFilterEmptyCriteriaReturnsAll(t *testing.T) {
	schema := clubSchema(t)
	clubs := testClubs()

	got := schema.Filter(clubs, schema.NewCriteria())

	require.Len(t, got, len(clubs))
	for i, club := range clubs {
		assert.Equal(t, club.ID, got[i].ID)
	}
}

func TestFilterCityScenario(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("city", "Dubai"))

	got := schema.Filter(testClubs(), criteria)

	require.Len(t, got, 2)
	assert.Equal(t, "club-1", got[0].ID)
	assert.Equal(t, "club-3", got[1].ID)
}

func TestFilterPriceRangeScenario(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("priceRange", Range{Min: floatPtr(5000), Max: floatPtr(20000)}))

	got := schema.Filter(testClubs(), criteria)

	ids := make([]string, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"club-1", "club-3"}, ids)
}

func TestFilterSubstringCaseInsensitive(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("query", "YACHT"))

	got := schema.Filter(testClubs(), criteria)

	require.Len(t, got, 1)
	assert.Equal(t, "club-1", got[0].ID)
}

func TestFilterAmenitiesAllOf(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("amenities", []string{"pool", "gym"}))

	got := schema.Filter(testClubs(), criteria)

	require.Len(t, got, 1)
	assert.Equal(t, "club-1", got[0].ID)
}

func TestFilterSubsetProperty(t *testing.T) {
	schema := clubSchema(t)
	clubs := testClubs()

	inCatalog := make(map[string]bool, len(clubs))
	for _, c := range clubs {
		inCatalog[c.ID] = true
	}

	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("query", "club"))
	require.NoError(t, criteria.Set("maxWaitlist", 24.0))

	for _, c := range schema.Filter(clubs, criteria) {
		assert.True(t, inCatalog[c.ID])
	}
}

func TestFilterMonotonicity(t *testing.T) {
	schema := clubSchema(t)
	clubs := testClubs()

	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("city", "Dubai"))
	wide := schema.Filter(clubs, criteria)

	require.NoError(t, criteria.Set("amenities", []string{"spa"}))
	narrow := schema.Filter(clubs, criteria)

	assert.LessOrEqual(t, len(narrow), len(wide))

	wideIDs := make(map[string]bool, len(wide))
	for _, c := range wide {
		wideIDs[c.ID] = true
	}
	for _, c := range narrow {
		assert.True(t, wideIDs[c.ID], "narrowed result contains %s not in wider result", c.ID)
	}
}

func TestFilterIdempotence(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("city", "Dubai"))

	once := schema.Filter(testClubs(), criteria)
	twice := schema.Filter(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilterDeterminism(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("query", "club"))
	require.NoError(t, criteria.Set("priceRange", Range{Max: floatPtr(60000)}))

	first := schema.Filter(testClubs(), criteria)
	second := schema.Filter(testClubs(), criteria)

	assert.Equal(t, first, second)
}

func TestFilterMissingNumericFieldFails(t *testing.T) {
	schema := clubSchema(t)

	// The price accessor reports missing for a zero fee.
	clubs := append(testClubs(), model.Club{ID: "club-4", Name: "Free Roam", City: "Lisbon"})

	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("priceRange", Range{Max: floatPtr(100000)}))

	for _, c := range schema.Filter(clubs, criteria) {
		assert.NotEqual(t, "club-4", c.ID)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	schema := clubSchema(t)
	clubs := testClubs()

	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("city", "London"))
	_ = schema.Filter(clubs, criteria)

	assert.Equal(t, testClubs(), clubs)
}
