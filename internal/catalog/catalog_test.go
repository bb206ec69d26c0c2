package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderfolk/wayfarer/internal/common"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Clubs)
	assert.NotEmpty(t, c.Movers)
	assert.NotEmpty(t, c.FamilyServices)
	assert.NotEmpty(t, c.Offices)
	assert.NotEmpty(t, c.GovernmentApps)
	assert.NotEmpty(t, c.Cities)
	assert.NotEmpty(t, c.Regions)
}

func TestCityLookups(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	byID, err := c.CityByID("lisbon")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", byID.Name)
	assert.Equal(t, "PT", byID.CountryCode)

	byName, err := c.CityByName("LISBON")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byName.ID)

	_, err = c.CityByID("atlantis")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCountriesInRegion(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	europe := c.CountriesInRegion("europe")
	assert.Contains(t, europe, "Portugal")
	assert.Contains(t, europe, "United Kingdom")

	assert.Empty(t, c.CountriesInRegion("Atlantis"))
}

func TestMoverCityReferencesResolve(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	for _, mover := range c.Movers {
		for _, id := range mover.Cities {
			_, err := c.CityByID(id)
			assert.NoError(t, err, "mover %s city %s", mover.ID, id)
		}
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	c.Clubs = append(c.Clubs, c.Clubs[0])
	err = c.validate()
	assert.ErrorIs(t, err, common.ErrDuplicateRecord)
}
