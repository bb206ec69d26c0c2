package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderfolk/wayfarer/internal/common"
)

func TestCriteriaSetUnknownKey(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()

	err := criteria.Set("vibes", "immaculate")

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownFilterKey)

	var cfgErr *common.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "vibes", cfgErr.Key)
}

func TestCriteriaSetBadShape(t *testing.T) {
	schema := clubSchema(t)

	tests := []struct {
		value any
		name  string
		key   string
	}{
		{name: "number for equals", key: "city", value: 42.0},
		{name: "string for all-of", key: "amenities", value: "pool"},
		{name: "string for max", key: "maxWaitlist", value: "six"},
		{name: "float for range", key: "priceRange", value: 5000.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.NewCriteria().Set(tt.key, tt.value)
			assert.ErrorIs(t, err, common.ErrBadConstraint)
		})
	}
}

func TestCriteriaSetNilDeactivates(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()

	require.NoError(t, criteria.Set("city", "Dubai"))
	assert.Equal(t, 1, criteria.ActiveCount())

	require.NoError(t, criteria.Set("city", nil))
	assert.Equal(t, 0, criteria.ActiveCount())
}

func TestCriteriaActiveCount(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()

	assert.Equal(t, 0, criteria.ActiveCount())

	require.NoError(t, criteria.Set("city", "Dubai"))
	require.NoError(t, criteria.Set("amenities", []string{"pool"}))
	require.NoError(t, criteria.Set("maxWaitlist", 12.0))
	assert.Equal(t, 3, criteria.ActiveCount())

	// Empty values do not count as active.
	require.NoError(t, criteria.Set("query", ""))
	require.NoError(t, criteria.Set("category", ""))
	require.NoError(t, criteria.Set("priceRange", Range{}))
	assert.Equal(t, 3, criteria.ActiveCount())

	criteria.Clear()
	assert.Equal(t, 0, criteria.ActiveCount())
}

func TestCriteriaReplaceAll(t *testing.T) {
	schema := clubSchema(t)
	criteria := schema.NewCriteria()
	require.NoError(t, criteria.Set("city", "Dubai"))

	err := criteria.ReplaceAll(map[string]any{
		"category": "social",
		"query":    "yacht",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, criteria.ActiveCount())

	// A failed replace leaves prior state intact.
	err = criteria.ReplaceAll(map[string]any{
		"category": "sports",
		"bogus":    "value",
	})
	require.Error(t, err)
	assert.Equal(t, 2, criteria.ActiveCount())

	got := schema.Filter(testClubs(), criteria)
	require.Len(t, got, 1)
	assert.Equal(t, "club-1", got[0].ID)
}

func TestCriteriaFingerprint(t *testing.T) {
	schema := clubSchema(t)

	a := schema.NewCriteria()
	require.NoError(t, a.Set("city", "Dubai"))
	require.NoError(t, a.Set("amenities", []string{"pool", "gym"}))

	// Same constraints set in the opposite order.
	b := schema.NewCriteria()
	require.NoError(t, b.Set("amenities", []string{"pool", "gym"}))
	require.NoError(t, b.Set("city", "Dubai"))

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	require.NoError(t, b.Set("city", "London"))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	// Inactive values do not perturb the fingerprint.
	require.NoError(t, a.Set("query", ""))
	require.NoError(t, b.Set("city", "Dubai"))
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestSchemaRejectsMissingAccessor(t *testing.T) {
	_, err := NewSchema(map[string]Field[struct{}]{
		"broken": {Kind: Equals},
	})
	assert.ErrorIs(t, err, common.ErrBadConstraint)
}
