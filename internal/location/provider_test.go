package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderfolk/wayfarer/internal/common"
	"github.com/wanderfolk/wayfarer/internal/model"
)

func TestHTTPProviderCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","country":"Portugal","countryCode":"PT","city":"Lisbon","lat":38.7223,"lon":-9.1393}`))
	}))
	defer server.Close()

	fix, err := NewHTTPProvider(server.URL).Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Portugal", fix.Country)
	assert.Equal(t, "PT", fix.CountryCode)
	assert.Equal(t, "Lisbon", fix.City)
	assert.InDelta(t, 38.7223, fix.Coordinates.Lat, 0.001)
	assert.False(t, fix.IsUnknown())
	assert.WithinDuration(t, time.Now(), fix.Timestamp, 5*time.Second)
}

func TestHTTPProviderUnknownFallback(t *testing.T) {
	// Coordinates resolved but reverse geocoding came back empty.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","lat":12.5,"lon":-70.0}`))
	}))
	defer server.Close()

	fix, err := NewHTTPProvider(server.URL).Current(context.Background())
	require.NoError(t, err)

	assert.True(t, fix.IsUnknown())
	assert.Equal(t, UnknownPlace, fix.Country)
	assert.Equal(t, UnknownPlace, fix.City)
	assert.InDelta(t, 12.5, fix.Coordinates.Lat, 0.001)
}

func TestHTTPProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewHTTPProvider(server.URL).Current(context.Background())
	require.Error(t, err)

	var svcErr *common.ExternalServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "geolocation", svcErr.Service)
}

func TestCachedProviderServesFreshFix(t *testing.T) {
	mock := &MockProvider{
		CurrentFn: func(_ context.Context) (Fix, error) {
			return Fix{
				Country:     "Portugal",
				Coordinates: model.Coordinates{Lat: 38.7, Lng: -9.1},
				Timestamp:   time.Now(),
			}, nil
		},
	}

	cached := NewCachedProvider(mock)

	first, err := cached.Current(context.Background())
	require.NoError(t, err)

	second, err := cached.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, mock.CallCount(), "fresh fix must not trigger a second lookup")
}

func TestCachedProviderRefreshesStaleFix(t *testing.T) {
	mock := &MockProvider{
		CurrentFn: func(_ context.Context) (Fix, error) {
			return Fix{Country: "Portugal", Timestamp: time.Now()}, nil
		},
	}

	cached := NewCachedProvider(mock)
	cached.now = func() time.Time { return time.Now() }

	_, err := cached.Current(context.Background())
	require.NoError(t, err)

	// Pretend 11 minutes pass.
	cached.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	_, err = cached.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, mock.CallCount())
}

func TestCachedProviderPropagatesFailure(t *testing.T) {
	wantErr := errors.New("gps off")
	mock := &MockProvider{
		CurrentFn: func(_ context.Context) (Fix, error) {
			return Fix{}, wantErr
		},
	}

	_, err := NewCachedProvider(mock).Current(context.Background())
	assert.ErrorIs(t, err, wantErr)
}
