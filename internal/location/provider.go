// Package location is the geolocation boundary: a single-shot lookup that
// resolves to the caller's position or fails with a typed error. Callers
// abandon a pending lookup by cancelling the context; there is no other
// cancellation mechanism.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wanderfolk/wayfarer/internal/common"
	"github.com/wanderfolk/wayfarer/internal/model"
)

// Fix is one geolocation result.
type Fix struct {
	Timestamp   time.Time
	Country     string
	CountryCode string
	City        string
	Coordinates model.Coordinates
}

// UnknownPlace is the sentinel used when reverse geocoding fails: the
// coordinates are kept, the place names are not trusted.
const UnknownPlace = "Unknown"

// IsUnknown reports whether reverse geocoding failed for this fix.
func (f Fix) IsUnknown() bool {
	return f.Country == UnknownPlace
}

// Provider resolves the caller's current location.
type Provider interface {
	Current(ctx context.Context) (Fix, error)
}

// fixTimeout bounds a single position fix, mirroring the platform
// geolocation APIs this boundary stands in for.
const fixTimeout = 10 * time.Second

// HTTPProvider resolves location through an IP-geolocation endpoint.
type HTTPProvider struct {
	httpClient *http.Client
	endpoint   string
}

// NewHTTPProvider creates a provider against the given endpoint.
func NewHTTPProvider(endpoint string) *HTTPProvider {
	return &HTTPProvider{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: fixTimeout,
		},
	}
}

type geoResponse struct {
	Status      string  `json:"status"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// Current performs one position fix. A transport or service failure returns
// an *common.ExternalServiceError; a response without place names degrades
// to the Unknown sentinel instead of failing.
func (p *HTTPProvider) Current(ctx context.Context) (Fix, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return Fix{}, svcError(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return Fix{}, svcError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Fix{}, svcError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var geo geoResponse
	if err := json.NewDecoder(resp.Body).Decode(&geo); err != nil {
		return Fix{}, svcError(fmt.Errorf("failed to decode response: %w", err))
	}

	if geo.Status != "" && geo.Status != "success" {
		return Fix{}, svcError(fmt.Errorf("lookup failed with status %q", geo.Status))
	}

	fix := Fix{
		Coordinates: model.Coordinates{Lat: geo.Lat, Lng: geo.Lon},
		Country:     geo.Country,
		CountryCode: geo.CountryCode,
		City:        geo.City,
		Timestamp:   time.Now(),
	}

	// Position without place names: keep the coordinates, mark the rest
	// Unknown rather than propagating a reverse-geocoding failure.
	if fix.Country == "" {
		fix.Country = UnknownPlace
		fix.CountryCode = ""
		fix.City = UnknownPlace
	}

	return fix, nil
}

func svcError(err error) error {
	return &common.ExternalServiceError{Service: "geolocation", Err: err}
}
