package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderfolk/wayfarer/internal/common"
)

func TestClientInvoke(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/functions/v1/assess-inventory", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req AssessInventoryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"sofa", "desk"}, req.Items)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"summary":"small move","estimated_volume_m3":6.5,"recommendations":["shared container"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	got, err := AssessInventory(context.Background(), client, AssessInventoryRequest{
		Items: []string{"sofa", "desk"},
	})
	require.NoError(t, err)

	assert.Equal(t, "small move", got.Summary)
	assert.InDelta(t, 6.5, got.EstimatedVolumeM3, 0.001)
	assert.Equal(t, []string{"shared container"}, got.Recommendations)
}

func TestClientInvokeNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "backend unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	_, err := client.Invoke(context.Background(), ActionEstimatePricing, PricingRequest{})
	require.Error(t, err)

	var svcErr *common.ExternalServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, ActionEstimatePricing, svcErr.Action)
	assert.Contains(t, svcErr.Error(), "502")
}

func TestClientInvokeTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL)

	_, err := client.Invoke(context.Background(), ActionAssessInventory, nil)

	var svcErr *common.ExternalServiceError
	require.True(t, errors.As(err, &svcErr))
}

func TestClientInvokeRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Invoke(ctx, ActionAssessInventory, nil)
	require.Error(t, err)
}

func TestEstimatePricingWithMock(t *testing.T) {
	mock := &MockInvoker{
		InvokeFn: func(_ context.Context, action string, _ any) (json.RawMessage, error) {
			assert.Equal(t, ActionEstimatePricing, action)
			return json.RawMessage(`{"currency":"USD","amount_usd":4200,"eta_days":21}`), nil
		},
	}

	got, err := EstimatePricing(context.Background(), mock, PricingRequest{Provider: "mover-meridian"})
	require.NoError(t, err)

	assert.InDelta(t, 4200, got.AmountUSD, 0.001)
	assert.Equal(t, 21, got.ETADays)
	assert.Equal(t, []string{ActionEstimatePricing}, mock.Calls())
}
