package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wanderfolk/wayfarer/internal/common"
)

// AssessInventoryRequest describes a household inventory for AI assessment.
type AssessInventoryRequest struct {
	Notes string   `json:"notes,omitempty"`
	Items []string `json:"items"`
}

// Assessment is the AI inventory assessment result.
type Assessment struct {
	Summary           string   `json:"summary"`
	Recommendations   []string `json:"recommendations"`
	EstimatedVolumeM3 float64  `json:"estimated_volume_m3"`
}

// PricingRequest asks one provider to price a move.
type PricingRequest struct {
	RequestID string  `json:"request_id"`
	Provider  string  `json:"provider"`
	FromCity  string  `json:"from_city"`
	ToCity    string  `json:"to_city"`
	VolumeM3  float64 `json:"volume_m3"`
}

// PricingEstimate is one provider's quote.
type PricingEstimate struct {
	Currency  string  `json:"currency"`
	AmountUSD float64 `json:"amount_usd"`
	ETADays   int     `json:"eta_days"`
}

// AssessInventory invokes the assess-inventory function and decodes the
// result.
func AssessInventory(ctx context.Context, inv Invoker, req AssessInventoryRequest) (*Assessment, error) {
	raw, err := inv.Invoke(ctx, ActionAssessInventory, req)
	if err != nil {
		return nil, err
	}

	var out Assessment
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, svcError(ActionAssessInventory, fmt.Errorf("failed to decode response: %w", err))
	}
	return &out, nil
}

// EstimatePricing invokes the estimate-pricing function and decodes the
// result.
func EstimatePricing(ctx context.Context, inv Invoker, req PricingRequest) (*PricingEstimate, error) {
	raw, err := inv.Invoke(ctx, ActionEstimatePricing, req)
	if err != nil {
		return nil, err
	}

	var out PricingEstimate
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, svcError(ActionEstimatePricing, fmt.Errorf("failed to decode response: %w", err))
	}
	return &out, nil
}

func svcError(action string, err error) error {
	return &common.ExternalServiceError{Service: serviceName, Action: action, Err: err}
}
