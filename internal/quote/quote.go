// Package quote collects moving-cost estimates from matching providers
// through the backend pricing function. Every provider either responds or
// conclusively fails; a quote run never hangs silently.
package quote

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wanderfolk/wayfarer/internal/backend"
	"github.com/wanderfolk/wayfarer/internal/common"
	"github.com/wanderfolk/wayfarer/internal/model"
)

// Request describes the move being priced. One Request fans out to every
// candidate provider under a single request id.
type Request struct {
	ID       string
	FromCity string
	ToCity   string
	VolumeM3 float64
}

// NewRequest creates a Request with a fresh id.
func NewRequest(fromCity, toCity string, volumeM3 float64) Request {
	return Request{
		ID:       uuid.NewString(),
		FromCity: fromCity,
		ToCity:   toCity,
		VolumeM3: volumeM3,
	}
}

// ProviderQuote is one provider's outcome: either an estimate or the error
// that ended the attempt.
type ProviderQuote struct {
	Err      error
	Provider model.MovingCompany
	Estimate backend.PricingEstimate
}

// Failed reports whether this provider produced no estimate.
func (q ProviderQuote) Failed() bool {
	return q.Err != nil
}

// Service fans a quote request out to providers.
type Service struct {
	invoker    backend.Invoker
	perTimeout time.Duration
	retry      common.RetryOptions
}

// NewService creates a quote service. perProviderTimeout bounds each
// provider's attempt including retries; zero means 15 seconds.
func NewService(invoker backend.Invoker, perProviderTimeout time.Duration) *Service {
	if perProviderTimeout <= 0 {
		perProviderTimeout = 15 * time.Second
	}
	return &Service{
		invoker:    invoker,
		perTimeout: perProviderTimeout,
		retry: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// Collect requests an estimate from every provider and returns one
// ProviderQuote per provider, in input order. Partial failures are reported
// per provider, not as a run failure. The optional progress callback fires
// after each provider completes.
func (s *Service) Collect(ctx context.Context, req Request, providers []model.MovingCompany, progress func()) []ProviderQuote {
	quotes := make([]ProviderQuote, 0, len(providers))

	for _, provider := range providers {
		quotes = append(quotes, s.one(ctx, req, provider))
		if progress != nil {
			progress()
		}

		// A cancelled run still returns an outcome for every provider.
		if ctx.Err() != nil {
			for _, remaining := range providers[len(quotes):] {
				quotes = append(quotes, ProviderQuote{Provider: remaining, Err: ctx.Err()})
				if progress != nil {
					progress()
				}
			}
			break
		}
	}

	return quotes
}

func (s *Service) one(ctx context.Context, req Request, provider model.MovingCompany) ProviderQuote {
	pctx, cancel := context.WithTimeout(ctx, s.perTimeout)
	defer cancel()

	var estimate *backend.PricingEstimate
	err := common.WithRetry(pctx, func() error {
		var callErr error
		estimate, callErr = backend.EstimatePricing(pctx, s.invoker, backend.PricingRequest{
			RequestID: req.ID,
			Provider:  provider.ID,
			FromCity:  req.FromCity,
			ToCity:    req.ToCity,
			VolumeM3:  req.VolumeM3,
		})
		return callErr
	}, s.retry)

	if err != nil {
		return ProviderQuote{Provider: provider, Err: err}
	}
	return ProviderQuote{Provider: provider, Estimate: *estimate}
}
