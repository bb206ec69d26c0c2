// Package backend is the boundary to the hosted functions service used for
// AI-assisted assessments and provider pricing. The filtering core never
// depends on it; a failed call surfaces a typed error and the app stays
// usable.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Function actions exposed by the backend.
const (
	ActionAssessInventory = "assess-inventory"
	ActionEstimatePricing = "estimate-pricing"
)

const serviceName = "backend"

// Invoker is the single-shot call surface: it resolves with the raw JSON
// result or fails with an *common.ExternalServiceError. Abandoning a call
// (cancelling ctx) is the only cancellation mechanism callers need.
type Invoker interface {
	Invoke(ctx context.Context, action string, payload any) (json.RawMessage, error)
}

// Client invokes backend functions over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each invocation. The default is 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invoke posts the payload to the named function and returns the raw JSON
// response body.
func (c *Client) Invoke(ctx context.Context, action string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, svcError(action, fmt.Errorf("failed to encode payload: %w", err))
	}

	url := fmt.Sprintf("%s/functions/v1/%s", c.baseURL, action)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, svcError(action, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, svcError(action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, svcError(action, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, svcError(action, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(raw, 200)))
	}

	return raw, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
