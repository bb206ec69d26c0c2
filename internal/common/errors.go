// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Filter engine errors.
	ErrUnknownFilterKey = errors.New("unknown filter key")
	ErrBadConstraint    = errors.New("malformed constraint value")

	// Catalog errors.
	ErrNotFound         = errors.New("not found")
	ErrDuplicateRecord  = errors.New("duplicate record id")
	ErrCatalogCorrupted = errors.New("catalog data corrupted")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigError reports a bad criteria key or constraint shape supplied to the
// filter engine. It is programmer-facing: the call fails, nothing is
// partially filtered.
type ConfigError struct {
	Err error
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("filter key %q: %v", e.Key, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError for the given criteria key.
func NewConfigError(key string, err error) error {
	return &ConfigError{Key: key, Err: err}
}

// ExternalServiceError reports a failed call to an external boundary (backend
// functions, geolocation). Callers recover locally: show a transient notice,
// keep prior state, allow retry.
type ExternalServiceError struct {
	Err     error
	Service string
	Action  string
}

func (e *ExternalServiceError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s %s: %v", e.Service, e.Action, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var svcErr *ExternalServiceError
	if errors.As(err, &svcErr) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
