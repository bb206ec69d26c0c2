// Package sheets exports visa-tracking reports to Google Sheets, with a CSV
// fallback for offline use.
package sheets

import (
	"fmt"

	"github.com/wanderfolk/wayfarer/internal/common"
)

// Config holds the Google Sheets export settings.
type Config struct {
	// CredentialsPath points at a service account key file.
	CredentialsPath string
	// SpreadsheetID identifies an existing spreadsheet to write into.
	SpreadsheetID string
	// SheetName is the tab written to. Defaults to "Travel Days".
	SheetName string
	// RetryAttempts bounds write retries. Defaults to 3.
	RetryAttempts int
}

// Validate checks the configuration and applies defaults.
func (c *Config) Validate() error {
	if c.CredentialsPath == "" {
		return fmt.Errorf("%w: sheets credentials path", common.ErrMissingConfig)
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("%w: sheets spreadsheet id", common.ErrMissingConfig)
	}
	if c.SheetName == "" {
		c.SheetName = "Travel Days"
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: sheets retry attempts must not be negative", common.ErrInvalidConfig)
	}
	if c.RetryAttempts == 0 {
		c.RetryAttempts = 3
	}
	return nil
}
