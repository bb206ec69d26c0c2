package sheets

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/wanderfolk/wayfarer/internal/model"
)

// WriteCSV writes the tracking report as CSV, for use without a Google
// account.
func WriteCSV(w io.Writer, stays []model.Stay) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"country", "code", "year", "days", "recorded"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, stay := range stays {
		row := []string{
			stay.Country,
			stay.CountryCode,
			fmt.Sprintf("%d", stay.Year),
			fmt.Sprintf("%d", stay.Days),
			stay.RecordedAt.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
