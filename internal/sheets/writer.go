package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/wanderfolk/wayfarer/internal/common"
	"github.com/wanderfolk/wayfarer/internal/model"
)

// Writer exports tracking reports to a Google Sheet.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

// NewWriter authenticates with the configured service account and prepares
// a writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	jsonKey, err := os.ReadFile(config.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: service,
		logger:  logger,
	}, nil
}

// WriteStays replaces the configured sheet with the current tracking data.
func (w *Writer) WriteStays(ctx context.Context, stays []model.Stay) error {
	w.logger.Info("exporting travel days",
		"stays", len(stays),
		"spreadsheet_id", w.config.SpreadsheetID)

	values := buildRows(stays)

	retryOpts := common.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	err := common.WithRetry(ctx, func() error {
		return w.replaceSheet(ctx, values)
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write tracking report: %w", err)
	}

	w.logger.Info("export completed", "rows_written", len(values))
	return nil
}

func (w *Writer) replaceSheet(ctx context.Context, values [][]any) error {
	clearRange := fmt.Sprintf("%s!A:E", w.config.SheetName)
	_, err := w.service.Spreadsheets.Values.
		Clear(w.config.SpreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	_, err = w.service.Spreadsheets.Values.
		Update(w.config.SpreadsheetID, fmt.Sprintf("%s!A1", w.config.SheetName), &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write sheet: %w", err)
	}

	return nil
}

func buildRows(stays []model.Stay) [][]any {
	rows := [][]any{reportHeader()}

	totals := make(map[int]int)
	for _, stay := range stays {
		rows = append(rows, []any{
			stay.Country,
			stay.CountryCode,
			stay.Year,
			stay.Days,
			stay.RecordedAt.Format("2006-01-02"),
		})
		totals[stay.Year] += stay.Days
	}

	years := make([]int, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Ints(years)

	rows = append(rows, []any{})
	for _, year := range years {
		rows = append(rows, []any{fmt.Sprintf("Total %d", year), "", year, totals[year], ""})
	}

	return rows
}

func reportHeader() []any {
	return []any{"Country", "Code", "Year", "Days", "Recorded"}
}
