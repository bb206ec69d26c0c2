package sheets

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderfolk/wayfarer/internal/common"
	"github.com/wanderfolk/wayfarer/internal/model"
)

func TestWriteCSV(t *testing.T) {
	recorded := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	stays := []model.Stay{
		{Country: "Portugal", CountryCode: "PT", Year: 2026, Days: 44, RecordedAt: recorded},
		{Country: "Thailand", CountryCode: "TH", Year: 2026, Days: 45, RecordedAt: recorded},
	}

	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, stays))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "country,code,year,days,recorded", lines[0])
	assert.Equal(t, "Portugal,PT,2026,44,2026-03-14", lines[1])
	assert.Equal(t, "Thailand,TH,2026,45,2026-03-14", lines[2])
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "country,code,year,days,recorded\n", buf.String())
}

func TestBuildRows(t *testing.T) {
	stays := []model.Stay{
		{Country: "Portugal", CountryCode: "PT", Year: 2025, Days: 90},
		{Country: "Portugal", CountryCode: "PT", Year: 2026, Days: 44},
		{Country: "Thailand", CountryCode: "TH", Year: 2026, Days: 45},
	}

	rows := buildRows(stays)

	// header + 3 stays + blank + 2 year totals
	require.Len(t, rows, 7)
	assert.Equal(t, reportHeader(), rows[0])
	assert.Equal(t, []any{"Total 2025", "", 2025, 90, ""}, rows[5])
	assert.Equal(t, []any{"Total 2026", "", 2026, 89, ""}, rows[6])
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{}
	assert.Error(t, cfg.Validate())

	cfg = Config{CredentialsPath: "/tmp/key.json", SpreadsheetID: "abc"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Travel Days", cfg.SheetName)
	assert.Equal(t, 3, cfg.RetryAttempts)

	cfg = Config{CredentialsPath: "/tmp/key.json", SpreadsheetID: "abc", RetryAttempts: -1}
	assert.ErrorIs(t, cfg.Validate(), common.ErrInvalidConfig)
}
