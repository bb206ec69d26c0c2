package state

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/wanderfolk/wayfarer/internal/model"
)

// Well-known keys.
const (
	keyStays          = "visa.stays"
	keyOnboardingSeen = "onboarding.seen"
)

// AddStay records days spent in a country. Days for the same country and
// year accumulate onto one entry.
func (s *Store) AddStay(ctx context.Context, stay model.Stay) error {
	stays, err := s.Stays(ctx)
	if err != nil {
		return err
	}

	merged := false
	for i := range stays {
		if strings.EqualFold(stays[i].CountryCode, stay.CountryCode) && stays[i].Year == stay.Year {
			stays[i].Days += stay.Days
			stays[i].RecordedAt = time.Now().UTC()
			merged = true
			break
		}
	}
	if !merged {
		stay.RecordedAt = time.Now().UTC()
		stays = append(stays, stay)
	}

	raw, err := json.Marshal(stays)
	if err != nil {
		return err
	}
	return s.Set(ctx, keyStays, string(raw))
}

// Stays returns all recorded stays. Malformed stored data is logged and
// treated as absent; it never becomes a hard failure.
func (s *Store) Stays(ctx context.Context) ([]model.Stay, error) {
	raw, ok, err := s.Get(ctx, keyStays)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var stays []model.Stay
	if err := json.Unmarshal([]byte(raw), &stays); err != nil {
		slog.Warn("Stored visa tracking data is corrupt, starting fresh",
			"key", keyStays,
			"error", err)
		return nil, nil
	}

	sort.SliceStable(stays, func(i, j int) bool {
		if stays[i].Year != stays[j].Year {
			return stays[i].Year < stays[j].Year
		}
		return stays[i].Country < stays[j].Country
	})
	return stays, nil
}

// DaysInCountry totals tracked days for one country and year.
func (s *Store) DaysInCountry(ctx context.Context, countryCode string, year int) (int, error) {
	stays, err := s.Stays(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, stay := range stays {
		if strings.EqualFold(stay.CountryCode, countryCode) && stay.Year == year {
			total += stay.Days
		}
	}
	return total, nil
}

// DaysByCountry totals tracked days per country code for one year.
func (s *Store) DaysByCountry(ctx context.Context, year int) (map[string]int, error) {
	stays, err := s.Stays(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, stay := range stays {
		if stay.Year == year {
			totals[strings.ToUpper(stay.CountryCode)] += stay.Days
		}
	}
	return totals, nil
}

// MarkOnboardingSeen records that the first-run walkthrough was shown.
func (s *Store) MarkOnboardingSeen(ctx context.Context) error {
	return s.Set(ctx, keyOnboardingSeen, "true")
}

// OnboardingSeen reports whether the first-run walkthrough was shown.
// Any stored value other than "true" counts as not seen.
func (s *Store) OnboardingSeen(ctx context.Context) (bool, error) {
	raw, ok, err := s.Get(ctx, keyOnboardingSeen)
	if err != nil {
		return false, err
	}
	return ok && raw == "true", nil
}
