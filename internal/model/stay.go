package model

import "time"

// Stay records days spent in a country during one calendar year, for visa
// and tax-residency tracking.
type Stay struct {
	RecordedAt  time.Time `json:"recorded_at"`
	Country     string    `json:"country"`
	CountryCode string    `json:"country_code"`
	Year        int       `json:"year"`
	Days        int       `json:"days"`
}
