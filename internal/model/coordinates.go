// Package model defines the domain records served by the directory catalogs.
package model

// Coordinates is a point on the globe in decimal degrees.
// The zero value means the location is unknown.
type Coordinates struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// IsZero reports whether the coordinates are unset.
func (c Coordinates) IsZero() bool {
	return c.Lat == 0 && c.Lng == 0
}
