package model

// City is a reference location used for proximity lookups and as the key
// space for provider coverage lists.
type City struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Country     string      `yaml:"country"`
	CountryCode string      `yaml:"country_code"`
	Region      string      `yaml:"region"`
	Coordinates Coordinates `yaml:"coordinates"`
}
