package model

// GovernmentApp represents an official government mobile or web application
// useful to residents and visitors.
type GovernmentApp struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Country     string   `yaml:"country"`
	CountryCode string   `yaml:"country_code"`
	Description string   `yaml:"description"`
	Categories  []string `yaml:"categories"` // visa, tax, health, transport, id
	Platforms   []string `yaml:"platforms"`  // ios, android, web
	Free        bool     `yaml:"free"`
	Rating      float64  `yaml:"rating"`
}
