package model

// PriceBand is an inclusive price range in US dollars.
type PriceBand struct {
	MinUSD float64 `yaml:"min_usd"`
	MaxUSD float64 `yaml:"max_usd"`
}

// MovingCompany represents an international relocation provider.
type MovingCompany struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Regions     []string  `yaml:"regions"`
	Services    []string  `yaml:"services"`
	Cities      []string  `yaml:"cities"` // city IDs served
	PriceBand   PriceBand `yaml:"price_band"`
	Rating      float64   `yaml:"rating"`
}
