package model

// ClubCategory classifies a private members' club.
type ClubCategory string

// Club categories.
const (
	ClubSocial   ClubCategory = "social"
	ClubBusiness ClubCategory = "business"
	ClubSports   ClubCategory = "sports"
	ClubArts     ClubCategory = "arts"
)

// Club represents a private members' club in the directory.
// Records are immutable after catalog load.
type Club struct {
	ID             string       `yaml:"id"`
	Name           string       `yaml:"name"`
	City           string       `yaml:"city"`
	Country        string       `yaml:"country"`
	Region         string       `yaml:"region"`
	Category       ClubCategory `yaml:"category"`
	Description    string       `yaml:"description"`
	Amenities      []string     `yaml:"amenities"`
	AnnualFeeUSD   float64      `yaml:"annual_fee_usd"`
	Rating         float64      `yaml:"rating"`
	WaitlistMonths float64      `yaml:"waitlist_months"`
	Coordinates    Coordinates  `yaml:"coordinates"`
}
