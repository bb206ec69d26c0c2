package model

// RemoteOffice represents a coworking or serviced office location.
type RemoteOffice struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	City        string      `yaml:"city"`
	Country     string      `yaml:"country"`
	Region      string      `yaml:"region"`
	Description string      `yaml:"description"`
	Amenities   []string    `yaml:"amenities"`
	Capacity    float64     `yaml:"capacity"`
	DeskDayUSD  float64     `yaml:"desk_day_usd"`
	Rating      float64     `yaml:"rating"`
	Coordinates Coordinates `yaml:"coordinates"`
}
