package model

// FamilyServiceKind classifies a family-care service.
type FamilyServiceKind string

// Family service kinds.
const (
	FamilyChildcare  FamilyServiceKind = "childcare"
	FamilyEducation  FamilyServiceKind = "education"
	FamilyHealthcare FamilyServiceKind = "healthcare"
	FamilySecurity   FamilyServiceKind = "security"
)

// FamilyService represents a childcare, education, healthcare or security
// provider for relocating families.
type FamilyService struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	City          string            `yaml:"city"`
	Country       string            `yaml:"country"`
	Kind          FamilyServiceKind `yaml:"kind"`
	Description   string            `yaml:"description"`
	Languages     []string          `yaml:"languages"`
	MonthlyFeeUSD float64           `yaml:"monthly_fee_usd"`
	Rating        float64           `yaml:"rating"`
}
