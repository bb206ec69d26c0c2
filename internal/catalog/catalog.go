// Package catalog loads the embedded reference datasets into immutable,
// session-lifetime tables. Catalogs are parsed once at startup and passed
// by reference; nothing downstream mutates them.
package catalog

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wanderfolk/wayfarer/internal/common"
	"github.com/wanderfolk/wayfarer/internal/model"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Region maps a region name to its member countries.
type Region struct {
	Name      string   `yaml:"name"`
	Countries []string `yaml:"countries"`
}

// Catalogs bundles every reference table. Constructed once per session.
type Catalogs struct {
	Clubs          []model.Club
	Movers         []model.MovingCompany
	FamilyServices []model.FamilyService
	Offices        []model.RemoteOffice
	GovernmentApps []model.GovernmentApp
	Cities         []model.City
	Regions        []Region
}

// Load parses the embedded datasets and validates cross-references.
func Load() (*Catalogs, error) {
	c := &Catalogs{}

	if err := loadFile("data/clubs.yaml", &c.Clubs); err != nil {
		return nil, err
	}
	if err := loadFile("data/movers.yaml", &c.Movers); err != nil {
		return nil, err
	}
	if err := loadFile("data/family_services.yaml", &c.FamilyServices); err != nil {
		return nil, err
	}
	if err := loadFile("data/offices.yaml", &c.Offices); err != nil {
		return nil, err
	}
	if err := loadFile("data/government_apps.yaml", &c.GovernmentApps); err != nil {
		return nil, err
	}
	if err := loadFile("data/cities.yaml", &c.Cities); err != nil {
		return nil, err
	}
	if err := loadFile("data/regions.yaml", &c.Regions); err != nil {
		return nil, err
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func loadFile[T any](name string, out *[]T) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrCatalogCorrupted, name, err)
	}
	return nil
}

func (c *Catalogs) validate() error {
	if err := uniqueIDs("clubs", c.Clubs, func(r model.Club) string { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("movers", c.Movers, func(r model.MovingCompany) string { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("family services", c.FamilyServices, func(r model.FamilyService) string { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("offices", c.Offices, func(r model.RemoteOffice) string { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("government apps", c.GovernmentApps, func(r model.GovernmentApp) string { return r.ID }); err != nil {
		return err
	}
	if err := uniqueIDs("cities", c.Cities, func(r model.City) string { return r.ID }); err != nil {
		return err
	}

	// Mover coverage lists must reference known cities.
	cityIDs := make(map[string]bool, len(c.Cities))
	for _, city := range c.Cities {
		cityIDs[city.ID] = true
	}
	for _, mover := range c.Movers {
		for _, id := range mover.Cities {
			if !cityIDs[id] {
				return fmt.Errorf("%w: mover %s references unknown city %q", common.ErrCatalogCorrupted, mover.ID, id)
			}
		}
	}

	return nil
}

func uniqueIDs[T any](table string, records []T, id func(T) string) error {
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		key := id(r)
		if key == "" {
			return fmt.Errorf("%w: %s record with empty id", common.ErrCatalogCorrupted, table)
		}
		if seen[key] {
			return fmt.Errorf("%w: %s: %w %q", common.ErrCatalogCorrupted, table, common.ErrDuplicateRecord, key)
		}
		seen[key] = true
	}
	return nil
}

// CityByID looks up a city by its catalog id.
func (c *Catalogs) CityByID(id string) (*model.City, error) {
	for i := range c.Cities {
		if c.Cities[i].ID == id {
			return &c.Cities[i], nil
		}
	}
	return nil, fmt.Errorf("city %q: %w", id, common.ErrNotFound)
}

// CityByName looks up a city by display name, case-insensitively.
func (c *Catalogs) CityByName(name string) (*model.City, error) {
	for i := range c.Cities {
		if strings.EqualFold(c.Cities[i].Name, name) {
			return &c.Cities[i], nil
		}
	}
	return nil, fmt.Errorf("city %q: %w", name, common.ErrNotFound)
}

// CountriesInRegion returns the configured countries for a region,
// case-insensitively. An unknown region returns an empty list: filters built
// from it match nothing rather than erroring.
func (c *Catalogs) CountriesInRegion(region string) []string {
	for _, r := range c.Regions {
		if strings.EqualFold(r.Name, region) {
			out := make([]string, len(r.Countries))
			copy(out, r.Countries)
			return out
		}
	}
	return nil
}
