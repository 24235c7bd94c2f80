// Package limits holds the published county income and rent limit tables:
// loading and saving them as YAML, resolving the limit in force at an
// effective date, importing HUD datasets and exporting the CTCAC levels.
package limits

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/HelpPal/tcap/internal/domain"
)

// maxFamilySize is the largest family size HUD publishes income limits for.
const maxFamilySize = 7

// maxBedrooms is the largest bedroom count HUD publishes rent limits for.
const maxBedrooms = 5

// Metadata records the provenance of a limits file.
type Metadata struct {
	Source      string `yaml:"source,omitempty" json:"source,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Store is the in-memory limit table: every county on record together with
// every published income and rent limit, across effective dates. Lookups
// are linear scans; the tables are small (one row per county, size and
// publication).
type Store struct {
	Metadata Metadata             `yaml:"metadata,omitempty" json:"metadata,omitempty"`
	Counties []domain.County      `yaml:"counties,omitempty" json:"counties,omitempty"`
	Income   []domain.IncomeLimit `yaml:"income_limits,omitempty" json:"income_limits,omitempty"`
	Rent     []domain.RentLimit   `yaml:"rent_limits,omitempty" json:"rent_limits,omitempty"`
}

// Load reads a limits YAML file. A missing file is an error; start from an
// empty Store when building tables from scratch.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read limits file: %w", err)
	}
	store := &Store{}
	if err := yaml.Unmarshal(data, store); err != nil {
		return nil, fmt.Errorf("failed to parse limits file %s: %w", path, err)
	}
	return store, nil
}

// Save writes the store back as YAML.
func (s *Store) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal limits: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write limits file %s: %w", path, err)
	}
	return nil
}

// County finds a county by region and FIPS 2010 code, nil when absent.
func (s *Store) County(region, fips2010 string) *domain.County {
	for i := range s.Counties {
		if s.Counties[i].Region == region && s.Counties[i].FIPS2010 == fips2010 {
			return &s.Counties[i]
		}
	}
	return nil
}

// UpsertCounty creates or refreshes the county catalog entry for an
// imported row and returns it. HUD occasionally renames counties or metro
// areas between publications; the latest dataset wins.
func (s *Store) UpsertCounty(county domain.County) *domain.County {
	if existing := s.County(county.Region, county.FIPS2010); existing != nil {
		existing.Name = county.Name
		existing.CBSASub = county.CBSASub
		existing.MetroAreaName = county.MetroAreaName
		existing.IsMetro = county.IsMetro
		return existing
	}
	s.Counties = append(s.Counties, county)
	return &s.Counties[len(s.Counties)-1]
}

// CountyNames returns the county names of a region, sorted; every region
// when region is empty.
func (s *Store) CountyNames(region string) []string {
	var names []string
	for i := range s.Counties {
		if region == "" || s.Counties[i].Region == region {
			names = append(names, s.Counties[i].Name)
		}
	}
	sort.Strings(names)
	return names
}

// CurrentIncomeLimit returns the income limit in force for a county and
// family size at an effective date: the published record with the latest
// created_at strictly before that date. Nil when none is published; callers
// treat that as a zero limit.
func (s *Store) CurrentIncomeLimit(county string, familySize int, effectiveDate time.Time) *domain.IncomeLimit {
	var current *domain.IncomeLimit
	for i := range s.Income {
		limit := &s.Income[i]
		if limit.County != county || limit.FamilySize != familySize ||
			!limit.CreatedAt.Before(effectiveDate) {
			continue
		}
		if current == nil || limit.CreatedAt.After(current.CreatedAt) {
			current = limit
		}
	}
	return current
}

// CurrentRentLimit returns the rent limit in force for a county and bedroom
// count at an effective date, nil when none is published.
func (s *Store) CurrentRentLimit(county string, nbBedrooms int, effectiveDate time.Time) *domain.RentLimit {
	var current *domain.RentLimit
	for i := range s.Rent {
		limit := &s.Rent[i]
		if limit.County != county || limit.NbBedrooms != nbBedrooms ||
			!limit.CreatedAt.Before(effectiveDate) {
			continue
		}
		if current == nil || limit.CreatedAt.After(current.CreatedAt) {
			current = limit
		}
	}
	return current
}

// CurrentIncomeLimits returns the limits in force for every family size of
// a county, smallest first, skipping sizes with no published limit.
func (s *Store) CurrentIncomeLimits(county string, effectiveDate time.Time) []*domain.IncomeLimit {
	var current []*domain.IncomeLimit
	for familySize := 1; familySize <= maxFamilySize; familySize++ {
		if limit := s.CurrentIncomeLimit(county, familySize, effectiveDate); limit != nil {
			current = append(current, limit)
		}
	}
	return current
}

// CurrentRentLimits returns the limits in force for every bedroom count of
// a county, studios first, skipping counts with no published limit.
func (s *Store) CurrentRentLimits(county string, effectiveDate time.Time) []*domain.RentLimit {
	var current []*domain.RentLimit
	for nbBedrooms := 0; nbBedrooms <= maxBedrooms; nbBedrooms++ {
		if limit := s.CurrentRentLimit(county, nbBedrooms, effectiveDate); limit != nil {
			current = append(current, limit)
		}
	}
	return current
}
