package domain

import "fmt"

// Source is the payer of an income (employer, court, agency) or the holder
// of an asset (bank, brokerage). Sources are owned by a single resident;
// support-payment sources additionally name the dependents they cover.
type Source struct {
	Slug          string   `yaml:"slug" json:"slug"`
	Name          string   `yaml:"name" json:"name"`
	Email         string   `yaml:"email,omitempty" json:"email,omitempty"`
	Phone         string   `yaml:"phone,omitempty" json:"phone,omitempty"`
	StreetAddress string   `yaml:"street_address,omitempty" json:"street_address,omitempty"`
	Locality      string   `yaml:"locality,omitempty" json:"locality,omitempty"`
	Region        string   `yaml:"region,omitempty" json:"region,omitempty"`
	PostalCode    string   `yaml:"postal_code,omitempty" json:"postal_code,omitempty"`
	Country       string   `yaml:"country,omitempty" json:"country,omitempty"`
	Position      string   `yaml:"position,omitempty" json:"position,omitempty"`
	Manager       string   `yaml:"manager,omitempty" json:"manager,omitempty"`
	Dependents    []string `yaml:"dependents,omitempty" json:"dependents,omitempty"`
}

// DisplayName renders the source for reports. Two sources with the same
// employer name are told apart by the position held there.
func (s *Source) DisplayName() string {
	if s == nil {
		return "no-source"
	}
	if s.Position != "" {
		return fmt.Sprintf("%s at %s", s.Position, s.Name)
	}
	if s.Name != "" && s.Name != "N/A" {
		return s.Name
	}
	return ""
}

// GroupKey returns the key used when bucketing records by source. Records
// without a source share a synthetic no-source bucket.
func (s *Source) GroupKey() string {
	if s == nil {
		return "no-source"
	}
	if s.Slug != "" {
		return s.Slug
	}
	return s.DisplayName()
}
