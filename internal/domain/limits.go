package domain

import "time"

// County as described by HUD.
type County struct {
	FIPS2000      string `yaml:"fips_2000,omitempty" json:"fips_2000,omitempty"`
	FIPS2010      string `yaml:"fips_2010" json:"fips_2010"`
	Name          string `yaml:"name" json:"name"`
	MetroAreaName string `yaml:"metro_area_name,omitempty" json:"metro_area_name,omitempty"`
	CBSASub       string `yaml:"cbsa_sub,omitempty" json:"cbsa_sub,omitempty"`
	Region        string `yaml:"region" json:"region"`
	IsMetro       bool   `yaml:"is_metro,omitempty" json:"is_metro,omitempty"`
}

// IncomeLimit is one published maximum federal LIHTC income limit: the 100%
// of area median income figure for a county and family size, in cents.
// Percentage tiers are computed on read, never stored.
type IncomeLimit struct {
	CreatedAt  time.Time `yaml:"created_at" json:"created_at"`
	County     string    `yaml:"county" json:"county"`
	FamilySize int       `yaml:"family_size" json:"family_size"`
	FullAmount int64     `yaml:"full_amount" json:"full_amount"`
}

// AsPercent scales the 100% figure, truncating to whole cents.
func (l *IncomeLimit) AsPercent(percent int64) int64 {
	return l.FullAmount * percent / 100
}

// RentLimit is one published maximum federal LIHTC rent limit: the 100%
// figure for a county and bedroom count, in cents per month.
type RentLimit struct {
	CreatedAt  time.Time `yaml:"created_at" json:"created_at"`
	County     string    `yaml:"county" json:"county"`
	NbBedrooms int       `yaml:"nb_bedrooms" json:"nb_bedrooms"`
	FullAmount int64     `yaml:"full_amount" json:"full_amount"`
}

// AsPercent scales the 100% figure and rounds to the nearest whole dollar:
// a remainder above 25 cents rounds up, otherwise down. The 60% tier then
// applies the published correction lists, which exist to match the CTCAC
// tables dollar for dollar.
func (l *RentLimit) AsPercent(percent int64, rounding *RentRounding) int64 {
	percentAmount := l.FullAmount * percent / 100
	rem := percentAmount % 100
	if rem > 25 {
		percentAmount += 100 - rem
		if percent == 60 && rounding != nil && rounding.AdjustsDown(l.County, l.NbBedrooms) {
			percentAmount -= 100
		}
	} else {
		percentAmount -= rem
		if percent == 60 && rounding != nil && rounding.AdjustsUp(l.County, l.NbBedrooms) {
			percentAmount += 100
		}
	}
	return percentAmount
}
