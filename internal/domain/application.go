package domain

import "time"

// Application is the rental application for one unit: the household members
// plus the unit data needed to compare income against published limits. The
// engine treats it as an immutable snapshot.
type Application struct {
	Slug              string    `yaml:"slug,omitempty" json:"slug,omitempty"`
	Status            Status    `yaml:"status,omitempty" json:"status,omitempty"`
	CertificationType string    `yaml:"certification_type,omitempty" json:"certification_type,omitempty"`
	EffectiveDate     time.Time `yaml:"effective_date" json:"effective_date"`
	MoveInDate        time.Time `yaml:"move_in_date,omitempty" json:"move_in_date,omitempty"`

	// Part I development data.
	Property        string `yaml:"property,omitempty" json:"property,omitempty"`
	County          string `yaml:"county" json:"county"`
	UnitNumber      string `yaml:"unit_number,omitempty" json:"unit_number,omitempty"`
	NbBedrooms      int    `yaml:"nb_bedrooms" json:"nb_bedrooms"`
	SquareFootage   int    `yaml:"square_footage,omitempty" json:"square_footage,omitempty"`
	HouseholdVacant bool   `yaml:"household_vacant,omitempty" json:"household_vacant,omitempty"`

	// Income and rent restrictions, in percent of the 100% limit.
	FederalIncomeRestriction int `yaml:"federal_income_restriction,omitempty" json:"federal_income_restriction,omitempty"`
	FederalRentRestriction   int `yaml:"federal_rent_restriction,omitempty" json:"federal_rent_restriction,omitempty"`
	BondRentRestriction      int `yaml:"bond_rent_restriction,omitempty" json:"bond_rent_restriction,omitempty"`

	// Part VI rent, in cents per month.
	MonthlyRent              int64 `yaml:"monthly_rent,omitempty" json:"monthly_rent,omitempty"`
	MonthlyUtilityAllowance  int64 `yaml:"monthly_utility_allowance,omitempty" json:"monthly_utility_allowance,omitempty"`
	MonthlyOtherCharges      int64 `yaml:"monthly_other_charges,omitempty" json:"monthly_other_charges,omitempty"`
	FederalRentAssistance    int64 `yaml:"federal_rent_assistance,omitempty" json:"federal_rent_assistance,omitempty"`
	NonFederalRentAssistance int64 `yaml:"non_federal_rent_assistance,omitempty" json:"non_federal_rent_assistance,omitempty"`

	Residents []Resident `yaml:"residents" json:"residents"`
}

// FamilySize counts every household member on the application.
func (a *Application) FamilySize() int {
	return len(a.Residents)
}

// GrossMonthlyRent is rent plus utility allowance plus other mandatory
// charges.
func (a *Application) GrossMonthlyRent() int64 {
	return a.MonthlyRent + a.MonthlyUtilityAllowance + a.MonthlyOtherCharges
}

// TotalRentAssistance sums federal and non-federal rent assistance.
func (a *Application) TotalRentAssistance() int64 {
	return a.FederalRentAssistance + a.NonFederalRentAssistance
}

// Head returns the head of household, nil when none is marked.
func (a *Application) Head() *Resident {
	for i := range a.Residents {
		if a.Residents[i].RelationToHead == RelationHead {
			return &a.Residents[i]
		}
	}
	return nil
}

// Adults returns the residents old enough to sign the tenant agreement at
// the application's effective date, in TIC rank order.
func (a *Application) Adults() []*Resident {
	var adults []*Resident
	for i := range a.Residents {
		if a.Residents[i].IsAdultAt(a.EffectiveDate) {
			adults = append(adults, &a.Residents[i])
		}
	}
	return adults
}

// Dependents counts the household members related to the head as children,
// foster children or anticipated additions.
func (a *Application) Dependents() []*Resident {
	var deps []*Resident
	for i := range a.Residents {
		if a.Residents[i].RelationToHead.IsDependent() {
			deps = append(deps, &a.Residents[i])
		}
	}
	return deps
}

// IsOtherCertification reports a certification type besides initial and
// recertification.
func (a *Application) IsOtherCertification() bool {
	return a.CertificationType != "initial" && a.CertificationType != "recertification"
}

// HasNoAssets reports whether no household member declared any asset.
func (a *Application) HasNoAssets() bool {
	for i := range a.Residents {
		if !a.Residents[i].HasNoAssets() {
			return false
		}
	}
	return true
}

// FullTimeStudentHousehold reports whether any household member answered yes
// to a full-time student question, which triggers the student status
// verification documents.
func (a *Application) FullTimeStudentHousehold(q *Questions) bool {
	for i := range a.Residents {
		if a.Residents[i].FullTimeStudent(q) {
			return true
		}
	}
	return false
}
