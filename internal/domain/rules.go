package domain

// Rules bundles the jurisdiction-specific tables the certification engine
// consumes: the TIC questionnaire catalog and the rent rounding exception
// lists. They are loaded from a rules file at startup so they can be
// versioned as regulations change; DefaultRules reproduces the CTCAC
// questionnaire and the published California corrections.
type Rules struct {
	Metadata     RulesMetadata `yaml:"metadata" json:"metadata"`
	Questions    Questions     `yaml:"questions" json:"questions"`
	RentRounding RentRounding  `yaml:"rent_rounding" json:"rent_rounding"`
}

// RulesMetadata records the provenance of a rules file.
type RulesMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Questions maps TIC questionnaire question numbers to semantic groups. The
// four Part III category subsets are carried literally, not derived, because
// they are regulator defined.
type Questions struct {
	// Income questions, by questionnaire number.
	Income              []int `yaml:"income" json:"income"`
	SelfEmployed        []int `yaml:"self_employed" json:"self_employed"`
	Employee            []int `yaml:"employee" json:"employee"`
	Gifts               []int `yaml:"gifts" json:"gifts"`
	UnemploymentBenefit []int `yaml:"unemployment_benefits" json:"unemployment_benefits"`
	VeteranBenefits     []int `yaml:"veteran_benefits" json:"veteran_benefits"`
	SocialBenefits      []int `yaml:"social_benefits" json:"social_benefits"`
	UnearnedIncome      []int `yaml:"unearned_income" json:"unearned_income"`
	SupplementalBenefit []int `yaml:"supplemental_benefits" json:"supplemental_benefits"`
	Disability          []int `yaml:"disability" json:"disability"`
	PublicAssistance    []int `yaml:"public_assistance" json:"public_assistance"`
	ChildSupport        []int `yaml:"child_support" json:"child_support"`
	AlimonySupport      []int `yaml:"alimony_support" json:"alimony_support"`
	Trusts              []int `yaml:"trusts" json:"trusts"`
	PropertyIncome      []int `yaml:"property_income" json:"property_income"`
	StudentFinancialAid []int `yaml:"student_financial_aid" json:"student_financial_aid"`

	// Part III category subsets (regulator defined, reproduced verbatim).
	EmploymentOrWages        []int `yaml:"employment_or_wages" json:"employment_or_wages"`
	SocialSecurityAndPension []int `yaml:"social_security_and_pensions" json:"social_security_and_pensions"`
	PublicAssistanceTotal    []int `yaml:"public_assistance_total" json:"public_assistance_total"`
	OtherIncome              []int `yaml:"other_income" json:"other_income"`

	// Asset questions.
	Checking          []int `yaml:"checking" json:"checking"`
	Savings           []int `yaml:"savings" json:"savings"`
	RevocableTrust    []int `yaml:"revocable_trust" json:"revocable_trust"`
	RealEstate        []int `yaml:"real_estate" json:"real_estate"`
	Stocks            []int `yaml:"stocks" json:"stocks"`
	MoneyMarket       []int `yaml:"money_market" json:"money_market"`
	Retirement        []int `yaml:"retirement" json:"retirement"`
	LifeInsurance     []int `yaml:"life_insurance" json:"life_insurance"`
	CashOnHand        []int `yaml:"cash_on_hand" json:"cash_on_hand"`
	DisposedAssets    []int `yaml:"disposed_assets" json:"disposed_assets"`
	FinancialAccounts []int `yaml:"financial_accounts" json:"financial_accounts"`

	// Student questionnaire.
	CurrentFullTimeStudent []int `yaml:"current_full_time_student" json:"current_full_time_student"`
	PastFullTimeStudent    []int `yaml:"past_full_time_student" json:"past_full_time_student"`
	FutureFullTimeStudent  []int `yaml:"future_full_time_student" json:"future_full_time_student"`
	SingleParent           []int `yaml:"single_parent" json:"single_parent"`
	FosterCare             []int `yaml:"foster_care" json:"foster_care"`
}

// ChildSpousalSupport returns the support-payment question subset.
func (q *Questions) ChildSpousalSupport() []int {
	return append(append([]int{}, q.ChildSupport...), q.AlimonySupport...)
}

// FullTimeStudent returns the combined student-status question subset.
func (q *Questions) FullTimeStudent() []int {
	s := append([]int{}, q.CurrentFullTimeStudent...)
	s = append(s, q.PastFullTimeStudent...)
	return append(s, q.FutureFullTimeStudent...)
}

func containsQuestion(questions []int, id int) bool {
	for _, q := range questions {
		if q == id {
			return true
		}
	}
	return false
}

// RoundingException is one (county, bedrooms) pair of the rent rounding
// correction lists.
type RoundingException struct {
	County     string `yaml:"county" json:"county"`
	NbBedrooms int    `yaml:"nb_bedrooms" json:"nb_bedrooms"`
}

// RentRounding carries the one-off corrections applied to the 60% rent tier.
// The lists come from reconciling published CTCAC tables; they are literal
// data, not a rule, and must not be regularized.
type RentRounding struct {
	// Pairs that round down by $1 after the remainder rounded up.
	RoundUpAdjustDown []RoundingException `yaml:"round_up_adjust_down" json:"round_up_adjust_down"`
	// Pairs that round up by $1 after the remainder rounded down.
	RoundDownAdjustUp []RoundingException `yaml:"round_down_adjust_up" json:"round_down_adjust_up"`
}

func (r *RentRounding) matches(list []RoundingException, county string, nbBedrooms int) bool {
	for _, exc := range list {
		if exc.County == county && exc.NbBedrooms == nbBedrooms {
			return true
		}
	}
	return false
}

// AdjustsDown reports whether the pair is on the round-up correction list.
func (r *RentRounding) AdjustsDown(county string, nbBedrooms int) bool {
	return r.matches(r.RoundUpAdjustDown, county, nbBedrooms)
}

// AdjustsUp reports whether the pair is on the round-down correction list.
func (r *RentRounding) AdjustsUp(county string, nbBedrooms int) bool {
	return r.matches(r.RoundDownAdjustUp, county, nbBedrooms)
}

// DefaultRules returns the built-in CTCAC questionnaire mapping and rent
// rounding corrections, used when no rules file is supplied.
func DefaultRules() *Rules {
	return &Rules{
		Metadata: RulesMetadata{
			DataYear:    2017,
			LastUpdated: "2017-04-14",
			Description: "CTCAC TIC questionnaire and rent level corrections",
		},
		Questions: Questions{
			Income:              []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			SelfEmployed:        []int{1},
			Employee:            []int{2},
			Gifts:               []int{3},
			UnemploymentBenefit: []int{4},
			VeteranBenefits:     []int{5},
			SocialBenefits:      []int{6},
			UnearnedIncome:      []int{7},
			SupplementalBenefit: []int{8},
			Disability:          []int{9},
			PublicAssistance:    []int{10},
			ChildSupport:        []int{11},
			AlimonySupport:      []int{12},
			Trusts:              []int{13},
			PropertyIncome:      []int{14},
			StudentFinancialAid: []int{15},

			EmploymentOrWages:        []int{1, 2},
			SocialSecurityAndPension: []int{5, 6, 8, 13},
			PublicAssistanceTotal:    []int{9, 10},
			OtherIncome:              []int{3, 4, 7, 14, 11, 12, 15},

			Checking:          []int{16},
			Savings:           []int{17},
			RevocableTrust:    []int{18},
			RealEstate:        []int{19},
			Stocks:            []int{20},
			MoneyMarket:       []int{21},
			Retirement:        []int{22},
			LifeInsurance:     []int{23},
			CashOnHand:        []int{24},
			DisposedAssets:    []int{25},
			FinancialAccounts: []int{16, 17, 18, 20, 21, 22},

			CurrentFullTimeStudent: []int{26},
			PastFullTimeStudent:    []int{27},
			FutureFullTimeStudent:  []int{28},
			SingleParent:           []int{32},
			FosterCare:             []int{33},
		},
		RentRounding: RentRounding{
			RoundUpAdjustDown: []RoundingException{
				{County: "Calaveras County", NbBedrooms: 5},
				{County: "El Dorado County", NbBedrooms: 5},
				{County: "Inyo County", NbBedrooms: 1},
				{County: "Mono County", NbBedrooms: 5},
				{County: "Monterey County", NbBedrooms: 5},
				{County: "Napa County", NbBedrooms: 1},
				{County: "Placer County", NbBedrooms: 5},
				{County: "Sacramento County", NbBedrooms: 5},
				{County: "San Benito County", NbBedrooms: 5},
				{County: "San Diego County", NbBedrooms: 1},
				{County: "San Joaquin County", NbBedrooms: 1},
				{County: "San Joaquin County", NbBedrooms: 5},
				{County: "San Luis Obispo County", NbBedrooms: 5},
				{County: "Santa Cruz County", NbBedrooms: 3},
				{County: "Tuolumne County", NbBedrooms: 3},
			},
			RoundDownAdjustUp: []RoundingException{
				{County: "Amador County", NbBedrooms: 3},
				{County: "Lassen County", NbBedrooms: 5},
				{County: "Los Angeles County", NbBedrooms: 3},
				{County: "Mariposa County", NbBedrooms: 3},
				{County: "Mendocino County", NbBedrooms: 3},
				{County: "Nevada County", NbBedrooms: 5},
				{County: "San Benito County", NbBedrooms: 3},
				{County: "San Diego County", NbBedrooms: 3},
				{County: "Solano County", NbBedrooms: 5},
			},
		},
	}
}
