package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	for _, slug := range []string{
		"other", "hourly", "daily", "weekly", "bi-weekly",
		"semi-monthly", "monthly", "yearly",
	} {
		p, err := ParsePeriod(slug)
		require.NoError(t, err, slug)
		assert.Equal(t, Period(slug), p)
	}

	_, err := ParsePeriod("fortnightly")
	assert.EqualError(t, err, `unknown period "fortnightly"`)
}

func TestParseVerificationMethod(t *testing.T) {
	v, err := ParseVerificationMethod("year-to-date")
	require.NoError(t, err)
	assert.Equal(t, VerifiedYearToDate, v)

	_, err = ParseVerificationMethod("notarized")
	assert.EqualError(t, err, `unknown verification method "notarized"`)
}

func TestVerificationMethodRank(t *testing.T) {
	ordered := []VerificationMethod{
		VerifiedEmployer, VerifiedYearToDate, VerifiedPeriodToDate,
		VerifiedTaxReturn, VerifiedTenant,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Less(t, ordered[i-1].Rank(), ordered[i].Rank())
	}
	// Unknown methods sort after every known one.
	assert.Greater(t, VerificationMethod("bogus").Rank(), VerifiedTenant.Rank())
}

func TestVerificationMethodIsDirectCalculation(t *testing.T) {
	assert.True(t, VerifiedTenant.IsDirectCalculation())
	assert.True(t, VerifiedEmployer.IsDirectCalculation())
	assert.False(t, VerifiedYearToDate.IsDirectCalculation())
	assert.False(t, VerifiedPeriodToDate.IsDirectCalculation())
	assert.False(t, VerifiedTaxReturn.IsDirectCalculation())
}

func TestParseIncomeCategory(t *testing.T) {
	c, err := ParseIncomeCategory("shift-differential")
	require.NoError(t, err)
	assert.Equal(t, CategoryShiftDifferential, c)

	_, err = ParseIncomeCategory("royalties")
	assert.EqualError(t, err, `unknown income category "royalties"`)
}

func TestParseAssetCategory(t *testing.T) {
	c, err := ParseAssetCategory("certificate-of-deposit")
	require.NoError(t, err)
	assert.Equal(t, AssetCertificateOfDeposit, c)

	_, err = ParseAssetCategory("bitcoin")
	assert.EqualError(t, err, `unknown asset category "bitcoin"`)
}

func TestAssetCategoryIsDisposed(t *testing.T) {
	assert.True(t, AssetNormalSale.IsDisposed())
	assert.True(t, AssetForeclosure.IsDisposed())
	assert.True(t, AssetShortSale.IsDisposed())
	assert.False(t, AssetSavings.IsDisposed())
	assert.False(t, AssetOwn.IsDisposed())
}

func TestParseRelation(t *testing.T) {
	r, err := ParseRelation("adult-co-tenant")
	require.NoError(t, err)
	assert.Equal(t, RelationAdultCoTenant, r)

	_, err = ParseRelation("roommate")
	assert.EqualError(t, err, `unknown relation "roommate"`)
}

func TestRelationRankOrdersTenantsFirst(t *testing.T) {
	assert.Equal(t, 1, RelationHead.Rank())
	assert.Less(t, RelationSpouse.Rank(), RelationChild.Rank())
	assert.Less(t, RelationChild.Rank(), RelationNoneUnderAge.Rank())
	assert.Greater(t, Relation("bogus").Rank(), RelationNoneUnderAge.Rank())
}

func TestRelationTICCode(t *testing.T) {
	tests := []struct {
		relation Relation
		code     string
	}{
		{RelationHead, "H"},
		{RelationSpouse, "S"},
		{RelationAdultCoTenant, "A"},
		{RelationChild, "C"},
		{RelationFosterChild, "F"},
		{RelationFosterAdult, "F"},
		{RelationUnbornChild, "U"},
		{RelationAnticipatedChild, "U"},
		{RelationLiveInCaretaker, "L"},
		{RelationOtherFamilyMember, "O"},
		{RelationNoneAdult, "N"},
		{Relation("bogus"), "N"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.relation.TICCode(), string(tt.relation))
	}
}

func TestRelationIsDependent(t *testing.T) {
	assert.True(t, RelationChild.IsDependent())
	assert.True(t, RelationFosterChild.IsDependent())
	assert.True(t, RelationUnbornChild.IsDependent())
	assert.True(t, RelationAnticipatedChild.IsDependent())
	assert.False(t, RelationHead.IsDependent())
	assert.False(t, RelationSpouse.IsDependent())
	assert.False(t, RelationFosterAdult.IsDependent())
}

func TestMaritalStatusIsSeparation(t *testing.T) {
	assert.True(t, MaritalSeparated.IsSeparation())
	assert.True(t, MaritalLegallySeparated.IsSeparation())
	assert.False(t, MaritalMarriedJointly.IsSeparation())
	assert.False(t, MaritalOther.IsSeparation())
}

func TestSupportAwardIsCourtAward(t *testing.T) {
	assert.True(t, SupportAwardFull.IsCourtAward())
	assert.True(t, SupportAwardPartial.IsCourtAward())
	assert.False(t, SupportAwardNo.IsCourtAward())
	assert.False(t, SupportAwardOther.IsCourtAward())
}

func TestResidentAgeAt(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		at    time.Time
		age   int
	}{
		{
			name:  "birthday passed this year",
			birth: time.Date(1980, time.June, 15, 0, 0, 0, 0, time.UTC),
			at:    time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC),
			age:   40,
		},
		{
			name:  "birthday not yet reached",
			birth: time.Date(1980, time.June, 15, 0, 0, 0, 0, time.UTC),
			at:    time.Date(2020, time.June, 14, 0, 0, 0, 0, time.UTC),
			age:   39,
		},
		{
			name:  "on the birthday",
			birth: time.Date(1980, time.June, 15, 0, 0, 0, 0, time.UTC),
			at:    time.Date(2020, time.June, 15, 0, 0, 0, 0, time.UTC),
			age:   40,
		},
		{
			name:  "leap-day birth before Mar 1",
			birth: time.Date(1980, time.February, 29, 0, 0, 0, 0, time.UTC),
			at:    time.Date(2021, time.February, 28, 0, 0, 0, 0, time.UTC),
			age:   40,
		},
		{
			name:  "leap-day birth after Mar 1",
			birth: time.Date(1980, time.February, 29, 0, 0, 0, 0, time.UTC),
			at:    time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC),
			age:   41,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resident{BirthDate: tt.birth}
			assert.Equal(t, tt.age, r.AgeAt(tt.at))
		})
	}
}

func TestResidentIsAdultAt(t *testing.T) {
	r := &Resident{BirthDate: time.Date(2008, time.June, 15, 0, 0, 0, 0, time.UTC)}
	assert.False(t, r.IsAdultAt(time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.IsAdultAt(time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)))
}

func TestResidentStudentAndStatusAnswers(t *testing.T) {
	q := &DefaultRules().Questions
	r := &Resident{Answers: []Answer{
		{QuestionID: 27, Present: true},
		{QuestionID: 32, Present: false},
	}}
	assert.True(t, r.FullTimeStudent(q))
	assert.False(t, r.IsSingleParent(q), "a no answer is not a yes")
	assert.False(t, r.IsFosterCare(q))
	assert.False(t, (&Resident{}).FullTimeStudent(q))
}

func TestResidentCashWages(t *testing.T) {
	r := &Resident{Income: []IncomeRecord{
		{QuestionID: 2, Amount: 100000},
		{QuestionID: 2, Amount: 50000, CashWages: true},
	}}
	assert.True(t, r.CashWages())
	assert.False(t, (&Resident{}).CashWages())
}

func TestResidentEmployeeSources(t *testing.T) {
	q := &DefaultRules().Questions
	acme := &Source{Slug: "acme", Name: "ACME Corp"}
	court := &Source{Slug: "court", Name: "Superior Court"}
	r := &Resident{Income: []IncomeRecord{
		{QuestionID: 2, Source: acme, Category: CategoryRegular},
		{QuestionID: 2, Source: acme, Category: CategoryOvertime},
		{QuestionID: 11, Source: court, CourtAward: SupportAwardFull},
		{QuestionID: 2, Source: nil},
	}}

	sources := r.EmployeeSources(q)
	require.Len(t, sources, 1, "same source listed once, support sources excluded")
	assert.Same(t, acme, sources[0])

	awards := r.SupportAwardSources(q)
	require.Len(t, awards, 1)
	assert.Same(t, court, awards[0])
}

func TestSourceDisplayName(t *testing.T) {
	tests := []struct {
		name   string
		source *Source
		want   string
	}{
		{"position and employer", &Source{Name: "ACME Corp", Position: "cashier"}, "cashier at ACME Corp"},
		{"name only", &Source{Name: "ACME Corp"}, "ACME Corp"},
		{"placeholder name", &Source{Name: "N/A"}, ""},
		{"empty", &Source{}, ""},
		{"nil", nil, "no-source"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.source.DisplayName())
		})
	}
}

func TestSourceGroupKey(t *testing.T) {
	assert.Equal(t, "acme", (&Source{Slug: "acme", Name: "ACME Corp"}).GroupKey())
	assert.Equal(t, "ACME Corp", (&Source{Name: "ACME Corp"}).GroupKey())
	assert.Equal(t, "no-source", (*Source)(nil).GroupKey())
}

func TestAssetRecordAnnualIncome(t *testing.T) {
	// $3,000.00 at 0.70% yields $21.00 a year.
	a := &AssetRecord{Amount: 300000, InterestRate: 70}
	assert.Equal(t, int64(2100), a.AnnualIncome())

	assert.Zero(t, (&AssetRecord{Amount: 300000}).AnnualIncome())
}

func TestAssetRecordIsCurrent(t *testing.T) {
	q := &DefaultRules().Questions
	assert.True(t, (&AssetRecord{QuestionID: 17}).IsCurrent(q))
	assert.False(t, (&AssetRecord{QuestionID: 25}).IsCurrent(q))
}

func TestIncomeLimitAsPercent(t *testing.T) {
	l := &IncomeLimit{FullAmount: 6790000}
	assert.Equal(t, int64(6790000), l.AsPercent(100))
	assert.Equal(t, int64(4074000), l.AsPercent(60))
	assert.Equal(t, int64(3395000), l.AsPercent(50))

	// Truncates to whole cents, never rounds.
	odd := &IncomeLimit{FullAmount: 123456789}
	assert.Equal(t, int64(74074073), odd.AsPercent(60))
}

func TestRentLimitAsPercent(t *testing.T) {
	rounding := &DefaultRules().RentRounding

	tests := []struct {
		name       string
		county     string
		nbBedrooms int
		full       int64
		percent    int64
		want       int64
	}{
		{
			// 60% of $1,692.60 is $1,015.56; 56 cents rounds up to
			// $1,016 and the correction list pulls it back to $1,015.
			name:       "round up with downward correction",
			county:     "Santa Cruz County",
			nbBedrooms: 3,
			full:       169260,
			percent:    60,
			want:       101500,
		},
		{
			name:       "round up without correction",
			county:     "Alameda County",
			nbBedrooms: 3,
			full:       169260,
			percent:    60,
			want:       101600,
		},
		{
			// 60% of $1,700.40 is $1,020.24; 24 cents rounds down to
			// $1,020 and the correction list pushes it to $1,021.
			name:       "round down with upward correction",
			county:     "Los Angeles County",
			nbBedrooms: 3,
			full:       170040,
			percent:    60,
			want:       102100,
		},
		{
			name:       "round down without correction",
			county:     "Alameda County",
			nbBedrooms: 3,
			full:       170040,
			percent:    60,
			want:       102000,
		},
		{
			// Corrections only apply at the 60% tier.
			name:       "correction pair at other tier",
			county:     "Santa Cruz County",
			nbBedrooms: 3,
			full:       169260,
			percent:    50,
			want:       84600,
		},
		{
			name:       "exact dollar unchanged",
			county:     "Alameda County",
			nbBedrooms: 2,
			full:       150000,
			percent:    100,
			want:       150000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &RentLimit{
				County:     tt.county,
				NbBedrooms: tt.nbBedrooms,
				FullAmount: tt.full,
			}
			assert.Equal(t, tt.want, l.AsPercent(tt.percent, rounding))
		})
	}
}

func TestRentLimitAsPercentNilRounding(t *testing.T) {
	l := &RentLimit{County: "Santa Cruz County", NbBedrooms: 3, FullAmount: 169260}
	assert.Equal(t, int64(101600), l.AsPercent(60, nil))
}

func TestQuestionsSubsets(t *testing.T) {
	q := &DefaultRules().Questions
	assert.Equal(t, []int{11, 12}, q.ChildSpousalSupport())
	assert.Equal(t, []int{26, 27, 28}, q.FullTimeStudent())
}

func TestRentRoundingLookups(t *testing.T) {
	r := &DefaultRules().RentRounding
	assert.True(t, r.AdjustsDown("Santa Cruz County", 3))
	assert.False(t, r.AdjustsDown("Santa Cruz County", 2))
	assert.True(t, r.AdjustsUp("Los Angeles County", 3))
	assert.False(t, r.AdjustsUp("Santa Cruz County", 3))
}

func sampleApplication() *Application {
	effective := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	return &Application{
		EffectiveDate:            effective,
		County:                   "Santa Cruz County",
		NbBedrooms:               2,
		MonthlyRent:              120000,
		MonthlyUtilityAllowance:  5000,
		MonthlyOtherCharges:      2500,
		FederalRentAssistance:    30000,
		NonFederalRentAssistance: 10000,
		Residents: []Resident{
			{
				FullName:       "Jane Smith",
				BirthDate:      effective.AddDate(-40, 0, -1),
				RelationToHead: RelationHead,
			},
			{
				FullName:       "Alex Smith",
				BirthDate:      effective.AddDate(-38, 0, -1),
				RelationToHead: RelationSpouse,
			},
			{
				FullName:       "Sam Smith",
				BirthDate:      effective.AddDate(-8, 0, -1),
				RelationToHead: RelationChild,
				Answers:        []Answer{{QuestionID: 26, Present: true}},
				Assets:         []AssetRecord{{QuestionID: 17, Amount: 10000}},
			},
		},
	}
}

func TestApplicationHousehold(t *testing.T) {
	app := sampleApplication()

	assert.Equal(t, 3, app.FamilySize())

	head := app.Head()
	require.NotNil(t, head)
	assert.Equal(t, "Jane Smith", head.FullName)

	adults := app.Adults()
	require.Len(t, adults, 2)
	assert.Equal(t, "Jane Smith", adults[0].FullName)
	assert.Equal(t, "Alex Smith", adults[1].FullName)

	deps := app.Dependents()
	require.Len(t, deps, 1)
	assert.Equal(t, "Sam Smith", deps[0].FullName)
}

func TestApplicationNoHead(t *testing.T) {
	app := &Application{Residents: []Resident{{RelationToHead: RelationSpouse}}}
	assert.Nil(t, app.Head())
}

func TestApplicationRent(t *testing.T) {
	app := sampleApplication()
	assert.Equal(t, int64(127500), app.GrossMonthlyRent())
	assert.Equal(t, int64(40000), app.TotalRentAssistance())
}

func TestApplicationFlags(t *testing.T) {
	app := sampleApplication()
	q := &DefaultRules().Questions

	assert.True(t, app.FullTimeStudentHousehold(q), "the child is a full-time student")
	assert.False(t, app.HasNoAssets(), "the child holds a savings account")

	app.CertificationType = "initial"
	assert.False(t, app.IsOtherCertification())
	app.CertificationType = "interim"
	assert.True(t, app.IsOtherCertification())
}
