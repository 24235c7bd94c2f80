package domain

import "fmt"

// Period is how often an income amount is received. Hourly and daily rates
// are never natural periods themselves; they are averaged over the record's
// AveragingPeriod before annualization.
type Period string

const (
	PeriodOther       Period = "other"
	PeriodHourly      Period = "hourly"
	PeriodDaily       Period = "daily"
	PeriodWeekly      Period = "weekly"
	PeriodBiWeekly    Period = "bi-weekly"
	PeriodSemiMonthly Period = "semi-monthly"
	PeriodMonthly     Period = "monthly"
	PeriodYearly      Period = "yearly"
)

var periods = map[Period]bool{
	PeriodOther:       true,
	PeriodHourly:      true,
	PeriodDaily:       true,
	PeriodWeekly:      true,
	PeriodBiWeekly:    true,
	PeriodSemiMonthly: true,
	PeriodMonthly:     true,
	PeriodYearly:      true,
}

// ParsePeriod returns the Period matching slug.
func ParsePeriod(slug string) (Period, error) {
	p := Period(slug)
	if !periods[p] {
		return "", fmt.Errorf("unknown period %q", slug)
	}
	return p, nil
}

// VerificationMethod is how an income or asset record was verified. The
// method determines which annualization algorithm applies.
type VerificationMethod string

const (
	VerifiedTenant       VerificationMethod = "tenant"
	VerifiedEmployer     VerificationMethod = "employer"
	VerifiedYearToDate   VerificationMethod = "year-to-date"
	VerifiedPeriodToDate VerificationMethod = "period-to-date"
	VerifiedTaxReturn    VerificationMethod = "tax-return"
)

// verifiedRank reproduces the relative ordering of verification methods used
// when grouping records, so aggregation output is deterministic.
var verifiedRank = map[VerificationMethod]int{
	VerifiedEmployer:     1,
	VerifiedYearToDate:   2,
	VerifiedPeriodToDate: 3,
	VerifiedTaxReturn:    4,
	VerifiedTenant:       5,
}

// Rank returns a stable sort key for the method. Unknown methods sort last.
func (v VerificationMethod) Rank() int {
	if r, ok := verifiedRank[v]; ok {
		return r
	}
	return len(verifiedRank) + 1
}

// IsDirectCalculation reports whether the method annualizes each record
// independently (tenant-declared or third-party verified).
func (v VerificationMethod) IsDirectCalculation() bool {
	return v == VerifiedTenant || v == VerifiedEmployer
}

// ParseVerificationMethod returns the VerificationMethod matching slug.
func ParseVerificationMethod(slug string) (VerificationMethod, error) {
	v := VerificationMethod(slug)
	if _, ok := verifiedRank[v]; !ok {
		return "", fmt.Errorf("unknown verification method %q", slug)
	}
	return v, nil
}

// IncomeCategory is the kind of payment an income record represents within
// an income entry (one entry groups multiple category rows).
type IncomeCategory string

const (
	CategoryOther             IncomeCategory = "other"
	CategoryRegular           IncomeCategory = "regular"
	CategoryOvertime          IncomeCategory = "overtime"
	CategoryShiftDifferential IncomeCategory = "shift-differential"
	CategoryTips              IncomeCategory = "tips"
	CategoryCommission        IncomeCategory = "commission"
	CategoryBonuses           IncomeCategory = "bonuses"
	CategoryChildSupport      IncomeCategory = "child-support"
	CategorySpousalSupport    IncomeCategory = "spousal-support"
	CategoryAnnuities         IncomeCategory = "annuities"
	CategoryGifts             IncomeCategory = "gifts"
	CategoryInheritance       IncomeCategory = "inheritance"
	CategoryInsurancePolicies IncomeCategory = "insurance-policies"
	CategoryLotteryWinnings   IncomeCategory = "lottery-winnings"
	CategoryPensions          IncomeCategory = "pensions"
	CategoryRetirementFunds   IncomeCategory = "retirement-funds"
	CategoryTrusts            IncomeCategory = "trusts"
	CategoryUnearned          IncomeCategory = "unearned"
)

var incomeCategories = map[IncomeCategory]bool{
	CategoryOther: true, CategoryRegular: true, CategoryOvertime: true,
	CategoryShiftDifferential: true, CategoryTips: true,
	CategoryCommission: true, CategoryBonuses: true,
	CategoryChildSupport: true, CategorySpousalSupport: true,
	CategoryAnnuities: true, CategoryGifts: true, CategoryInheritance: true,
	CategoryInsurancePolicies: true, CategoryLotteryWinnings: true,
	CategoryPensions: true, CategoryRetirementFunds: true,
	CategoryTrusts: true, CategoryUnearned: true,
}

// ParseIncomeCategory returns the IncomeCategory matching slug.
func ParseIncomeCategory(slug string) (IncomeCategory, error) {
	c := IncomeCategory(slug)
	if !incomeCategories[c] {
		return "", fmt.Errorf("unknown income category %q", slug)
	}
	return c, nil
}

// EmployeeCategories are the categories that appear on an employment entry.
var EmployeeCategories = []IncomeCategory{
	CategoryRegular, CategoryOvertime, CategoryShiftDifferential,
	CategoryTips, CategoryCommission, CategoryBonuses, CategoryOther,
}

// ChildSpousalSupportCategories are the categories of a support-payment entry.
var ChildSpousalSupportCategories = []IncomeCategory{
	CategoryChildSupport, CategorySpousalSupport,
}

// AssetCategory identifies the kind of asset declared by the tenant.
// The three sale variants describe assets disposed of within the look-back
// window; a disposed asset may legitimately carry a zero cash value.
type AssetCategory string

const (
	AssetOwn                  AssetCategory = "own"
	AssetNormalSale           AssetCategory = "normal-sale"
	AssetForeclosure          AssetCategory = "foreclosure"
	AssetShortSale            AssetCategory = "short-sale"
	AssetChecking             AssetCategory = "checking"
	AssetSavings              AssetCategory = "savings"
	AssetCertificateOfDeposit AssetCategory = "certificate-of-deposit"
	AssetMoneyMarket          AssetCategory = "money-market"
	AssetRevokableTrust       AssetCategory = "revokable-trust"
	AssetIRA                  AssetCategory = "ira"
	AssetLumpSumPension       AssetCategory = "lump-sum-pension"
	AssetKeoghAccount         AssetCategory = "keogh-account"
	Asset401K                 AssetCategory = "401k"
	AssetBrokerage            AssetCategory = "brokerage"
	AssetLifeInsurance        AssetCategory = "life-insurance"
	AssetCashOnHand           AssetCategory = "cash-on-hand"
)

var assetCategories = map[AssetCategory]bool{
	AssetOwn: true, AssetNormalSale: true, AssetForeclosure: true,
	AssetShortSale: true, AssetChecking: true, AssetSavings: true,
	AssetCertificateOfDeposit: true, AssetMoneyMarket: true,
	AssetRevokableTrust: true, AssetIRA: true, AssetLumpSumPension: true,
	AssetKeoghAccount: true, Asset401K: true, AssetBrokerage: true,
	AssetLifeInsurance: true, AssetCashOnHand: true,
}

// ParseAssetCategory returns the AssetCategory matching slug.
func ParseAssetCategory(slug string) (AssetCategory, error) {
	c := AssetCategory(slug)
	if !assetCategories[c] {
		return "", fmt.Errorf("unknown asset category %q", slug)
	}
	return c, nil
}

// IsDisposed reports whether the category describes a disposed asset.
func (c AssetCategory) IsDisposed() bool {
	return c == AssetNormalSale || c == AssetForeclosure || c == AssetShortSale
}

// SupportAward records whether child or spousal support was awarded by a
// court of law.
type SupportAward string

const (
	SupportAwardNo      SupportAward = "no"
	SupportAwardPartial SupportAward = "partial"
	SupportAwardFull    SupportAward = "yes"
	SupportAwardOther   SupportAward = "other"
)

// IsCourtAward reports whether the award was at least partially court
// ordered.
func (a SupportAward) IsCourtAward() bool {
	return a == SupportAwardPartial || a == SupportAwardFull
}

// SupportPayer identifies who remits a support payment.
type SupportPayer string

const (
	SupportPayerDirect     SupportPayer = "direct"
	SupportPayerCourtOfLaw SupportPayer = "court-of-law"
	SupportPayerAgency     SupportPayer = "agency"
	SupportPayerOther      SupportPayer = "other"
)

// MaritalStatus of a resident, used on the marital separation affidavit.
type MaritalStatus string

const (
	MaritalOther            MaritalStatus = "other"
	MaritalMarriedJointly   MaritalStatus = "married-file-jointly"
	MaritalSeparated        MaritalStatus = "separated"
	MaritalLegallySeparated MaritalStatus = "legally-separated"
)

// IsSeparation reports whether the status requires a separation affidavit.
func (m MaritalStatus) IsSeparation() bool {
	return m == MaritalSeparated || m == MaritalLegallySeparated
}

// Relation is a resident's relation to the head of household. Relations are
// ordered tenants-first so that sorting by relation yields consistent ranks
// on the TIC form.
type Relation string

const (
	RelationHead               Relation = "head"
	RelationAdultCoTenant      Relation = "adult-co-tenant"
	RelationLiveInCaretaker    Relation = "live-in-caretaker"
	RelationSpouse             Relation = "spouse"
	RelationFosterAdult        Relation = "foster-adult"
	RelationOtherFamilyMember  Relation = "other-family-member"
	RelationNoneAdult          Relation = "none"
	RelationChild              Relation = "child"
	RelationFosterChild        Relation = "foster-child"
	RelationUnbornChild        Relation = "unborn-child"
	RelationAnticipatedChild   Relation = "anticipated-adoption-or-foster"
	RelationNoneUnderAge       Relation = "none-under-age"
)

var relationRank = map[Relation]int{
	RelationHead:              1,
	RelationAdultCoTenant:     2,
	RelationLiveInCaretaker:   3,
	RelationSpouse:            4,
	RelationFosterAdult:       5,
	RelationOtherFamilyMember: 6,
	RelationNoneAdult:         7,
	RelationChild:             8,
	RelationFosterChild:       9,
	RelationUnbornChild:       10,
	RelationAnticipatedChild:  11,
	RelationNoneUnderAge:      12,
}

var relationTICCode = map[Relation]string{
	RelationHead:              "H",
	RelationAdultCoTenant:     "A",
	RelationLiveInCaretaker:   "L",
	RelationSpouse:            "S",
	RelationFosterAdult:       "F",
	RelationOtherFamilyMember: "O",
	RelationNoneAdult:         "N",
	RelationChild:             "C",
	RelationFosterChild:       "F",
	RelationUnbornChild:       "U",
	RelationAnticipatedChild:  "U",
	RelationNoneUnderAge:      "N",
}

// ParseRelation returns the Relation matching slug.
func ParseRelation(slug string) (Relation, error) {
	r := Relation(slug)
	if _, ok := relationRank[r]; !ok {
		return "", fmt.Errorf("unknown relation %q", slug)
	}
	return r, nil
}

// Rank returns the TIC ordering rank for the relation.
func (r Relation) Rank() int {
	if rank, ok := relationRank[r]; ok {
		return rank
	}
	return len(relationRank) + 1
}

// TICCode returns the single-letter household-member code printed on the
// TIC form.
func (r Relation) TICCode() string {
	if code, ok := relationTICCode[r]; ok {
		return code
	}
	return "N"
}

// IsDependent reports whether the relation counts as a dependent on the
// certification.
func (r Relation) IsDependent() bool {
	switch r {
	case RelationChild, RelationFosterChild, RelationUnbornChild,
		RelationAnticipatedChild:
		return true
	}
	return false
}

// Status tracks an application through the certification workflow.
type Status string

const (
	StatusNewApplication  Status = "new-application"
	StatusVerification    Status = "verification"
	StatusHouseholdIncome Status = "household-income"
	StatusCertification   Status = "certification"
	StatusLease           Status = "lease"
	StatusMoveIn          Status = "move-in"
	StatusReCertification Status = "re-certification"
	StatusArchived        Status = "archived" // i.e. over income
)
