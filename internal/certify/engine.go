package certify

import (
	"time"

	"github.com/HelpPal/tcap/internal/domain"
)

// LimitSource resolves published income and rent limits for a county at an
// effective date. A nil return means no limit is published; the engine
// renders that as a zero limit, never an error.
type LimitSource interface {
	CurrentIncomeLimit(county string, familySize int, effectiveDate time.Time) *domain.IncomeLimit
	CurrentRentLimit(county string, nbBedrooms int, effectiveDate time.Time) *domain.RentLimit
}

// Engine computes certifications against one set of regulatory rules and
// one limit table. It holds no per-application state and is safe to share
// across applications.
type Engine struct {
	questions *domain.Questions
	limits    LimitSource
}

// NewEngine returns an engine for the given rules and limit tables. Nil
// rules fall back to the built-in CTCAC defaults.
func NewEngine(rules *domain.Rules, limits LimitSource) *Engine {
	if rules == nil {
		rules = domain.DefaultRules()
	}
	return &Engine{questions: &rules.Questions, limits: limits}
}

// Certification is the computed outcome for one application: every
// household figure the TIC form reports, in cents.
type Certification struct {
	Application *domain.Application
	Residents   []*ResidentSummary

	// Part III household income, summed over adult members.
	EarnedIncome              int64
	SocialSecurityAndPensions int64
	PublicAssistance          int64
	OtherIncome               int64
	TotalIncome               int64

	// Part IV income from assets, over every household member; imputation
	// applies to the household cash value as a whole.
	CashValueOfAssets       int64
	AnnualIncomeFromAssets  int64
	ImputedIncomeFromAssets int64
	TotalIncomeFromAssets   int64

	// Part V total: income plus income from assets.
	TotalAnnualIncome int64

	// Published limits for the unit. HasIncomeLimit/HasRentLimit report
	// whether a limit was found; the amounts are zero otherwise and the
	// caller renders them as "no data".
	HasIncomeLimit bool
	IncomeLimit100 int64
	IncomeLimit140 int64
	IncomeLimit    int64
	HasRentLimit   bool
	RentLimit100   int64
	RentLimit      int64
	BondRentLimit  int64

	// Over-income determination for recertifications.
	IsEligible140 bool

	// Part VI unit rent.
	GrossMonthlyRent    int64
	TotalRentAssistance int64

	FullTimeStudentHousehold bool
}

// Certify computes the full certification for an application. Income totals
// sum over the members old enough to sign the tenant agreement at the
// effective date; asset figures cover every member, dependents included.
func (e *Engine) Certify(app *domain.Application) *Certification {
	cert := &Certification{
		Application:              app,
		GrossMonthlyRent:         app.GrossMonthlyRent(),
		TotalRentAssistance:      app.TotalRentAssistance(),
		FullTimeStudentHousehold: app.FullTimeStudentHousehold(e.questions),
	}

	for i := range app.Residents {
		summary := SummarizeResident(&app.Residents[i], e.questions, app.EffectiveDate)
		cert.Residents = append(cert.Residents, summary)

		if summary.Adult {
			cert.EarnedIncome += summary.EarnedIncome
			cert.SocialSecurityAndPensions += summary.SocialSecurityAndPensions
			cert.PublicAssistance += summary.PublicAssistance
			cert.OtherIncome += summary.OtherIncome
		}
		cert.CashValueOfAssets += summary.CashValueOfAssets
		cert.AnnualIncomeFromAssets += summary.AnnualIncomeFromAssets
	}
	cert.TotalIncome = cert.EarnedIncome + cert.SocialSecurityAndPensions +
		cert.PublicAssistance + cert.OtherIncome

	cert.ImputedIncomeFromAssets = ImputedIncomeFromAssets(cert.CashValueOfAssets)
	cert.TotalIncomeFromAssets = cert.AnnualIncomeFromAssets
	if cert.ImputedIncomeFromAssets > cert.TotalIncomeFromAssets {
		cert.TotalIncomeFromAssets = cert.ImputedIncomeFromAssets
	}
	cert.TotalAnnualIncome = cert.TotalIncome + cert.TotalIncomeFromAssets

	e.applyLimits(app, cert)
	return cert
}

// applyLimits resolves the published limits for the unit and derives the
// pro-rated and 140% figures.
func (e *Engine) applyLimits(app *domain.Application, cert *Certification) {
	if e.limits == nil {
		return
	}
	if limit := e.limits.CurrentIncomeLimit(
		app.County, app.FamilySize(), app.EffectiveDate); limit != nil {
		cert.HasIncomeLimit = true
		cert.IncomeLimit100 = limit.FullAmount
		cert.IncomeLimit140 = limit.AsPercent(140)
		if app.FederalIncomeRestriction > 0 {
			cert.IncomeLimit = limit.AsPercent(int64(app.FederalIncomeRestriction))
		}
		cert.IsEligible140 = cert.TotalAnnualIncome <= cert.IncomeLimit140
	}
	if limit := e.limits.CurrentRentLimit(
		app.County, app.NbBedrooms, app.EffectiveDate); limit != nil {
		cert.HasRentLimit = true
		cert.RentLimit100 = limit.FullAmount
		// Pro-rating by the unit's restriction truncates to whole cents;
		// the dollar rounding with county exceptions only applies to the
		// published tier tables.
		if app.FederalRentRestriction > 0 {
			cert.RentLimit = limit.FullAmount * int64(app.FederalRentRestriction) / 100
		}
		if app.BondRentRestriction > 0 {
			cert.BondRentLimit = limit.FullAmount * int64(app.BondRentRestriction) / 100
		}
	}
}
