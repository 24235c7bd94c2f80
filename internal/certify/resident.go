package certify

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/HelpPal/tcap/internal/annualize"
	"github.com/HelpPal/tcap/internal/domain"
)

// ResidentSummary is the per-resident slice of the certification: the Part
// III category totals, the Part IV asset figures and the questionnaire
// flags the TIC form reports per household member. It is a plain value
// object computed once from the resident's records.
type ResidentSummary struct {
	Resident *domain.Resident

	// Part III gross annual income, in cents per year.
	SelfEmployedIncome        int64
	EmployeeIncome            int64
	EarnedIncome              int64
	SocialSecurityAndPensions int64
	PublicAssistance          int64
	OtherIncome               int64
	TotalIncome               int64

	// Part IV income from assets, in cents.
	CashValueOfAssets      int64
	AnnualIncomeFromAssets int64

	StudentFinancialAid int64

	Adult           bool
	FullTimeStudent bool
	HasNoIncome     bool
	HasNoAssets     bool
	CashWages       bool
}

// SummarizeResident computes a resident's certification figures at the
// given effective date. The four Part III rows each apply the greater-of
// rule over a regulator-defined question subset; total income is their sum,
// not a greater-of over all questions at once.
func SummarizeResident(r *domain.Resident, q *domain.Questions, effectiveDate time.Time) *ResidentSummary {
	income := AggregateIncome(r, q)
	assets := AggregateAssets(r)

	summary := &ResidentSummary{
		Resident: r,

		SelfEmployedIncome:        income.SumGreaterOf(q.SelfEmployed),
		EmployeeIncome:            income.SumGreaterOf(q.Employee),
		EarnedIncome:              income.SumGreaterOf(q.EmploymentOrWages),
		SocialSecurityAndPensions: income.SumGreaterOf(q.SocialSecurityAndPension),
		PublicAssistance:          income.SumGreaterOf(q.PublicAssistanceTotal),
		OtherIncome:               income.SumGreaterOf(q.OtherIncome),

		CashValueOfAssets:      CashValueOfAssets(assets),
		AnnualIncomeFromAssets: AnnualIncomeFromAssets(assets),

		StudentFinancialAid: studentFinancialAid(r, q),

		Adult:           r.IsAdultAt(effectiveDate),
		FullTimeStudent: r.FullTimeStudent(q),
		HasNoIncome:     r.HasNoIncome(),
		HasNoAssets:     r.HasNoAssets(),
		CashWages:       r.CashWages(),
	}
	summary.TotalIncome = summary.EarnedIncome +
		summary.SocialSecurityAndPensions +
		summary.PublicAssistance +
		summary.OtherIncome
	return summary
}

// studentFinancialAid sums the annualized financial aid records
// (questionnaire #15) directly; aid is reported informationally and is not
// subject to the greater-of rule.
func studentFinancialAid(r *domain.Resident, q *domain.Questions) int64 {
	var total int64
	for i := range r.Income {
		rec := &r.Income[i]
		if !containsQuestion(q.StudentFinancialAid, rec.QuestionID) {
			continue
		}
		annual, err := annualize.AnnualIncome(rec)
		if err != nil {
			log.Warn().Err(err).Str("resident", r.Slug).Str("group", rec.Group).
				Msg("skipping financial aid record that cannot be annualized")
			continue
		}
		total += annual
	}
	return total
}

func containsQuestion(questions []int, id int) bool {
	for _, q := range questions {
		if q == id {
			return true
		}
	}
	return false
}
