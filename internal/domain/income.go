package domain

import "time"

// IncomeRecord is one row of an income entry as verified by a given method.
// Several rows sharing the same Group form one logical entry (e.g. regular
// wages plus overtime plus tips from the same employer). Amounts are always
// integer cents; PeriodPerAvg and AvgPerYear are scaled by 100 like the
// periods-per-year invariants.
type IncomeRecord struct {
	Group      string             `yaml:"group,omitempty" json:"group,omitempty"`
	QuestionID int                `yaml:"question" json:"question"`
	SourceSlug string             `yaml:"source,omitempty" json:"source,omitempty"`
	Source     *Source            `yaml:"-" json:"-"`
	Category   IncomeCategory     `yaml:"category" json:"category"`
	Verified   VerificationMethod `yaml:"verified" json:"verified"`
	Period     Period             `yaml:"period" json:"period"`
	Amount     int64              `yaml:"amount" json:"amount"`

	// Averaging of hourly/daily rates: the rate applies PeriodPerAvg times
	// (x100) per averaging period, AvgPerYear (x100) averaging periods per
	// year when the natural count does not apply.
	Avg          Period     `yaml:"avg,omitempty" json:"avg,omitempty"`
	PeriodPerAvg int64      `yaml:"period_per_avg,omitempty" json:"period_per_avg,omitempty"`
	AvgPerYear   int64      `yaml:"avg_per_year,omitempty" json:"avg_per_year,omitempty"`
	StartsAt     *time.Time `yaml:"starts_at,omitempty" json:"starts_at,omitempty"`
	EndsAt       *time.Time `yaml:"ends_at,omitempty" json:"ends_at,omitempty"`
	CashWages    bool       `yaml:"cash_wages,omitempty" json:"cash_wages,omitempty"`

	// Child/spousal support only.
	CourtAward SupportAward `yaml:"court_award,omitempty" json:"court_award,omitempty"`
	Payer      SupportPayer `yaml:"payer,omitempty" json:"payer,omitempty"`

	// Free-text description kept for audits.
	Descr string `yaml:"descr,omitempty" json:"descr,omitempty"`
}

// AveragingPeriod is the period the hourly/daily rate is averaged over,
// defaulting to weekly when the entry form left it unset.
func (r *IncomeRecord) AveragingPeriod() Period {
	if r.Avg == "" {
		return PeriodWeekly
	}
	return r.Avg
}

// NbDays is the inclusive day count of the record's date range, zero when
// either bound is missing.
func (r *IncomeRecord) NbDays() int64 {
	if r.StartsAt == nil || r.EndsAt == nil {
		return 0
	}
	return int64(r.EndsAt.Sub(*r.StartsAt).Hours()/24) + 1
}
