package domain

import "time"

// MajorityAge is the age at which a household member signs the tenant
// agreement and counts toward household income.
const MajorityAge = 18

// Answer is a yes/no response to a TIC questionnaire question.
type Answer struct {
	QuestionID int  `yaml:"question" json:"question"`
	Present    bool `yaml:"present" json:"present"`
}

// Resident is one household member on an application, together with the
// income and asset records collected during verification. Records are a
// read-only snapshot supplied by the caller; all derived figures are
// recomputed on demand.
type Resident struct {
	Slug           string        `yaml:"slug,omitempty" json:"slug,omitempty"`
	FullName       string        `yaml:"full_name" json:"full_name"`
	BirthDate      time.Time     `yaml:"birth_date" json:"birth_date"`
	MaritalStatus  MaritalStatus `yaml:"marital_status,omitempty" json:"marital_status,omitempty"`
	RelationToHead Relation      `yaml:"relation_to_head" json:"relation_to_head"`
	SSNLast4       string        `yaml:"ssn_last4,omitempty" json:"ssn_last4,omitempty"`
	Email          string        `yaml:"email,omitempty" json:"email,omitempty"`
	Phone          string        `yaml:"phone,omitempty" json:"phone,omitempty"`

	Sources []*Source      `yaml:"sources,omitempty" json:"sources,omitempty"`
	Income  []IncomeRecord `yaml:"income,omitempty" json:"income,omitempty"`
	Assets  []AssetRecord  `yaml:"assets,omitempty" json:"assets,omitempty"`
	Answers []Answer       `yaml:"answers,omitempty" json:"answers,omitempty"`
}

// AgeAt returns the resident's age in whole years at the given date, using
// a calendar-accurate year/month/day difference rather than a fixed day
// count.
func (r *Resident) AgeAt(at time.Time) int {
	years := at.Year() - r.BirthDate.Year()
	if at.Month() < r.BirthDate.Month() ||
		(at.Month() == r.BirthDate.Month() && at.Day() < r.BirthDate.Day()) {
		years--
	}
	return years
}

// IsAdultAt reports whether the resident has reached the age of majority at
// the given date.
func (r *Resident) IsAdultAt(at time.Time) bool {
	return r.AgeAt(at) >= MajorityAge
}

// HasNoIncome reports whether the resident declared no income at all, which
// triggers the zero-income certification document.
func (r *Resident) HasNoIncome() bool {
	return len(r.Income) == 0
}

// HasNoAssets reports whether the resident declared no assets.
func (r *Resident) HasNoAssets() bool {
	return len(r.Assets) == 0
}

func (r *Resident) answeredYes(questions []int) bool {
	for _, answer := range r.Answers {
		if answer.Present && containsQuestion(questions, answer.QuestionID) {
			return true
		}
	}
	return false
}

// FullTimeStudent reports whether the resident answered yes to any of the
// current, past or future full-time student questions.
func (r *Resident) FullTimeStudent(q *Questions) bool {
	return r.answeredYes(q.FullTimeStudent())
}

// IsDisabled reports a yes answer on the disability question.
func (r *Resident) IsDisabled(q *Questions) bool {
	return r.answeredYes(q.Disability)
}

// IsSingleParent reports a yes answer on the single-parent question.
func (r *Resident) IsSingleParent(q *Questions) bool {
	return r.answeredYes(q.SingleParent)
}

// IsFosterCare reports a yes answer on the foster-care question.
func (r *Resident) IsFosterCare(q *Questions) bool {
	return r.answeredYes(q.FosterCare)
}

// CashWages reports whether any employment income is paid in cash.
func (r *Resident) CashWages() bool {
	for i := range r.Income {
		if r.Income[i].CashWages {
			return true
		}
	}
	return false
}

// EmployeeSources returns the distinct sources the resident derives
// employment income from.
func (r *Resident) EmployeeSources(q *Questions) []*Source {
	return r.incomeSources(q.Employee, func(*IncomeRecord) bool { return true })
}

// SupportAwardSources returns the distinct sources of court-awarded support
// payments.
func (r *Resident) SupportAwardSources(q *Questions) []*Source {
	return r.incomeSources(q.ChildSpousalSupport(), func(rec *IncomeRecord) bool {
		return rec.CourtAward.IsCourtAward()
	})
}

// ChildSpousalSupportSources returns the distinct sources of support
// payments.
func (r *Resident) ChildSpousalSupportSources(q *Questions) []*Source {
	return r.incomeSources(q.ChildSpousalSupport(), func(*IncomeRecord) bool { return true })
}

func (r *Resident) incomeSources(questions []int, keep func(*IncomeRecord) bool) []*Source {
	var sources []*Source
	seen := map[string]bool{}
	for i := range r.Income {
		rec := &r.Income[i]
		if rec.Source == nil || !containsQuestion(questions, rec.QuestionID) || !keep(rec) {
			continue
		}
		if key := rec.Source.GroupKey(); !seen[key] {
			seen[key] = true
			sources = append(sources, rec.Source)
		}
	}
	return sources
}
