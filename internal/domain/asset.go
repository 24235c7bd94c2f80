package domain

// AssetRecord is one declared or verified asset. Amount is the cash value in
// integer cents; InterestRate is the annual rate in basis points (percent
// x100), so annual income is amount*rate/10000.
type AssetRecord struct {
	Slug         string             `yaml:"slug,omitempty" json:"slug,omitempty"`
	QuestionID   int                `yaml:"question" json:"question"`
	SourceSlug   string             `yaml:"source,omitempty" json:"source,omitempty"`
	Source       *Source            `yaml:"-" json:"-"`
	Category     AssetCategory      `yaml:"category" json:"category"`
	Verified     VerificationMethod `yaml:"verified" json:"verified"`
	Amount       int64              `yaml:"amount" json:"amount"`
	InterestRate int64              `yaml:"interest_rate,omitempty" json:"interest_rate,omitempty"`

	// Free-text description kept for audits.
	Descr string `yaml:"descr,omitempty" json:"descr,omitempty"`
}

// AnnualIncome is the actual yearly return of the asset in cents.
func (a *AssetRecord) AnnualIncome() int64 {
	return a.Amount * a.InterestRate / 10000
}

// IsCurrent reports whether the asset is still held, as opposed to the
// imputed record of a disposed asset.
func (a *AssetRecord) IsCurrent(q *Questions) bool {
	return !containsQuestion(q.DisposedAssets, a.QuestionID)
}
