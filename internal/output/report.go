// Package output renders certification results for operators: a console
// report shaped like the TIC form parts, CSV for spreadsheets and JSON for
// downstream tooling.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/HelpPal/tcap/internal/certify"
	"github.com/HelpPal/tcap/internal/humanize"
)

// ReportGenerator handles report generation in various formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// GenerateReport writes a certification report in the specified format.
func GenerateReport(w io.Writer, cert *certify.Certification, format string) error {
	generator := NewReportGenerator()

	switch format {
	case "console":
		return generator.GenerateConsoleReport(w, cert)
	case "csv":
		return generator.GenerateCSVReport(w, cert)
	case "json":
		return generator.GenerateJSONReport(w, cert)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// GenerateConsoleReport writes the certification the way the TIC form
// reads: household, income, assets, totals, then the limit comparison.
func (rg *ReportGenerator) GenerateConsoleReport(w io.Writer, cert *certify.Certification) error {
	app := cert.Application
	fmt.Fprintln(w, "TENANT INCOME CERTIFICATION")
	fmt.Fprintln(w, "===========================")
	if app.Property != "" {
		fmt.Fprintf(w, "Property:       %s\n", app.Property)
	}
	if app.UnitNumber != "" {
		fmt.Fprintf(w, "Unit:           %s (%d bedrooms)\n", app.UnitNumber, app.NbBedrooms)
	}
	fmt.Fprintf(w, "County:         %s\n", app.County)
	fmt.Fprintf(w, "Effective date: %s\n", app.EffectiveDate.Format("2006-01-02"))
	if app.CertificationType != "" {
		fmt.Fprintf(w, "Certification:  %s\n", app.CertificationType)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PART II - HOUSEHOLD COMPOSITION")
	for _, summary := range cert.Residents {
		resident := summary.Resident
		flags := ""
		if summary.FullTimeStudent {
			flags = " full-time student"
		}
		fmt.Fprintf(w, "  %s  %-24s age %d%s\n",
			resident.RelationToHead.TICCode(), resident.FullName,
			resident.AgeAt(app.EffectiveDate), flags)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PART III - GROSS ANNUAL INCOME")
	for _, summary := range cert.Residents {
		if !summary.Adult {
			continue
		}
		fmt.Fprintf(w, "  %s\n", summary.Resident.FullName)
		fmt.Fprintf(w, "    Employment or wages:        %s\n",
			humanize.AsMoney(summary.EarnedIncome, false))
		fmt.Fprintf(w, "    Social security & pensions: %s\n",
			humanize.AsMoney(summary.SocialSecurityAndPensions, false))
		fmt.Fprintf(w, "    Public assistance:          %s\n",
			humanize.AsMoney(summary.PublicAssistance, false))
		fmt.Fprintf(w, "    Other income:               %s\n",
			humanize.AsMoney(summary.OtherIncome, false))
		fmt.Fprintf(w, "    Total:                      %s\n",
			humanize.AsMoney(summary.TotalIncome, false))
	}
	fmt.Fprintf(w, "  Household income:             %s\n",
		humanize.AsMoney(cert.TotalIncome, false))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PART IV - INCOME FROM ASSETS")
	fmt.Fprintf(w, "  Cash value of assets:         %s\n",
		humanize.AsMoney(cert.CashValueOfAssets, false))
	fmt.Fprintf(w, "  Annual income from assets:    %s\n",
		humanize.AsMoney(cert.AnnualIncomeFromAssets, false))
	fmt.Fprintf(w, "  Imputed income from assets:   %s\n",
		humanize.AsMoney(cert.ImputedIncomeFromAssets, false))
	fmt.Fprintf(w, "  Total income from assets:     %s\n",
		humanize.AsMoney(cert.TotalIncomeFromAssets, false))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "PART V - TOTAL ANNUAL HOUSEHOLD INCOME")
	fmt.Fprintf(w, "  Total annual income:          %s\n",
		humanize.AsMoney(cert.TotalAnnualIncome, false))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "DETERMINATION")
	if cert.HasIncomeLimit {
		fmt.Fprintf(w, "  Income limit (100%% AMI):      %s\n",
			humanize.AsMoney(cert.IncomeLimit100, false))
		if cert.IncomeLimit > 0 {
			fmt.Fprintf(w, "  Income limit (restricted):    %s\n",
				humanize.AsMoney(cert.IncomeLimit, false))
		}
		fmt.Fprintf(w, "  140%% limit:                   %s\n",
			humanize.AsMoney(cert.IncomeLimit140, false))
		if cert.IsEligible140 {
			fmt.Fprintln(w, "  Household is NOT over income (140% test passed)")
		} else {
			fmt.Fprintln(w, "  Household is OVER INCOME (140% test failed)")
		}
	} else {
		fmt.Fprintln(w, "  No income limit published for this county/date: no determination")
	}
	if cert.HasRentLimit && cert.RentLimit > 0 {
		fmt.Fprintf(w, "  Rent limit (restricted):      %s\n",
			humanize.AsMoney(cert.RentLimit, false))
		fmt.Fprintf(w, "  Gross monthly rent:           %s\n",
			humanize.AsMoney(cert.GrossMonthlyRent, false))
	}
	return nil
}

// GenerateCSVReport writes one row per resident plus a household row.
func (rg *ReportGenerator) GenerateCSVReport(w io.Writer, cert *certify.Certification) error {
	writer := csv.NewWriter(w)
	header := []string{
		"name", "relation", "age", "earned_income",
		"social_security_and_pensions", "public_assistance", "other_income",
		"total_income", "cash_value_of_assets", "annual_income_from_assets",
		"total_income_from_assets", "total_annual_income",
	}
	if err := writer.Write(header); err != nil {
		return err
	}
	app := cert.Application
	for _, summary := range cert.Residents {
		resident := summary.Resident
		row := []string{
			resident.FullName,
			string(resident.RelationToHead),
			strconv.Itoa(resident.AgeAt(app.EffectiveDate)),
			strconv.FormatInt(summary.EarnedIncome, 10),
			strconv.FormatInt(summary.SocialSecurityAndPensions, 10),
			strconv.FormatInt(summary.PublicAssistance, 10),
			strconv.FormatInt(summary.OtherIncome, 10),
			strconv.FormatInt(summary.TotalIncome, 10),
			strconv.FormatInt(summary.CashValueOfAssets, 10),
			strconv.FormatInt(summary.AnnualIncomeFromAssets, 10),
			// Imputation compares at the household level only.
			"", "",
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	household := []string{
		"household", "", strconv.Itoa(app.FamilySize()),
		strconv.FormatInt(cert.EarnedIncome, 10),
		strconv.FormatInt(cert.SocialSecurityAndPensions, 10),
		strconv.FormatInt(cert.PublicAssistance, 10),
		strconv.FormatInt(cert.OtherIncome, 10),
		strconv.FormatInt(cert.TotalIncome, 10),
		strconv.FormatInt(cert.CashValueOfAssets, 10),
		strconv.FormatInt(cert.AnnualIncomeFromAssets, 10),
		strconv.FormatInt(cert.TotalIncomeFromAssets, 10),
		strconv.FormatInt(cert.TotalAnnualIncome, 10),
	}
	if err := writer.Write(household); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

type jsonResident struct {
	Name                      string `json:"name"`
	Relation                  string `json:"relation"`
	Adult                     bool   `json:"adult"`
	EarnedIncome              int64  `json:"earned_income"`
	SocialSecurityAndPensions int64  `json:"social_security_and_pensions"`
	PublicAssistance          int64  `json:"public_assistance"`
	OtherIncome               int64  `json:"other_income"`
	TotalIncome               int64  `json:"total_income"`
	CashValueOfAssets         int64  `json:"cash_value_of_assets"`
	AnnualIncomeFromAssets    int64  `json:"annual_income_from_assets"`
	StudentFinancialAid       int64  `json:"student_financial_aid"`
	FullTimeStudent           bool   `json:"full_time_student"`
}

type jsonReport struct {
	Slug          string `json:"slug,omitempty"`
	County        string `json:"county"`
	EffectiveDate string `json:"effective_date"`
	FamilySize    int    `json:"family_size"`

	Residents []jsonResident `json:"residents"`

	EarnedIncome              int64 `json:"earned_income"`
	SocialSecurityAndPensions int64 `json:"social_security_and_pensions"`
	PublicAssistance          int64 `json:"public_assistance"`
	OtherIncome               int64 `json:"other_income"`
	TotalIncome               int64 `json:"total_income"`
	CashValueOfAssets         int64 `json:"cash_value_of_assets"`
	AnnualIncomeFromAssets    int64 `json:"annual_income_from_assets"`
	ImputedIncomeFromAssets   int64 `json:"imputed_income_from_assets"`
	TotalIncomeFromAssets     int64 `json:"total_income_from_assets"`
	TotalAnnualIncome         int64 `json:"total_annual_income"`

	IncomeLimit100 int64 `json:"income_limit_100,omitempty"`
	IncomeLimit140 int64 `json:"income_limit_140,omitempty"`
	IncomeLimit    int64 `json:"income_limit,omitempty"`
	RentLimit      int64 `json:"rent_limit,omitempty"`
	IsEligible140  bool  `json:"is_eligible_140"`
}

// GenerateJSONReport writes the certification as indented JSON. Amounts
// stay integer cents; rendering is the consumer's concern.
func (rg *ReportGenerator) GenerateJSONReport(w io.Writer, cert *certify.Certification) error {
	app := cert.Application
	report := jsonReport{
		Slug:          app.Slug,
		County:        app.County,
		EffectiveDate: app.EffectiveDate.Format("2006-01-02"),
		FamilySize:    app.FamilySize(),

		EarnedIncome:              cert.EarnedIncome,
		SocialSecurityAndPensions: cert.SocialSecurityAndPensions,
		PublicAssistance:          cert.PublicAssistance,
		OtherIncome:               cert.OtherIncome,
		TotalIncome:               cert.TotalIncome,
		CashValueOfAssets:         cert.CashValueOfAssets,
		AnnualIncomeFromAssets:    cert.AnnualIncomeFromAssets,
		ImputedIncomeFromAssets:   cert.ImputedIncomeFromAssets,
		TotalIncomeFromAssets:     cert.TotalIncomeFromAssets,
		TotalAnnualIncome:         cert.TotalAnnualIncome,

		IncomeLimit100: cert.IncomeLimit100,
		IncomeLimit140: cert.IncomeLimit140,
		IncomeLimit:    cert.IncomeLimit,
		RentLimit:      cert.RentLimit,
		IsEligible140:  cert.IsEligible140,
	}
	for _, summary := range cert.Residents {
		report.Residents = append(report.Residents, jsonResident{
			Name:                      summary.Resident.FullName,
			Relation:                  string(summary.Resident.RelationToHead),
			Adult:                     summary.Adult,
			EarnedIncome:              summary.EarnedIncome,
			SocialSecurityAndPensions: summary.SocialSecurityAndPensions,
			PublicAssistance:          summary.PublicAssistance,
			OtherIncome:               summary.OtherIncome,
			TotalIncome:               summary.TotalIncome,
			CashValueOfAssets:         summary.CashValueOfAssets,
			AnnualIncomeFromAssets:    summary.AnnualIncomeFromAssets,
			StudentFinancialAid:       summary.StudentFinancialAid,
			FullTimeStudent:           summary.FullTimeStudent,
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// WriteSummaryHeader writes the column header of the one-line-per-
// application report.
func WriteSummaryHeader(w io.Writer) {
	fmt.Fprintln(w, "Full name\tFamily size\tAnnual income\t"+
		"Income limit 60% AMI\tIncome limit 50% AMI\tStatus")
}

// WriteSummaryLine writes one application line of the report: head of
// household, family size, annual income and the 60/50 income tiers, in
// whole dollars like the published tables.
func WriteSummaryLine(w io.Writer, cert *certify.Certification) {
	app := cert.Application
	name := app.Slug
	if head := app.Head(); head != nil {
		name = head.FullName
	}
	status := string(app.Status)
	if status == "" {
		status = "-"
	}
	fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\n",
		name, app.FamilySize(),
		humanize.AsMoney(cert.TotalAnnualIncome, true),
		humanize.AsMoney(cert.IncomeLimit100*60/100, true),
		humanize.AsMoney(cert.IncomeLimit100*50/100, true),
		status)
}
