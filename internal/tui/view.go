package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HelpPal/tcap/internal/humanize"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	app := m.cert.Application
	title := "Tenant Income Certification"
	if app.Property != "" {
		title += " - " + app.Property
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	switch m.currentPage {
	case pageHousehold:
		b.WriteString(m.renderHousehold())
	case pageIncome:
		b.WriteString(m.renderIncome())
	case pageAssets:
		b.WriteString(m.renderAssets())
	case pageDetermination:
		b.WriteString(m.renderDetermination())
	}

	b.WriteString(helpStyle.Render(m.help.View(keys)))
	return b.String()
}

func (m Model) renderTabs() string {
	var tabs []string
	for p := page(0); p < nbPages; p++ {
		style := tabStyle
		if p == m.currentPage {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(pageTitles[p]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func row(label string, cents int64) string {
	return fmt.Sprintf("%s %s\n",
		labelStyle.Render(fmt.Sprintf("%-30s", label)),
		valueStyle.Render(humanize.AsMoney(cents, false)))
}

func (m Model) renderHousehold() string {
	var b strings.Builder
	app := m.cert.Application
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("County:"), app.County))
	b.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Effective date:"),
		app.EffectiveDate.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("%s %d\n",
		labelStyle.Render("Family size:"), app.FamilySize()))
	b.WriteString("\n")
	for _, summary := range m.cert.Residents {
		resident := summary.Resident
		line := fmt.Sprintf("%s  %-24s age %d",
			resident.RelationToHead.TICCode(), resident.FullName,
			resident.AgeAt(app.EffectiveDate))
		if summary.FullTimeStudent {
			line += labelStyle.Render("  full-time student")
		}
		b.WriteString(line + "\n")
	}
	return sectionStyle.Render(b.String())
}

func (m Model) renderIncome() string {
	var b strings.Builder
	for _, summary := range m.cert.Residents {
		if !summary.Adult {
			continue
		}
		b.WriteString(valueStyle.Render(summary.Resident.FullName) + "\n")
		b.WriteString(row("Employment or wages", summary.EarnedIncome))
		b.WriteString(row("Social security & pensions", summary.SocialSecurityAndPensions))
		b.WriteString(row("Public assistance", summary.PublicAssistance))
		b.WriteString(row("Other income", summary.OtherIncome))
		b.WriteString(row("Total", summary.TotalIncome))
		b.WriteString("\n")
	}
	b.WriteString(row("Household income", m.cert.TotalIncome))
	return sectionStyle.Render(b.String())
}

func (m Model) renderAssets() string {
	var b strings.Builder
	b.WriteString(row("Cash value of assets", m.cert.CashValueOfAssets))
	b.WriteString(row("Annual income from assets", m.cert.AnnualIncomeFromAssets))
	b.WriteString(row("Imputed income from assets", m.cert.ImputedIncomeFromAssets))
	b.WriteString(row("Total income from assets", m.cert.TotalIncomeFromAssets))
	return sectionStyle.Render(b.String())
}

func (m Model) renderDetermination() string {
	var b strings.Builder
	b.WriteString(row("Total annual income", m.cert.TotalAnnualIncome))
	if !m.cert.HasIncomeLimit {
		b.WriteString(labelStyle.Render("No income limit published for this county and date") + "\n")
		return sectionStyle.Render(b.String())
	}
	b.WriteString(row("Income limit (100% AMI)", m.cert.IncomeLimit100))
	if m.cert.IncomeLimit > 0 {
		b.WriteString(row("Income limit (restricted)", m.cert.IncomeLimit))
	}
	b.WriteString(row("140% limit", m.cert.IncomeLimit140))
	if m.cert.HasRentLimit && m.cert.RentLimit > 0 {
		b.WriteString(row("Rent limit (restricted)", m.cert.RentLimit))
		b.WriteString(row("Gross monthly rent", m.cert.GrossMonthlyRent))
	}
	b.WriteString("\n")
	if m.cert.IsEligible140 {
		b.WriteString(eligibleStyle.Render("NOT OVER INCOME (140% test passed)"))
	} else {
		b.WriteString(overIncomeStyle.Render("OVER INCOME (140% test failed)"))
	}
	b.WriteString("\n")
	return sectionStyle.Render(b.String())
}
