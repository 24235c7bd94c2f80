package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("12")
	colorMuted   = lipgloss.Color("241")
	colorSuccess = lipgloss.Color("10")
	colorDanger  = lipgloss.Color("9")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Underline(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1).
			MarginTop(1)

	labelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	valueStyle = lipgloss.NewStyle().Bold(true)

	eligibleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	overIncomeStyle = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)
