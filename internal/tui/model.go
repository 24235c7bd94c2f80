// Package tui is a small terminal browser for certification results: one
// page per part of the TIC form, switched with the arrow keys.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HelpPal/tcap/internal/certify"
)

// page identifies one screen of the browser.
type page int

const (
	pageHousehold page = iota
	pageIncome
	pageAssets
	pageDetermination
	nbPages
)

var pageTitles = map[page]string{
	pageHousehold:     "Household",
	pageIncome:        "Income",
	pageAssets:        "Assets",
	pageDetermination: "Determination",
}

// Model holds the browser state: the computed certification and the page
// currently shown. The certification is immutable; the model never
// recomputes it.
type Model struct {
	cert *certify.Certification

	currentPage page
	help        help.Model
	width       int
	height      int
}

// NewModel creates a browser over a computed certification.
func NewModel(cert *certify.Certification) Model {
	return Model{
		cert:   cert,
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.NextPage):
			m.currentPage = (m.currentPage + 1) % nbPages
		case key.Matches(msg, keys.PrevPage):
			m.currentPage = (m.currentPage + nbPages - 1) % nbPages
		}
	}
	return m, nil
}
