package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/llehouerou/storesearch/internal/keymap"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

const appTitle = "StoreSearch"

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	view := strings.Join([]string{
		m.renderTitle(),
		m.SearchBar.View(),
		m.Results.View(),
		m.renderStatus(),
		m.Help.ShortHelpView(m.shortHelp()),
	}, "\n")

	return m.Popups.Overlay(view)
}

func (m Model) renderTitle() string {
	t := styles.T()
	title := styles.Gradient(appTitle, t.Primary, t.Secondary)
	loc := m.Session.Locale()
	return render.Row(title, t.S().Subtle.Render(loc.Language+" · "+loc.Country), m.Width)
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	switch {
	case m.ErrorMsg != "":
		return s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	case m.Status != "":
		return s.Success.Render(render.Truncate(m.Status, m.Width))
	}
	return ""
}

func (m Model) shortHelp() []key.Binding {
	if m.Focus == FocusSearch {
		return keymap.ShortHelp("search")
	}
	bindings := keymap.ShortHelp("results")
	return append(bindings, keymap.ShortHelp("global")...)
}
