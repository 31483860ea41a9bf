package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/app/popupctl"
	"github.com/llehouerou/storesearch/internal/keymap"
	"github.com/llehouerou/storesearch/internal/ui/historypopup"
)

var resultsKeys = keymap.ForContexts("global", "results")

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	// Any key dismisses the last message.
	m.ErrorMsg = ""
	m.Status = ""

	if active := m.Popups.ActivePopup(); active != popupctl.None {
		return m, m.Popups.Update(active, msg)
	}

	if key == "ctrl+r" {
		return m, m.showHistory()
	}

	if m.Focus == FocusSearch {
		var cmd tea.Cmd
		m.SearchBar, cmd = m.SearchBar.Update(msg)
		return m, cmd
	}

	switch resultsKeys.Resolve(key) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		return m, m.Popups.ShowHelp(m.helpContexts())
	case keymap.ActionFocusSearch:
		return m, m.focusSearch()
	case keymap.ActionNextCategory:
		return m, m.SearchBar.CycleCategory(1)
	case keymap.ActionPrevCategory:
		return m, m.SearchBar.CycleCategory(-1)
	case keymap.ActionOpenStore:
		if r, ok := m.Results.Selected(); ok && r.StoreURL() != "" {
			return m, openStoreCmd(r.StoreURL())
		}
		return m, nil
	case keymap.ActionRetry:
		return m, m.startSearch(m.SearchBar.Query(), m.SearchBar.Category())
	}

	var cmd tea.Cmd
	m.Results, cmd = m.Results.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Session.Close()
	m.Popups.Hide(popupctl.Detail)
	return m, tea.Quit
}

func (m *Model) focusSearch() tea.Cmd {
	m.Focus = FocusSearch
	m.Results.SetFocused(false)
	return m.SearchBar.Focus()
}

func (m *Model) focusResults() {
	m.Focus = FocusResults
	m.SearchBar.Blur()
	m.Results.SetFocused(true)
}

func (m *Model) showHistory() tea.Cmd {
	if m.History == nil {
		m.Status = "Recent searches are disabled"
		return nil
	}
	return tea.Batch(m.Popups.ShowHistory(), historypopup.Load(m.History))
}

// helpContexts returns the binding contexts relevant to the current focus.
func (m Model) helpContexts() []string {
	contexts := []string{"global", "search", "results", "detail"}
	if m.History != nil {
		contexts = append(contexts, "history")
	}
	return contexts
}
