package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/app/popupctl"
	"github.com/llehouerou/storesearch/internal/ui/action"
	"github.com/llehouerou/storesearch/internal/ui/detail"
	"github.com/llehouerou/storesearch/internal/ui/help"
	"github.com/llehouerou/storesearch/internal/ui/historypopup"
	"github.com/llehouerou/storesearch/internal/ui/results"
	"github.com/llehouerou/storesearch/internal/ui/searchbar"
)

// handleAction routes an action emitted by a component.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	logger.Debugf("action %s from %s", msg.Action.ActionType(), msg.Source)

	switch a := msg.Action.(type) {
	// Search bar
	case searchbar.Submit:
		m.focusResults()
		return m, m.startSearch(a.Text, a.Category)
	case searchbar.CategoryChanged:
		// Switching category reruns the current query, if there is one.
		if a.Text == "" {
			return m, nil
		}
		return m, m.startSearch(a.Text, a.Category)
	case searchbar.Leave:
		m.focusResults()
		return m, nil

	// Results
	case results.Open:
		return m, m.Popups.ShowDetail(m.Artwork, a.Result)

	// Detail popup
	case detail.Close:
		m.Popups.Hide(popupctl.Detail)
		return m, nil
	case detail.OpenStore:
		return m, openStoreCmd(a.URL)

	// History popup
	case historypopup.Select:
		m.Popups.Hide(popupctl.History)
		m.SearchBar.SetText(a.Entry.Query)
		m.SearchBar.SetCategory(a.Entry.Category)
		m.focusResults()
		return m, m.startSearch(a.Entry.Query, a.Entry.Category)
	case historypopup.Clear:
		return m, clearHistoryCmd(m.History)
	case historypopup.Close:
		m.Popups.Hide(popupctl.History)
		return m, nil

	// Help popup
	case help.Close:
		m.Popups.Hide(popupctl.Help)
		return m, nil
	}
	return m, nil
}
