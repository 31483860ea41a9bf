package app

import (
	"github.com/llehouerou/storesearch/internal/ui"
)

// ResizeComponents lays the components out for the current window size.
func (m *Model) ResizeComponents() {
	m.SearchBar.SetSize(m.Width, ui.SearchBarHeight-1)
	m.Results.SetSize(m.Width, m.resultsHeight())
	m.Popups.SetSize(m.Width, m.Height)
	m.Help.Width = m.Width
}

func (m Model) resultsHeight() int {
	return max(m.Height-ui.SearchBarHeight-ui.FooterHeight, ui.PanelOverhead+1)
}
