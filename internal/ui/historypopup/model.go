// Package historypopup lists recent searches with fuzzy filtering.
package historypopup

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/llehouerou/storesearch/internal/history"
	"github.com/llehouerou/storesearch/internal/ui/popup"
)

var _ popup.Popup = (*Model)(nil)

// Model is the recent searches popup state.
type Model struct {
	entries  []history.Entry
	filtered []history.Entry
	filter   textinput.Model

	cursor   int
	offset   int
	loading  bool
	errorMsg string

	width, height int
}

// New creates a popup waiting for LoadedMsg.
func New() *Model {
	ti := textinput.New()
	ti.Prompt = "filter: "
	ti.Placeholder = "type to narrow"
	ti.CharLimit = 200
	ti.Focus()
	return &Model{filter: ti, loading: true}
}

// SetSize sets the available dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.filter.Width = max(width-20, 10)
}

// Filter returns the filter text.
func (m *Model) Filter() string {
	return m.filter.Value()
}

// Visible returns the entries matching the filter, best first.
func (m *Model) Visible() []history.Entry {
	return m.filtered
}

func (m *Model) selected() (history.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return history.Entry{}, false
	}
	return m.filtered[m.cursor], true
}

func (m *Model) refilter() {
	m.filtered = history.Match(m.entries, m.filter.Value())
	m.cursor = 0
	m.offset = 0
}

func (m *Model) listHeight() int {
	// title, filter, blank, blank, help, popup chrome
	return max(m.height-12, 3)
}

func (m *Model) ensureVisible() {
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}
