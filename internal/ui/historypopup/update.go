package historypopup

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/ui/popup"
)

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and returns updated model and commands.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		return m.handleLoaded(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleLoaded(msg LoadedMsg) *Model {
	m.loading = false
	if msg.Err != nil {
		m.errorMsg = msg.Err.Error()
		return m
	}
	m.entries = msg.Entries
	m.refilter()
	return m
}

func (m *Model) handleKey(msg tea.KeyMsg) (*Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m, ActionMsg(Close{}).Cmd()
	}
	if m.errorMsg != "" || m.loading {
		return m, nil
	}

	switch msg.String() {
	case "down", "ctrl+n":
		if len(m.filtered) > 0 {
			m.cursor = (m.cursor + 1) % len(m.filtered)
			m.ensureVisible()
		}
		return m, nil

	case "up", "ctrl+p":
		if len(m.filtered) > 0 {
			m.cursor = (m.cursor - 1 + len(m.filtered)) % len(m.filtered)
			m.ensureVisible()
		}
		return m, nil

	case "enter":
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, ActionMsg(Select{Entry: entry}).Cmd()

	case "ctrl+x":
		if len(m.entries) == 0 {
			return m, nil
		}
		m.entries = nil
		m.refilter()
		return m, ActionMsg(Clear{}).Cmd()
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.refilter()
	}
	return m, cmd
}
