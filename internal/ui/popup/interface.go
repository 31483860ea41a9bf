// Package popup provides the modal popup contract and its rendering helpers.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component drawn over the main view.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content without the outer border.
	View() string
	SetSize(width, height int)
}
