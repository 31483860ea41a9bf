// Package help provides a scrollable popup listing the key bindings.
package help

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/storesearch/internal/keymap"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/popup"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

var _ popup.Popup = (*Model)(nil)

// contextOrder is the display order of binding contexts.
var contextOrder = []string{"global", "search", "results", "detail", "history"}

var contextLabels = map[string]string{
	"global":  "Global",
	"search":  "Search Bar",
	"results": "Results",
	"detail":  "Item Details",
	"history": "Recent Searches",
}

// chrome is the rows taken by the title, footer and popup border.
const chrome = 10

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	bindings []keymap.Binding
	contexts []string
	viewport viewport.Model
	width    int // widest content line
}

// New creates an empty help popup. Call SetContexts before showing it.
func New() *Model {
	return &Model{viewport: viewport.New(0, 0)}
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.contexts = contexts
	m.bindings = nil
	for _, c := range contextOrder {
		if slices.Contains(contexts, c) {
			m.bindings = append(m.bindings, keymap.ByContext(c)...)
		}
	}
	content := m.buildContent()
	m.width = 0
	for line := range strings.SplitSeq(content, "\n") {
		m.width = max(m.width, lipgloss.Width(line))
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	m.resize()
}

// SetSize implements popup.Popup.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.resize()
}

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = min(max(m.Height()-chrome, 5), m.viewport.TotalLineCount())
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, ActionMsg(Close{}).Cmd()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(keyMsg)
	return m, cmd
}

// View implements popup.Popup.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.footer()))
	return b.String()
}

// Scrolled reports how many lines are hidden above the view.
func (m *Model) Scrolled() int {
	return m.viewport.YOffset
}

func (m *Model) footer() string {
	if m.viewport.AtTop() && m.viewport.AtBottom() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m *Model) buildContent() string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	descStyle := t.S().Base
	headerStyle := lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	separatorStyle := t.S().Subtle

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, lipgloss.Width(strings.Join(b.Keys, ", ")))
	}

	var sb strings.Builder
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				sb.WriteString("\n")
			}
			label := contextLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(strings.Repeat("─", keyWidth+15)))
			sb.WriteString("\n")
			current = b.Context
		}

		keys := strings.Join(b.Keys, ", ")
		sb.WriteString(keyStyle.Render(keys + strings.Repeat(" ", keyWidth-lipgloss.Width(keys))))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
