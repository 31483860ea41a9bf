// Package searchbar provides the query input and the category tabs.
package searchbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

const (
	placeholder = "App name, artist, song, album, e-book"
	charLimit   = 200
)

// Model is the search bar.
type Model struct {
	ui.Base
	input    textinput.Model
	category itunes.Category
}

// New creates a search bar with the "All" category selected.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	ti.PromptStyle = styles.T().S().Muted
	ti.PlaceholderStyle = styles.T().S().Subtle
	return Model{input: ti, category: itunes.CategoryAll}
}

// Focus gives the input the keyboard and starts the cursor blink.
func (m *Model) Focus() tea.Cmd {
	m.SetFocused(true)
	return m.input.Focus()
}

// Blur releases the keyboard.
func (m *Model) Blur() {
	m.SetFocused(false)
	m.input.Blur()
}

// Text returns the query as typed.
func (m Model) Text() string {
	return m.input.Value()
}

// Query returns the query with surrounding whitespace removed.
func (m Model) Query() string {
	return strings.TrimSpace(m.input.Value())
}

// SetText replaces the query and moves the cursor to its end.
func (m *Model) SetText(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
}

// Category returns the active category.
func (m Model) Category() itunes.Category {
	return m.category
}

// SetCategory selects a category without emitting anything.
func (m *Model) SetCategory(c itunes.Category) {
	m.category = c
}

// CycleCategory moves to the next (delta > 0) or previous category and
// reports the change.
func (m *Model) CycleCategory(delta int) tea.Cmd {
	if delta > 0 {
		m.category = m.category.Next()
	} else {
		m.category = m.category.Prev()
	}
	changed := CategoryChanged{Text: m.Query(), Category: m.category}
	return ActionMsg(changed).Cmd()
}

// Update handles keys while the bar is focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.IsFocused() {
		switch key.String() {
		case "enter":
			query := m.Query()
			if query == "" {
				return m, nil
			}
			submit := Submit{Text: query, Category: m.category}
			return m, ActionMsg(submit).Cmd()
		case "esc":
			return m, ActionMsg(Leave{}).Cmd()
		case "tab":
			return m, m.CycleCategory(1)
		case "shift+tab":
			return m, m.CycleCategory(-1)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input line and the tabs line.
func (m Model) View() string {
	m.input.Width = max(m.Width()-len(m.input.Prompt)-1, 1)
	return m.input.View() + "\n" + m.renderTabs()
}

func (m Model) renderTabs() string {
	s := styles.T().S()
	tabs := make([]string, 0, len(itunes.Categories))
	for _, c := range itunes.Categories {
		label := " " + c.Label() + " "
		if c == m.category {
			tabs = append(tabs, s.TabActive.Render(label))
		} else {
			tabs = append(tabs, s.Tab.Render(label))
		}
	}
	line := strings.Join(tabs, s.Subtle.Render("│"))
	return render.Row(line, s.Subtle.Render("tab/shift+tab"), m.Width())
}
