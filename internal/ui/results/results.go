// Package results renders the search state: a hint, a spinner, "Nothing
// found", or the list of results.
package results

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/session"
	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/list"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

const (
	typeWidth  = 11
	priceWidth = 9
	minArtist  = 12
)

// Model is the results panel.
type Model struct {
	ui.Base
	list    list.Model[itunes.Result]
	kind    session.Kind
	spinner spinner.Model
}

// New creates an empty panel in the NotSearchedYet state.
func New() Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.T().Primary)),
	)
	return Model{
		list:    list.New[itunes.Result](ui.ScrollMargin, ui.PanelOverhead),
		kind:    session.KindNotSearchedYet,
		spinner: sp,
	}
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.list.SetSize(width, height)
}

// SetFocused sets whether the panel takes list keys.
func (m *Model) SetFocused(focused bool) {
	m.Base.SetFocused(focused)
	m.list.SetFocused(focused)
}

// SetState shows s. Entering Loading returns the spinner tick.
func (m *Model) SetState(s session.State) tea.Cmd {
	wasLoading := m.kind == session.KindLoading
	m.kind = s.Kind()
	m.list.SetItems(s.Results())
	if m.kind == session.KindLoading && !wasLoading {
		return m.spinner.Tick
	}
	return nil
}

// Kind returns the state kind on display.
func (m Model) Kind() session.Kind {
	return m.kind
}

// Selected returns the result under the cursor.
func (m Model) Selected() (itunes.Result, bool) {
	return m.list.Selected()
}

// Update handles list keys and spinner ticks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.kind != session.KindLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if r := m.list.Update(msg); r.Action == list.ActionEnter {
			if res, ok := m.list.Selected(); ok {
				return m, ActionMsg(Open{Result: res}).Cmd()
			}
		}
	}
	return m, nil
}

// View renders the bordered panel.
func (m Model) View() string {
	innerW := max(m.Width()-2, 0)
	innerH := max(m.Height()-ui.BorderHeight, 0)

	header := render.Row(styles.T().S().Title.Render("Results"), m.counter(), innerW)
	lines := []string{header, render.Separator(innerW)}
	lines = append(lines, m.body(innerW)...)

	for len(lines) < innerH {
		lines = append(lines, "")
	}
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	return styles.PanelStyle(m.IsFocused()).Width(innerW).Render(strings.Join(lines, "\n"))
}

func (m Model) counter() string {
	s := styles.T().S()
	if m.kind != session.KindResults {
		return ""
	}
	n := m.list.Len()
	word := "results"
	if n == 1 {
		word = "result"
	}
	return s.Muted.Render(humanize.Comma(int64(m.list.SelectedIndex()+1)) + "/" +
		humanize.Comma(int64(n)) + " " + word)
}

func (m Model) body(width int) []string {
	s := styles.T().S()
	switch m.kind {
	case session.KindLoading:
		return []string{"", " " + m.spinner.View() + s.Muted.Render("Searching the store…")}
	case session.KindNoResults:
		return []string{"", s.Muted.Render(center("Nothing found", width))}
	case session.KindNotSearchedYet:
		return []string{"", s.Subtle.Render(center("Type a query and press enter", width))}
	}

	start, end := m.list.VisibleRange()
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		row := Row(m.list.Items()[i], width)
		switch {
		case i == m.list.SelectedIndex() && m.IsFocused():
			row = s.Selected.Render(row)
		case i == m.list.SelectedIndex():
			row = s.Cursor.Render(row)
		default:
			row = s.Base.Render(row)
		}
		rows = append(rows, row)
	}
	return rows
}

// Row lays out one result: name, artist, type and price.
func Row(r itunes.Result, width int) string {
	nameW := max((width-typeWidth-priceWidth-6)*3/5, 1)
	artistW := max(width-nameW-typeWidth-priceWidth-6, minArtist)
	return render.Columns(width,
		[]int{nameW, artistW, typeWidth, priceWidth},
		[]string{r.Name(), r.ArtistName, r.DisplayType(), itunes.FormatPrice(r.Price(), r.Currency)},
	)
}

func center(s string, width int) string {
	pad := max((width-lipgloss.Width(s))/2, 0)
	return strings.Repeat(" ", pad) + s
}
