package historypopup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/storesearch/internal/history"
	"github.com/llehouerou/storesearch/internal/ui/render"
	"github.com/llehouerou/storesearch/internal/ui/styles"
)

const (
	queryWidth    = 36
	categoryWidth = 12
	whenWidth     = 14
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.T().Primary).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(styles.T().Primary).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgBase)

	metaStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgMuted)

	helpStyle = lipgloss.NewStyle().
			Foreground(styles.T().FgMuted).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(styles.T().Error)
)

// View renders the popup content.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Recent searches"))
	b.WriteString("\n")

	if m.loading {
		b.WriteString("\nLoading...")
		return b.String()
	}

	if m.errorMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errorMsg))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc: close"))
		return b.String()
	}

	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	switch {
	case len(m.entries) == 0:
		b.WriteString(metaStyle.Render("No recent searches."))
		b.WriteString("\n")
	case len(m.filtered) == 0:
		b.WriteString(metaStyle.Render("No match."))
		b.WriteString("\n")
	default:
		end := min(m.offset+m.listHeight(), len(m.filtered))
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderEntry(m.filtered[i], i))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("enter: search  ctrl+x: clear  esc: close"))
	return b.String()
}

func (m *Model) renderEntry(e history.Entry, index int) string {
	cursor := "  "
	style := normalStyle
	if index == m.cursor {
		cursor = "> "
		style = selectedStyle
	}

	query := style.Render(render.TruncateAndPad(render.Sanitize(e.Query), queryWidth))
	category := metaStyle.Render(render.TruncateAndPad(e.Category.Label(), categoryWidth))
	when := metaStyle.Render(render.Truncate(humanize.Time(e.LastUsed), whenWidth))
	return cursor + query + "  " + category + "  " + when
}
