package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/storesearch/internal/ui/styles"
)

// SizeConfig defines how a popup is sized.
type SizeConfig struct {
	WidthPct  int // percentage of screen width (0 = fit content)
	HeightPct int // percentage of screen height (0 = fit content)
	MaxWidth  int // columns (0 = no limit)
}

// Common size configurations.
var (
	SizeLarge  = SizeConfig{WidthPct: 70, HeightPct: 70}
	SizeMedium = SizeConfig{MaxWidth: 72}
	SizeAuto   = SizeConfig{}
)

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := dimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2).
		Height(height-2).
		Padding(1, 2).
		Render(content)
	return Center(box, screenW, screenH)
}

func dimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4
	height = min(height, screenH-4)
	return max(width, 4), max(height, 4)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

// Center places rendered content in the middle of the screen.
func Center(content string, screenW, screenH int) string {
	lines := strings.Split(content, "\n")
	boxW := 0
	for _, line := range lines {
		boxW = max(boxW, lipgloss.Width(line))
	}
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-boxW)/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	for i, line := range lines {
		b.WriteString(strings.Repeat(" ", padLeft))
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Compose overlays a centered popup on the base view. Each popup line
// replaces the base between its first and last visible cell; the base stays
// visible on both sides. ANSI styling on either side is preserved.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		startCol := len(plain) - len(trimmed) // leading spaces are one cell each
		endCol := startCol + ansi.StringWidth(strings.TrimRight(trimmed, " "))

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(baseLine, 0, startCol)
		if w := ansi.StringWidth(prefix); w < startCol {
			prefix += strings.Repeat(" ", startCol-w) // a wide rune straddled the edge
		}
		result := prefix + ansi.Cut(line, startCol, endCol)
		if endCol < width {
			suffix := ansi.Cut(baseLine, endCol, width)
			if w := ansi.StringWidth(suffix); w < width-endCol {
				suffix = strings.Repeat(" ", width-endCol-w) + suffix
			}
			result += suffix
		}
		baseLines[i] = result
	}
	return strings.Join(baseLines, "\n")
}
