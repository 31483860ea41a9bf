// Package render provides text layout helpers for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Sanitize drops control characters and invalid UTF-8 and turns non-breaking
// spaces into spaces. Store metadata is free text and occasionally carries
// all three.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			i++
			continue
		case r == '\u00a0', r == '\n', r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func needsSanitize(s string) bool {
	if !utf8.ValidString(s) {
		return true
	}
	for i := range len(s) {
		b := s[i]
		if b < 0x20 || b == 0x7f {
			return true
		}
		// C1 controls and NBSP
		if b == 0xc2 && i+1 < len(s) && s[i+1] >= 0x80 && s[i+1] <= 0xa0 {
			return true
		}
	}
	return false
}

// Truncate shortens s to maxWidth display cells, ending in "…" when cut.
func Truncate(s string, maxWidth int) string {
	return runewidth.Truncate(Sanitize(s), maxWidth, "…")
}

// Pad fills s with spaces up to width display cells.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateAndPad returns s laid out in exactly width cells.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Columns lays values out in fixed-width columns separated by two spaces.
// A width of 0 or less takes whatever is left of total.
func Columns(total int, widths []int, values []string) string {
	const gap = 2
	fixed := 0
	for _, w := range widths {
		if w > 0 {
			fixed += w
		}
	}
	rest := max(total-fixed-gap*(len(widths)-1), 0)

	parts := make([]string, len(values))
	for i, v := range values {
		w := rest
		if i < len(widths) && widths[i] > 0 {
			w = widths[i]
		}
		parts[i] = TruncateAndPad(v, w)
	}
	return strings.Join(parts, strings.Repeat(" ", gap))
}

// Row puts left and right at the edges of a line of the given width.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator is a horizontal rule.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
