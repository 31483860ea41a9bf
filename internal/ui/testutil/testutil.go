// Package testutil helps component tests inspect rendered views.
package testutil

import (
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI returns s without styling escapes.
func StripANSI(s string) string { return ansi.Strip(s) }

// SplitLines returns the plain lines of a view, minus trailing blank lines.
func SplitLines(view string) []string {
	lines := strings.Split(StripANSI(view), "\n")
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

// FindLine returns the first plain line of view containing substr, or "".
func FindLine(view, substr string) string {
	lines := SplitLines(view)
	if i := slices.IndexFunc(lines, func(l string) bool { return strings.Contains(l, substr) }); i >= 0 {
		return lines[i]
	}
	return ""
}

// ContainsLine reports whether some plain line of view contains substr.
func ContainsLine(view, substr string) bool {
	return substr != "" && FindLine(view, substr) != ""
}
