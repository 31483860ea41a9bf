package searchbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/ui/testutil"
)

func newFocused(t *testing.T) Model {
	t.Helper()
	m := New()
	m.SetSize(80, 2)
	m.Focus()
	return m
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSearchBar_SubmitTrims(t *testing.T) {
	m := typeText(newFocused(t), "  abba ")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got, ok := testutil.ActionOf(cmd).(Submit)
	if !ok {
		t.Fatalf("enter emitted %T, want Submit", testutil.ActionOf(cmd))
	}
	if got.Text != "abba" || got.Category != itunes.CategoryAll {
		t.Errorf("Submit = %+v", got)
	}
	if m.Text() != "  abba " {
		t.Errorf("Text() = %q, input should keep what was typed", m.Text())
	}
}

func TestSearchBar_SubmitBlankIgnored(t *testing.T) {
	m := typeText(newFocused(t), "   ")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Errorf("blank enter emitted %v", testutil.ActionOf(cmd))
	}
}

func TestSearchBar_TabCyclesCategory(t *testing.T) {
	m := typeText(newFocused(t), "dune")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	changed, ok := testutil.ActionOf(cmd).(CategoryChanged)
	if !ok {
		t.Fatalf("tab emitted %T", testutil.ActionOf(cmd))
	}
	if changed.Category != itunes.CategoryMusic || changed.Text != "dune" {
		t.Errorf("CategoryChanged = %+v", changed)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Category() != itunes.CategoryEbooks {
		t.Errorf("Category() = %v, want ebooks after wrapping back", m.Category())
	}
}

func TestSearchBar_EscLeaves(t *testing.T) {
	_, cmd := newFocused(t).Update(tea.KeyMsg{Type: tea.KeyEscape})
	if _, ok := testutil.ActionOf(cmd).(Leave); !ok {
		t.Errorf("esc emitted %T, want Leave", testutil.ActionOf(cmd))
	}
}

func TestSearchBar_UnfocusedIgnoresKeys(t *testing.T) {
	m := New()
	m = typeText(m, "x")
	if m.Text() != "" {
		t.Errorf("unfocused bar accepted input: %q", m.Text())
	}
}

func TestSearchBar_ViewShowsTabs(t *testing.T) {
	m := newFocused(t)
	m.SetCategory(itunes.CategorySoftware)
	view := m.View()
	for _, label := range []string{"All", "Music", "Software", "E-books"} {
		if !testutil.ContainsLine(view, label) {
			t.Errorf("view missing tab %q", label)
		}
	}
}
