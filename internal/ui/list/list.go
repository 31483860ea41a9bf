// Package list provides a generic scrollable list component.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/ui"
	"github.com/llehouerou/storesearch/internal/ui/cursor"
)

// Action represents what happened during Update.
type Action int

const (
	ActionNone  Action = iota
	ActionMoved        // cursor moved
	ActionEnter        // enter pressed on an item
)

// Result tells the parent what happened.
type Result struct {
	Action Action
	Index  int // item the action applies to, -1 if none
}

// Model is a scrollable list of T. The parent renders the rows returned by
// VisibleRange.
type Model[T any] struct {
	ui.Base
	items    []T
	cursor   cursor.Cursor
	overhead int // rows of the component height not used by items
}

// New creates a list with the given scroll margin and vertical overhead.
func New[T any](margin, overhead int) Model[T] {
	return Model[T]{cursor: cursor.New(margin), overhead: overhead}
}

// SetItems replaces the items and moves the cursor to the top.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cursor.Reset()
}

// Items returns the items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the number of items.
func (m Model[T]) Len() int {
	return len(m.items)
}

// Selected returns the item under the cursor.
func (m Model[T]) Selected() (T, bool) {
	if m.cursor.Pos() >= len(m.items) {
		var zero T
		return zero, false
	}
	return m.items[m.cursor.Pos()], true
}

// SelectedIndex returns the cursor position.
func (m Model[T]) SelectedIndex() int {
	return m.cursor.Pos()
}

// VisibleRange returns the [start, end) item indices that fit.
func (m Model[T]) VisibleRange() (start, end int) {
	return m.cursor.VisibleRange(len(m.items), m.RowsBelow(m.overhead))
}

// Update handles navigation keys. Unfocused lists ignore everything.
func (m *Model[T]) Update(msg tea.Msg) Result {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return Result{Index: -1}
	}
	if m.cursor.HandleKey(key.String(), len(m.items), m.RowsBelow(m.overhead)) {
		return Result{Action: ActionMoved, Index: m.cursor.Pos()}
	}
	if key.String() == "enter" && len(m.items) > 0 {
		return Result{Action: ActionEnter, Index: m.cursor.Pos()}
	}
	return Result{Index: -1}
}
