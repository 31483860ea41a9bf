// Package action carries requests from UI components up to the app model.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action is a request emitted by a component. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg the app receives for every Action.
type Msg struct {
	Source string // emitting component: searchbar, results, detail, history, help
	Action Action
}

// Cmd delivers m on the next update.
func (m Msg) Cmd() tea.Cmd {
	return func() tea.Msg { return m }
}
