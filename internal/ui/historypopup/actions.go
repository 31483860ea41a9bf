package historypopup

import (
	"github.com/llehouerou/storesearch/internal/history"
	"github.com/llehouerou/storesearch/internal/ui/action"
)

// Close signals the popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "history.close" }

// Select asks the app to rerun a remembered search.
type Select struct {
	Entry history.Entry
}

// ActionType implements action.Action.
func (a Select) ActionType() string { return "history.select" }

// Clear asks the app to forget every remembered search.
type Clear struct{}

// ActionType implements action.Action.
func (a Clear) ActionType() string { return "history.clear" }

// LoadedMsg carries the entries read from the store.
type LoadedMsg struct {
	Entries []history.Entry
	Err     error
}

var (
	_ action.Action = Close{}
	_ action.Action = Select{}
	_ action.Action = Clear{}
)

// ActionMsg creates an action.Msg for a history action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "history", Action: a}
}
