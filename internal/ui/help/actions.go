package help

import (
	"github.com/llehouerou/storesearch/internal/ui/action"
)

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "help.close" }

// ActionMsg creates an action.Msg for a help action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "help", Action: a}
}
