package results

import (
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/ui/action"
)

// Open asks for the detail popup of Result.
type Open struct {
	Result itunes.Result
}

// ActionType implements action.Action.
func (a Open) ActionType() string { return "results.open" }

// ActionMsg creates an action.Msg for a results action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "results", Action: a}
}

var _ action.Action = Open{}
