package searchbar

import (
	"github.com/llehouerou/storesearch/internal/itunes"
	"github.com/llehouerou/storesearch/internal/ui/action"
)

// Submit asks for a search of Text in Category.
type Submit struct {
	Text     string
	Category itunes.Category
}

// ActionType implements action.Action.
func (a Submit) ActionType() string { return "searchbar.submit" }

// CategoryChanged reports a new active category. Text is the current query,
// possibly empty.
type CategoryChanged struct {
	Text     string
	Category itunes.Category
}

// ActionType implements action.Action.
func (a CategoryChanged) ActionType() string { return "searchbar.category_changed" }

// Leave asks to move focus back to the results.
type Leave struct{}

// ActionType implements action.Action.
func (a Leave) ActionType() string { return "searchbar.leave" }

// ActionMsg creates an action.Msg for a search bar action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "searchbar", Action: a}
}

var (
	_ action.Action = Submit{}
	_ action.Action = CategoryChanged{}
	_ action.Action = Leave{}
)
