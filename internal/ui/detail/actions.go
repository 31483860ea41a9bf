package detail

import "github.com/llehouerou/storesearch/internal/ui/action"

// Close signals the detail popup should close.
type Close struct{}

// ActionType implements action.Action.
func (a Close) ActionType() string { return "detail.close" }

// OpenStore asks the app to open the item's store page.
type OpenStore struct {
	URL string
}

// ActionType implements action.Action.
func (a OpenStore) ActionType() string { return "detail.open_store" }

// ArtworkMsg is sent when an artwork download finishes.
type ArtworkMsg struct {
	URL  string
	Data []byte
	Err  error
}

// ActionType implements action.Action.
func (a ArtworkMsg) ActionType() string { return "detail.artwork" }

var (
	_ action.Action = Close{}
	_ action.Action = OpenStore{}
	_ action.Action = ArtworkMsg{}
)

// ActionMsg creates an action.Msg for a detail action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "detail", Action: a}
}
