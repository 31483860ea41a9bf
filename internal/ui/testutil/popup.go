package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/storesearch/internal/ui/action"
	"github.com/llehouerou/storesearch/internal/ui/popup"
)

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+n":    tea.KeyCtrlN,
	"ctrl+p":    tea.KeyCtrlP,
	"ctrl+r":    tea.KeyCtrlR,
	"ctrl+x":    tea.KeyCtrlX,
}

// Key builds the KeyMsg whose String() is name. Unknown names are typed as
// runes.
func Key(name string) tea.KeyMsg {
	if t, ok := namedKeys[name]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// PopupHarness feeds messages to a popup and keeps every non-nil command it
// returns, starting with Init's.
type PopupHarness struct {
	popup popup.Popup
	cmds  []tea.Cmd
}

func NewPopupHarness(p popup.Popup) *PopupHarness {
	h := &PopupHarness{popup: p}
	h.record(p.Init())
	return h
}

func (h *PopupHarness) record(cmd tea.Cmd) tea.Cmd {
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Popup returns the popup as last returned by Update.
func (h *PopupHarness) Popup() popup.Popup { return h.popup }

func (h *PopupHarness) View() string { return h.popup.View() }

// Send delivers msg and returns the command Update produced.
func (h *PopupHarness) Send(msg tea.Msg) tea.Cmd {
	next, cmd := h.popup.Update(msg)
	h.popup = next
	return h.record(cmd)
}

// Press sends each named key in order and returns the command of the last.
func (h *PopupHarness) Press(names ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, name := range names {
		cmd = h.Send(Key(name))
	}
	return cmd
}

// LastCommand returns the most recent non-nil command.
func (h *PopupHarness) LastCommand() tea.Cmd {
	if n := len(h.cmds); n > 0 {
		return h.cmds[n-1]
	}
	return nil
}

// ViewContains reports whether some plain line of the view contains substr.
func (h *PopupHarness) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}

// ExecuteCmd runs cmd, tolerating nil.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// ActionOf runs cmd and unwraps the action.Msg it yields, or nil otherwise.
func ActionOf(cmd tea.Cmd) action.Action {
	msg, _ := ExecuteCmd(cmd).(action.Msg)
	return msg.Action
}
