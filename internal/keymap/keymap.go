package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "search", "results", "detail", "history"
}

// Key converts b to a bubbles key binding for the help footer.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(b.Keys[0], b.Description),
	)
}

// All contains all key bindings for help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionFocusSearch, []string{"/"}, "Edit search", "global"},
	{ActionHistory, []string{"ctrl+r"}, "Recent searches", "global"},
	{ActionNextCategory, []string{"tab"}, "Next category", "global"},
	{ActionPrevCategory, []string{"shift+tab"}, "Previous category", "global"},

	// Search bar
	{ActionSubmit, []string{"enter"}, "Search", "search"},
	{ActionCancel, []string{"esc"}, "Back to results", "search"},

	// Results
	{ActionMoveDown, []string{"j", "down"}, "Move down", "results"},
	{ActionMoveUp, []string{"k", "up"}, "Move up", "results"},
	{ActionJumpStart, []string{"g", "home"}, "First result", "results"},
	{ActionJumpEnd, []string{"G", "end"}, "Last result", "results"},
	{ActionPageDown, []string{"ctrl+d", "pgdown"}, "Half page down", "results"},
	{ActionPageUp, []string{"ctrl+u", "pgup"}, "Half page up", "results"},
	{ActionSelect, []string{"enter"}, "Show details", "results"},
	{ActionOpenStore, []string{"o"}, "Open in store", "results"},
	{ActionRetry, []string{"r"}, "Search again", "results"},

	// Detail popup
	{ActionOpenStore, []string{"o"}, "Open in store", "detail"},
	{ActionCancel, []string{"esc", "q"}, "Close", "detail"},

	// History popup
	{ActionSubmit, []string{"enter"}, "Search again", "history"},
	{ActionClearHistory, []string{"ctrl+x"}, "Clear history", "history"},
	{ActionCancel, []string{"esc"}, "Close", "history"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ShortHelp returns the bindings of the given contexts as bubbles key
// bindings, in declaration order.
func ShortHelp(contexts ...string) []key.Binding {
	var result []key.Binding
	for _, c := range contexts {
		for _, b := range ByContext(c) {
			result = append(result, b.Key())
		}
	}
	return result
}
