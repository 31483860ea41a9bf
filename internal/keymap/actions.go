// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionHelp        Action = "help"
	ActionFocusSearch Action = "focus_search"
	ActionHistory     Action = "history"

	// Category tabs
	ActionNextCategory Action = "next_category"
	ActionPrevCategory Action = "prev_category"

	// Results list
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"
	ActionSelect    Action = "select" // enter - open detail
	ActionOpenStore Action = "open_store"
	ActionRetry     Action = "retry"

	// Search bar
	ActionSubmit Action = "submit"
	ActionCancel Action = "cancel"

	// History popup
	ActionClearHistory Action = "clear_history"
)
