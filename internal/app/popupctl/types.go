package popupctl

// Type identifies which popup is currently active.
type Type int

const (
	None Type = iota
	Help
	Detail
	History
)

// Priority defines which popup takes keys (highest priority first).
var Priority = []Type{
	Help,
	History,
	Detail,
}

// RenderOrder defines the order popups are rendered (bottom to top).
var RenderOrder = []Type{
	Detail,
	History,
	Help,
}

func (t Type) String() string {
	switch t {
	case Help:
		return "help"
	case Detail:
		return "detail"
	case History:
		return "history"
	default:
		return "none"
	}
}
