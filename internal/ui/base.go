package ui

// Base carries the focus flag and the allotted cell area of a component.
// Models embed it:
//
//	type Model struct {
//	    ui.Base
//	    list list.Model[itunes.Result]
//	}
type Base struct {
	w, h    int
	focused bool
}

func (b *Base) SetFocused(focused bool) { b.focused = focused }
func (b Base) IsFocused() bool          { return b.focused }

// SetSize records the area assigned by the parent layout.
func (b *Base) SetSize(width, height int) {
	b.w, b.h = width, height
}

func (b Base) Width() int  { return b.w }
func (b Base) Height() int { return b.h }

// RowsBelow reports how many rows remain once chrome rows are taken from the
// height, never negative.
func (b Base) RowsBelow(chrome int) int {
	if b.h <= chrome {
		return 0
	}
	return b.h - chrome
}
