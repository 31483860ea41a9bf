// Package cursor tracks the selected row and scroll offset of a list.
package cursor

// Cursor holds a position and the first visible row. The list length and
// viewport height are passed in because both change as results arrive and
// the terminal resizes.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible around the cursor
}

// New creates a cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the first visible row.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump moves the cursor to pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// Reset moves to the first row.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// ClampToBounds pulls the cursor back inside a list that shrank.
func (c *Cursor) ClampToBounds(listLen int) {
	if listLen == 0 {
		c.Reset()
		return
	}
	c.pos = clamp(c.pos, listLen-1)
	c.offset = clamp(c.offset, c.pos)
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

// HandleKey applies list navigation keys and reports whether key was one.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
	case "k", "up":
		c.Move(-1, listLen, height)
	case "g", "home":
		c.Reset()
	case "G", "end":
		c.Jump(listLen-1, listLen, height)
	case "ctrl+d", "pgdown":
		c.Move(max(height/2, 1), listLen, height)
	case "ctrl+u", "pgup":
		c.Move(-max(height/2, 1), listLen, height)
	default:
		return false
	}
	return true
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, maxVal int) int {
	return max(0, min(v, maxVal))
}
