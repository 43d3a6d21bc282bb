package menu

import (
	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
)

// Menu body geometry.
const (
	MenuHeaderHeight = 45
	MenuContentTop   = 48
	// BodyLines is the number of rows visible below the header
	BodyLines = (lcd.Height - MenuContentTop) / lcd.FontHeight
)

// Context is the navigation state of one open menu page.
type Context struct {
	// VerticalPos is the focused row; -1 is the title.
	VerticalPos    int
	VerticalOffset int
	// HorizontalPos is the item browsed inside a choice row; -1 means the
	// row is focused as a whole.
	HorizontalPos int
	// HorizontalOffset is the first visible carousel item.
	HorizontalOffset int
	EditMode         bool
}

// NewContext returns the state of a freshly entered page.
func NewContext() *Context {
	return &Context{HorizontalPos: -1}
}

// Reset restores the entry state, keeping nothing from a previous page.
func (c *Context) Reset() {
	*c = Context{HorizontalPos: -1}
}

// Attr returns the editor flags for row k.
func (c *Context) Attr(k int) lcd.Flags {
	if c.VerticalPos != k {
		return 0
	}
	if c.EditMode {
		return lcd.Inverse | lcd.Blink
	}
	return lcd.Inverse
}

// RowKind selects how navigation treats a row.
type RowKind int

const (
	// RowField enters edit mode on ENTER and leaves it on ENTER or EXIT
	RowField RowKind = iota
	// RowToggle never enters edit mode; the row handles ENTER itself
	RowToggle
	// RowText enters edit mode on ENTER and leaves it on EXIT only
	RowText
	// RowButton never enters edit mode; the row handles ENTER itself
	RowButton
	// RowChoice is a carousel browsed horizontally in edit mode
	RowChoice
	// RowSpacer cannot be focused
	RowSpacer
)

// Row describes one navigable menu row.
type Row struct {
	Kind RowKind
	// Columns is the last horizontal position of a RowChoice
	Columns int
}

// OptionRow returns the row kind editing an option of kind k needs.
func OptionRow(k options.Kind) Row {
	switch {
	case k.Toggles():
		return Row{Kind: RowToggle}
	case k.KeepsEditOnEnter():
		return Row{Kind: RowText}
	default:
		return Row{Kind: RowField}
	}
}

// Navigate applies ev to the cursors of c over rows. It reports whether ev
// was consumed; rows must then be drawn with event.None.
func Navigate(c *Context, rows []Row, ev event.Event) bool {
	if c.VerticalPos >= len(rows) {
		c.VerticalPos = len(rows) - 1
	}

	if c.EditMode && c.VerticalPos >= 0 {
		return navigateEdit(c, rows[c.VerticalPos], ev)
	}

	switch {
	case ev == event.RotaryRight:
		c.VerticalPos = nextRow(rows, c.VerticalPos, 1)
		c.HorizontalPos = -1
	case ev == event.RotaryLeft:
		c.VerticalPos = nextRow(rows, c.VerticalPos, -1)
		c.HorizontalPos = -1
	case ev == event.KeyBreak(event.KeyEnter) && c.VerticalPos >= 0:
		switch rows[c.VerticalPos].Kind {
		case RowField, RowText:
			c.EditMode = true
		case RowChoice:
			c.EditMode = true
			c.HorizontalPos = 0
		default:
			return false
		}
	default:
		return false
	}

	c.scroll()
	return true
}

func navigateEdit(c *Context, row Row, ev event.Event) bool {
	switch {
	case ev == event.KeyBreak(event.KeyExit) || ev == event.KeyLong(event.KeyEnter):
		c.EditMode = false
		if row.Kind == RowChoice {
			c.HorizontalPos = -1
		}
		return true
	case row.Kind == RowChoice && ev.IsRotary():
		c.HorizontalPos = clamp(c.HorizontalPos+ev.Delta(), 0, row.Columns)
		return true
	case row.Kind == RowField && ev == event.KeyBreak(event.KeyEnter):
		c.EditMode = false
		return true
	}
	return false
}

// nextRow moves from pos by dir skipping spacers; -1 (the title) is the
// upper bound and the last focusable row the lower one.
func nextRow(rows []Row, pos, dir int) int {
	for p := pos + dir; p >= -1 && p < len(rows); p += dir {
		if p == -1 || rows[p].Kind != RowSpacer {
			return p
		}
	}
	return pos
}

// scroll keeps VerticalPos inside the visible body.
func (c *Context) scroll() {
	switch {
	case c.VerticalPos < 0:
		c.VerticalOffset = 0
	case c.VerticalPos < c.VerticalOffset:
		c.VerticalOffset = c.VerticalPos
	case c.VerticalPos >= c.VerticalOffset+BodyLines:
		c.VerticalOffset = c.VerticalPos - BodyLines + 1
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
