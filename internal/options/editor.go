package options

import (
	"fmt"
	"strings"

	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
)

// Row geometry shared by every option row.
const (
	MarginLeft   = 6
	SecondColumn = 200
	// NumberWidth is the field width integers are right-aligned in
	NumberWidth = 60
)

// Charset is the set of characters a String option can hold, in rotary order.
const Charset = " ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-.,"

// Editor renders and edits one option row at a time.
//
// The only state it keeps is the text cursor of the String editor, which is
// reset whenever the focused row is not in edit mode. Unfocused rows leave it
// alone since every visible row is drawn each frame.
type Editor struct {
	Surface lcd.Surface
	Sources Sources
	cursor  int
}

// NewEditor creates an editor drawing on s and naming Source values from sources.
func NewEditor(s lcd.Surface, sources Sources) *Editor {
	if sources == nil {
		sources = DefaultSources
	}
	return &Editor{Surface: s, Sources: sources}
}

// Cursor returns the String editor's cursor position.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Edit draws the option label and value at row y. When attr is non-zero the
// row has focus and ev is applied (lcd.Blink in attr means edit mode). The
// returned value is what the caller should commit; Edit never stores it.
func (e *Editor) Edit(y int, opt Option, v Value, attr lcd.Flags, ev event.Event) Value {
	e.Surface.DrawText(MarginLeft, y, opt.Name, 0)

	focused := attr != 0
	editing := attr.Has(lcd.Blink)
	lo, hi := opt.Range(e.Sources)

	if opt.Kind != String && focused {
		v = applyNumeric(opt.Kind, v, lo, hi, editing, ev)
	}

	x := SecondColumn
	switch opt.Kind {
	case Bool:
		drawCheckBox(e.Surface, x, y, v.Bool, attr)

	case Integer:
		e.Surface.DrawNumber(x+NumberWidth, y, int(v.Signed), attr)

	case String:
		v = e.editString(x, y, v, attr, ev)

	case TextSize:
		idx := int(v.Unsigned)
		if idx > TextSizeMax {
			idx = TextSizeMax
		}
		e.Surface.DrawText(x, y, TextSizeLabels[idx], attr)

	case Timer:
		e.Surface.DrawText(x, y, fmt.Sprintf("Timer %d", v.Unsigned+1), attr)

	case Source:
		e.Surface.DrawText(x, y, e.Sources.SourceName(v.Unsigned), attr)

	case Color:
		border := lcd.Color(lcd.ColorText)
		if focused {
			border = lcd.Color(lcd.ColorTextInvertedBg)
		}
		e.Surface.SetCustomColor(uint16(v.Unsigned))
		e.Surface.DrawRect(x, y, 40, 15, 1, border)
		e.Surface.DrawFilledRect(x+1, y+1, 38, 13, lcd.Color(lcd.ColorCustom))
	}

	return v
}

// applyNumeric handles every kind except String.
func applyNumeric(k Kind, v Value, lo, hi int, editing bool, ev event.Event) Value {
	if k == Bool {
		if (!editing && ev == event.KeyBreak(event.KeyEnter)) || (editing && ev.IsRotary()) {
			v.Bool = !v.Bool
		}
		return v
	}
	if !editing {
		return v
	}
	if n, changed := event.IncDec(ev, v.Int(k), lo, hi); changed {
		v = v.WithInt(k, n)
	}
	return v
}

func drawCheckBox(s lcd.Surface, x, y int, checked bool, attr lcd.Flags) {
	border := lcd.Color(lcd.ColorLine)
	if attr != 0 {
		border = lcd.Color(lcd.ColorTextInvertedBg)
	}
	s.DrawRect(x, y+2, 16, 16, 1, border)
	if checked {
		s.DrawFilledRect(x+3, y+5, 10, 10, border)
	}
}

// editString implements the bounded text editor: while editing, rotary
// cycles the character under the cursor through Charset and ENTER advances
// the cursor, wrapping at StringCapacity.
func (e *Editor) editString(x, y int, v Value, attr lcd.Flags, ev event.Event) Value {
	editing := attr.Has(lcd.Blink)
	if !editing {
		if attr != 0 {
			e.cursor = 0
		}
		e.Surface.DrawText(x, y, v.String, attr)
		return v
	}

	buf := []byte(v.String)
	for len(buf) < StringCapacity {
		buf = append(buf, ' ')
	}
	if e.cursor >= StringCapacity {
		e.cursor = 0
	}

	switch {
	case ev.IsRotary():
		buf[e.cursor] = cycleChar(buf[e.cursor], ev.Delta())
	case ev == event.KeyBreak(event.KeyEnter):
		e.cursor = (e.cursor + 1) % StringCapacity
	}

	e.Surface.DrawText(x, y, string(buf), 0)
	e.Surface.DrawText(x+e.cursor*lcd.CharWidth, y, string(buf[e.cursor]), attr)

	v.String = TruncateString(string(buf))
	return v
}

func cycleChar(c byte, delta int) byte {
	idx := strings.IndexByte(Charset, c)
	if idx < 0 {
		idx = 0
	}
	n := len(Charset)
	idx = ((idx+delta)%n + n) % n
	return Charset[idx]
}
