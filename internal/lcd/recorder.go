package lcd

import (
	"fmt"
	"strings"
)

// OpKind identifies a recorded primitive.
type OpKind int

const (
	OpText OpKind = iota
	OpNumber
	OpFilledRect
	OpRect
	OpGlyph
	OpCustomColor
)

// String returns the primitive name
func (k OpKind) String() string {
	switch k {
	case OpText:
		return "text"
	case OpNumber:
		return "number"
	case OpFilledRect:
		return "filled_rect"
	case OpRect:
		return "rect"
	case OpGlyph:
		return "glyph"
	case OpCustomColor:
		return "custom_color"
	default:
		return fmt.Sprintf("OpKind(%d)", k)
	}
}

// Op is one recorded drawing primitive.
type Op struct {
	Kind      OpKind
	X, Y      int
	W, H      int
	Thickness int
	Text      string
	Value     int
	Glyph     Glyph
	Flags     Flags
}

// Recorder is a Surface that keeps every primitive it receives.
type Recorder struct {
	Ops []Op
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawText(x, y int, text string, flags Flags) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: text, Flags: flags})
}

func (r *Recorder) DrawNumber(x, y int, value int, flags Flags) {
	r.Ops = append(r.Ops, Op{Kind: OpNumber, X: x, Y: y, Value: value, Flags: flags})
}

func (r *Recorder) DrawFilledRect(x, y, w, h int, flags Flags) {
	r.Ops = append(r.Ops, Op{Kind: OpFilledRect, X: x, Y: y, W: w, H: h, Flags: flags})
}

func (r *Recorder) DrawRect(x, y, w, h, thickness int, flags Flags) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Thickness: thickness, Flags: flags})
}

func (r *Recorder) DrawGlyph(x, y int, g Glyph, flags Flags) {
	r.Ops = append(r.Ops, Op{Kind: OpGlyph, X: x, Y: y, Glyph: g, Flags: flags})
}

func (r *Recorder) SetCustomColor(rgb565 uint16) {
	r.Ops = append(r.Ops, Op{Kind: OpCustomColor, Value: int(rgb565)})
}

// Reset drops all recorded primitives.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns the recorded primitives of the given kind, in draw order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns every string drawn with DrawText.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// HasText reports whether some DrawText call contained substr.
func (r *Recorder) HasText(substr string) bool {
	for _, op := range r.Ops {
		if op.Kind == OpText && strings.Contains(op.Text, substr) {
			return true
		}
	}
	return false
}

// TextOp returns the first DrawText primitive whose text equals text.
func (r *Recorder) TextOp(text string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == text {
			return op, true
		}
	}
	return Op{}, false
}

// Glyphs returns every glyph primitive of type g.
func (r *Recorder) Glyphs(g Glyph) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == OpGlyph && op.Glyph == g {
			out = append(out, op)
		}
	}
	return out
}
