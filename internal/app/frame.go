package app

import (
	"strings"

	"github.com/muurk/mainviews/internal/lcd"
)

// Frame is a serializable snapshot of the rendered display.
type Frame struct {
	Seq  uint64 `json:"seq"`
	Cols int    `json:"cols"`
	Rows int    `json:"rows"`
	// Menu is the title of the open page, empty on the main view
	Menu string `json:"menu,omitempty"`
	Tab  int    `json:"tab"`
	View int    `json:"view"`
	// Lines holds the characters of every row
	Lines []string `json:"lines"`
	// Colors holds one hex digit per cell: the palette index of the cell background
	Colors []string `json:"colors"`
	// Palette maps palette indices to "#rrggbb"
	Palette []string `json:"palette"`
}

const hexDigits = "0123456789abcdef"

// Snapshot captures the current frame.
func (s *Session) Snapshot() Frame {
	g := s.grid
	f := Frame{
		Seq:   s.frames,
		Cols:  g.Cols(),
		Rows:  g.Rows(),
		Tab:   s.ctrl.Tab(),
		View:  s.ctrl.View(),
		Lines: g.Lines(),
	}
	if s.ctrl.MenuOpen() {
		f.Menu = s.ctrl.Stack().Top().Name
	}

	f.Colors = make([]string, g.Rows())
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		b.Reset()
		for c := 0; c < g.Cols(); c++ {
			cell := g.Cell(c, r)
			bg := int(cell.Bg)
			if cell.Dim > 0 {
				bg = int(lcd.ColorOverlay)
			}
			b.WriteByte(hexDigits[bg&0xf])
		}
		f.Colors[r] = b.String()
	}

	pal := s.Palette()
	f.Palette = make([]string, len(pal))
	for i, c := range pal {
		f.Palette[i] = lcd.Hex(c)
	}
	return f
}
