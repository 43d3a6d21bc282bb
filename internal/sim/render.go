package sim

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/mainviews/internal/lcd"
)

// maxDim is the opacity at which an overlaid cell turns fully dark.
const maxDim = 16

type colorPair struct{ fg, bg uint16 }

// renderer turns a Grid into styled terminal lines.
type renderer struct {
	styles map[colorPair]lipgloss.Style
}

func newRenderer() *renderer {
	return &renderer{styles: make(map[colorPair]lipgloss.Style)}
}

func (r *renderer) style(p colorPair) lipgloss.Style {
	if st, ok := r.styles[p]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(lcd.Hex(p.fg))).
		Background(lipgloss.Color(lcd.Hex(p.bg)))
	r.styles[p] = st
	return st
}

// cellColors resolves the RGB565 colours of a cell under pal.
func cellColors(c lcd.Cell, pal lcd.Palette) colorPair {
	fg := pal.Lookup(c.Fg, c.FgCustom)
	bg := pal.Lookup(c.Bg, c.BgCustom)
	if c.Dim > 0 {
		fg = darken(fg, c.Dim)
		bg = darken(bg, c.Dim)
	}
	return colorPair{fg: fg, bg: bg}
}

func darken(c uint16, dim uint8) uint16 {
	if dim >= maxDim {
		return 0
	}
	r, g, b := lcd.Channels(c)
	keep := uint16(maxDim - dim)
	scale := func(v uint8) uint8 { return uint8(uint16(v) * keep / maxDim) }
	return lcd.RGB(scale(r), scale(g), scale(b))
}

// Render draws g as one string per row, grouping runs of equal colours.
func (r *renderer) Render(g *lcd.Grid, pal lcd.Palette) string {
	var out strings.Builder
	var run strings.Builder
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		run.Reset()
		var current colorPair
		for col := 0; col < g.Cols(); col++ {
			cell := g.Cell(col, row)
			p := cellColors(cell, pal)
			if col > 0 && p != current {
				out.WriteString(r.style(current).Render(run.String()))
				run.Reset()
			}
			current = p
			ch := cell.Rune
			if ch == 0 {
				ch = ' '
			}
			run.WriteRune(ch)
		}
		out.WriteString(r.style(current).Render(run.String()))
	}
	return out.String()
}
