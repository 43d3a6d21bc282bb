package lcd

import (
	"strconv"
	"strings"
)

// Pixel size of one Grid cell.
const (
	CellWidth  = 5
	CellHeight = 8
)

// Cell is one character position of a Grid.
type Cell struct {
	Rune     rune
	Fg, Bg   ColorIndex
	FgCustom uint16
	BgCustom uint16
	// Dim is the strongest overlay opacity applied to the cell
	Dim uint8
}

// Grid rasterizes Surface primitives onto a character-cell matrix.
type Grid struct {
	cols, rows int
	cells      []Cell
	custom     uint16
}

// NewGrid creates a Grid covering the whole display.
func NewGrid() *Grid {
	g := &Grid{
		cols: Width / CellWidth,
		rows: Height / CellHeight,
	}
	g.cells = make([]Cell, g.cols*g.rows)
	g.Clear(ColorBackground)
	return g
}

// Cols returns the number of character columns
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of character rows
func (g *Grid) Rows() int { return g.rows }

// Clear resets every cell to a blank cell on background bg.
func (g *Grid) Clear(bg ColorIndex) {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', Fg: ColorText, Bg: bg}
	}
	g.custom = 0
}

// Cell returns the cell at column c, row r. Out of range positions return a blank cell.
func (g *Grid) Cell(c, r int) Cell {
	if c < 0 || r < 0 || c >= g.cols || r >= g.rows {
		return Cell{Rune: ' '}
	}
	return g.cells[r*g.cols+c]
}

func (g *Grid) at(c, r int) *Cell {
	if c < 0 || r < 0 || c >= g.cols || r >= g.rows {
		return nil
	}
	return &g.cells[r*g.cols+c]
}

// Lines returns the plain text content of every row.
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		b.Reset()
		for c := 0; c < g.cols; c++ {
			ch := g.cells[r*g.cols+c].Rune
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
		lines[r] = b.String()
	}
	return lines
}

// String returns Lines joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func textRow(y int) int {
	return (y + FontHeight/2) / CellHeight
}

func fgOf(flags Flags) ColorIndex {
	c := flags.ColorIndex()
	if c == ColorDefault {
		return ColorText
	}
	return c
}

func (g *Grid) DrawText(x, y int, text string, flags Flags) {
	runes := []rune(text)
	col := x / CellWidth
	switch {
	case flags.Has(Right):
		col -= len(runes)
	case flags.Has(Center):
		col -= len(runes) / 2
	}
	row := textRow(y)
	for i, ch := range runes {
		cell := g.at(col+i, row)
		if cell == nil {
			continue
		}
		cell.Rune = ch
		if flags&(Inverse|Blink) != 0 {
			cell.Fg = ColorTextInverted
			cell.Bg = ColorTextInvertedBg
			continue
		}
		cell.Fg = fgOf(flags)
		if cell.Fg == ColorCustom {
			cell.FgCustom = g.custom
		}
	}
}

func (g *Grid) DrawNumber(x, y int, value int, flags Flags) {
	text := strconv.Itoa(value)
	if !flags.Has(Left) {
		flags |= Right
	}
	g.DrawText(x, y, text, flags)
}

func (g *Grid) span(x, y, w, h int) (c0, r0, c1, r1 int) {
	if w <= 0 || h <= 0 {
		return 0, 0, -1, -1
	}
	return x / CellWidth, y / CellHeight, (x + w - 1) / CellWidth, (y + h - 1) / CellHeight
}

func (g *Grid) DrawFilledRect(x, y, w, h int, flags Flags) {
	c0, r0, c1, r1 := g.span(x, y, w, h)
	overlay := flags.Opacity()
	bg := fgOf(flags)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			cell := g.at(c, r)
			if cell == nil {
				continue
			}
			if overlay > 0 {
				if overlay > cell.Dim {
					cell.Dim = overlay
				}
				continue
			}
			cell.Rune = ' '
			cell.Bg = bg
			if bg == ColorCustom {
				cell.BgCustom = g.custom
			}
		}
	}
}

func (g *Grid) DrawRect(x, y, w, h, thickness int, flags Flags) {
	c0, r0, c1, r1 := g.span(x, y, w, h)
	fg := fgOf(flags)
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if r != r0 && r != r1 && c != c0 && c != c1 {
				continue
			}
			cell := g.at(c, r)
			if cell == nil {
				continue
			}
			cell.Rune = borderRune(c, r, c0, r0, c1, r1)
			cell.Fg = fg
			if fg == ColorCustom {
				cell.FgCustom = g.custom
			}
		}
	}
}

func borderRune(c, r, c0, r0, c1, r1 int) rune {
	switch {
	case c0 == c1 && r0 == r1:
		return '□'
	case r0 == r1:
		return '─'
	case c0 == c1:
		return '│'
	case c == c0 && r == r0:
		return '┌'
	case c == c1 && r == r0:
		return '┐'
	case c == c0 && r == r1:
		return '└'
	case c == c1 && r == r1:
		return '┘'
	case r == r0 || r == r1:
		return '─'
	default:
		return '│'
	}
}

var glyphRunes = map[Glyph]rune{
	GlyphSwipeLeft:     '◀',
	GlyphSwipeRight:    '▶',
	GlyphCarouselLeft:  '‹',
	GlyphCarouselRight: '›',
	GlyphAddScreen:     '+',
	GlyphScreen:        '▣',
	GlyphTheme:         '◐',
	GlyphWidgets:       '▦',
}

func (g *Grid) DrawGlyph(x, y int, gl Glyph, flags Flags) {
	cell := g.at((x+CellWidth)/CellWidth, (y+CellHeight)/CellHeight)
	if cell == nil {
		return
	}
	if gl == GlyphSwipeCircle {
		cell.Bg = fgOf(flags)
		return
	}
	if ch, ok := glyphRunes[gl]; ok {
		cell.Rune = ch
		cell.Fg = fgOf(flags)
	}
}

func (g *Grid) SetCustomColor(rgb565 uint16) {
	g.custom = rgb565
}
