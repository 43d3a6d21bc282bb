package layouts

import (
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/registry"
	"github.com/muurk/mainviews/internal/screens"
)

// Option indices shared by every built-in layout.
const (
	OptionTopBar = iota
	OptionFlightMode
	OptionSliders
	OptionTrims
)

// Content area inside the trims and below the top bar.
const (
	areaX   = 50
	areaY   = 50
	areaW   = 380
	areaH   = 170
	zoneGap = 10
)

// Thumbnail size.
const (
	ThumbWidth  = 51
	ThumbHeight = 31
)

var layoutOptions = []options.Option{
	{Name: "Top bar", Kind: options.Bool, Default: options.BoolValue(true)},
	{Name: "Flight mode", Kind: options.Bool, Default: options.BoolValue(true)},
	{Name: "Sliders", Kind: options.Bool, Default: options.BoolValue(true)},
	{Name: "Trims", Kind: options.Bool, Default: options.BoolValue(true)},
}

// column describes one column of a grid layout: its share of the width in
// parts and the number of zones stacked in it.
type column struct {
	parts int
	rows  int
}

type grid struct {
	name    string
	columns []column
}

var grids = []grid{
	{"Layout1x1", []column{{1, 1}}},
	{"Layout2x1", []column{{1, 1}, {1, 1}}},
	{"Layout1x2", []column{{1, 2}}},
	{"Layout2x2", []column{{1, 2}, {1, 2}}},
	{"Layout2+1", []column{{1, 2}, {1, 1}}},
	{"Layout2x4", []column{{1, 4}, {1, 4}}},
}

// gridZones splits the w x h rectangle at x, y into the zones of columns,
// column by column from the left and top to bottom.
func gridZones(x, y, w, h, gap int, columns []column) []screens.Zone {
	total := 0
	for _, c := range columns {
		total += c.parts
	}
	usable := w - gap*(len(columns)-1)

	var zones []screens.Zone
	cx := x
	for i, c := range columns {
		cw := usable * c.parts / total
		if i == len(columns)-1 {
			cw = x + w - cx
		}
		rowH := (h - gap*(c.rows-1)) / c.rows
		for r := 0; r < c.rows; r++ {
			zones = append(zones, screens.Zone{X: cx, Y: y + r*(rowH+gap), W: cw, H: rowH})
		}
		cx += cw + gap
	}
	return zones
}

// Factories returns the built-in layout factories in carousel order.
func Factories() []screens.LayoutFactory {
	out := make([]screens.LayoutFactory, 0, len(grids))
	for _, g := range grids {
		zones := gridZones(areaX, areaY, areaW, areaH, zoneGap, g.columns)
		thumbZones := gridZones(2, 2, ThumbWidth-4, ThumbHeight-4, 2, g.columns)
		out = append(out, screens.NewLayoutFactory(g.name, layoutOptions, zones,
			func(s lcd.Surface, x, y int, flags lcd.Flags) {
				drawThumb(s, x, y, thumbZones, flags)
			},
			func(base *screens.BaseLayout) screens.Layout {
				return &gridLayout{BaseLayout: base}
			}))
	}
	return out
}

// Register adds the built-in layouts to r.
func Register(r *registry.Registry[screens.LayoutFactory]) error {
	for _, f := range Factories() {
		if err := r.Register(f); err != nil {
			return err
		}
	}
	return nil
}

func drawThumb(s lcd.Surface, x, y int, zones []screens.Zone, flags lcd.Flags) {
	s.DrawRect(x, y, ThumbWidth, ThumbHeight, 1, flags)
	for _, z := range zones {
		s.DrawFilledRect(x+z.X, y+z.Y, z.W, z.H, flags)
	}
}

type gridLayout struct {
	*screens.BaseLayout
}

func (l *gridLayout) Refresh(s lcd.Surface, setup bool) {
	if l.OptionValue(OptionTopBar).Bool {
		s.DrawFilledRect(0, 0, lcd.Width, 45, lcd.Color(lcd.ColorTitleBg))
		s.DrawGlyph(5, 2, lcd.GlyphScreen, lcd.Color(lcd.ColorTextInverted))
	}
	if l.OptionValue(OptionFlightMode).Bool {
		s.DrawText(lcd.Width/2, 232, "FM0", lcd.Center|lcd.SmallSize|lcd.Color(lcd.ColorText))
	}
	if !setup {
		if l.OptionValue(OptionSliders).Bool {
			s.DrawRect(8, areaY, 10, areaH, 1, lcd.Color(lcd.ColorLine))
			s.DrawRect(lcd.Width-18, areaY, 10, areaH, 1, lcd.Color(lcd.ColorLine))
		}
		if l.OptionValue(OptionTrims).Bool {
			s.DrawRect(areaX, 255, 160, 8, 1, lcd.Color(lcd.ColorLine))
			s.DrawRect(lcd.Width-areaX-160, 255, 160, 8, 1, lcd.Color(lcd.ColorLine))
			s.DrawRect(28, areaY, 8, areaH, 1, lcd.Color(lcd.ColorLine))
			s.DrawRect(lcd.Width-36, areaY, 8, areaH, 1, lcd.Color(lcd.ColorLine))
		}
	}
	l.RefreshWidgets(s)
}
