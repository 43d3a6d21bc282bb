package menu

import (
	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/logging"
	"github.com/muurk/mainviews/internal/registry"
	"github.com/muurk/mainviews/internal/screens"
	"github.com/muurk/mainviews/internal/storage"
)

// Picker browses the widget factories for one zone of a layout.
//
// On entry the zone's widget is detached and kept aside; every browsed
// factory is instantiated on a scratch block. Confirm replaces the zone's
// widget for good, cancel puts the detached one back untouched.
type Picker struct {
	layout   screens.Layout
	zone     int
	widgets  *registry.Registry[screens.WidgetFactory]
	detached screens.Widget
	staged   screens.Widget
	index    int
	scratch  storage.WidgetData
}

// Index returns the browsed registry index
func (p *Picker) Index() int {
	return p.index
}

// Staged returns the widget currently drawn in the zone
func (p *Picker) Staged() screens.Widget {
	return p.staged
}

func (p *Picker) stage() {
	if p.staged != nil {
		p.staged.Close()
	}
	p.scratch = storage.WidgetData{}
	p.staged = p.widgets.At(p.index).Create(p.layout.Zone(p.zone), &p.scratch, true)
}

func (ctrl *Controller) pickerPage(layout screens.Layout, zone int) Page {
	p := &Picker{layout: layout, zone: zone, widgets: ctrl.catalog.Widgets}
	ctrl.picker = p

	return Page{Name: "Select widget", Handle: func(ev event.Event) bool {
		logging.LogMenu("Select widget", ev.String())

		switch ev {
		case event.Entry:
			p.detached = layout.DetachWidget(zone)
			p.index = 0
			if p.detached != nil {
				if i := p.widgets.IndexOf(p.detached.Factory().Name()); i >= 0 {
					p.index = i
				}
			}
			if p.widgets.Len() == 0 {
				layout.AttachWidget(zone, p.detached)
				ctrl.stack.Pop()
				return false
			}
			p.stage()

		case event.KeyBreak(event.KeyExit):
			if p.staged != nil {
				p.staged.Close()
				p.staged = nil
			}
			layout.AttachWidget(zone, p.detached)
			p.detached = nil
			ctrl.stack.Pop()
			return false

		case event.KeyBreak(event.KeyEnter):
			if p.staged != nil {
				p.staged.Close()
				p.staged = nil
			}
			if p.detached != nil {
				p.detached.Close()
				p.detached = nil
			}
			f := p.widgets.At(p.index)
			layout.CreateWidget(zone, f)
			logging.LogScreenChange("widget "+f.Name(), zone, layout.Factory().Name())
			ctrl.markDirty(storage.ScopeModel, "widget selected")
			ctrl.stack.Pop()
			return false

		case event.RotaryRight:
			if p.index < p.widgets.Len()-1 {
				p.index++
				p.stage()
			}

		case event.RotaryLeft:
			if p.index > 0 {
				p.index--
				p.stage()
			}
		}

		s := ctrl.surface
		layout.Refresh(s, false)

		z := layout.Zone(zone)
		dim := lcd.Color(lcd.ColorOverlay) | lcd.Opacity(8)
		s.DrawFilledRect(0, 0, z.X-2, lcd.Height, dim)
		s.DrawFilledRect(z.X+z.W+2, 0, lcd.Width-z.X-z.W-2, lcd.Height, dim)
		s.DrawFilledRect(z.X-2, 0, z.W+4, z.Y-2, dim)
		s.DrawFilledRect(z.X-2, z.Y+z.H+2, z.W+4, lcd.Height-z.Y-z.H-2, dim)

		if p.staged != nil {
			p.staged.Refresh(s)
		}

		mid := z.Y + z.H/2 - 10
		s.DrawGlyph(z.X-10, mid, lcd.GlyphSwipeCircle, lcd.Color(lcd.ColorTextInvertedBg))
		s.DrawGlyph(z.X-10, mid, lcd.GlyphSwipeLeft, lcd.Color(lcd.ColorTextInverted))
		s.DrawGlyph(z.X+z.W-9, mid, lcd.GlyphSwipeCircle, lcd.Color(lcd.ColorTextInvertedBg))
		s.DrawGlyph(z.X+z.W-9, mid, lcd.GlyphSwipeRight, lcd.Color(lcd.ColorTextInverted))
		return true
	}}
}
