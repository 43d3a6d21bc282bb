package menu

import (
	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/logging"
	"github.com/muurk/mainviews/internal/screens"
	"github.com/muurk/mainviews/internal/storage"
)

// overviewPage outlines the zones of the screen in slot and lets the user
// pick, configure or remove the widget of each.
func (ctrl *Controller) overviewPage(slot int) Page {
	zone := 0

	return Page{Name: "Setup widgets", Handle: func(ev event.Event) bool {
		logging.LogMenu("Setup widgets", ev.String())
		layout := ctrl.set.Screen(slot)

		switch {
		case ev == event.Entry:
			zone = 0
		case ev == event.KeyBreak(event.KeyExit):
			ctrl.stack.Pop()
			return false
		case ev.IsRotary():
			zone = clamp(zone+ev.Delta(), 0, layout.ZonesCount()-1)
		}

		s := ctrl.surface
		layout.Refresh(s, true)

		for i := layout.ZonesCount() - 1; i >= 0; i-- {
			z := layout.Zone(i)
			if i != zone {
				s.DrawRect(z.X-4, z.Y-4, z.W+8, z.H+8, 2, lcd.Color(lcd.ColorLine))
				continue
			}
			s.DrawRect(z.X-4, z.Y-4, z.W+8, z.H+8, 2, lcd.Color(lcd.ColorTextInvertedBg))
		}

		if ev == event.KeyBreak(event.KeyEnter) && layout.ZonesCount() > 0 {
			ctrl.openZoneMenu(layout, zone)
		}
		return true
	}}
}

// openZoneMenu offers the actions for one zone, or goes straight to the
// picker when the zone is empty.
func (ctrl *Controller) openZoneMenu(layout screens.Layout, zone int) {
	w := layout.Widget(zone)
	if w == nil {
		ctrl.stack.Push(ctrl.pickerPage(layout, zone))
		return
	}

	items := []string{ItemSelectWidget}
	if len(w.Factory().Options()) > 0 {
		items = append(items, ItemWidgetSettings)
	}
	items = append(items, ItemRemoveWidget)

	ctrl.popup.Open(items, func(item string) {
		switch item {
		case ItemSelectWidget:
			ctrl.stack.Push(ctrl.pickerPage(layout, zone))
		case ItemWidgetSettings:
			ctrl.stack.Push(ctrl.widgetSettingsPage(w))
		case ItemRemoveWidget:
			layout.RemoveWidget(zone)
			ctrl.markDirty(storage.ScopeModel, "widget removed")
		}
	})
}
