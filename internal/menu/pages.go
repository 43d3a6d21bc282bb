package menu

import (
	"fmt"

	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/logging"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/screens"
	"github.com/muurk/mainviews/internal/storage"
)

// Tab page titles.
const (
	TitleTheme = "User interface"
	TitleAdd   = "Add main view"
)

// Fixed rows of the theme and setup pages.
const (
	rowChoice  = 0
	rowSpacer  = 1
	rowWidgets = 2
)

// SetupTitle returns the title of the setup page of slot.
func SetupTitle(slot int) string {
	return fmt.Sprintf("Main view %d", slot+1)
}

// tabPreamble handles the events shared by every tab: EXIT closes the
// menu, page keys switch tabs. It returns false when the page must stop.
func (ctrl *Controller) tabPreamble(ev event.Event) bool {
	if ev == event.Entry {
		ctrl.ctx.Reset()
		return true
	}
	if ctrl.ctx.EditMode {
		return true
	}
	switch ev {
	case event.KeyBreak(event.KeyExit):
		ctrl.closeMenu()
		return false
	case event.KeyBreak(event.KeyPageDown):
		ctrl.openTab((ctrl.tab + 1) % len(ctrl.Tabs()))
		return false
	case event.KeyBreak(event.KeyPageUp):
		n := len(ctrl.Tabs())
		ctrl.openTab((ctrl.tab + n - 1) % n)
		return false
	}
	return true
}

func (ctrl *Controller) tabIcons() []lcd.Glyph {
	tabs := ctrl.Tabs()
	icons := make([]lcd.Glyph, len(tabs))
	for i, p := range tabs {
		switch {
		case i == 0:
			icons[i] = lcd.GlyphTheme
		case p.Name == TitleAdd:
			icons[i] = lcd.GlyphAddScreen
		default:
			icons[i] = lcd.GlyphScreen
		}
	}
	return icons
}

func (ctrl *Controller) themePage(ev event.Event) bool {
	logging.LogMenu(TitleTheme, ev.String())
	if !ctrl.tabPreamble(ev) {
		return false
	}

	c := ctrl.ctx
	themes := ctrl.catalog.Themes
	var opts []options.Option
	if ctrl.theme != nil {
		opts = ctrl.theme.Factory().Options()
	}

	rows := []Row{{Kind: RowChoice, Columns: max(themes.Len()-1, 0)}, {Kind: RowSpacer}}
	rows = append(rows, optionRows(opts)...)

	needsOffsetCheck := c.VerticalPos != rowChoice || c.HorizontalPos < 0
	if Navigate(c, rows, ev) {
		ev = event.None
	}

	s := ctrl.surface
	drawHeader(s, TitleTheme, ctrl.tabIcons(), ctrl.tab, c.VerticalPos < 0)

	for i := 0; i < BodyLines; i++ {
		y := rowY(i)
		k := i + c.VerticalOffset
		switch {
		case k == rowChoice:
			s.DrawText(options.MarginLeft, y+lcd.FontHeight/2, "Theme", 0)
			current := -1
			if ctrl.theme != nil {
				current = themes.IndexOf(ctrl.theme.Factory().Name())
			}
			thumb := func(i, x, y int, flags lcd.Flags) { themes.At(i).DrawThumb(s, x, y, flags) }
			if chosen := Carousel(c, s, options.SecondColumn, y, themes.Len(), thumb, current, needsOffsetCheck, c.Attr(k), ev); chosen >= 0 {
				ctrl.SetTheme(themes.At(chosen))
			}
		case k == rowSpacer:
		case k-2 < len(opts):
			if editOption(ctrl.editor, c, y, k, opts[k-2], ctrl.theme, k-2, ev) {
				ctrl.markDirty(storage.ScopeGeneral, "theme option edited")
			}
		}
	}
	return true
}

// SetTheme activates a theme from f and stores its name in the general settings.
func (ctrl *Controller) SetTheme(f screens.ThemeFactory) {
	ctrl.theme = screens.ApplyTheme(ctrl.theme, f, ctrl.general)
	logging.Info("Theme changed")
	ctrl.markDirty(storage.ScopeGeneral, "theme changed")
}

func (ctrl *Controller) screenSetup(slot int, ev event.Event) bool {
	title := SetupTitle(slot)
	logging.LogMenu(title, ev.String())
	if !ctrl.tabPreamble(ev) {
		return false
	}

	layout := ctrl.set.Screen(slot)
	if layout == nil {
		ctrl.openTab(0)
		return false
	}

	c := ctrl.ctx
	layouts := ctrl.catalog.Layouts
	opts := layout.Factory().Options()

	rows := []Row{{Kind: RowChoice, Columns: max(layouts.Len()-1, 0)}, {Kind: RowSpacer}, {Kind: RowButton}}
	rows = append(rows, optionRows(opts)...)

	if c.VerticalPos == -1 && slot > 0 && ev == event.KeyLong(event.KeyEnter) {
		ctrl.openScreenMenu(slot)
		ev = event.None
	}

	needsOffsetCheck := c.VerticalPos != rowChoice || c.HorizontalPos < 0
	if Navigate(c, rows, ev) {
		ev = event.None
	}

	s := ctrl.surface
	drawHeader(s, title, ctrl.tabIcons(), ctrl.tab, c.VerticalPos < 0)

	for i := 0; i < BodyLines; i++ {
		y := rowY(i)
		k := i + c.VerticalOffset
		attr := c.Attr(k)
		switch {
		case k == rowChoice:
			s.DrawText(options.MarginLeft, y+lcd.FontHeight/2, "Layout", 0)
			current := layouts.IndexOf(layout.Factory().Name())
			thumb := func(i, x, y int, flags lcd.Flags) { layouts.At(i).DrawThumb(s, x, y, flags) }
			if chosen := Carousel(c, s, options.SecondColumn, y, layouts.Len(), thumb, current, needsOffsetCheck, attr, ev); chosen >= 0 {
				layout = ctrl.set.SetLayout(slot, layouts.At(chosen))
				opts = layout.Factory().Options()
			}
		case k == rowSpacer:
		case k == rowWidgets:
			drawButton(s, options.SecondColumn, y, "Setup widgets", attr)
			if attr != 0 && ev == event.KeyBreak(event.KeyEnter) {
				ctrl.stack.Push(ctrl.overviewPage(slot))
				return false
			}
		case k-3 < len(opts):
			if editOption(ctrl.editor, c, y, k, opts[k-3], layout, k-3, ev) {
				ctrl.markDirty(storage.ScopeModel, "layout option edited")
			}
		}
	}
	return true
}

// openScreenMenu offers removing or moving the screen in slot (slot >= 1).
func (ctrl *Controller) openScreenMenu(slot int) {
	items := []string{ItemRemoveScreen}
	if slot >= 2 {
		items = append(items, ItemMoveLeft)
	}
	if ctrl.set.Used(slot + 1) {
		items = append(items, ItemMoveRight)
	}

	ctrl.popup.Open(items, func(item string) {
		switch item {
		case ItemRemoveScreen:
			next := ctrl.set.Remove(slot)
			ctrl.openTab(next + 1)
		case ItemMoveLeft:
			if ctrl.set.Move(slot, slot-1) {
				ctrl.openTab(slot)
			}
		case ItemMoveRight:
			if ctrl.set.Move(slot, slot+1) {
				ctrl.openTab(slot + 2)
			}
		}
	})
}

func (ctrl *Controller) addPage(ev event.Event) bool {
	logging.LogMenu(TitleAdd, ev.String())
	if !ctrl.tabPreamble(ev) {
		return false
	}

	if ev == event.KeyBreak(event.KeyEnter) {
		if slot := ctrl.set.Add(); slot >= 0 {
			ctrl.openTab(slot + 1)
			return false
		}
	}

	s := ctrl.surface
	drawHeader(s, TitleAdd, ctrl.tabIcons(), ctrl.tab, ctrl.ctx.VerticalPos < 0)
	s.DrawGlyph(lcd.Width/2-10, lcd.Height/2-10, lcd.GlyphAddScreen, lcd.Color(lcd.ColorLine))
	return true
}
