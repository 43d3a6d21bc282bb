package menu

import (
	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/logging"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/screens"
	"github.com/muurk/mainviews/internal/storage"
)

// Config holds the collaborators of a Controller.
type Config struct {
	Catalog *screens.Catalog
	Set     *screens.Set
	General *storage.GeneralData
	Dirty   storage.DirtyMarker
	Surface lcd.Surface
	// Sources names Source option values; nil selects options.DefaultSources
	Sources options.Sources
}

// Controller runs the main view and the screen setup menus, one event per frame.
type Controller struct {
	catalog *screens.Catalog
	set     *screens.Set
	general *storage.GeneralData
	dirty   storage.DirtyMarker
	surface lcd.Surface
	editor  *options.Editor

	stack Stack
	popup Popup
	ctx   *Context
	theme screens.Theme

	// tab is the index of the open tab in Tabs()
	tab int
	// view is the slot shown while no menu is open
	view int

	setupPages [storage.MaxCustomScreens]Page
	picker     *Picker
}

// NewController creates a controller and loads the theme named in the
// general settings.
func NewController(cfg Config) *Controller {
	ctrl := &Controller{
		catalog: cfg.Catalog,
		set:     cfg.Set,
		general: cfg.General,
		dirty:   cfg.Dirty,
		surface: cfg.Surface,
		editor:  options.NewEditor(cfg.Surface, cfg.Sources),
		ctx:     NewContext(),
	}

	for i := range ctrl.setupPages {
		slot := i
		ctrl.setupPages[i] = Page{Name: SetupTitle(slot), Handle: func(ev event.Event) bool {
			return ctrl.screenSetup(slot, ev)
		}}
	}

	theme, repaired := screens.LoadTheme(cfg.Catalog.Themes, cfg.General)
	ctrl.theme = theme
	if repaired {
		ctrl.markDirty(storage.ScopeGeneral, "theme fallback")
	}
	return ctrl
}

// Tabs returns the tab table: the theme page, one setup page per used
// slot and, when a slot is free, the add page.
func (ctrl *Controller) Tabs() []Page {
	tabs := []Page{{Name: TitleTheme, Handle: ctrl.themePage}}
	for i := range ctrl.setupPages {
		if !ctrl.set.Used(i) {
			tabs = append(tabs, Page{Name: TitleAdd, Handle: ctrl.addPage})
			break
		}
		tabs = append(tabs, ctrl.setupPages[i])
	}
	return tabs
}

// openTab chains to tab i of the tab table.
func (ctrl *Controller) openTab(i int) {
	tabs := ctrl.Tabs()
	i = clamp(i, 0, len(tabs)-1)
	ctrl.tab = i
	if i >= 1 && ctrl.set.Used(i-1) {
		ctrl.view = i - 1
	}
	ctrl.stack.Chain(tabs[i])
}

// OpenMenu opens the menu on tab i, closing any open page.
func (ctrl *Controller) OpenMenu(tab int) {
	ctrl.stack.Clear()
	ctrl.popup.close()
	ctrl.openTab(tab)
}

func (ctrl *Controller) closeMenu() {
	ctrl.stack.Clear()
	ctrl.popup.close()
	ctrl.picker = nil
}

// Run processes one frame: it clears the display, then either draws the
// main view or runs the open menu page (and popup) with ev.
func (ctrl *Controller) Run(ev event.Event) {
	s := ctrl.surface
	s.DrawFilledRect(0, 0, lcd.Width, lcd.Height, lcd.Color(lcd.ColorBackground))

	if ctrl.stack.Empty() {
		ctrl.mainView(ev)
		return
	}

	if ctrl.popup.Active() {
		ctrl.stack.Run(event.None)
		ctrl.popup.Run(s, ev)
		return
	}
	ctrl.stack.Run(ev)
}

func (ctrl *Controller) mainView(ev event.Event) {
	count := ctrl.set.Count()
	if count == 0 {
		return
	}
	ctrl.view = clamp(ctrl.view, 0, count-1)

	switch ev {
	case event.KeyBreak(event.KeyPageDown):
		ctrl.view = (ctrl.view + 1) % count
	case event.KeyBreak(event.KeyPageUp):
		ctrl.view = (ctrl.view + count - 1) % count
	case event.KeyBreak(event.KeyEnter):
		ctrl.openTab(ctrl.view + 1)
		return
	case event.KeyLong(event.KeyEnter):
		ctrl.openTab(0)
		return
	}

	if layout := ctrl.set.Screen(ctrl.view); layout != nil {
		layout.Refresh(ctrl.surface, false)
	}
}

func (ctrl *Controller) markDirty(scope storage.Scope, reason string) {
	logging.LogDirty(scope.String(), reason)
	if ctrl.dirty != nil {
		ctrl.dirty.MarkDirty(scope)
	}
}

// Palette returns the palette of the active theme.
func (ctrl *Controller) Palette() lcd.Palette {
	if ctrl.theme == nil {
		return lcd.DefaultPalette
	}
	return ctrl.theme.Palette()
}

// Theme returns the active theme, or nil
func (ctrl *Controller) Theme() screens.Theme { return ctrl.theme }

// Stack returns the menu stack
func (ctrl *Controller) Stack() *Stack { return &ctrl.stack }

// Popup returns the popup
func (ctrl *Controller) Popup() *Popup { return &ctrl.popup }

// Context returns the navigation state of the open tab
func (ctrl *Controller) Context() *Context { return ctrl.ctx }

// Tab returns the index of the open tab
func (ctrl *Controller) Tab() int { return ctrl.tab }

// View returns the slot shown while no menu is open
func (ctrl *Controller) View() int { return ctrl.view }

// Picker returns the state of the last opened widget picker, or nil
func (ctrl *Controller) Picker() *Picker { return ctrl.picker }

// MenuOpen reports whether a menu page is open
func (ctrl *Controller) MenuOpen() bool { return !ctrl.stack.Empty() }
