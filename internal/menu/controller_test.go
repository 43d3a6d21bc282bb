package menu

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/storage"
)

func tabNames(ctrl *Controller) []string {
	var names []string
	for _, p := range ctrl.Tabs() {
		names = append(names, p.Name)
	}
	return names
}

func TestTabsTable(t *testing.T) {
	fx := newFixture(t, 2)
	want := []string{TitleTheme, "Main view 1", TitleAdd}
	if diff := cmp.Diff(want, tabNames(fx.ctrl)); diff != "" {
		t.Errorf("tabs (-want +got):\n%s", diff)
	}

	for fx.set.FirstFree() >= 0 {
		fx.set.Add()
	}
	want = []string{TitleTheme, "Main view 1", "Main view 2", "Main view 3", "Main view 4", "Main view 5"}
	if diff := cmp.Diff(want, tabNames(fx.ctrl)); diff != "" {
		t.Errorf("full set tabs (-want +got):\n%s", diff)
	}
}

func TestMainViewOpensMenu(t *testing.T) {
	fx := newFixture(t, 2)
	fx.set.Add()

	fx.run(pageDown)
	if fx.ctrl.View() != 1 || fx.ctrl.MenuOpen() {
		t.Fatalf("view = %d, want 1 with no menu", fx.ctrl.View())
	}

	fx.run(enter)
	if got := fx.ctrl.Stack().Top().Name; got != "Main view 2" {
		t.Errorf("top page = %q, want Main view 2", got)
	}
	if !fx.rec.HasText("Main view 2") {
		t.Error("setup page title not drawn")
	}

	fx.run(exit)
	if fx.ctrl.MenuOpen() {
		t.Error("EXIT did not close the menu")
	}

	fx.run(longEnter)
	if got := fx.ctrl.Stack().Top().Name; got != TitleTheme {
		t.Errorf("long ENTER opened %q, want theme page", got)
	}
}

func TestPageKeysCycleTabs(t *testing.T) {
	fx := newFixture(t, 2)
	fx.run(enter)

	fx.run(pageDown)
	if fx.ctrl.Stack().Top().Name != TitleAdd {
		t.Errorf("PAGE_DOWN opened %q, want add page", fx.ctrl.Stack().Top().Name)
	}
	fx.run(pageDown)
	if fx.ctrl.Stack().Top().Name != TitleTheme {
		t.Errorf("PAGE_DOWN did not wrap to the theme page")
	}
	fx.run(pageUp)
	if fx.ctrl.Stack().Top().Name != TitleAdd || fx.ctrl.Stack().Depth() != 1 {
		t.Errorf("PAGE_UP opened %q at depth %d", fx.ctrl.Stack().Top().Name, fx.ctrl.Stack().Depth())
	}
}

func TestAddScreenChainsToSetup(t *testing.T) {
	fx := newFixture(t, 2)
	fx.run(enter, pageDown, enter)

	if fx.set.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", fx.set.Count())
	}
	if got := fx.ctrl.Stack().Top().Name; got != "Main view 2" {
		t.Errorf("top page = %q, want Main view 2", got)
	}
	if fx.model.Screens[1].LayoutName != "Layout0" {
		t.Errorf("new screen layout = %q, want first registered", fx.model.Screens[1].LayoutName)
	}
	if fx.dirty.Model != 1 {
		t.Errorf("dirty = %d, want 1", fx.dirty.Model)
	}
}

func TestRemoveScreenFromTitle(t *testing.T) {
	fx := newFixture(t, 2)
	fx.set.Add()
	fx.set.Add()
	*fx.dirty = storage.DirtyCounter{}

	// open Main view 3, focus the title, long press
	fx.run(pageDown, pageDown, enter, left, longEnter)
	if fx.ctrl.Stack().Top().Name != "Main view 3" {
		t.Fatalf("top page = %q", fx.ctrl.Stack().Top().Name)
	}
	if diff := cmp.Diff([]string{ItemRemoveScreen, ItemMoveLeft}, fx.ctrl.Popup().Items()); diff != "" {
		t.Fatalf("popup items (-want +got):\n%s", diff)
	}

	fx.run(enter)
	if fx.set.Count() != 2 {
		t.Errorf("Count() = %d, want 2", fx.set.Count())
	}
	if got := fx.ctrl.Stack().Top().Name; got != "Main view 2" {
		t.Errorf("after remove top page = %q, want Main view 2", got)
	}
	if fx.dirty.Model != 1 {
		t.Errorf("dirty = %d, want 1", fx.dirty.Model)
	}
}

func TestSlotZeroOffersNoScreenMenu(t *testing.T) {
	fx := newFixture(t, 2)
	fx.run(enter, left, longEnter)
	if fx.ctrl.Popup().Active() {
		t.Error("screen menu opened for slot 0")
	}
}

func TestMoveScreenRight(t *testing.T) {
	fx := newFixture(t, 2)
	fx.set.Add()
	fx.set.Add()
	fx.set.SetLayout(1, fx.catalog.Layouts.At(1))

	fx.run(pageDown, enter, left, longEnter)
	if diff := cmp.Diff([]string{ItemRemoveScreen, ItemMoveRight}, fx.ctrl.Popup().Items()); diff != "" {
		t.Fatalf("popup items (-want +got):\n%s", diff)
	}
	fx.run(right, enter)

	if fx.model.Screens[2].LayoutName != "Layout1" || fx.model.Screens[1].LayoutName != "Layout0" {
		t.Errorf("screens not swapped: %q %q", fx.model.Screens[1].LayoutName, fx.model.Screens[2].LayoutName)
	}
	if got := fx.ctrl.Stack().Top().Name; got != "Main view 3" {
		t.Errorf("top page = %q, want Main view 3", got)
	}
}

func TestThemeChangeMarksGeneralDirty(t *testing.T) {
	fx := newFixture(t, 2)
	if fx.general.ThemeName != "Default" {
		t.Fatalf("fallback theme = %q, want Default", fx.general.ThemeName)
	}

	fx.run(longEnter, enter, right, enter)

	if fx.general.ThemeName != "Darkblue" {
		t.Errorf("ThemeName = %q, want Darkblue", fx.general.ThemeName)
	}
	if fx.ctrl.Theme().Factory().Name() != "Darkblue" {
		t.Error("active theme not replaced")
	}
	if fx.dirty.General != 1 || fx.dirty.Model != 0 {
		t.Errorf("dirty = %+v, want one general change", *fx.dirty)
	}
	if fx.ctrl.Context().EditMode {
		t.Error("edit mode still set after choosing")
	}
}

func TestLayoutCarouselKeepsWidgets(t *testing.T) {
	fx := newFixture(t, 5)
	fx.set.SetLayout(0, fx.catalog.Layouts.At(2))
	fx.set.Screen(0).CreateWidget(1, fx.catalog.Widgets.At(0))
	*fx.dirty = storage.DirtyCounter{}

	fx.run(enter)
	if fx.ctrl.Context().HorizontalOffset != 0 {
		t.Fatalf("offset after entry = %d", fx.ctrl.Context().HorizontalOffset)
	}
	fx.run(enter)
	if fx.ctrl.Context().HorizontalPos != 2 {
		t.Fatalf("cursor after engaging = %d, want current layout 2", fx.ctrl.Context().HorizontalPos)
	}
	fx.run(right, right, right)
	if c := fx.ctrl.Context(); c.HorizontalPos != 4 || c.HorizontalOffset != 1 {
		t.Fatalf("cursor %d offset %d, want 4 and 1", c.HorizontalPos, c.HorizontalOffset)
	}
	fx.run(enter)

	if fx.model.Screens[0].LayoutName != "Layout4" {
		t.Errorf("LayoutName = %q, want Layout4", fx.model.Screens[0].LayoutName)
	}
	if fx.set.Screen(0).Widget(1) == nil {
		t.Error("zone widget lost on layout change")
	}
	if fx.dirty.Model != 1 {
		t.Errorf("dirty = %d, want 1", fx.dirty.Model)
	}
}

func TestLayoutOptionCommitsWhenFocused(t *testing.T) {
	fx := newFixture(t, 2)
	*fx.dirty = storage.DirtyCounter{}

	if !fx.model.Screens[0].Layout.Options[0].Bool {
		t.Fatal("layout default not applied")
	}
	fx.run(enter, right, right)
	if fx.model.Screens[0].Layout.Options[0].Bool != true || fx.dirty.Model != 0 {
		t.Fatal("navigation alone changed the option")
	}
	fx.run(enter)
	if fx.model.Screens[0].Layout.Options[0].Bool {
		t.Error("toggle not committed")
	}
	if fx.dirty.Model != 1 {
		t.Errorf("dirty = %d, want 1", fx.dirty.Model)
	}
}

func TestBackgroundClearedEachFrame(t *testing.T) {
	fx := newFixture(t, 2)
	fx.run(0)
	rects := fx.rec.Filter(lcd.OpFilledRect)
	if len(rects) == 0 || rects[0].W != lcd.Width || rects[0].Flags.ColorIndex() != lcd.ColorBackground {
		t.Error("frame does not start with a background fill")
	}
}
