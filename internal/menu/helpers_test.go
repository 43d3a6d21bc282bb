package menu

import (
	"fmt"
	"testing"

	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/screens"
	"github.com/muurk/mainviews/internal/storage"
)

type fakeWidget struct {
	screens.BaseWidget
}

func (w *fakeWidget) Refresh(s lcd.Surface) {
	z := w.Zone()
	s.DrawText(z.X, z.Y, "widget:"+w.Factory().Name(), 0)
}

type fakeLayout struct {
	*screens.BaseLayout
}

func (l *fakeLayout) Refresh(s lcd.Surface, setup bool) {
	l.RefreshWidgets(s)
}

type fakeTheme struct {
	screens.BaseTheme
}

func (t *fakeTheme) Palette() lcd.Palette { return lcd.DefaultPalette }

type fakeThemeFactory struct {
	name string
	opts []options.Option
}

func (f *fakeThemeFactory) Name() string              { return f.name }
func (f *fakeThemeFactory) Options() []options.Option { return f.opts }
func (f *fakeThemeFactory) DrawThumb(s lcd.Surface, x, y int, flags lcd.Flags) {
	s.DrawText(x, y, "thumb:"+f.name, flags)
}
func (f *fakeThemeFactory) Create(data *storage.ThemeData, init bool) screens.Theme {
	return &fakeTheme{BaseTheme: screens.NewBaseTheme(f, data, init)}
}

type fixture struct {
	catalog *screens.Catalog
	model   *storage.ModelData
	general *storage.GeneralData
	dirty   *storage.DirtyCounter
	set     *screens.Set
	rec     *lcd.Recorder
	ctrl    *Controller
}

// newFixture registers layouts named Layout0..Layout<layouts-1> with two
// zones each (the first also has a Bool option), three widgets and two themes.
func newFixture(t *testing.T, layouts int) *fixture {
	t.Helper()
	c := screens.NewCatalog()

	widgets := []struct {
		name string
		opts []options.Option
	}{
		{"Value", []options.Option{{Name: "Source", Kind: options.Source, Default: options.UnsignedValue(1)}}},
		{"Text", []options.Option{{Name: "Text", Kind: options.String, Default: options.StringValue("Hi")}}},
		{"Clock", nil},
	}
	for _, w := range widgets {
		f := screens.NewWidgetFactory(w.name, w.opts, func(base screens.BaseWidget) screens.Widget {
			return &fakeWidget{BaseWidget: base}
		})
		if err := c.Widgets.Register(f); err != nil {
			t.Fatal(err)
		}
	}

	zones := []screens.Zone{{X: 10, Y: 50, W: 200, H: 100}, {X: 250, Y: 50, W: 200, H: 100}}
	for i := 0; i < layouts; i++ {
		name := fmt.Sprintf("Layout%d", i)
		var opts []options.Option
		if i == 0 {
			opts = []options.Option{{Name: "Top bar", Kind: options.Bool, Default: options.BoolValue(true)}}
		}
		f := screens.NewLayoutFactory(name, opts, zones,
			func(s lcd.Surface, x, y int, flags lcd.Flags) { s.DrawText(x, y, "thumb:"+name, flags) },
			func(base *screens.BaseLayout) screens.Layout { return &fakeLayout{BaseLayout: base} })
		if err := c.Layouts.Register(f); err != nil {
			t.Fatal(err)
		}
	}

	for _, name := range []string{"Default", "Darkblue"} {
		f := &fakeThemeFactory{name: name, opts: []options.Option{{Name: "Main color", Kind: options.Color}}}
		if err := c.Themes.Register(f); err != nil {
			t.Fatal(err)
		}
	}
	c.Seal()

	fx := &fixture{
		catalog: c,
		model:   &storage.ModelData{},
		general: &storage.GeneralData{},
		dirty:   &storage.DirtyCounter{},
		rec:     lcd.NewRecorder(),
	}
	fx.set = screens.NewSet(c, fx.model, fx.dirty)
	if err := fx.set.Load(); err != nil {
		t.Fatal(err)
	}
	fx.ctrl = NewController(Config{
		Catalog: c,
		Set:     fx.set,
		General: fx.general,
		Dirty:   fx.dirty,
		Surface: fx.rec,
	})
	*fx.dirty = storage.DirtyCounter{}
	return fx
}

// run delivers events one frame each.
func (fx *fixture) run(events ...event.Event) {
	for _, ev := range events {
		fx.rec.Reset()
		fx.ctrl.Run(ev)
	}
}

var (
	enter     = event.KeyBreak(event.KeyEnter)
	longEnter = event.KeyLong(event.KeyEnter)
	exit      = event.KeyBreak(event.KeyExit)
	pageDown  = event.KeyBreak(event.KeyPageDown)
	pageUp    = event.KeyBreak(event.KeyPageUp)
	right     = event.RotaryRight
	left      = event.RotaryLeft
)
