package screens

import (
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/storage"
)

// ThemeFactory creates themes of one kind.
type ThemeFactory interface {
	Name() string
	Options() []options.Option
	DrawThumb(s lcd.Surface, x, y int, flags lcd.Flags)
	Create(data *storage.ThemeData, init bool) Theme
}

// Theme provides the palette every screen is drawn with.
type Theme interface {
	Factory() ThemeFactory
	Data() *storage.ThemeData
	Palette() lcd.Palette
	OptionValue(i int) options.Value
	SetOptionValue(i int, v options.Value)
	Close()
}

// BaseTheme implements the option plumbing of Theme.
type BaseTheme struct {
	factory ThemeFactory
	data    *storage.ThemeData
}

// NewBaseTheme binds a theme of factory f to data.
func NewBaseTheme(f ThemeFactory, data *storage.ThemeData, init bool) BaseTheme {
	if init {
		options.ApplyDefaults(f.Options(), data.Options[:])
	}
	return BaseTheme{factory: f, data: data}
}

func (t *BaseTheme) Factory() ThemeFactory    { return t.factory }
func (t *BaseTheme) Data() *storage.ThemeData { return t.data }

func (t *BaseTheme) OptionValue(i int) options.Value {
	if i < 0 || i >= len(t.data.Options) {
		return options.Value{}
	}
	return t.data.Options[i]
}

func (t *BaseTheme) SetOptionValue(i int, v options.Value) {
	if i < 0 || i >= len(t.data.Options) {
		return
	}
	t.data.Options[i] = v
}

func (t *BaseTheme) Close() {}

// LoadTheme creates the theme named in general, falling back to the first
// registered theme. It returns nil when no theme is registered. The bool
// result reports whether the record was rewritten by the fallback.
func LoadTheme(themes ThemeLookup, general *storage.GeneralData) (Theme, bool) {
	if f, ok := themes.Lookup(general.ThemeName); ok {
		return f.Create(&general.Theme, false), false
	}
	if themes.Len() == 0 {
		return nil, false
	}
	f := themes.At(0)
	general.ThemeName = storage.TruncateName(f.Name())
	return f.Create(&general.Theme, true), true
}

// ApplyTheme replaces the active theme with one from f, writing f's name
// and option defaults into general.
func ApplyTheme(current Theme, f ThemeFactory, general *storage.GeneralData) Theme {
	if current != nil {
		current.Close()
	}
	general.ThemeName = storage.TruncateName(f.Name())
	general.Theme = storage.ThemeData{}
	return f.Create(&general.Theme, true)
}

// ThemeLookup is the read side of the theme registry.
type ThemeLookup interface {
	Len() int
	At(i int) ThemeFactory
	Lookup(name string) (ThemeFactory, bool)
}
