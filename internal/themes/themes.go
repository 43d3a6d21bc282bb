// Package themes provides the built-in themes.
package themes

import (
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/registry"
	"github.com/muurk/mainviews/internal/screens"
	"github.com/muurk/mainviews/internal/storage"
)

// Option indices shared by every built-in theme.
const (
	OptionMainColor = iota
	OptionBackground
)

// Factory is a built-in theme: a base palette whose accent and background
// entries come from the theme options.
type Factory struct {
	name string
	base lcd.Palette
}

func (f *Factory) Name() string { return f.name }

func (f *Factory) Options() []options.Option {
	return []options.Option{
		{Name: "Main color", Kind: options.Color, Default: options.UnsignedValue(uint32(f.base[lcd.ColorTitleBg]))},
		{Name: "Background", Kind: options.Color, Default: options.UnsignedValue(uint32(f.base[lcd.ColorBackground]))},
	}
}

// DrawThumb draws the theme's accent as a swatch inside an outline.
func (f *Factory) DrawThumb(s lcd.Surface, x, y int, flags lcd.Flags) {
	s.DrawRect(x, y, 51, 31, 1, flags)
	s.SetCustomColor(f.base[lcd.ColorBackground])
	s.DrawFilledRect(x+2, y+2, 47, 27, lcd.Color(lcd.ColorCustom))
	s.SetCustomColor(f.base[lcd.ColorTitleBg])
	s.DrawFilledRect(x+2, y+2, 47, 8, lcd.Color(lcd.ColorCustom))
}

func (f *Factory) Create(data *storage.ThemeData, init bool) screens.Theme {
	return &theme{BaseTheme: screens.NewBaseTheme(f, data, init), base: f.base}
}

type theme struct {
	screens.BaseTheme
	base lcd.Palette
}

func (t *theme) Palette() lcd.Palette {
	p := t.base
	main := uint16(t.OptionValue(OptionMainColor).Unsigned)
	p[lcd.ColorTitleBg] = main
	p[lcd.ColorTextInvertedBg] = main
	p[lcd.ColorBackground] = uint16(t.OptionValue(OptionBackground).Unsigned)
	return p
}

var (
	defaultPalette = lcd.DefaultPalette

	darkbluePalette = lcd.Palette{
		lcd.ColorDefault:        lcd.RGB(255, 255, 255),
		lcd.ColorText:           lcd.RGB(255, 255, 255),
		lcd.ColorTextInverted:   lcd.RGB(255, 255, 255),
		lcd.ColorTextInvertedBg: lcd.RGB(40, 100, 200),
		lcd.ColorLine:           lcd.RGB(120, 140, 180),
		lcd.ColorCurveAxis:      lcd.RGB(60, 70, 100),
		lcd.ColorOverlay:        lcd.RGB(0, 0, 0),
		lcd.ColorTitleBg:        lcd.RGB(40, 100, 200),
		lcd.ColorBackground:     lcd.RGB(10, 20, 60),
		lcd.ColorCustom:         lcd.RGB(255, 255, 255),
	}

	midnightPalette = lcd.Palette{
		lcd.ColorDefault:        lcd.RGB(220, 220, 220),
		lcd.ColorText:           lcd.RGB(220, 220, 220),
		lcd.ColorTextInverted:   lcd.RGB(0, 0, 0),
		lcd.ColorTextInvertedBg: lcd.RGB(250, 180, 0),
		lcd.ColorLine:           lcd.RGB(100, 100, 100),
		lcd.ColorCurveAxis:      lcd.RGB(50, 50, 50),
		lcd.ColorOverlay:        lcd.RGB(0, 0, 0),
		lcd.ColorTitleBg:        lcd.RGB(250, 180, 0),
		lcd.ColorBackground:     lcd.RGB(0, 0, 0),
		lcd.ColorCustom:         lcd.RGB(255, 255, 255),
	}
)

// Factories returns the built-in themes, the default first.
func Factories() []screens.ThemeFactory {
	return []screens.ThemeFactory{
		&Factory{name: "Default", base: defaultPalette},
		&Factory{name: "Darkblue", base: darkbluePalette},
		&Factory{name: "Midnight", base: midnightPalette},
	}
}

// Register adds the built-in themes to r.
func Register(r *registry.Registry[screens.ThemeFactory]) error {
	for _, f := range Factories() {
		if err := r.Register(f); err != nil {
			return err
		}
	}
	return nil
}
