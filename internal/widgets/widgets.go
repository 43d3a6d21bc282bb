package widgets

import (
	"fmt"

	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/registry"
	"github.com/muurk/mainviews/internal/screens"
)

// Env is what the built-in widgets draw from.
type Env struct {
	Sources   options.Sources
	Telemetry Telemetry
}

func (e Env) withDefaults() Env {
	if e.Sources == nil {
		e.Sources = options.DefaultSources
	}
	if e.Telemetry == nil {
		e.Telemetry = Static{}
	}
	return e
}

var white = options.UnsignedValue(uint32(lcd.RGB(255, 255, 255)))

// Factories returns the built-in widget factories in picker order.
func Factories(env Env) []screens.WidgetFactory {
	env = env.withDefaults()
	return []screens.WidgetFactory{
		screens.NewWidgetFactory("Value", []options.Option{
			{Name: "Source", Kind: options.Source, Default: options.UnsignedValue(1)},
			{Name: "Color", Kind: options.Color, Default: white},
		}, func(base screens.BaseWidget) screens.Widget {
			return &valueWidget{BaseWidget: base, env: env}
		}),

		screens.NewWidgetFactory("Text", []options.Option{
			{Name: "Text", Kind: options.String, Default: options.StringValue("My text")},
			{Name: "Color", Kind: options.Color, Default: white},
			{Name: "Size", Kind: options.TextSize},
			{Name: "Shadow", Kind: options.Bool},
		}, func(base screens.BaseWidget) screens.Widget {
			return &textWidget{BaseWidget: base}
		}),

		screens.NewWidgetFactory("Timer", []options.Option{
			{Name: "Timer", Kind: options.Timer},
		}, func(base screens.BaseWidget) screens.Widget {
			return &timerWidget{BaseWidget: base, env: env}
		}),

		screens.NewWidgetFactory("Gauge", []options.Option{
			{Name: "Source", Kind: options.Source, Default: options.UnsignedValue(1)},
			{Name: "Min", Kind: options.Integer, Default: options.SignedValue(-100), Min: -1024, Max: 1024},
			{Name: "Max", Kind: options.Integer, Default: options.SignedValue(100), Min: -1024, Max: 1024},
			{Name: "Color", Kind: options.Color, Default: options.UnsignedValue(uint32(lcd.RGB(224, 0, 0)))},
		}, func(base screens.BaseWidget) screens.Widget {
			return &gaugeWidget{BaseWidget: base, env: env}
		}),

		screens.NewWidgetFactory("ModelName", nil, func(base screens.BaseWidget) screens.Widget {
			return &modelWidget{BaseWidget: base, env: env}
		}),
	}
}

// Register adds the built-in widgets to r.
func Register(r *registry.Registry[screens.WidgetFactory], env Env) error {
	for _, f := range Factories(env) {
		if err := r.Register(f); err != nil {
			return err
		}
	}
	return nil
}

// textFlags maps a TextSize option to font flags.
func textFlags(size uint32) lcd.Flags {
	switch size {
	case 1, 2:
		return lcd.SmallSize
	case 4:
		return lcd.DoubleSize
	default:
		return 0
	}
}

type valueWidget struct {
	screens.BaseWidget
	env Env
}

func (w *valueWidget) Refresh(s lcd.Surface) {
	z := w.Zone()
	src := w.OptionValue(0).Unsigned
	s.SetCustomColor(uint16(w.OptionValue(1).Unsigned))
	s.DrawText(z.X+2, z.Y+2, w.env.Sources.SourceName(src), lcd.SmallSize|lcd.Color(lcd.ColorCustom))
	s.DrawNumber(z.X+z.W-2, z.Y+z.H-lcd.FontHeight, w.env.Telemetry.SourceValue(src), lcd.Color(lcd.ColorCustom))
}

type textWidget struct {
	screens.BaseWidget
}

func (w *textWidget) Refresh(s lcd.Surface) {
	z := w.Zone()
	flags := lcd.Color(lcd.ColorCustom) | textFlags(w.OptionValue(2).Unsigned)
	if w.OptionValue(3).Bool {
		flags |= lcd.Shadow
	}
	s.SetCustomColor(uint16(w.OptionValue(1).Unsigned))
	s.DrawText(z.X+5, z.Y+2, w.OptionValue(0).String, flags)
}

type timerWidget struct {
	screens.BaseWidget
	env Env
}

func (w *timerWidget) Refresh(s lcd.Surface) {
	z := w.Zone()
	timer := int(w.OptionValue(0).Unsigned)
	secs := w.env.Telemetry.TimerSeconds(timer)
	s.DrawText(z.X+2, z.Y+2, fmt.Sprintf("Timer %d", timer+1), lcd.SmallSize|lcd.Color(lcd.ColorText))
	s.DrawText(z.X+2, z.Y+z.H-lcd.FontHeight, fmt.Sprintf("%02d:%02d", secs/60%100, secs%60), lcd.Color(lcd.ColorText))
}

type gaugeWidget struct {
	screens.BaseWidget
	env Env
}

// Fill returns the filled width of the bar for the current value.
func (w *gaugeWidget) Fill() int {
	lo, hi := int(w.OptionValue(1).Signed), int(w.OptionValue(2).Signed)
	width := w.Zone().W - 4
	if hi <= lo || width <= 0 {
		return 0
	}
	v := w.env.Telemetry.SourceValue(w.OptionValue(0).Unsigned) * 100 / 1024
	v = min(max(v, lo), hi)
	return (v - lo) * width / (hi - lo)
}

func (w *gaugeWidget) Refresh(s lcd.Surface) {
	z := w.Zone()
	s.DrawText(z.X+2, z.Y+2, w.env.Sources.SourceName(w.OptionValue(0).Unsigned), lcd.SmallSize|lcd.Color(lcd.ColorText))
	barY := z.Y + z.H/2
	s.DrawRect(z.X+1, barY, z.W-2, 12, 1, lcd.Color(lcd.ColorLine))
	s.SetCustomColor(uint16(w.OptionValue(3).Unsigned))
	if fill := w.Fill(); fill > 0 {
		s.DrawFilledRect(z.X+2, barY+1, fill, 10, lcd.Color(lcd.ColorCustom))
	}
}

type modelWidget struct {
	screens.BaseWidget
	env Env
}

func (w *modelWidget) Refresh(s lcd.Surface) {
	z := w.Zone()
	name := w.env.Telemetry.ModelName()
	if name == "" {
		name = "Model"
	}
	s.DrawText(z.X+z.W/2, z.Y+z.H/2-lcd.FontHeight/2, name, lcd.Center|lcd.DoubleSize|lcd.Color(lcd.ColorText))
}
