package screens

import (
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/storage"
)

// WidgetFactory creates widgets of one kind.
type WidgetFactory interface {
	Name() string
	Options() []options.Option
	// Create builds a widget for zone reading its options from data.
	// With init set the option defaults are written into data first.
	Create(zone Zone, data *storage.WidgetData, init bool) Widget
}

// Widget is a component drawn inside one zone.
type Widget interface {
	Factory() WidgetFactory
	Zone() Zone
	Data() *storage.WidgetData
	OptionValue(i int) options.Value
	SetOptionValue(i int, v options.Value)
	Refresh(s lcd.Surface)
	// Rebind moves the widget to a new record location holding the same content.
	Rebind(data *storage.WidgetData)
	Close()
}

// BaseWidget implements everything of Widget except Refresh.
type BaseWidget struct {
	factory WidgetFactory
	zone    Zone
	data    *storage.WidgetData
	closed  bool
}

// NewBaseWidget binds a widget of factory f to zone and data.
func NewBaseWidget(f WidgetFactory, zone Zone, data *storage.WidgetData, init bool) BaseWidget {
	if init {
		options.ApplyDefaults(f.Options(), data.Options[:])
	}
	return BaseWidget{factory: f, zone: zone, data: data}
}

func (w *BaseWidget) Factory() WidgetFactory    { return w.factory }
func (w *BaseWidget) Zone() Zone                { return w.zone }
func (w *BaseWidget) Data() *storage.WidgetData { return w.data }

// OptionValue returns option i, or the zero value when i is out of range.
func (w *BaseWidget) OptionValue(i int) options.Value {
	if i < 0 || i >= len(w.data.Options) {
		return options.Value{}
	}
	return w.data.Options[i]
}

// SetOptionValue writes option i through to the record.
func (w *BaseWidget) SetOptionValue(i int, v options.Value) {
	if i < 0 || i >= len(w.data.Options) {
		return
	}
	w.data.Options[i] = v
}

func (w *BaseWidget) Rebind(data *storage.WidgetData) {
	w.data = data
}

func (w *BaseWidget) Close() {
	w.closed = true
}

// Closed reports whether Close was called
func (w *BaseWidget) Closed() bool {
	return w.closed
}

// WidgetFactoryFunc is a WidgetFactory built from a name, its options and
// a constructor completing a BaseWidget into a concrete widget.
type WidgetFactoryFunc struct {
	name    string
	options []options.Option
	build   func(base BaseWidget) Widget
}

// NewWidgetFactory creates a factory called name.
func NewWidgetFactory(name string, opts []options.Option, build func(base BaseWidget) Widget) *WidgetFactoryFunc {
	return &WidgetFactoryFunc{name: name, options: opts, build: build}
}

func (f *WidgetFactoryFunc) Name() string              { return f.name }
func (f *WidgetFactoryFunc) Options() []options.Option { return f.options }

func (f *WidgetFactoryFunc) Create(zone Zone, data *storage.WidgetData, init bool) Widget {
	return f.build(NewBaseWidget(f, zone, data, init))
}
