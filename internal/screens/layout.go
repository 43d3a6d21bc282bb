package screens

import (
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/registry"
	"github.com/muurk/mainviews/internal/storage"
)

// LayoutFactory creates layouts of one kind.
type LayoutFactory interface {
	Name() string
	Options() []options.Option
	// DrawThumb draws the carousel thumbnail at x, y.
	DrawThumb(s lcd.Surface, x, y int, flags lcd.Flags)
	// Create builds a layout bound to data. With init set the layout
	// option defaults are written into data; zone records are untouched.
	Create(data *storage.LayoutData, init bool) Layout
}

// Layout divides a screen into zones and owns one widget per zone.
type Layout interface {
	Factory() LayoutFactory
	Data() *storage.LayoutData
	ZonesCount() int
	Zone(i int) Zone
	Widget(i int) Widget

	// CreateWidget replaces the widget of zone i with a fresh one from f,
	// writing f's name and option defaults into the zone record.
	CreateWidget(i int, f WidgetFactory) Widget
	// DetachWidget takes the widget out of zone i without closing it or
	// touching the zone record.
	DetachWidget(i int) Widget
	// AttachWidget puts w back into zone i.
	AttachWidget(i int, w Widget)
	// RemoveWidget closes the widget of zone i and clears the zone record.
	RemoveWidget(i int)
	// LoadWidgets instantiates the widgets named in the zone records and
	// returns the names that are not registered.
	LoadWidgets(widgets *registry.Registry[WidgetFactory]) []string

	OptionValue(i int) options.Value
	SetOptionValue(i int, v options.Value)

	// Refresh draws the layout and its widgets. In setup mode decorations
	// that depend on live telemetry are left out.
	Refresh(s lcd.Surface, setup bool)
	// Rebind moves the layout and its widgets to a new record location.
	Rebind(data *storage.LayoutData)
	Close()
}

// BaseLayout implements everything of Layout except Refresh. Concrete
// layouts call RefreshWidgets from their Refresh.
type BaseLayout struct {
	factory LayoutFactory
	zones   []Zone
	data    *storage.LayoutData
	widgets [storage.MaxLayoutZones]Widget
	closed  bool
}

// NewBaseLayout binds a layout of factory f with the given zones to data.
// Zones beyond storage.MaxLayoutZones are dropped.
func NewBaseLayout(f LayoutFactory, zones []Zone, data *storage.LayoutData, init bool) *BaseLayout {
	if len(zones) > storage.MaxLayoutZones {
		zones = zones[:storage.MaxLayoutZones]
	}
	if init {
		options.ApplyDefaults(f.Options(), data.Options[:])
	}
	return &BaseLayout{factory: f, zones: zones, data: data}
}

func (l *BaseLayout) Factory() LayoutFactory    { return l.factory }
func (l *BaseLayout) Data() *storage.LayoutData { return l.data }
func (l *BaseLayout) ZonesCount() int           { return len(l.zones) }

// Zone returns zone i. It panics when i is out of range.
func (l *BaseLayout) Zone(i int) Zone {
	return l.zones[i]
}

// Widget returns the widget of zone i, or nil.
func (l *BaseLayout) Widget(i int) Widget {
	if i < 0 || i >= len(l.zones) {
		return nil
	}
	return l.widgets[i]
}

func (l *BaseLayout) CreateWidget(i int, f WidgetFactory) Widget {
	if i < 0 || i >= len(l.zones) {
		return nil
	}
	if old := l.widgets[i]; old != nil {
		old.Close()
	}
	zone := &l.data.Zones[i]
	zone.WidgetName = storage.TruncateName(f.Name())
	zone.Widget = storage.WidgetData{}
	l.widgets[i] = f.Create(l.zones[i], &zone.Widget, true)
	return l.widgets[i]
}

func (l *BaseLayout) DetachWidget(i int) Widget {
	if i < 0 || i >= len(l.zones) {
		return nil
	}
	w := l.widgets[i]
	l.widgets[i] = nil
	return w
}

func (l *BaseLayout) AttachWidget(i int, w Widget) {
	if i < 0 || i >= len(l.zones) {
		return
	}
	if old := l.widgets[i]; old != nil && old != w {
		old.Close()
	}
	l.widgets[i] = w
}

func (l *BaseLayout) RemoveWidget(i int) {
	if i < 0 || i >= len(l.zones) {
		return
	}
	if w := l.widgets[i]; w != nil {
		w.Close()
	}
	l.widgets[i] = nil
	l.data.Zones[i].Clear()
}

func (l *BaseLayout) LoadWidgets(widgets *registry.Registry[WidgetFactory]) []string {
	var missing []string
	for i := range l.zones {
		if w := l.widgets[i]; w != nil {
			w.Close()
			l.widgets[i] = nil
		}
		zone := &l.data.Zones[i]
		if !zone.Used() {
			continue
		}
		f, ok := widgets.Lookup(zone.WidgetName)
		if !ok {
			missing = append(missing, zone.WidgetName)
			continue
		}
		l.widgets[i] = f.Create(l.zones[i], &zone.Widget, false)
	}
	return missing
}

func (l *BaseLayout) OptionValue(i int) options.Value {
	if i < 0 || i >= len(l.data.Options) {
		return options.Value{}
	}
	return l.data.Options[i]
}

func (l *BaseLayout) SetOptionValue(i int, v options.Value) {
	if i < 0 || i >= len(l.data.Options) {
		return
	}
	l.data.Options[i] = v
}

// RefreshWidgets draws every widget in its zone.
func (l *BaseLayout) RefreshWidgets(s lcd.Surface) {
	for i := range l.zones {
		if w := l.widgets[i]; w != nil {
			w.Refresh(s)
		}
	}
}

func (l *BaseLayout) Rebind(data *storage.LayoutData) {
	l.data = data
	for i := range l.zones {
		if w := l.widgets[i]; w != nil {
			w.Rebind(&data.Zones[i].Widget)
		}
	}
}

func (l *BaseLayout) Close() {
	for i := range l.widgets {
		if w := l.widgets[i]; w != nil {
			w.Close()
			l.widgets[i] = nil
		}
	}
	l.closed = true
}

// Closed reports whether Close was called
func (l *BaseLayout) Closed() bool {
	return l.closed
}

// LayoutFactoryFunc is a LayoutFactory with fixed zones.
type LayoutFactoryFunc struct {
	name    string
	options []options.Option
	zones   []Zone
	thumb   func(s lcd.Surface, x, y int, flags lcd.Flags)
	build   func(base *BaseLayout) Layout
}

// NewLayoutFactory creates a factory called name whose layouts split the
// display into zones.
func NewLayoutFactory(name string, opts []options.Option, zones []Zone,
	thumb func(s lcd.Surface, x, y int, flags lcd.Flags),
	build func(base *BaseLayout) Layout) *LayoutFactoryFunc {
	return &LayoutFactoryFunc{name: name, options: opts, zones: zones, thumb: thumb, build: build}
}

func (f *LayoutFactoryFunc) Name() string              { return f.name }
func (f *LayoutFactoryFunc) Options() []options.Option { return f.options }

// Zones returns the zone geometry every layout of f uses
func (f *LayoutFactoryFunc) Zones() []Zone { return f.zones }

func (f *LayoutFactoryFunc) DrawThumb(s lcd.Surface, x, y int, flags lcd.Flags) {
	if f.thumb != nil {
		f.thumb(s, x, y, flags)
	}
}

func (f *LayoutFactoryFunc) Create(data *storage.LayoutData, init bool) Layout {
	return f.build(NewBaseLayout(f, f.zones, data, init))
}
