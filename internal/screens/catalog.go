package screens

import (
	"github.com/muurk/mainviews/internal/registry"
	"github.com/muurk/mainviews/internal/storage"
)

// Registry capacities.
const (
	MaxRegisteredWidgets = 32
	MaxRegisteredLayouts = 16
	MaxRegisteredThemes  = 8
)

// Catalog bundles the three factory registries.
type Catalog struct {
	Widgets *registry.Registry[WidgetFactory]
	Layouts *registry.Registry[LayoutFactory]
	Themes  *registry.Registry[ThemeFactory]
}

// NewCatalog creates empty, unsealed registries keyed on the stored name length.
func NewCatalog() *Catalog {
	return &Catalog{
		Widgets: registry.New[WidgetFactory]("widget", MaxRegisteredWidgets).WithKeyLength(storage.NameLength),
		Layouts: registry.New[LayoutFactory]("layout", MaxRegisteredLayouts).WithKeyLength(storage.NameLength),
		Themes:  registry.New[ThemeFactory]("theme", MaxRegisteredThemes).WithKeyLength(storage.NameLength),
	}
}

// Seal makes all three registries read-only.
func (c *Catalog) Seal() {
	c.Widgets.Seal()
	c.Layouts.Seal()
	c.Themes.Seal()
}
