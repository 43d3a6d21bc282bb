package storage

import "github.com/muurk/mainviews/internal/options"

// Record dimensions.
const (
	// NameLength is the persisted byte length of every factory name
	NameLength = 10

	MaxCustomScreens = 5
	MaxLayoutZones   = 10
	MaxLayoutOptions = 10
	MaxWidgetOptions = 5
	MaxThemeOptions  = 5
)

// TruncateName cuts a factory name to NameLength bytes.
func TruncateName(name string) string {
	if len(name) > NameLength {
		return name[:NameLength]
	}
	return name
}

// WidgetData is the option block of one widget.
type WidgetData struct {
	Options [MaxWidgetOptions]options.Value
}

// ZoneData binds a zone to a widget factory name and its option block.
type ZoneData struct {
	WidgetName string
	Widget     WidgetData
}

// Used reports whether a widget is assigned to the zone
func (z *ZoneData) Used() bool {
	return z.WidgetName != ""
}

// Clear empties the zone
func (z *ZoneData) Clear() {
	*z = ZoneData{}
}

// LayoutData is the block of one layout: per-zone widget records and layout options.
type LayoutData struct {
	Zones   [MaxLayoutZones]ZoneData
	Options [MaxLayoutOptions]options.Value
}

// ScreenData is the persisted record of one custom screen.
type ScreenData struct {
	LayoutName string
	Layout     LayoutData
}

// Used reports whether the slot holds a screen.
func (s *ScreenData) Used() bool {
	return s.LayoutName != ""
}

// Reset zeroes the record, marking the slot unused.
func (s *ScreenData) Reset() {
	*s = ScreenData{}
}

// ThemeData is the option block of the active theme.
type ThemeData struct {
	Options [MaxThemeOptions]options.Value
}

// ModelData is the part of a model's persisted data owned by the screen editor.
type ModelData struct {
	Name    string
	Screens [MaxCustomScreens]ScreenData
}

// GeneralData is the part of the radio's general settings owned by the screen editor.
type GeneralData struct {
	ThemeName string
	Theme     ThemeData
}
