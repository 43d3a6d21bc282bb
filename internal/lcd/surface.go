package lcd

import "fmt"

// Display geometry of the target device.
const (
	Width      = 480
	Height     = 272
	FontHeight = 21
	// CharWidth is the nominal advance of one character of the standard font
	CharWidth = 5
)

// Flags combines attribute bits, a palette index and an overlay opacity.
type Flags uint32

const (
	// Inverse marks the focused element
	Inverse Flags = 1 << iota
	// Blink marks an element in edit mode
	Blink
	// Left aligns numbers to the left of x instead of ending at x
	Left
	// Right ends text at x
	Right
	// Center centres text on x
	Center
	// Shadow draws text with a one pixel shadow
	Shadow
	// SmallSize selects the small font
	SmallSize
	// DoubleSize selects the double height font
	DoubleSize
)

const (
	attrMask    Flags = 0x0000ffff
	colorShift        = 16
	colorMask   Flags = 0x00ff0000
	opacityShift      = 24
	opacityMask Flags = 0x0f000000
)

// ColorIndex selects an entry of the active Palette.
type ColorIndex uint8

const (
	ColorDefault ColorIndex = iota
	ColorText
	ColorTextInverted
	ColorTextInvertedBg
	ColorLine
	ColorCurveAxis
	ColorOverlay
	ColorTitleBg
	ColorBackground
	ColorCustom
	colorCount
)

// ColorCount is the number of palette entries.
const ColorCount = int(colorCount)

// String returns the palette slot name
func (c ColorIndex) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorText:
		return "text"
	case ColorTextInverted:
		return "text_inverted"
	case ColorTextInvertedBg:
		return "text_inverted_bg"
	case ColorLine:
		return "line"
	case ColorCurveAxis:
		return "curve_axis"
	case ColorOverlay:
		return "overlay"
	case ColorTitleBg:
		return "title_bg"
	case ColorBackground:
		return "background"
	case ColorCustom:
		return "custom"
	default:
		return fmt.Sprintf("ColorIndex(%d)", c)
	}
}

// Color returns flags selecting palette entry c.
func Color(c ColorIndex) Flags {
	return Flags(c) << colorShift & colorMask
}

// Opacity returns flags for an overlay of strength n (0-15).
func Opacity(n uint8) Flags {
	return Flags(n&0x0f) << opacityShift
}

// Attributes strips the colour and opacity bits.
func (f Flags) Attributes() Flags {
	return f & attrMask
}

// ColorIndex returns the palette index carried by f.
func (f Flags) ColorIndex() ColorIndex {
	return ColorIndex((f & colorMask) >> colorShift)
}

// Opacity returns the overlay strength carried by f.
func (f Flags) Opacity() uint8 {
	return uint8((f & opacityMask) >> opacityShift)
}

// Has reports whether all bits of attr are set.
func (f Flags) Has(attr Flags) bool {
	return f&attr == attr
}

// Glyph identifies a built-in bitmap pattern.
type Glyph int

const (
	GlyphSwipeCircle Glyph = iota
	GlyphSwipeLeft
	GlyphSwipeRight
	GlyphCarouselLeft
	GlyphCarouselRight
	GlyphAddScreen
	GlyphScreen
	GlyphTheme
	GlyphWidgets
)

// Surface is the drawing capability consumed by widgets, layouts and menus.
type Surface interface {
	DrawText(x, y int, text string, flags Flags)
	DrawNumber(x, y int, value int, flags Flags)
	DrawFilledRect(x, y, w, h int, flags Flags)
	DrawRect(x, y, w, h, thickness int, flags Flags)
	DrawGlyph(x, y int, g Glyph, flags Flags)
	// SetCustomColor sets the colour used by ColorCustom for subsequent primitives
	SetCustomColor(rgb565 uint16)
}
