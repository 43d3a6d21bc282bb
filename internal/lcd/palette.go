package lcd

import "fmt"

// Palette maps every ColorIndex to an RGB565 value.
type Palette [ColorCount]uint16

// RGB packs 8-bit channels into the device's RGB565 encoding.
func RGB(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// Channels expands an RGB565 value back to 8-bit channels.
func Channels(c uint16) (r, g, b uint8) {
	r = uint8(c>>11&0x1f) << 3
	g = uint8(c>>5&0x3f) << 2
	b = uint8(c&0x1f) << 3
	// replicate high bits so white stays white
	r |= r >> 5
	g |= g >> 6
	b |= b >> 5
	return r, g, b
}

// Hex formats an RGB565 value as "#rrggbb".
func Hex(c uint16) string {
	r, g, b := Channels(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Lookup returns the colour for index c, substituting custom for ColorCustom.
func (p Palette) Lookup(c ColorIndex, custom uint16) uint16 {
	if c == ColorCustom {
		return custom
	}
	if int(c) >= len(p) {
		return p[ColorText]
	}
	return p[c]
}

// DefaultPalette is used until a theme has been loaded.
var DefaultPalette = Palette{
	ColorDefault:        RGB(0, 0, 0),
	ColorText:           RGB(0, 0, 0),
	ColorTextInverted:   RGB(255, 255, 255),
	ColorTextInvertedBg: RGB(224, 0, 0),
	ColorLine:           RGB(127, 127, 127),
	ColorCurveAxis:      RGB(180, 180, 180),
	ColorOverlay:        RGB(0, 0, 0),
	ColorTitleBg:        RGB(224, 0, 0),
	ColorBackground:     RGB(255, 255, 255),
	ColorCustom:         RGB(255, 255, 255),
}
