// Package lcd defines the drawing surface the screen editor renders onto.
//
// The firmware's pixel and text primitives are not implemented here. This
// package only describes the capability (Surface), the attribute flags that
// travel with every primitive, and two concrete surfaces:
//
//   - Recorder, which records every primitive for tests
//   - Grid, a character-cell raster used by the terminal simulator and the
//     preview server
//
// # Coordinates
//
// All coordinates are in display pixels on a Width x Height (480x272)
// surface. Grid maps them onto CellWidth x CellHeight pixel cells.
//
// # Flags
//
// A Flags value carries attribute bits (Inverse, Blink, Left, ...) in its low
// 16 bits, a palette index in bits 16-23 and an overlay opacity in bits 24-27:
//
//	attr := lcd.Inverse | lcd.Color(lcd.ColorTextInvertedBg)
//	s.DrawRect(x, y, w, h, 1, attr)
//
// Inverse is used uniformly to signal focus, Blink to signal edit mode.
package lcd
