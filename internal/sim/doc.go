// Package sim runs the screen editor in the terminal.
//
// The simulator renders the 480x272 display as a character raster coloured
// with the active theme palette and maps keyboard and mouse input onto the
// radio keys, following the desktop simulator of the X12 radio:
//
//	PgUp / PgDn          page up / page down
//	Up, Left, Right      model, system and telemetry keys
//	Down, Esc, Backspace exit
//	- / + (mouse wheel)  rotary encoder
//	Enter                rotary press, l for a long press
//
// Frames without input are driven by a tick so animated widgets keep moving.
package sim
