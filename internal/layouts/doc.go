// Package layouts provides the built-in grid layouts.
//
// Every layout shares the same four Bool options (top bar, flight mode,
// sliders, trims) and splits the area left between the trims into a grid
// of zones.
package layouts
