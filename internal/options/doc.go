// Package options describes the configurable options exposed by widgets,
// layouts and themes, and implements the single-row option editor.
//
// A component exposes a fixed, ordered list of Option descriptors and an
// equally long array of Value entries. Entry i is always interpreted through
// descriptor i's Kind; the two never get out of step for an instance.
//
// # Editing
//
// Editor.Edit renders one option row and, only when the row has focus,
// applies the frame's event to produce a new value:
//
//	value = editor.Edit(y, opt, value, attr, ev)
//	if attr != 0 {
//	    widget.SetOptionValue(i, value)
//	}
//
// With attr == 0 the call is a pure render. Out-of-range edits are clamped,
// never rejected.
package options
