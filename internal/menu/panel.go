package menu

import (
	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/logging"
	"github.com/muurk/mainviews/internal/options"
	"github.com/muurk/mainviews/internal/screens"
	"github.com/muurk/mainviews/internal/storage"
)

// OptionTarget is anything with an option block edited through a panel.
type OptionTarget interface {
	OptionValue(i int) options.Value
	SetOptionValue(i int, v options.Value)
}

// optionRows returns one navigation row per option.
func optionRows(opts []options.Option) []Row {
	rows := make([]Row, len(opts))
	for i, o := range opts {
		rows[i] = OptionRow(o.Kind)
	}
	return rows
}

// editOption draws option row k of target at y and commits the edited
// value when the row has focus. It reports whether the value changed.
func editOption(e *options.Editor, c *Context, y, row int, opt options.Option, target OptionTarget, index int, ev event.Event) bool {
	attr := c.Attr(row)
	old := target.OptionValue(index)
	v := e.Edit(y, opt, old, attr, ev)
	if attr == 0 || v == old {
		return false
	}
	target.SetOptionValue(index, v)
	return true
}

// widgetSettingsPage edits the options of w. It must only be pushed for
// widgets whose factory has options.
func (ctrl *Controller) widgetSettingsPage(w screens.Widget) Page {
	c := NewContext()
	opts := w.Factory().Options()
	rows := optionRows(opts)

	return Page{Name: "Widget settings", Handle: func(ev event.Event) bool {
		logging.LogMenu("Widget settings", ev.String())
		if ev == event.Entry {
			c.Reset()
		}
		if !c.EditMode && ev == event.KeyBreak(event.KeyExit) {
			ctrl.stack.Pop()
			return false
		}
		if c.VerticalPos < 0 {
			c.VerticalPos = 0
		}
		if Navigate(c, rows, ev) {
			ev = event.None
		}
		if c.VerticalPos < 0 {
			c.VerticalPos = 0
		}

		drawSubHeader(ctrl.surface, "Widget settings")
		for i := 0; i < BodyLines+1; i++ {
			k := i + c.VerticalOffset
			if k >= len(opts) {
				break
			}
			if editOption(ctrl.editor, c, rowY(i), k, opts[k], w, k, ev) {
				ctrl.markDirty(storage.ScopeModel, "widget option edited")
			}
		}
		return true
	}}
}
