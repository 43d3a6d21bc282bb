package menu

import (
	"testing"

	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
	"github.com/muurk/mainviews/internal/options"
)

var setupRows = []Row{{Kind: RowChoice, Columns: 4}, {Kind: RowSpacer}, {Kind: RowButton}, {Kind: RowToggle}, {Kind: RowField}}

func TestNavigateVertical(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		events []event.Event
		want   int
	}{
		{"skips spacer down", 0, []event.Event{event.RotaryRight}, 2},
		{"skips spacer up", 2, []event.Event{event.RotaryLeft}, 0},
		{"reaches title", 0, []event.Event{event.RotaryLeft}, -1},
		{"clamps at title", -1, []event.Event{event.RotaryLeft}, -1},
		{"clamps at last row", 3, []event.Event{event.RotaryRight, event.RotaryRight, event.RotaryRight}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext()
			c.VerticalPos = tt.start
			for _, ev := range tt.events {
				if !Navigate(c, setupRows, ev) {
					t.Fatalf("Navigate(%v) not consumed", ev)
				}
			}
			if c.VerticalPos != tt.want {
				t.Errorf("VerticalPos = %d, want %d", c.VerticalPos, tt.want)
			}
		})
	}
}

func TestNavigateEnter(t *testing.T) {
	tests := []struct {
		name         string
		row          int
		wantConsumed bool
		wantEdit     bool
	}{
		{"choice engages", 0, true, true},
		{"button passes through", 2, false, false},
		{"toggle passes through", 3, false, false},
		{"field enters edit", 4, true, true},
		{"title passes through", -1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext()
			c.VerticalPos = tt.row
			got := Navigate(c, setupRows, event.KeyBreak(event.KeyEnter))
			if got != tt.wantConsumed || c.EditMode != tt.wantEdit {
				t.Errorf("consumed %v edit %v, want %v %v", got, c.EditMode, tt.wantConsumed, tt.wantEdit)
			}
		})
	}
}

func TestNavigateChoiceEditing(t *testing.T) {
	c := NewContext()
	Navigate(c, setupRows, event.KeyBreak(event.KeyEnter))
	if c.HorizontalPos != 0 {
		t.Fatalf("HorizontalPos = %d after engaging, want 0", c.HorizontalPos)
	}

	for i := 0; i < 10; i++ {
		Navigate(c, setupRows, event.RotaryRight)
	}
	if c.HorizontalPos != 4 || c.VerticalPos != 0 {
		t.Errorf("cursor = (%d, %d), want (0, 4)", c.VerticalPos, c.HorizontalPos)
	}

	if Navigate(c, setupRows, event.KeyBreak(event.KeyEnter)) {
		t.Error("ENTER while browsing consumed; the carousel must see it")
	}

	Navigate(c, setupRows, event.KeyBreak(event.KeyExit))
	if c.EditMode || c.HorizontalPos != -1 {
		t.Errorf("EXIT left %+v, want edit mode off", *c)
	}
}

func TestNavigateFieldEditing(t *testing.T) {
	c := &Context{VerticalPos: 4, HorizontalPos: -1, EditMode: true}
	if Navigate(c, setupRows, event.RotaryRight) {
		t.Error("rotary in field edit consumed; the editor must see it")
	}
	if c.VerticalPos != 4 {
		t.Error("rotary in edit mode moved the row")
	}
	if !Navigate(c, setupRows, event.KeyBreak(event.KeyEnter)) || c.EditMode {
		t.Error("ENTER did not leave field edit mode")
	}

	text := []Row{{Kind: RowText}}
	c = &Context{VerticalPos: 0, HorizontalPos: -1, EditMode: true}
	if Navigate(c, text, event.KeyBreak(event.KeyEnter)) || !c.EditMode {
		t.Error("ENTER left text edit mode; it advances the cursor")
	}
	if !Navigate(c, text, event.KeyLong(event.KeyEnter)) || c.EditMode {
		t.Error("long ENTER did not leave text edit mode")
	}
}

func TestNavigateScrollsBody(t *testing.T) {
	rows := make([]Row, BodyLines+5)
	c := NewContext()
	for i := 0; i < len(rows)-1; i++ {
		Navigate(c, rows, event.RotaryRight)
		if c.VerticalPos < c.VerticalOffset || c.VerticalPos >= c.VerticalOffset+BodyLines {
			t.Fatalf("row %d outside body at offset %d", c.VerticalPos, c.VerticalOffset)
		}
	}
	if c.VerticalOffset != len(rows)-BodyLines {
		t.Errorf("VerticalOffset = %d, want %d", c.VerticalOffset, len(rows)-BodyLines)
	}
	Navigate(c, rows, event.RotaryLeft)
	for c.VerticalPos > -1 {
		Navigate(c, rows, event.RotaryLeft)
	}
	if c.VerticalOffset != 0 {
		t.Errorf("VerticalOffset at title = %d, want 0", c.VerticalOffset)
	}
}

func TestAttr(t *testing.T) {
	c := &Context{VerticalPos: 2}
	if c.Attr(1) != 0 || c.Attr(2) != lcd.Inverse {
		t.Error("focus flags wrong")
	}
	c.EditMode = true
	if c.Attr(2) != lcd.Inverse|lcd.Blink {
		t.Error("edit flags wrong")
	}
}

func TestOptionRow(t *testing.T) {
	if OptionRow(options.Bool).Kind != RowToggle || OptionRow(options.String).Kind != RowText || OptionRow(options.Color).Kind != RowField {
		t.Error("option kinds mapped to wrong rows")
	}
}
