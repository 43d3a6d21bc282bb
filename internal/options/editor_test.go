package options

import (
	"testing"

	"github.com/muurk/mainviews/internal/event"
	"github.com/muurk/mainviews/internal/lcd"
)

const (
	focused = lcd.Inverse
	editing = lcd.Inverse | lcd.Blink
)

func newTestEditor() (*Editor, *lcd.Recorder) {
	rec := lcd.NewRecorder()
	return NewEditor(rec, DefaultSources), rec
}

func TestEditUnfocusedNeverChanges(t *testing.T) {
	opts := []Option{
		{Name: "Shadow", Kind: Bool},
		{Name: "Offset", Kind: Integer},
		{Name: "Text", Kind: String},
		{Name: "Size", Kind: TextSize},
		{Name: "Timer", Kind: Timer},
		{Name: "Source", Kind: Source},
		{Name: "Color", Kind: Color},
	}
	events := []event.Event{
		event.None, event.Entry, event.RotaryLeft, event.RotaryRight,
		event.KeyBreak(event.KeyEnter), event.KeyLong(event.KeyEnter), event.KeyBreak(event.KeyExit),
	}
	start := Value{Bool: true, Signed: 12, Unsigned: 2, String: "abc"}

	for _, opt := range opts {
		for _, ev := range events {
			t.Run(opt.Kind.String()+"/"+ev.String(), func(t *testing.T) {
				e, _ := newTestEditor()
				if got := e.Edit(50, opt, start, 0, ev); got != start {
					t.Errorf("Edit() with attr 0 = %+v, want %+v", got, start)
				}
			})
		}
	}
}

func TestEditIntegerClamps(t *testing.T) {
	e, _ := newTestEditor()
	opt := Option{Name: "Offset", Kind: Integer}

	v := e.Edit(0, opt, SignedValue(29999), editing, event.RotaryRight)
	if v.Signed != 30000 {
		t.Fatalf("first increment = %d, want 30000", v.Signed)
	}
	v = e.Edit(0, opt, v, editing, event.RotaryRight)
	if v.Signed != 30000 {
		t.Errorf("second increment = %d, want clamped 30000", v.Signed)
	}

	v = e.Edit(0, opt, SignedValue(-30000), editing, event.RotaryLeft)
	if v.Signed != -30000 {
		t.Errorf("decrement at min = %d, want -30000", v.Signed)
	}
}

func TestEditIntegerNeedsEditMode(t *testing.T) {
	e, _ := newTestEditor()
	opt := Option{Name: "Offset", Kind: Integer}

	v := e.Edit(0, opt, SignedValue(5), focused, event.RotaryRight)
	if v.Signed != 5 {
		t.Errorf("rotary without edit mode changed value to %d", v.Signed)
	}
}

func TestEditIntegerCustomRange(t *testing.T) {
	e, _ := newTestEditor()
	opt := Option{Name: "Max", Kind: Integer, Min: -100, Max: 100}

	v := e.Edit(0, opt, SignedValue(100), editing, event.RotaryRight)
	if v.Signed != 100 {
		t.Errorf("increment past custom max = %d, want 100", v.Signed)
	}
}

func TestEditBoolToggle(t *testing.T) {
	e, rec := newTestEditor()
	opt := Option{Name: "Shadow", Kind: Bool}

	v := e.Edit(0, opt, BoolValue(false), focused, event.KeyBreak(event.KeyEnter))
	if !v.Bool {
		t.Error("ENTER on focused checkbox should toggle it on")
	}
	if len(rec.Filter(lcd.OpFilledRect)) != 1 {
		t.Error("checked box should draw its fill")
	}

	v = e.Edit(0, opt, v, editing, event.RotaryLeft)
	if v.Bool {
		t.Error("rotary in edit mode should toggle the checkbox off")
	}
}

func TestEditEnumRanges(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		start uint32
		ev    event.Event
		want  uint32
	}{
		{"text size up", TextSize, 3, event.RotaryRight, 4},
		{"text size clamp", TextSize, 4, event.RotaryRight, 4},
		{"timer clamp high", Timer, MaxTimers - 1, event.RotaryRight, MaxTimers - 1},
		{"timer clamp low", Timer, 0, event.RotaryLeft, 0},
		{"source clamp low", Source, 1, event.RotaryLeft, 1},
		{"source up", Source, 1, event.RotaryRight, 2},
		{"color clamp high", Color, ColorMax, event.RotaryRight, ColorMax},
		{"color down", Color, 10, event.RotaryLeft, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEditor()
			opt := Option{Name: tt.name, Kind: tt.kind}
			v := e.Edit(0, opt, UnsignedValue(tt.start), editing, tt.ev)
			if v.Unsigned != tt.want {
				t.Errorf("Edit() = %d, want %d", v.Unsigned, tt.want)
			}
		})
	}
}

func TestEditRendersLabels(t *testing.T) {
	e, rec := newTestEditor()

	e.Edit(0, Option{Name: "Size", Kind: TextSize}, UnsignedValue(3), 0, event.None)
	e.Edit(20, Option{Name: "Timer", Kind: Timer}, UnsignedValue(1), 0, event.None)
	e.Edit(40, Option{Name: "Source", Kind: Source}, UnsignedValue(3), 0, event.None)

	for _, want := range []string{"Size", "Mid", "Timer 2", "Thr"} {
		if !rec.HasText(want) {
			t.Errorf("expected %q to be drawn, got %v", want, rec.Texts())
		}
	}
}

func TestEditColorSwatch(t *testing.T) {
	e, rec := newTestEditor()
	e.Edit(0, Option{Name: "Color", Kind: Color}, UnsignedValue(0xF800), 0, event.None)

	colors := rec.Filter(lcd.OpCustomColor)
	if len(colors) != 1 || colors[0].Value != 0xF800 {
		t.Fatalf("custom colour ops = %+v, want one 0xF800", colors)
	}
	fills := rec.Filter(lcd.OpFilledRect)
	if len(fills) != 1 || fills[0].Flags.ColorIndex() != lcd.ColorCustom {
		t.Errorf("swatch fill = %+v, want custom-coloured fill", fills)
	}
}

func TestEditString(t *testing.T) {
	e, _ := newTestEditor()
	opt := Option{Name: "Text", Kind: String}

	v := e.Edit(0, opt, StringValue("A"), editing, event.RotaryRight)
	if v.String != "B" {
		t.Fatalf("rotary right on 'A' = %q, want \"B\"", v.String)
	}

	v = e.Edit(0, opt, v, editing, event.KeyBreak(event.KeyEnter))
	if e.Cursor() != 1 {
		t.Fatalf("cursor after ENTER = %d, want 1", e.Cursor())
	}
	v = e.Edit(0, opt, v, editing, event.RotaryRight)
	if v.String != "BA" {
		t.Errorf("second char edit = %q, want \"BA\"", v.String)
	}

	// leaving edit mode resets the cursor
	e.Edit(0, opt, v, focused, event.None)
	if e.Cursor() != 0 {
		t.Errorf("cursor after leaving edit mode = %d, want 0", e.Cursor())
	}
}

func TestEditStringCursorSurvivesOtherRows(t *testing.T) {
	e, _ := newTestEditor()
	name := Option{Name: "Name", Kind: String}
	unit := Option{Name: "Unit", Kind: String}
	v := StringValue("AAAA")
	other := StringValue("xyz")

	frame := func(ev event.Event) {
		v = e.Edit(0, name, v, editing, ev)
		other = e.Edit(20, unit, other, 0, ev)
	}
	frame(event.KeyBreak(event.KeyEnter))
	frame(event.RotaryRight)

	if e.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", e.Cursor())
	}
	if v.String != "ABAA" {
		t.Errorf("edited row = %q, want \"ABAA\"", v.String)
	}
	if other.String != "xyz" {
		t.Errorf("unfocused row = %q, want \"xyz\"", other.String)
	}
}

func TestEditStringCursorWraps(t *testing.T) {
	e, _ := newTestEditor()
	opt := Option{Name: "Text", Kind: String}
	v := StringValue("")

	for i := 0; i < StringCapacity; i++ {
		v = e.Edit(0, opt, v, editing, event.KeyBreak(event.KeyEnter))
	}
	if e.Cursor() != 0 {
		t.Errorf("cursor after %d ENTERs = %d, want 0", StringCapacity, e.Cursor())
	}
	if len(v.String) > StringCapacity {
		t.Errorf("string grew past capacity: %q", v.String)
	}
}

func TestStringValueTruncates(t *testing.T) {
	if got := StringValue("abcdefghijkl").String; got != "abcdefgh" {
		t.Errorf("StringValue() = %q, want %q", got, "abcdefgh")
	}
}

func TestApplyDefaults(t *testing.T) {
	opts := []Option{
		{Name: "a", Kind: Bool, Default: BoolValue(true)},
		{Name: "b", Kind: Integer, Default: SignedValue(-5)},
	}
	values := make([]Value, 3)
	values[2] = SignedValue(9)

	ApplyDefaults(opts, values)

	if !values[0].Bool || values[1].Signed != -5 {
		t.Errorf("defaults not applied: %+v", values)
	}
	if values[2].Signed != 9 {
		t.Errorf("slot beyond options was touched: %+v", values[2])
	}
}
