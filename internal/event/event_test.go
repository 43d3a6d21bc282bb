package event

import "testing"

func TestParseRoundTrip(t *testing.T) {
	events := []Event{
		None, Entry, EntryUp, RotaryLeft, RotaryRight,
		KeyBreak(KeyExit), KeyBreak(KeyEnter), KeyLong(KeyEnter),
		KeyBreak(KeyPageUp), KeyBreak(KeyPageDown),
	}

	for _, e := range events {
		t.Run(e.String(), func(t *testing.T) {
			got, err := Parse(e.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", e.String(), err)
			}
			if got != e {
				t.Errorf("Parse(%q) = %v, want %v", e.String(), got, e)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("sideways"); err == nil {
		t.Error("Parse(\"sideways\") should fail")
	}
}

func TestKeyClassification(t *testing.T) {
	long := KeyLong(KeyEnter)
	if !long.IsLong() || long.IsBreak() {
		t.Errorf("KeyLong(KeyEnter) classification wrong: long=%v break=%v", long.IsLong(), long.IsBreak())
	}
	if long.Key() != KeyEnter {
		t.Errorf("Key() = %v, want enter", long.Key())
	}
	if RotaryLeft.Key() != 0 {
		t.Errorf("RotaryLeft.Key() = %v, want 0", RotaryLeft.Key())
	}
	if !KeyBreak(KeyPageDown).IsPage() {
		t.Error("page-down should be a page event")
	}
}

func TestIncDec(t *testing.T) {
	tests := []struct {
		name        string
		event       Event
		value       int
		min, max    int
		want        int
		wantChanged bool
	}{
		{"increment", RotaryRight, 3, 0, 4, 4, true},
		{"clamp at max", RotaryRight, 4, 0, 4, 4, false},
		{"decrement", RotaryLeft, 1, 0, 4, 0, true},
		{"clamp at min", RotaryLeft, 0, 0, 4, 0, false},
		{"non rotary", KeyBreak(KeyEnter), 2, 0, 4, 2, false},
		{"integer near bound", RotaryRight, 29999, -30000, 30000, 30000, true},
		{"integer at bound", RotaryRight, 30000, -30000, 30000, 30000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := IncDec(tt.event, tt.value, tt.min, tt.max)
			if got != tt.want || changed != tt.wantChanged {
				t.Errorf("IncDec() = (%d, %v), want (%d, %v)", got, changed, tt.want, tt.wantChanged)
			}
		})
	}
}
