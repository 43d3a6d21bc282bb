// Package event defines the decoded logical input events delivered to the
// screen editor, one per render frame.
//
// Raw key and rotary decoding happens elsewhere; this package only names the
// events and offers the increment/decrement helper used by value editors.
package event

import (
	"fmt"
	"strings"
)

// Key identifies a logical key.
type Key uint8

const (
	KeyExit Key = iota + 1
	KeyEnter
	KeyPageUp
	KeyPageDown
	KeyModel
	KeySystem
	KeyTelemetry
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyExit:
		return "exit"
	case KeyEnter:
		return "enter"
	case KeyPageUp:
		return "page-up"
	case KeyPageDown:
		return "page-down"
	case KeyModel:
		return "model"
	case KeySystem:
		return "system"
	case KeyTelemetry:
		return "telemetry"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// Event is one decoded input event. The zero value is the periodic "no event" tick.
type Event uint16

const (
	kindMask  Event = 0xff00
	keyMask   Event = 0x00ff
	kindBreak Event = 0x0100
	kindLong  Event = 0x0200
)

const (
	// None is delivered on frames without input
	None Event = 0
	// Entry is delivered to a menu the first time it runs
	Entry Event = 0x1000
	// EntryUp is delivered to a menu when the menu above it was popped
	EntryUp Event = 0x1001
	// RotaryLeft is one counter-clockwise rotary tick
	RotaryLeft Event = 0x2000
	// RotaryRight is one clockwise rotary tick
	RotaryRight Event = 0x2001
)

// KeyBreak returns the event for key k being released after a short press.
func KeyBreak(k Key) Event {
	return kindBreak | Event(k)
}

// KeyLong returns the event for key k being held.
func KeyLong(k Key) Event {
	return kindLong | Event(k)
}

// IsBreak reports whether e is a key release event.
func (e Event) IsBreak() bool {
	return e&kindMask == kindBreak
}

// IsLong reports whether e is a long press event.
func (e Event) IsLong() bool {
	return e&kindMask == kindLong
}

// Key returns the key carried by e, or 0 for non-key events.
func (e Event) Key() Key {
	if !e.IsBreak() && !e.IsLong() {
		return 0
	}
	return Key(e & keyMask)
}

// IsRotary reports whether e is a rotary tick.
func (e Event) IsRotary() bool {
	return e == RotaryLeft || e == RotaryRight
}

// IsPage reports whether e switches menu pages.
func (e Event) IsPage() bool {
	return e == KeyBreak(KeyPageUp) || e == KeyBreak(KeyPageDown)
}

// Delta returns +1 for RotaryRight, -1 for RotaryLeft and 0 otherwise.
func (e Event) Delta() int {
	switch e {
	case RotaryRight:
		return 1
	case RotaryLeft:
		return -1
	default:
		return 0
	}
}

// String returns the canonical event name accepted by Parse.
func (e Event) String() string {
	switch {
	case e == None:
		return "none"
	case e == Entry:
		return "entry"
	case e == EntryUp:
		return "entry-up"
	case e == RotaryLeft:
		return "rotary-left"
	case e == RotaryRight:
		return "rotary-right"
	case e.IsBreak():
		return e.Key().String()
	case e.IsLong():
		return "long-" + e.Key().String()
	default:
		return fmt.Sprintf("Event(%#04x)", uint16(e))
	}
}

var keysByName = map[string]Key{
	"exit":      KeyExit,
	"enter":     KeyEnter,
	"page-up":   KeyPageUp,
	"page-down": KeyPageDown,
	"model":     KeyModel,
	"system":    KeySystem,
	"telemetry": KeyTelemetry,
}

// Parse decodes an event name as produced by String.
func Parse(name string) (Event, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "none":
		return None, nil
	case "entry":
		return Entry, nil
	case "entry-up":
		return EntryUp, nil
	case "rotary-left":
		return RotaryLeft, nil
	case "rotary-right":
		return RotaryRight, nil
	}
	if rest, ok := strings.CutPrefix(name, "long-"); ok {
		if k, ok := keysByName[rest]; ok {
			return KeyLong(k), nil
		}
	}
	if k, ok := keysByName[name]; ok {
		return KeyBreak(k), nil
	}
	return None, fmt.Errorf("unknown event %q", name)
}

// IncDec applies a rotary tick to value, clamped to [min, max].
// The second result reports whether value changed.
func IncDec(e Event, value, min, max int) (int, bool) {
	d := e.Delta()
	if d == 0 {
		return value, false
	}
	next := value + d
	if next < min {
		next = min
	}
	if next > max {
		next = max
	}
	return next, next != value
}
