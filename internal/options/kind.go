package options

import "fmt"

// Kind selects how a Value is interpreted and edited.
type Kind uint8

const (
	Bool Kind = iota
	Integer
	String
	TextSize
	Timer
	Source
	Color
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Integer:
		return "integer"
	case String:
		return "string"
	case TextSize:
		return "text_size"
	case Timer:
		return "timer"
	case Source:
		return "source"
	case Color:
		return "color"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Toggles reports whether ENTER changes the value directly instead of
// starting edit mode.
func (k Kind) Toggles() bool {
	return k == Bool
}

// KeepsEditOnEnter reports whether ENTER is consumed by the editor while in
// edit mode (the text cursor advances instead of leaving edit mode).
func (k Kind) KeepsEditOnEnter() bool {
	return k == String
}

// Value ranges enforced by the editor.
const (
	IntegerMin = -30000
	IntegerMax = 30000

	TextSizeMax = 4

	// MaxTimers is the number of model timers selectable by a Timer option
	MaxTimers = 3

	ColorMax = 65535

	// StringCapacity is the byte capacity of a persisted String value
	StringCapacity = 8
)

// TextSizeLabels are displayed for TextSize values 0..TextSizeMax.
var TextSizeLabels = [TextSizeMax + 1]string{"Standard", "Tiny", "Small", "Mid", "Double"}

// Option describes one configurable option.
type Option struct {
	Name    string
	Kind    Kind
	Default Value
	// Min and Max narrow the Integer range; both zero means the full range
	Min, Max int
}

// Range returns the clamping bounds for the option with the given source catalog.
func (o Option) Range(sources Sources) (int, int) {
	switch o.Kind {
	case Bool:
		return 0, 1
	case Integer:
		if o.Min == 0 && o.Max == 0 {
			return IntegerMin, IntegerMax
		}
		return max(o.Min, IntegerMin), min(o.Max, IntegerMax)
	case TextSize:
		return 0, TextSizeMax
	case Timer:
		return 0, MaxTimers - 1
	case Source:
		if sources == nil {
			return 0, 0
		}
		return int(sources.FirstSource()), int(sources.LastSource())
	case Color:
		return 0, ColorMax
	default:
		return 0, 0
	}
}

// ApplyDefaults writes each option's default into the matching slot of values.
// Slots beyond len(opts) are left untouched.
func ApplyDefaults(opts []Option, values []Value) {
	for i, opt := range opts {
		if i >= len(values) {
			return
		}
		values[i] = opt.Default
	}
}
