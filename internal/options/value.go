package options

import "strings"

// Value holds one option value. Only the field matching the option's Kind
// is meaningful: Bool, Signed for Integer, String, and Unsigned for
// TextSize, Timer, Source and Color.
type Value struct {
	Bool     bool   `yaml:"bool,omitempty"`
	Signed   int32  `yaml:"signed,omitempty"`
	Unsigned uint32 `yaml:"unsigned,omitempty"`
	String   string `yaml:"string,omitempty"`
}

// BoolValue returns a Bool value
func BoolValue(b bool) Value { return Value{Bool: b} }

// SignedValue returns an Integer value
func SignedValue(n int32) Value { return Value{Signed: n} }

// UnsignedValue returns a value for the unsigned kinds
func UnsignedValue(n uint32) Value { return Value{Unsigned: n} }

// StringValue returns a String value truncated to StringCapacity bytes.
func StringValue(s string) Value {
	return Value{String: TruncateString(s)}
}

// TruncateString cuts s to StringCapacity bytes and drops trailing padding.
func TruncateString(s string) string {
	if len(s) > StringCapacity {
		s = s[:StringCapacity]
	}
	return strings.TrimRight(s, " \x00")
}

// Int returns the numeric content of v for kind k.
func (v Value) Int(k Kind) int {
	switch k {
	case Bool:
		if v.Bool {
			return 1
		}
		return 0
	case Integer:
		return int(v.Signed)
	case String:
		return 0
	default:
		return int(v.Unsigned)
	}
}

// WithInt returns v with its numeric content for kind k set to n.
func (v Value) WithInt(k Kind, n int) Value {
	switch k {
	case Bool:
		v.Bool = n != 0
	case Integer:
		v.Signed = int32(n)
	case String:
	default:
		v.Unsigned = uint32(n)
	}
	return v
}
