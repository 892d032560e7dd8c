package logic

import "strconv"

// ValueKind discriminates the typed reactive values.
type ValueKind uint8

const (
	ValueNull ValueKind = iota
	ValueInt
	ValueFloat
	ValueBool
	ValueString
)

// Value is a typed reactive variable value.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

// IntValue wraps an integer.
func IntValue(v int64) Value { return Value{Kind: ValueInt, Int: v} }

// FloatValue wraps a float.
func FloatValue(v float64) Value { return Value{Kind: ValueFloat, Float: v} }

// BoolValue wraps a boolean.
func BoolValue(v bool) Value { return Value{Kind: ValueBool, Bool: v} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{Kind: ValueString, Str: s} }

// NullValue is the absent value.
func NullValue() Value { return Value{} }

// String renders the value in source notation.
func (v Value) String() string {
	switch v.Kind {
	case ValueInt:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueBool:
		return strconv.FormatBool(v.Bool)
	case ValueString:
		return strconv.Quote(v.Str)
	default:
		return "null"
	}
}

// Manifest maps reactive variable names to their initial typed values. The
// namespace is flat and keys are unique; insertion order is preserved so
// serialization stays deterministic.
type Manifest struct {
	order []string
	vars  map[string]Value
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{vars: make(map[string]Value)}
}

// Set adds or replaces a variable.
func (m *Manifest) Set(name string, v Value) {
	if _, ok := m.vars[name]; !ok {
		m.order = append(m.order, name)
	}
	m.vars[name] = v
}

// Get returns the value for name; the second return is false when absent.
func (m *Manifest) Get(name string) (Value, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Names returns variable names in insertion order.
func (m *Manifest) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of variables.
func (m *Manifest) Len() int { return len(m.order) }
