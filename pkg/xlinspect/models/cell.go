// Package models defines data structures for workbook inspection.
package models

// Kind identifies the scalar type held by a Value.
type Kind int

const (
	// KindEmpty is a blank cell.
	KindEmpty Kind = iota
	// KindInt is a whole number.
	KindInt
	// KindFloat is a decimal number.
	KindFloat
	// KindBool is a TRUE/FALSE cell.
	KindBool
	// KindString is any other text.
	KindString
)

// Value is a single typed cell value.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

// Empty returns the blank value.
func Empty() Value { return Value{Kind: KindEmpty} }

// IntValue wraps an integer.
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue wraps a float.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// StringValue wraps text.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IsEmpty reports whether v is a blank cell.
func (v Value) IsEmpty() bool { return v.Kind == KindEmpty }

// IsNumeric reports whether v holds an int or a float.
func (v Value) IsNumeric() bool { return v.Kind == KindInt || v.Kind == KindFloat }

// Number returns the numeric value as float64. Non-numeric values return 0.
func (v Value) Number() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.Int)
	case KindFloat:
		return v.Float
	}
	return 0
}
