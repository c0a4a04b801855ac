package influx

import (
	"strconv"
	"strings"
)

// ValueType is the native type of a field value.
type ValueType string

const (
	// StringType is a string field value.
	StringType ValueType = "string"
	// IntegerType is a 64-bit signed integer field value.
	IntegerType ValueType = "integer"
	// FloatType is a 64-bit float field value.
	FloatType ValueType = "float"
	// BooleanType is a boolean field value.
	BooleanType ValueType = "boolean"
	// NullType marks a missing cell in a query result. The server emits JSON
	// null for fields a row does not carry; null never appears on the write path.
	NullType ValueType = "null"
)

// Value stores a single field value, either for encoding into the line
// protocol or decoded from a query response.
//
// A Value constructed from a typed literal carries the native value. A Value
// constructed from already-encoded text (see Raw and RawTyped) carries the
// original text and preserves its formatting on output.
type Value struct {
	typ ValueType

	raw    string
	hasRaw bool

	str string
	i   int64
	f   float64
	b   bool
}

// String creates a string Value.
func String(s string) Value {
	return Value{typ: StringType, str: s}
}

// Integer creates an integer Value.
func Integer(i int64) Value {
	return Value{typ: IntegerType, i: i}
}

// Float creates a float Value.
func Float(f float64) Value {
	return Value{typ: FloatType, f: f}
}

// Boolean creates a boolean Value.
func Boolean(b bool) Value {
	return Value{typ: BooleanType, b: b}
}

// Null creates a null Value.
func Null() Value {
	return Value{typ: NullType}
}

// Raw wraps an already-encoded field value, guessing its type from the text.
// The text is emitted verbatim, so callers keep full control over formatting;
// the only adjustment ever made is appending the integer suffix (see Encode).
//
// Raw exists for compatibility with untyped string field maps. New code
// should construct typed values instead.
func Raw(text string) Value {
	return Value{typ: guessType(text), raw: text, hasRaw: true}
}

// RawTyped wraps an already-encoded field value with an explicit type. The
// declared type wins over whatever type the text would be guessed as:
// RawTyped(`42`, StringType) stays a string.
func RawTyped(text string, typ ValueType) Value {
	return Value{typ: typ, raw: text, hasRaw: true}
}

// Type returns the native type of the value.
func (v Value) Type() ValueType {
	return v.typ
}

// IsNull returns true if the value is a null result cell.
func (v Value) IsNull() bool {
	return v.typ == NullType
}

// Text returns the string content of a string value, or the wrapped text of a
// raw value. It returns the empty string for anything else.
func (v Value) Text() string {
	if v.hasRaw {
		return v.raw
	}
	return v.str
}

// Int returns the native integer and true if the value is an integer.
func (v Value) Int() (int64, bool) {
	if v.typ != IntegerType {
		return 0, false
	}
	if v.hasRaw {
		i, err := strconv.ParseInt(strings.TrimSuffix(v.raw, "i"), 10, 64)
		return i, err == nil
	}
	return v.i, true
}

// Float64 returns the native float and true if the value is a float.
func (v Value) Float64() (float64, bool) {
	if v.typ != FloatType {
		return 0, false
	}
	if v.hasRaw {
		f, err := strconv.ParseFloat(v.raw, 64)
		return f, err == nil
	}
	return v.f, true
}

// Bool returns the native boolean and true if the value is a boolean.
func (v Value) Bool() (bool, bool) {
	if v.typ != BooleanType {
		return false, false
	}
	if v.hasRaw {
		switch v.raw {
		case "t", "T", "true", "True", "TRUE":
			return true, true
		case "f", "F", "false", "False", "FALSE":
			return false, true
		}
		return false, false
	}
	return v.b, true
}

// Encode returns the line-protocol representation of the value.
//
// Typed values format as: booleans `true`/`false`, integers with the `i`
// suffix, floats as the shortest decimal that round-trips, strings
// double-quoted with `"` and `\` escaped. Raw-wrapped text is emitted
// verbatim, except integer-typed text missing the `i` suffix gets it
// appended.
func (v Value) Encode() string {
	if v.hasRaw {
		if v.typ == IntegerType && !strings.HasSuffix(v.raw, "i") {
			return v.raw + "i"
		}
		return v.raw
	}

	switch v.typ {
	case BooleanType:
		return strconv.FormatBool(v.b)
	case IntegerType:
		return strconv.FormatInt(v.i, 10) + "i"
	case FloatType:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case StringType:
		return `"` + stringFieldEscaper.Replace(v.str) + `"`
	default:
		return ""
	}
}

// String implements fmt.Stringer. It returns the line-protocol form.
func (v Value) String() string {
	return v.Encode()
}

// guessType classifies already-encoded text: boolean literals first, then the
// integer pattern, then the float grammar, else string.
func guessType(text string) ValueType {
	switch text {
	case "t", "T", "true", "True", "TRUE", "f", "F", "false", "False", "FALSE":
		return BooleanType
	}
	if isIntegerText(text) {
		return IntegerType
	}
	if isFloatText(text) {
		return FloatType
	}
	return StringType
}

// isIntegerText matches an optional leading '-', one or more digits, and an
// optional trailing 'i'.
func isIntegerText(s string) bool {
	s = strings.TrimSuffix(s, "i")
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatText matches an optional sign, digits with at most one decimal
// point, and an optional exponent. Malformed combinations (two points, an
// exponent without digits, a sign in the middle) are rejected.
func isFloatText(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits, point := 0, false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits++
			i++
			continue
		}
		if c == '.' {
			if point {
				return false
			}
			point = true
			i++
			continue
		}
		break
	}
	if digits == 0 {
		return false
	}
	if i == len(s) {
		return true
	}

	if s[i] != 'e' && s[i] != 'E' {
		return false
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
