package syntax

import (
	"strconv"
	"strings"
)

type (
	// LitStr is a string literal: "foo".
	LitStr struct{ Value string }

	// LitByteStr is a byte string literal: b"foo".
	LitByteStr struct{ Value []byte }

	// LitByte is a byte literal: b'f'.
	LitByte struct{ Value byte }

	// LitChar is a character literal: 'a'.
	LitChar struct{ Value rune }

	// LitInt is an integer literal such as 42 or 0x1fu8. Repr holds the
	// source text including any suffix.
	LitInt struct{ Repr string }

	// LitFloat is a floating point literal such as 1.5 or 1e3f64. Repr holds
	// the source text including any suffix.
	LitFloat struct{ Repr string }

	// LitBool is true or false.
	LitBool struct{ Value bool }
)

func (*LitStr) lit()     {}
func (*LitByteStr) lit() {}
func (*LitByte) lit()    {}
func (*LitChar) lit()    {}
func (*LitInt) lit()     {}
func (*LitFloat) lit()   {}
func (*LitBool) lit()    {}

// NewLitStr returns the string literal holding value.
func NewLitStr(value string) *LitStr { return &LitStr{Value: value} }

// NewLitByteStr returns the byte string literal holding a copy of value.
func NewLitByteStr(value []byte) *LitByteStr {
	return &LitByteStr{Value: append([]byte{}, value...)}
}

// NewLitByte returns the byte literal b'value'.
func NewLitByte(value byte) *LitByte { return &LitByte{Value: value} }

// NewLitChar returns the character literal holding value.
func NewLitChar(value rune) *LitChar { return &LitChar{Value: value} }

// NewLitInt returns the integer literal written as repr.
func NewLitInt(repr string) *LitInt { return &LitInt{Repr: repr} }

// NewLitFloat returns the float literal written as repr.
func NewLitFloat(repr string) *LitFloat { return &LitFloat{Repr: repr} }

// NewLitBool returns true or false.
func NewLitBool(value bool) *LitBool { return &LitBool{Value: value} }

// Digits returns the integer text without its type suffix.
func (l *LitInt) Digits() string { return l.Repr[:len(l.Repr)-len(l.Suffix())] }

// Suffix returns the type suffix (u8, i64, usize, ...) or "".
func (l *LitInt) Suffix() string { return numericSuffix(l.Repr, intSuffixes) }

// Digits returns the float text without its type suffix.
func (l *LitFloat) Digits() string {
	return l.Repr[:len(l.Repr)-len(l.Suffix())]
}

// Suffix returns f32, f64 or "".
func (l *LitFloat) Suffix() string { return numericSuffix(l.Repr, floatSuffixes) }

var (
	intSuffixes = []string{
		"u8", "u16", "u32", "u64", "u128", "usize",
		"i8", "i16", "i32", "i64", "i128", "isize",
	}
	floatSuffixes = []string{"f32", "f64"}
)

func numericSuffix(repr string, suffixes []string) string {
	for _, s := range suffixes {
		if strings.HasSuffix(repr, s) && len(repr) > len(s) {
			return s
		}
	}

	return ""
}

// LitValue lists the Go types [LitOf] converts into a literal.
type LitValue interface {
	string | []byte | bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint16 | uint32 | uint64 |
		float32 | float64
}

// LitOf converts a Go value into the matching literal: strings become
// [LitStr], byte slices [LitByteStr], booleans [LitBool], integers [LitInt]
// and floats [LitFloat]. Bytes and characters are ambiguous with integers;
// use [NewLitByte] and [NewLitChar] for those.
//
// Infinite and NaN floats have no literal form. Their Repr (+Inf, -Inf, NaN)
// does not print as valid source; use a path such as f64::INFINITY instead.
func LitOf[T LitValue](v T) Lit {
	switch x := any(v).(type) {
	case string:
		return NewLitStr(x)
	case []byte:
		return NewLitByteStr(x)
	case bool:
		return NewLitBool(x)
	case int:
		return NewLitInt(strconv.FormatInt(int64(x), 10))
	case int8:
		return NewLitInt(strconv.FormatInt(int64(x), 10))
	case int16:
		return NewLitInt(strconv.FormatInt(int64(x), 10))
	case int32:
		return NewLitInt(strconv.FormatInt(int64(x), 10))
	case int64:
		return NewLitInt(strconv.FormatInt(x, 10))
	case uint:
		return NewLitInt(strconv.FormatUint(uint64(x), 10))
	case uint16:
		return NewLitInt(strconv.FormatUint(uint64(x), 10))
	case uint32:
		return NewLitInt(strconv.FormatUint(uint64(x), 10))
	case uint64:
		return NewLitInt(strconv.FormatUint(x, 10))
	case float32:
		return NewLitFloat(floatRepr(float64(x), 32))
	case float64:
		return NewLitFloat(floatRepr(x, 64))
	}

	panic("unreachable")
}

func floatRepr(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}

	return s
}
