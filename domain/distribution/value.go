package distribution

import (
	"math"
	"strconv"
)

type valueKind uint8

const (
	kindNumeric valueKind = iota
	kindUndefined
	kindInfinite
)

// Value is the result of a moment or density evaluation: either a finite
// number or one of the sentinels Undefined and Infinite.
//
// A sentinel is not an error. Callers that need arithmetic must unpack the
// number with Float and handle the sentinel case explicitly.
type Value struct {
	kind valueKind
	x    float64
}

var (
	// Undefined marks a quantity with no value under the current parameters
	// (e.g. the mean of a Cauchy distribution).
	Undefined = Value{kind: kindUndefined}
	// Infinite marks a quantity that diverges (e.g. the variance of a
	// Student's t distribution with 1 < nu <= 2).
	Infinite = Value{kind: kindInfinite}
)

// Numeric wraps a finite number.
func Numeric(x float64) Value {
	return Value{kind: kindNumeric, x: x}
}

// Float returns the number and true, or 0 and false for a sentinel.
func (v Value) Float() (float64, bool) {
	if v.kind != kindNumeric {
		return 0, false
	}
	return v.x, true
}

func (v Value) IsNumeric() bool   { return v.kind == kindNumeric }
func (v Value) IsUndefined() bool { return v.kind == kindUndefined }
func (v Value) IsInfinite() bool  { return v.kind == kindInfinite }

// Equal reports whether v and o are the same sentinel or the same number.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	return v.kind != kindNumeric || v.x == o.x
}

// String renders numbers in shortest form and sentinels by name.
func (v Value) String() string {
	switch v.kind {
	case kindUndefined:
		return "Undefined"
	case kindInfinite:
		return "Infinite"
	}
	return strconv.FormatFloat(v.x, 'g', -1, 64)
}

// MarshalJSON encodes numbers as JSON numbers and sentinels as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind != kindNumeric {
		return []byte(strconv.Quote(v.String())), nil
	}
	return strconv.AppendFloat(nil, v.x, 'g', -1, 64), nil
}

// finite converts a formula result into a Value, mapping a diverging result
// to Infinite and NaN to Undefined.
func finite(x float64) Value {
	switch {
	case math.IsNaN(x):
		return Undefined
	case math.IsInf(x, 0):
		return Infinite
	}
	return Numeric(x)
}
