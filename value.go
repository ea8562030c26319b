package evalmath

import (
	"errors"
	"math"
	"strconv"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'evalmath'.
func tracer() tracing.Trace {
	return tracing.Select("evalmath")
}

// --- Value -----------------------------------------------------------------

// Value is the only operand type the engine knows: an immutable
// double-precision number.
type Value float64

// Neutral is the value of statements which do not compute anything, e.g.
// function definitions.
const Neutral Value = 1

// FromFloat creates a value from a float.
func FromFloat(f float64) Value {
	return Value(f)
}

// Float returns a value as a float64.
func (v Value) Float() float64 {
	return float64(v)
}

// IsNaN is a predicate: is this value not-a-number?
func (v Value) IsNaN() bool {
	return math.IsNaN(float64(v))
}

// IsInf is a predicate: is this value ±∞?
func (v Value) IsInf() bool {
	return math.IsInf(float64(v), 0)
}

// ParseValue parses a numeric literal consisting of digits and at most one
// decimal point, e.g. "12", "1.5" or ".5".
func ParseValue(lexeme string) (Value, error) {
	if lexeme == "" || lexeme == "." {
		return 0, Errorf(InvalidNumber, 0, "invalid number %q", lexeme)
	}
	f, err := strconv.ParseFloat(lexeme, 64)
	if errors.Is(err, strconv.ErrRange) { // overflow, f is ±Inf
		tracer().Debugf("literal %q out of range, using %g", lexeme, f)
		return Value(f), nil
	}
	if err != nil {
		tracer().Debugf("cannot parse literal %q: %v", lexeme, err)
		return 0, Errorf(InvalidNumber, 0, "invalid number %q", lexeme)
	}
	return Value(f), nil
}

func (v Value) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
