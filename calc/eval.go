package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrDivideByZero reports division by a zero operand.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrArithmetic reports a NaN or infinite result.
	ErrArithmetic = errors.New("arithmetic error")
	// ErrParse reports a display buffer that does not hold a number.
	ErrParse = errors.New("malformed number")
)

// Evaluate applies a binary operator to two operands.
func Evaluate(a, b float64, op Op) (float64, error) {
	var r float64
	switch op {
	case OpAdd:
		r = a + b
	case OpSub:
		r = a - b
	case OpMul:
		r = a * b
	case OpDiv:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		r = a / b
	default:
		return 0, fmt.Errorf("evaluate: no operator")
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrArithmetic
	}
	return r, nil
}

// Parse converts a display buffer to a number. The "Error" sentinel and any
// other non-numeric text yield ErrParse; the caller decides the fallback.
func Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return v, nil
}

// valueOf coerces a display buffer to a number, falling back to zero on
// malformed input. The zero fallback preserves the lax behavior of pressing
// an operator over non-numeric text instead of surfacing a second error.
func valueOf(display string) float64 {
	v, err := Parse(display)
	if err != nil {
		return 0
	}
	return v
}
