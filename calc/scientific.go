package calc

import (
	"fmt"
	"math"
)

// ApplyFunc applies a unary scientific function to x. Trigonometric
// functions take degrees. Results that are NaN or infinite (sqrt of a
// negative, log at or below zero, 1/x at zero) map to ErrArithmetic.
func ApplyFunc(fn Func, x float64) (float64, error) {
	var r float64
	switch fn {
	case FuncSqrt:
		r = math.Sqrt(x)
	case FuncSquare:
		r = x * x
	case FuncInverse:
		r = 1 / x
	case FuncSin:
		r = math.Sin(x * math.Pi / 180)
	case FuncCos:
		r = math.Cos(x * math.Pi / 180)
	case FuncTan:
		r = math.Tan(x * math.Pi / 180)
	case FuncLog:
		r = math.Log10(x)
	case FuncLn:
		r = math.Log(x)
	default:
		return 0, fmt.Errorf("applyfunc: unknown function %d", fn)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, ErrArithmetic
	}
	return r, nil
}
