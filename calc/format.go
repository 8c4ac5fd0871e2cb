package calc

import (
	"math"
	"strconv"
)

// integerEpsilon collapses float noise around whole numbers, so 2.0000000001
// still displays as "2".
const integerEpsilon = 1e-9

// Format renders a value as display text. Values within integerEpsilon of a
// whole number render without a fractional part; everything else renders
// with up to 10 significant digits, shortened to the briefest form that
// round-trips. The decimal separator is always '.'.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorText
	}
	r := math.Round(v)
	if math.Abs(v-r) < integerEpsilon && math.Abs(r) < 1e15 {
		return strconv.FormatFloat(r, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'g', 10, 64)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		// Rounding to 10 significant digits can carry past MaxFloat64,
		// leaving text that no longer parses finite. Use the shortest
		// exact form instead.
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if short := strconv.FormatFloat(f, 'g', -1, 64); len(short) < len(s) {
		s = short
	}
	return s
}
