package calc

import (
	"math"
	"testing"
)

func TestFormat_IntegerCollapse(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{5, "5"},
		{-12, "-12"},
		{2.0000000001, "2"},
		{41.9999999999, "42"},
		{1e6, "1000000"},
	}
	for _, tc := range cases {
		if got := Format(tc.v); got != tc.want {
			t.Fatalf("Format(%v)=%q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormat_Fractions(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{1.5, "1.5"},
		{0.05, "0.05"},
		{1.0 / 3.0, "0.3333333333"},
	}
	for _, tc := range cases {
		if got := Format(tc.v); got != tc.want {
			t.Fatalf("Format(%v)=%q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormat_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Format(v); got != ErrorText {
			t.Fatalf("Format(%v)=%q, want %q", v, got, ErrorText)
		}
	}
}

func TestFormat_ExtremeMagnitudesStayFinite(t *testing.T) {
	for _, v := range []float64{math.MaxFloat64, -math.MaxFloat64, math.Nextafter(math.MaxFloat64, 0)} {
		s := Format(v)
		rt, err := Parse(s)
		if err != nil {
			t.Fatalf("Format(%v)=%q does not parse: %v", v, s, err)
		}
		if math.IsInf(rt, 0) || math.IsNaN(rt) {
			t.Fatalf("Format(%v)=%q round-trips to non-finite %v", v, s, rt)
		}
	}
}

func TestFormat_Idempotent(t *testing.T) {
	values := []float64{
		0, 1, -1, 0.1, 2.0000000001, 1.0 / 3.0, 123456.789,
		math.Pi, 1e20, -1e20, 5e-7, math.MaxFloat64,
	}
	for _, v := range values {
		s := Format(v)
		rt, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(Format(%v)=%q): %v", v, s, err)
		}
		if again := Format(rt); again != s {
			t.Fatalf("Format not idempotent for %v: %q then %q", v, s, again)
		}
	}
}
