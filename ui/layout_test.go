package ui

import (
	"image"
	"testing"

	"tally/calc"
)

func TestLayout_WrapsEveryFourColumns(t *testing.T) {
	buttons := Layout()
	for i := 0; i < len(buttons)-1; i++ {
		col := i % Columns
		row := i / Columns
		wantX := Pad + col*(BtnW+Pad)
		wantY := DisplayH + Pad + row*(BtnH+Pad)
		if buttons[i].Rect.Min.X != wantX || buttons[i].Rect.Min.Y != wantY {
			t.Fatalf("button %d (%q) at %v, want min (%d,%d)", i, buttons[i].Label, buttons[i].Rect, wantX, wantY)
		}
	}
}

func TestLayout_EqualsIsLastAndFullWidth(t *testing.T) {
	buttons := Layout()
	eq := buttons[len(buttons)-1]
	if eq.Symbol.Kind != calc.KindEquals {
		t.Fatalf("last button is %q, want equals", eq.Label)
	}
	if eq.Rect.Min.X != Pad || eq.Rect.Max.X != GridW-Pad {
		t.Fatalf("equals spans [%d,%d), want [%d,%d)", eq.Rect.Min.X, eq.Rect.Max.X, Pad, GridW-Pad)
	}
	for _, b := range buttons[:len(buttons)-1] {
		if b.Rect.Max.Y > eq.Rect.Min.Y {
			t.Fatalf("button %q extends below the equals row", b.Label)
		}
	}
}

func TestLayout_NoOverlap(t *testing.T) {
	buttons := Layout()
	for i := range buttons {
		for j := i + 1; j < len(buttons); j++ {
			if buttons[i].Rect.Overlaps(buttons[j].Rect) {
				t.Fatalf("buttons %q and %q overlap", buttons[i].Label, buttons[j].Label)
			}
		}
	}
}

func TestLayout_CoversEveryInput(t *testing.T) {
	buttons := Layout()
	seenDigits := map[byte]bool{}
	seenKinds := map[calc.SymbolKind]bool{}
	for _, b := range buttons {
		seenKinds[b.Symbol.Kind] = true
		if b.Symbol.Kind == calc.KindDigit {
			seenDigits[b.Symbol.Digit] = true
		}
	}
	for d := byte(0); d <= 9; d++ {
		if !seenDigits[d] {
			t.Fatalf("no button for digit %d", d)
		}
	}
	for _, k := range []calc.SymbolKind{
		calc.KindDot, calc.KindOperator, calc.KindClear, calc.KindEquals,
		calc.KindBackspace, calc.KindPercent, calc.KindSign, calc.KindFunc, calc.KindMemory,
	} {
		if !seenKinds[k] {
			t.Fatalf("no button of kind %d", k)
		}
	}
}

func TestHitTest(t *testing.T) {
	buttons := Layout()
	for i, b := range buttons {
		center := b.Rect.Min.Add(b.Rect.Size().Div(2))
		if got := HitTest(buttons, center); got != i {
			t.Fatalf("center of %q hit %d, want %d", b.Label, got, i)
		}
	}

	if got := HitTest(buttons, image.Pt(0, 0)); got != -1 {
		t.Fatalf("HitTest(0,0)=%d, want -1 (padding)", got)
	}
}

func TestHitTest_SharedEdgeIsUnambiguous(t *testing.T) {
	buttons := Layout()
	// The right edge of one button is outside it (half-open bounds), so a
	// point there can only belong to a neighbor, never to two buttons.
	b := buttons[0]
	edge := image.Pt(b.Rect.Max.X, b.Rect.Min.Y)
	hits := 0
	for _, other := range buttons {
		if edge.In(other.Rect) {
			hits++
		}
	}
	if hits > 1 {
		t.Fatalf("edge point %v contained in %d buttons", edge, hits)
	}
	if edge.In(b.Rect) {
		t.Fatalf("Max.X edge counted as inside its own button")
	}
}
