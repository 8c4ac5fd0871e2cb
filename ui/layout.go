package ui

import (
	"image"

	"tally/calc"
)

// Keypad geometry. Buttons wrap every Columns entries; Equals is laid out
// last and spans the full row width.
const (
	BtnW     = 64
	BtnH     = 44
	Pad      = 8
	Columns  = 4
	DisplayH = 72
	SidebarW = 200
)

// Button is one hit-testable region of the keypad. Immutable after layout.
type Button struct {
	Label  string
	Symbol calc.Symbol
	Rect   image.Rectangle
}

type buttonSpec struct {
	label  string
	symbol calc.Symbol
}

// The keypad, top-left to bottom-right. Equals is appended separately
// because it breaks the grid.
var keypadSpecs = []buttonSpec{
	{"MC", calc.Memory(calc.MemClear)},
	{"MR", calc.Memory(calc.MemRecall)},
	{"MS", calc.Memory(calc.MemStore)},
	{"M+", calc.Memory(calc.MemAdd)},
	{"M-", calc.Memory(calc.MemSubtract)},
	{"sin", calc.Function(calc.FuncSin)},
	{"cos", calc.Function(calc.FuncCos)},
	{"tan", calc.Function(calc.FuncTan)},
	{"log", calc.Function(calc.FuncLog)},
	{"ln", calc.Function(calc.FuncLn)},
	{"sqrt", calc.Function(calc.FuncSqrt)},
	{"x^2", calc.Function(calc.FuncSquare)},
	{"1/x", calc.Function(calc.FuncInverse)},
	{"C", calc.Clear},
	{"DEL", calc.Backspace},
	{"%", calc.Percent},
	{"7", calc.Digit(7)},
	{"8", calc.Digit(8)},
	{"9", calc.Digit(9)},
	{"/", calc.Operator(calc.OpDiv)},
	{"4", calc.Digit(4)},
	{"5", calc.Digit(5)},
	{"6", calc.Digit(6)},
	{"*", calc.Operator(calc.OpMul)},
	{"1", calc.Digit(1)},
	{"2", calc.Digit(2)},
	{"3", calc.Digit(3)},
	{"-", calc.Operator(calc.OpSub)},
	{"0", calc.Digit(0)},
	{".", calc.Dot},
	{"+/-", calc.Sign},
	{"+", calc.Operator(calc.OpAdd)},
}

var equalsSpec = buttonSpec{"=", calc.Equals}

// GridW is the keypad width including outer padding.
const GridW = Pad + Columns*(BtnW+Pad)

// ScreenSize returns the framebuffer dimensions the layout needs.
func ScreenSize() (w, h int) {
	rows := (len(keypadSpecs)+Columns-1)/Columns + 1 // +1 for Equals
	return GridW + SidebarW, DisplayH + rows*(BtnH+Pad) + Pad
}

// Layout computes the fixed keypad geometry. Rectangles are half-open
// (image.Rectangle semantics), so adjacent buttons never share a point.
func Layout() []Button {
	buttons := make([]Button, 0, len(keypadSpecs)+1)
	for i, spec := range keypadSpecs {
		col := i % Columns
		row := i / Columns
		x := Pad + col*(BtnW+Pad)
		y := DisplayH + Pad + row*(BtnH+Pad)
		buttons = append(buttons, Button{
			Label:  spec.label,
			Symbol: spec.symbol,
			Rect:   image.Rect(x, y, x+BtnW, y+BtnH),
		})
	}

	rows := (len(keypadSpecs) + Columns - 1) / Columns
	y := DisplayH + Pad + rows*(BtnH+Pad)
	buttons = append(buttons, Button{
		Label:  equalsSpec.label,
		Symbol: equalsSpec.symbol,
		Rect:   image.Rect(Pad, y, GridW-Pad, y+BtnH),
	})
	return buttons
}

// HitTest returns the index of the button containing p, or -1. Half-open
// bounds mean a point on a shared edge resolves to exactly one button.
func HitTest(buttons []Button, p image.Point) int {
	for i, b := range buttons {
		if p.In(b.Rect) {
			return i
		}
	}
	return -1
}
