package app

import (
	"image"
	"time"

	"tally/calc"
	"tally/hal"
	"tally/ui"
)

// Calculator owns the core state and drives it from HAL input. One step
// drains pending input, applies the resulting symbols and repaints; there
// is no other mutation path.
type Calculator struct {
	h hal.HAL

	st   calc.State
	hist calc.History
	mem  calc.MemoryRegister

	buttons   []ui.Button
	pressed   int
	pressedAt time.Time
}

// New builds the calculator and returns its per-tick step function.
func New(h hal.HAL) func() error {
	return newCalculator(h).step
}

func newCalculator(h hal.HAL) *Calculator {
	return &Calculator{
		h:       h,
		st:      calc.NewState(),
		buttons: ui.Layout(),
		pressed: -1,
	}
}

func (c *Calculator) step() error {
	c.pollKeyboard()
	c.pollPointer()
	c.draw(c.frame())
	return c.h.Display().Framebuffer().Present()
}

// frame snapshots the render model for this tick.
func (c *Calculator) frame() *ui.Frame {
	return &ui.Frame{
		Display:   c.st.Display,
		Memory:    c.mem.Has(),
		Buttons:   c.buttons,
		Pressed:   c.pressed,
		PressedAt: c.pressedAt,
		History:   c.hist.Entries(),
	}
}

func (c *Calculator) pollKeyboard() {
	events := c.h.Input().Keyboard().Events()
	for {
		select {
		case ev := <-events:
			c.handleKey(ev)
		default:
			return
		}
	}
}

func (c *Calculator) pollPointer() {
	events := c.h.Input().Pointer().Events()
	for {
		select {
		case ev := <-events:
			c.handlePointer(ev)
		default:
			return
		}
	}
}

func (c *Calculator) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyEnter:
		c.press(calc.Equals)
		return
	case hal.KeyBackspace:
		c.press(calc.Backspace)
		return
	case hal.KeyEscape:
		c.press(calc.Clear)
		return
	}
	switch ev.Rune {
	case 0x03: // Ctrl+C
		c.copyDisplay()
	case 0x16: // Ctrl+V
		c.paste()
	default:
		if sym, ok := ui.SymbolForRune(ev.Rune); ok {
			c.press(sym)
		}
	}
}

func (c *Calculator) handlePointer(ev hal.PointerEvent) {
	i := ui.HitTest(c.buttons, image.Pt(ev.X, ev.Y))
	if i < 0 {
		return
	}
	c.pressed = i
	c.pressedAt = c.h.Time().Now()
	c.press(c.buttons[i].Symbol)
}

func (c *Calculator) press(sym calc.Symbol) {
	if sym.Kind == calc.KindMemory {
		c.st = calc.ApplyMemory(c.st, &c.mem, sym.Mem)
		return
	}
	next, entry := calc.Apply(c.st, sym)
	if entry != nil {
		c.hist.Record(*entry)
	}
	if next.Display == calc.ErrorText && c.st.Display != calc.ErrorText {
		c.h.Logger().WriteLineString("calc: arithmetic error, pending operation reset")
	}
	c.st = next
}

func (c *Calculator) copyDisplay() {
	if err := c.h.Clipboard().WriteText(c.st.Display); err != nil {
		c.h.Logger().WriteLineString("clipboard: copy failed: " + err.Error())
	}
}

// paste replays clipboard text through the keymap, keeping only entry
// characters (digits and the decimal point) so pasted garbage cannot
// trigger commands.
func (c *Calculator) paste() {
	text, err := c.h.Clipboard().ReadText()
	if err != nil {
		c.h.Logger().WriteLineString("clipboard: paste failed: " + err.Error())
		return
	}
	for _, r := range text {
		sym, ok := ui.SymbolForRune(r)
		if !ok {
			continue
		}
		if sym.Kind == calc.KindDigit || sym.Kind == calc.KindDot {
			c.press(sym)
		}
	}
}
