package ui

import (
	"time"

	"tally/calc"
)

// PressFlashDuration is how long a pressed button stays highlighted.
// Render-only; calculator state never depends on it.
const PressFlashDuration = 100 * time.Millisecond

// Frame is the render model: everything a frontend needs to draw one tick.
type Frame struct {
	Display   string
	Memory    bool
	Buttons   []Button
	Pressed   int // index into Buttons, -1 when idle
	PressedAt time.Time
	History   []calc.Entry
}

// FlashAlpha returns the press highlight intensity in [0,1] at time now,
// fading linearly over PressFlashDuration.
func (f *Frame) FlashAlpha(now time.Time) float64 {
	if f.Pressed < 0 {
		return 0
	}
	elapsed := now.Sub(f.PressedAt)
	if elapsed < 0 || elapsed >= PressFlashDuration {
		return 0
	}
	return 1 - float64(elapsed)/float64(PressFlashDuration)
}
