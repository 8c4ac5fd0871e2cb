package hal

import (
	"errors"
	"time"
)

var ErrNotImplemented = errors.New("not implemented")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode identifies the few non-text keys the calculator cares about.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
)

// KeyEvent is a keyboard event. Text input arrives as a Rune with
// Code == KeyUnknown; control keys arrive as a Code with Rune == 0.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerEvent is a completed press at a framebuffer coordinate.
type PointerEvent struct {
	X int
	Y int
}

// Pointer provides press events in framebuffer space.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Clipboard is a pass-through to the platform clipboard.
type Clipboard interface {
	WriteText(s string) error
	ReadText() (string, error)
}

// Time provides the wall clock. Indirected so render-only effects
// (the press flash) stay steerable under test.
type Time interface {
	Now() time.Time
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// HAL is the only contact point between the calculator and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clipboard() Clipboard
	Time() Time
}
