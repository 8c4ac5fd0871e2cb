package hal

import (
	"io"
	"os"
	"sync"
	"time"
)

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	ptr    *hostPointer
	clip   hostClipboard
	t      hostTime
}

// New returns a host HAL with a framebuffer of the given size.
func New(width, height int) HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stderr},
		fb:     newHostFramebuffer(width, height),
		kbd:    newHostKeyboard(),
		ptr:    newHostPointer(),
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input         { return hostInput{kbd: h.kbd, ptr: h.ptr} }
func (h *hostHAL) Clipboard() Clipboard { return h.clip }
func (h *hostHAL) Time() Time           { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
	ptr *hostPointer
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
func (in hostInput) Pointer() Pointer   { return in.ptr }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.w, s)
	io.WriteString(l.w, "\n")
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	io.WriteString(l.w, "\n")
}

type hostTime struct{}

func (hostTime) Now() time.Time { return time.Now() }
