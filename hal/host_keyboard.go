//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl {
		// Ctrl chords arrive as control runes, the way a terminal would
		// deliver them.
		if inpututil.IsKeyJustPressed(ebiten.KeyC) {
			emit(KeyEvent{Press: true, Rune: 0x03})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyV) {
			emit(KeyEvent{Press: true, Rune: 0x16})
		}
		return
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		emit(KeyEvent{Code: KeyEnter, Press: true})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		emit(KeyEvent{Code: KeyEscape, Press: true})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		emit(KeyEvent{Code: KeyBackspace, Press: true})
	}
}
