//go:build !tinygo && cgo

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
	send := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		send(KeyEvent{Press: true, Rune: r})
	}

	for _, key := range []struct {
		key  ebiten.Key
		code KeyCode
	}{
		{ebiten.KeyEnter, KeyEnter},
		{ebiten.KeyNumpadEnter, KeyEnter},
		{ebiten.KeyBackspace, KeyBackspace},
		{ebiten.KeyTab, KeyTab},
	} {
		if inpututil.IsKeyJustPressed(key.key) {
			send(KeyEvent{Code: key.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(key.key) {
			send(KeyEvent{Code: key.code, Press: false})
		}
	}
}
