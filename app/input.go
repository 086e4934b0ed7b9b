package app

import (
	"unicode/utf8"

	"serialterm/hal"
)

// keyBytes translates a key press into the bytes a serial terminal would send.
func keyBytes(ev hal.KeyEvent) []byte {
	if !ev.Press {
		return nil
	}
	switch ev.Code {
	case hal.KeyEnter:
		return []byte{'\r'}
	case hal.KeyBackspace:
		return []byte{0x7f}
	case hal.KeyTab:
		return []byte{'\t'}
	}
	if ev.Rune == 0 || !utf8.ValidRune(ev.Rune) {
		return nil
	}
	return utf8.AppendRune(nil, ev.Rune)
}
