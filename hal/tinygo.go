//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger Logger
	led    *pinLED
	fb     Framebuffer
	kbd    Keyboard
	flash  Flash
	serial *uartSerial
}

// New returns a Pico / Pico 2 HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1. The UART carries the
// console, so log lines are discarded.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	return &tinyGoHAL{
		logger: discardLogger{},
		led:    &pinLED{pin: ledPin},
		fb:     &stubFramebuffer{w: 320, h: 320, format: PixelFormatRGB565},
		kbd:    &stubKeyboard{},
		flash:  newBoardFlash(),
		serial: &uartSerial{uart: uart},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Flash() Flash     { return h.flash }
func (h *tinyGoHAL) Serial() Serial   { return h.serial }
