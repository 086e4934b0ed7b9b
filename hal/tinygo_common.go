//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type discardLogger struct{}

func (discardLogger) WriteLineString(string) {}
func (discardLogger) WriteLineBytes([]byte)  {}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// uartSerial exposes the UART receive ring buffer. machine.UART has no peek,
// so one byte of lookahead is kept here.
type uartSerial struct {
	uart   *machine.UART
	peek   byte
	peeked bool
}

func (s *uartSerial) Available() int {
	if s.uart == nil {
		return 0
	}
	n := s.uart.Buffered()
	if s.peeked {
		n++
	}
	return n
}

func (s *uartSerial) ReadByte() (byte, error) {
	if s.peeked {
		s.peeked = false
		return s.peek, nil
	}
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	if s.uart.Buffered() == 0 {
		return 0, ErrNoData
	}
	return s.uart.ReadByte()
}

func (s *uartSerial) PeekByte() (byte, error) {
	if s.peeked {
		return s.peek, nil
	}
	b, err := s.ReadByte()
	if err != nil {
		return 0, err
	}
	s.peek, s.peeked = b, true
	return b, nil
}

func (s *uartSerial) Write(p []byte) (int, error) {
	if s.uart == nil {
		return 0, ErrNotImplemented
	}
	return s.uart.Write(p)
}
