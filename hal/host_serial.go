//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"

	"go.bug.st/serial"
	"golang.org/x/term"
)

const (
	ctrlC = 0x03
	ctrlD = 0x04
)

// OpenSerialPort opens a UART device at baud (8N1) as a console stream.
func OpenSerialPort(name string, baud int) (*Stream, error) {
	if baud <= 0 {
		baud = DefaultBaudRate
	}
	p, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", name, err)
	}
	return newStream(p, p, p), nil
}

// SerialPorts lists the serial devices present on the host.
func SerialPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}

// openStdio returns a stream over stdin/stdout. When stdin is a terminal it is
// switched to raw mode so key presses arrive unbuffered and unechoed; Ctrl-C
// and Ctrl-D then interrupt the process instead of reaching the console.
func openStdio() (s *Stream, restore func() error, raw bool, err error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return NewStream(os.Stdin, os.Stdout), func() error { return nil }, false, nil
	}
	st, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, false, fmt.Errorf("stdin raw mode: %w", err)
	}
	restore = func() error { return term.Restore(fd, st) }
	in := &interruptReader{r: os.Stdin, onInterrupt: interruptSelf}
	return NewStream(in, os.Stdout), restore, true, nil
}

// interruptReader passes bytes through until it sees Ctrl-C or Ctrl-D.
type interruptReader struct {
	r           io.Reader
	onInterrupt func()
}

func (ir *interruptReader) Read(p []byte) (int, error) {
	n, err := ir.r.Read(p)
	for i := 0; i < n; i++ {
		if p[i] == ctrlC || p[i] == ctrlD {
			ir.onInterrupt()
			return i, io.EOF
		}
	}
	return n, err
}

func interruptSelf() {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return
	}
	_ = p.Signal(os.Interrupt)
}
