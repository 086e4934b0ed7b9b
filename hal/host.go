//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultBaudRate is used for serial ports when no rate is configured.
const DefaultBaudRate = 115200

// HostConfig selects the host backends.
type HostConfig struct {
	// Port is a serial device (e.g. /dev/ttyUSB0). Empty runs the console on
	// stdin/stdout.
	Port string
	Baud int

	EEPROMPath string
	EEPROMSize uint32

	LogLevel string
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	fb     *hostFramebuffer
	kbd    *hostKeyboard
	flash  *EEPROMImage
	serial *Stream

	restore func() error
}

func newHost(cfg HostConfig) (*hostHAL, error) {
	var (
		serial  *Stream
		restore = func() error { return nil }
		logOut  io.Writer = os.Stderr
	)
	if cfg.Port != "" {
		s, err := OpenSerialPort(cfg.Port, cfg.Baud)
		if err != nil {
			return nil, err
		}
		serial = s
	} else {
		s, r, raw, err := openStdio()
		if err != nil {
			return nil, err
		}
		serial, restore = s, r
		if raw {
			logOut = crlfWriter{w: os.Stderr}
		}
	}

	logger := newHostLogger(logOut, cfg.LogLevel)
	flash, err := newHostFlash(cfg.EEPROMPath, cfg.EEPROMSize)
	if err != nil {
		logger.WriteLineString(err.Error())
	}
	return &hostHAL{
		logger:  logger,
		led:     &hostLED{logger: logger},
		fb:      newHostFramebuffer(320, 320),
		kbd:     newHostKeyboard(),
		flash:   flash,
		serial:  serial,
		restore: restore,
	}, nil
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Flash() Flash     { return h.flash }
func (h *hostHAL) Serial() Serial   { return h.serial }

func (h *hostHAL) close() error {
	var first error
	if err := h.restore(); err != nil {
		first = fmt.Errorf("restore terminal: %w", err)
	}
	if err := h.serial.Close(); err != nil && first == nil {
		first = fmt.Errorf("close serial: %w", err)
	}
	if err := h.flash.Close(); err != nil && first == nil {
		first = err
	}
	return first
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	entry *logrus.Entry
}

func newHostLogger(w io.Writer, level string) *hostLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	return &hostLogger{entry: l.WithField("component", "serialterm")}
}

func (l *hostLogger) WriteLineString(s string) {
	l.entry.Info(s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.entry.Info(string(b))
}

// crlfWriter expands "\n" to "\r\n" for terminals in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (c crlfWriter) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p)+8)
	for _, b := range p {
		if b == '\n' {
			out = append(out, '\r')
		}
		out = append(out, b)
	}
	if _, err := c.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

// hostLED has no pin; state changes go to the log.
type hostLED struct {
	logger *hostLogger
}

func (l *hostLED) High() { l.logger.WriteLineString("led: HIGH") }
func (l *hostLED) Low()  { l.logger.WriteLineString("led: LOW") }
