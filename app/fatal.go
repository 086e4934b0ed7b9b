package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"serialterm/hal"
)

func stack() []byte { return debug.Stack() }

// fatalLines formats a recovered panic for the log and the screen.
func fatalLines(v any, stack []byte) []string {
	lines := []string{
		"SerialTerm panic:",
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	lines = append(lines, "stack:")
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// reportFatal writes a panic report to the logger, the serial link and the
// display, whichever exist.
func reportFatal(h hal.HAL, v any, stack []byte) {
	lines := fatalLines(v, stack)

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	text := "\r\n" + strings.Join(lines, "\r\n") + "\r\n"
	if ser := h.Serial(); ser != nil {
		_, _ = ser.Write([]byte(text))
	}
	if m := newMirror(h); m != nil {
		_, _ = m.Write([]byte(text))
	}
}
