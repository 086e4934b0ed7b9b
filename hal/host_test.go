//go:build !tinygo

package hal

import (
	"bytes"
	"strings"
	"testing"
)

func TestHostLED_LogsState(t *testing.T) {
	var buf bytes.Buffer
	led := &hostLED{logger: newHostLogger(&buf, "info")}

	led.High()
	led.Low()
	out := buf.String()
	hi := strings.Index(out, "led: HIGH")
	lo := strings.Index(out, "led: LOW")
	if hi < 0 || lo < 0 || lo < hi {
		t.Fatalf("log=%q; want led: HIGH then led: LOW", out)
	}
}

func TestHostLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := newHostLogger(&buf, "warn")
	l.WriteLineString("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info line written at warn level: %q", buf.String())
	}
}

func TestCRLFWriter(t *testing.T) {
	var buf bytes.Buffer
	n, err := crlfWriter{w: &buf}.Write([]byte("a\nb\n"))
	if err != nil || n != 4 {
		t.Fatalf("Write=%d,%v; want 4,nil", n, err)
	}
	if got := buf.String(); got != "a\r\nb\r\n" {
		t.Fatalf("output=%q; want %q", got, "a\r\nb\r\n")
	}
}
