package hal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func waitAvailable(t *testing.T, s *Stream, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for s.Available() < n {
		if time.Now().After(deadline) {
			t.Fatalf("Available()=%d; want >= %d", s.Available(), n)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStream_ReadPeekConsume(t *testing.T) {
	s := NewStream(strings.NewReader("ab"), nil)
	waitAvailable(t, s, 2)

	b, err := s.PeekByte()
	if err != nil || b != 'a' {
		t.Fatalf("PeekByte()=%q,%v; want 'a',nil", b, err)
	}
	if got := s.Available(); got != 2 {
		t.Fatalf("Available() after peek=%d; want 2", got)
	}
	for _, want := range []byte("ab") {
		b, err := s.ReadByte()
		if err != nil || b != want {
			t.Fatalf("ReadByte()=%q,%v; want %q,nil", b, err, want)
		}
	}
	if got := s.Available(); got != 0 {
		t.Fatalf("Available() after drain=%d; want 0", got)
	}
}

func TestStream_EmptyReportsReaderError(t *testing.T) {
	s := NewStream(strings.NewReader(""), nil)
	deadline := time.Now().Add(2 * time.Second)
	for s.Err() == nil {
		if time.Now().After(deadline) {
			t.Fatalf("reader error never recorded")
		}
		time.Sleep(time.Millisecond)
	}
	if _, err := s.ReadByte(); !errors.Is(err, io.EOF) {
		t.Fatalf("ReadByte() err=%v; want io.EOF", err)
	}
}

func TestStream_FeedWithoutReader(t *testing.T) {
	s := NewStream(nil, nil)
	if _, err := s.ReadByte(); !errors.Is(err, ErrNoData) {
		t.Fatalf("ReadByte() on empty err=%v; want ErrNoData", err)
	}
	s.Feed([]byte("\r\n"))
	if got := s.Available(); got != 2 {
		t.Fatalf("Available()=%d; want 2", got)
	}
	if _, err := s.Write([]byte("x")); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Write() err=%v; want ErrNotImplemented", err)
	}
}

func TestStream_Write(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(nil, &out)
	if _, err := s.Write([]byte("st> ")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if out.String() != "st> " {
		t.Fatalf("out=%q; want %q", out.String(), "st> ")
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
