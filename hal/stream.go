package hal

import (
	"io"
	"sync"
)

const streamReadChunk = 64

// Stream adapts a blocking reader into the non-blocking Serial contract.
//
// A reader goroutine moves incoming bytes into a pending buffer. Available,
// ReadByte and PeekByte only look at that buffer and never block.
type Stream struct {
	mu      sync.Mutex
	pending []byte
	err     error

	wmu sync.Mutex
	w   io.Writer

	closer io.Closer
}

// NewStream starts reading from r in the background. Writes go to w.
//
// r may be nil, in which case input only arrives through Feed.
func NewStream(r io.Reader, w io.Writer) *Stream {
	return newStream(r, w, nil)
}

func newStream(r io.Reader, w io.Writer, c io.Closer) *Stream {
	s := &Stream{w: w, closer: c}
	if r != nil {
		go s.readLoop(r)
	}
	return s
}

func (s *Stream) readLoop(r io.Reader) {
	buf := make([]byte, streamReadChunk)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			s.Feed(buf[:n])
		}
		if err != nil {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
			return
		}
	}
}

// Feed appends p to the pending input as if it had been read.
func (s *Stream) Feed(p []byte) {
	if len(p) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, p...)
}

// Available reports the number of pending input bytes.
func (s *Stream) Available() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// ReadByte consumes the next pending byte. With nothing pending it returns
// the reader's error, or ErrNoData while the reader is still running.
func (s *Stream) ReadByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return 0, s.emptyErr()
	}
	b := s.pending[0]
	s.pending = s.pending[1:]
	if len(s.pending) == 0 {
		s.pending = nil
	}
	return b, nil
}

// PeekByte is ReadByte without consuming the byte.
func (s *Stream) PeekByte() (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return 0, s.emptyErr()
	}
	return s.pending[0], nil
}

func (s *Stream) emptyErr() error {
	if s.err != nil {
		return s.err
	}
	return ErrNoData
}

// Write sends p to the output writer. Concurrent writes are serialized.
func (s *Stream) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, ErrNotImplemented
	}
	s.wmu.Lock()
	defer s.wmu.Unlock()
	return s.w.Write(p)
}

// Err returns the error that stopped the reader goroutine, if any.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close releases the underlying device when the stream owns one.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
