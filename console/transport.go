package console

import "io"

// Transport is the byte stream the console runs on. hal.Serial satisfies it.
//
// The console only calls ReadByte and PeekByte after Available reported
// pending bytes, so implementations never need to block.
type Transport interface {
	Available() int
	ReadByte() (byte, error)
	PeekByte() (byte, error)
	Write(p []byte) (int, error)
}

// Mirror returns a transport that also copies every write to w.
// Errors from w are ignored; the result of the wrapped write is returned.
func Mirror(t Transport, w io.Writer) Transport {
	if w == nil {
		return t
	}
	return &mirror{Transport: t, w: w}
}

type mirror struct {
	Transport
	w io.Writer
}

func (m *mirror) Write(p []byte) (int, error) {
	n, err := m.Transport.Write(p)
	_, _ = m.w.Write(p)
	return n, err
}
