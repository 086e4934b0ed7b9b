//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostEEPROMDefaultPath      = "serialterm.eeprom"
	hostEEPROMDefaultSizeBytes = 1024
	hostEEPROMEraseBlockBytes  = 256
)

var ErrFlashWriteRequiresErase = errors.New("flash write requires erase")

// EEPROMImage emulates the device EEPROM with a file. A fresh image is filled
// with 0xFF like erased memory.
type EEPROMImage struct {
	mu      sync.Mutex
	f       *os.File
	size    uint32
	scratch [hostEEPROMEraseBlockBytes]byte
}

// OpenEEPROM opens the image at path, creating an erased one of size bytes
// when the file is missing or empty. An existing image keeps its size.
func OpenEEPROM(path string, size uint32) (*EEPROMImage, error) {
	if size == 0 {
		size = hostEEPROMDefaultSizeBytes
	}
	img := newEEPROMImage()

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open eeprom image: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat eeprom image: %w", err)
	}
	switch {
	case st.Size() > int64(^uint32(0)):
		_ = f.Close()
		return nil, fmt.Errorf("eeprom image %q: %d bytes: %w", path, st.Size(), os.ErrInvalid)
	case st.Size() > 0:
		size = uint32(st.Size())
	default:
		img.f = f
		if err := img.fill(0, size); err != nil {
			_ = f.Close()
			return nil, err
		}
	}
	img.f, img.size = f, size
	return img, nil
}

// newHostFlash is OpenEEPROM with the host defaults. On failure it still
// returns an unbacked image whose reads fail with ErrNotImplemented.
func newHostFlash(path string, size uint32) (*EEPROMImage, error) {
	if path == "" {
		path = os.Getenv("SERIALTERM_EEPROM_PATH")
	}
	if path == "" {
		path = hostEEPROMDefaultPath
	}
	img, err := OpenEEPROM(path, size)
	if err != nil {
		return newEEPROMImage(), err
	}
	return img, nil
}

func newEEPROMImage() *EEPROMImage {
	img := &EEPROMImage{}
	for i := range img.scratch {
		img.scratch[i] = 0xFF
	}
	return img
}

func (f *EEPROMImage) fill(off, size uint32) error {
	for size > 0 {
		n := uint32(len(f.scratch))
		if n > size {
			n = size
		}
		if _, err := f.f.WriteAt(f.scratch[:n], int64(off)); err != nil {
			return fmt.Errorf("flash erase block at %d: %w", off, err)
		}
		off += n
		size -= n
	}
	return nil
}

func (f *EEPROMImage) SizeBytes() uint32 { return f.size }
func (f *EEPROMImage) EraseBlockBytes() uint32 {
	return hostEEPROMEraseBlockBytes
}

func (f *EEPROMImage) ReadAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, ErrNotImplemented
	}
	if off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}
	return f.f.ReadAt(p, int64(off))
}

func (f *EEPROMImage) WriteAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return 0, ErrNotImplemented
	}
	if off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}

	buf := make([]byte, len(p))
	if _, err := f.f.ReadAt(buf, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("flash read before write at %d: %w", off, err)
	}
	for i := range p {
		if buf[i]&p[i] != p[i] {
			return 0, ErrFlashWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, int64(off))
}

func (f *EEPROMImage) Erase(off, size uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return ErrNotImplemented
	}
	if size == 0 {
		return nil
	}
	if off%hostEEPROMEraseBlockBytes != 0 || size%hostEEPROMEraseBlockBytes != 0 {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	if off >= f.size || off+size > f.size {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	return f.fill(off, size)
}

// Close releases the image file.
func (f *EEPROMImage) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	if err != nil {
		return fmt.Errorf("close eeprom image: %w", err)
	}
	return nil
}
