package lcd

import (
	"image/color"
	"testing"

	"serialterm/hal"
)

type fakeFB struct {
	w, h     int
	buf      []byte
	presents int
	scroll   int16
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFB) Width() int              { return f.w }
func (f *fakeFB) Height() int             { return f.h }
func (f *fakeFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFB) StrideBytes() int        { return f.w * 2 }
func (f *fakeFB) Buffer() []byte          { return f.buf }
func (f *fakeFB) Present() error          { f.presents++; return nil }
func (f *fakeFB) SetScroll(line int16)    { f.scroll = line }

func (f *fakeFB) ClearRGB(r, g, b uint8) {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

func (f *fakeFB) lit() int {
	n := 0
	for i := 0; i+1 < len(f.buf); i += 2 {
		if f.buf[i] != 0 || f.buf[i+1] != 0 {
			n++
		}
	}
	return n
}

func TestNew_RejectsUnusableFramebuffer(t *testing.T) {
	if m := New(nil); m != nil {
		t.Fatalf("New(nil)=%v; want nil", m)
	}
}

func TestMirror_WriteDrawsAndPresents(t *testing.T) {
	fb := newFakeFB(320, 240)
	m := New(fb)
	if m == nil {
		t.Fatalf("New returned nil for an RGB565 framebuffer")
	}
	if fb.lit() != 0 {
		t.Fatalf("screen not cleared after New")
	}
	before := fb.presents

	n, err := m.Write([]byte("st> led on"))
	if err != nil || n != len("st> led on") {
		t.Fatalf("Write=%d,%v; want %d,nil", n, err, len("st> led on"))
	}
	if fb.lit() == 0 {
		t.Fatalf("Write drew nothing")
	}
	if fb.presents != before+1 {
		t.Fatalf("presents after Write=%d; want %d", fb.presents, before+1)
	}

	m.Reset()
	if fb.lit() != 0 {
		t.Fatalf("Reset left %d pixels lit", fb.lit())
	}
}

func TestFBDisplay_FillRectangleClips(t *testing.T) {
	fb := newFakeFB(4, 4)
	d := &fbDisplay{fb: fb}
	if err := d.FillRectangle(2, 2, 10, 10, color.RGBA{R: 255, G: 255, B: 255}); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	if got := fb.lit(); got != 4 {
		t.Fatalf("lit=%d; want 4", got)
	}
	if fb.buf[(2*4+2)*2] != 0xFF || fb.buf[(2*4+2)*2+1] != 0xFF {
		t.Fatalf("white pixel encoded as %02x%02x; want ffff", fb.buf[(2*4+2)*2+1], fb.buf[(2*4+2)*2])
	}

	d.SetPixel(-1, 0, color.RGBA{R: 255})
	d.SetPixel(0, 4, color.RGBA{R: 255})
	if got := fb.lit(); got != 4 {
		t.Fatalf("out-of-bounds SetPixel drew: lit=%d", got)
	}

	d.SetScroll(3)
	if fb.scroll != 3 {
		t.Fatalf("SetScroll not forwarded: %d", fb.scroll)
	}
}

func TestRGB565(t *testing.T) {
	tcs := []struct {
		c    color.RGBA
		want uint16
	}{
		{color.RGBA{}, 0},
		{color.RGBA{R: 255}, 0xF800},
		{color.RGBA{G: 255}, 0x07E0},
		{color.RGBA{B: 255}, 0x001F},
	}
	for _, tc := range tcs {
		if got := rgb565(tc.c); got != tc.want {
			t.Fatalf("rgb565(%v)=%#04x; want %#04x", tc.c, got, tc.want)
		}
	}
}
