package lcd

import (
	"image/color"

	"serialterm/hal"

	"tinygo.org/x/drivers"
)

// fbDisplay draws into an RGB565 framebuffer on behalf of tinyterm.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d *fbDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	buf := d.fb.Buffer()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	off := iy*d.fb.StrideBytes() + ix*2
	if off+1 >= len(buf) {
		return
	}
	pixel := rgb565(c)
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	buf := d.fb.Buffer()
	w, h := d.fb.Width(), d.fb.Height()

	x0 := clamp(int(x), 0, w)
	y0 := clamp(int(y), 0, h)
	x1 := clamp(int(x)+int(width), 0, w)
	y1 := clamp(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565(c)
	lo, hi := byte(pixel), byte(pixel>>8)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off+1 >= len(buf) {
				break
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// SetScroll forwards tinyterm's hardware scroll offset when the framebuffer
// can show it.
func (d *fbDisplay) SetScroll(line int16) {
	if s, ok := d.fb.(hal.Scroller); ok {
		s.SetScroll(line)
	}
}

func (d *fbDisplay) SetRotation(drivers.Rotation) error { return nil }

func rgb565(c color.RGBA) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
