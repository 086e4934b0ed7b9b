// Package lcd mirrors console output onto a framebuffer using tinyterm.
package lcd

import (
	"serialterm/hal"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// Mirror is an io.Writer that renders text on a framebuffer.
type Mirror struct {
	fb hal.Framebuffer
	d  *fbDisplay
	t  *tinyterm.Terminal
}

// New returns a mirror on fb, or nil when fb is missing or not RGB565.
func New(fb hal.Framebuffer) *Mirror {
	if fb == nil || fb.Format() != hal.PixelFormatRGB565 || fb.Buffer() == nil {
		return nil
	}
	m := &Mirror{fb: fb, d: &fbDisplay{fb: fb}}
	m.Reset()
	return m
}

// Reset clears the screen and homes the cursor.
func (m *Mirror) Reset() {
	m.t = tinyterm.NewTerminal(m.d)
	m.t.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: 10,
		FontOffset: 6,
	})
	m.fb.ClearRGB(0, 0, 0)
	m.d.SetScroll(0)
	_ = m.fb.Present()
}

// Write renders p and presents the framebuffer.
func (m *Mirror) Write(p []byte) (int, error) {
	n, err := m.t.Write(p)
	_ = m.d.Display()
	return n, err
}
