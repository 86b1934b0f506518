package framebuf

import (
	"errors"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Displayer)(nil)

// Displayer adapts a FrameBuffer to the tinygo drivers.Displayer interface so
// code written against tinygo displays can render into any format.
type Displayer struct {
	fb *FrameBuffer
}

// NewDisplayer returns a Displayer drawing into fb.
func NewDisplayer(fb *FrameBuffer) *Displayer {
	return &Displayer{fb: fb}
}

// Size returns the frame buffer size, saturated to the int16 range.
func (d *Displayer) Size() (x, y int16) {
	return int16(min(d.fb.width, math.MaxInt16)), int16(min(d.fb.height, math.MaxInt16))
}

// SetPixel converts c to the frame buffer's format and stores it.
func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.fb.Set(int(x), int(y), c)
}

// FillRectangle fills a clipped rectangle with c.
func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.fb.FillRect(int(x), int(y), int(width), int(height), d.fb.Encode(c))
	return nil
}

// Display is a no-op: pixels are visible in the buffer as soon as they are
// set. Pushing the buffer to a panel is up to the caller.
func (d *Displayer) Display() error {
	return nil
}

// SetRotation only accepts drivers.Rotation0; the buffer layout is fixed.
func (d *Displayer) SetRotation(rotation drivers.Rotation) error {
	if rotation != drivers.Rotation0 {
		return errors.New("framebuf: rotation not supported")
	}
	return nil
}
