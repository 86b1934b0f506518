package framebuf

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/framebuf/pixcolor"
)

var (
	_ xdraw.Image    = (*FrameBuffer)(nil)
	_ display.Drawer = (*FrameBuffer)(nil)
)

// colorCodec converts between raw pixel values and color.Color for one format.
type colorCodec struct {
	model  color.Model
	decode func(v uint32) color.Color
	encode func(c color.Color) uint32
}

var monoCodec = colorCodec{
	model:  pixcolor.BitModel,
	decode: func(v uint32) color.Color { return pixcolor.Bit(v != 0) },
	encode: func(c color.Color) uint32 {
		if pixcolor.BitModel.Convert(c).(pixcolor.Bit) {
			return 1
		}
		return 0
	},
}

var codecs = [numFormats]colorCodec{
	MVLSB: monoCodec,
	MHLSB: monoCodec,
	MHMSB: monoCodec,
	RGB565: {
		model:  pixcolor.RGB565Model,
		decode: func(v uint32) color.Color { return pixcolor.RGB565(v) },
		encode: func(c color.Color) uint32 { return uint32(pixcolor.RGB565Model.Convert(c).(pixcolor.RGB565)) },
	},
	GS2HMSB: {
		model:  pixcolor.Gray2Model,
		decode: func(v uint32) color.Color { return pixcolor.Gray2{Y: uint8(v)} },
		encode: func(c color.Color) uint32 { return uint32(pixcolor.Gray2Model.Convert(c).(pixcolor.Gray2).Y) },
	},
	GS4HMSB: {
		model:  pixcolor.Gray4Model,
		decode: func(v uint32) color.Color { return pixcolor.Gray4{Y: uint8(v)} },
		encode: func(c color.Color) uint32 { return uint32(pixcolor.Gray4Model.Convert(c).(pixcolor.Gray4).Y) },
	},
	GS8: {
		model:  color.GrayModel,
		decode: func(v uint32) color.Color { return color.Gray{Y: uint8(v)} },
		encode: func(c color.Color) uint32 { return uint32(color.GrayModel.Convert(c).(color.Gray).Y) },
	},
}

// ColorModel returns the color model matching the pixel format.
func (fb *FrameBuffer) ColorModel() color.Model {
	return codecs[fb.format].model
}

// Bounds returns the visible area, anchored at the origin.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// At returns the color of the pixel at (x, y). It implements the image.Image
// interface; points outside the buffer read as the zero color.
func (fb *FrameBuffer) At(x, y int) color.Color {
	v, _ := fb.Pixel(x, y)
	return codecs[fb.format].decode(v)
}

// Set converts c with ColorModel and stores it at (x, y).
func (fb *FrameBuffer) Set(x, y int, c color.Color) {
	if fb.in(x, y) {
		fb.p.setPixel(fb, x, y, codecs[fb.format].encode(c))
	}
}

// Encode returns the raw value c is stored as in this frame buffer's format.
// It is the value to pass to SetPixel, Fill or a palette.
func (fb *FrameBuffer) Encode(c color.Color) uint32 {
	return codecs[fb.format].encode(c)
}

// Draw draws src onto the dst rectangle of fb, aligning sp in src with
// dst.Min. It implements display.Drawer and never fails.
//
// A *FrameBuffer source with the same format is copied raw, fb itself
// included, with overlapping rectangles handled as image/draw does. Anything
// else goes through color conversion.
func (fb *FrameBuffer) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	r := dst.Intersect(fb.Bounds())
	if r.Empty() {
		return nil
	}
	sp = sp.Add(r.Min.Sub(dst.Min))

	// Raw copy between buffers sharing an encoding.
	if s, ok := src.(*FrameBuffer); ok && s.format == fb.format {
		sr := image.Rectangle{Min: sp, Max: sp.Add(r.Size())}.Intersect(s.Bounds())
		if sr.Empty() {
			return nil
		}
		d := r.Min.Add(sr.Min.Sub(sp))
		if s == fb {
			fb.moveRect(d.X, d.Y, sr.Min.X, sr.Min.Y, sr.Dx(), sr.Dy())
			return nil
		}
		fb.copyRect(s, d.X, d.Y, sr.Min.X, sr.Min.Y, sr.Dx(), sr.Dy(), NoKey, nil)
		return nil
	}

	xdraw.Draw(fb, r, src, sp, xdraw.Src)
	return nil
}

// DrawScaled scales src to fill the r rectangle of fb. Parts of r outside fb
// are clipped. A nil interp uses nearest neighbor, which keeps the hard edges
// expected on monochrome and low-depth grayscale panels.
func (fb *FrameBuffer) DrawScaled(r image.Rectangle, src image.Image, interp xdraw.Interpolator) {
	if interp == nil {
		interp = xdraw.NearestNeighbor
	}
	interp.Scale(fb, r, src, src.Bounds(), xdraw.Src, nil)
}

// Halt implements conn.Resource. A FrameBuffer holds no device state, so
// there is nothing to stop.
func (fb *FrameBuffer) Halt() error {
	return nil
}
