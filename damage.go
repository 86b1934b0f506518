package framebuf

import (
	"bytes"
	"image"
)

// Damage compares fb with prev, an earlier copy of the same frame, and returns
// the smallest rectangle covering every changed pixel. The rectangle is
// widened to whole storage bytes and clipped to the bounds, so Region can
// extract it without splitting a byte. It is empty when nothing changed.
//
// If prev has another format or size the whole frame is reported.
func (fb *FrameBuffer) Damage(prev *FrameBuffer) image.Rectangle {
	if prev == nil || prev.format != fb.format || prev.width != fb.width || prev.height != fb.height {
		return fb.Bounds()
	}

	minX, maxX := fb.width, -1
	minY, maxY := fb.height, -1
	for y := 0; y < fb.height; y++ {
		if fb.rowEqual(prev, y) {
			continue
		}
		changed := false
		for x := 0; x < fb.width; x++ {
			if fb.p.getPixel(fb, x, y) != prev.p.getPixel(prev, x, y) {
				minX = min(minX, x)
				maxX = max(maxX, x)
				changed = true
			}
		}
		if changed {
			minY = min(minY, y)
			maxY = y
		}
	}
	if maxY < 0 {
		return image.Rectangle{}
	}
	return fb.align(image.Rect(minX, minY, maxX+1, maxY+1)).Intersect(fb.Bounds())
}

// rowEqual reports whether row y holds the same bytes in fb and prev. It is
// only a shortcut: MVLSB rows share bytes and always report false.
func (fb *FrameBuffer) rowEqual(prev *FrameBuffer, y int) bool {
	if fb.format == MVLSB {
		return false
	}
	bpp := registry[fb.format].bpp
	lo := y * fb.stride * bpp / 8
	hi := (y*fb.stride + roundUp(fb.width, registry[fb.format].xAlign)) * bpp / 8
	plo := y * prev.stride * bpp / 8
	return bytes.Equal(fb.buf[lo:hi], prev.buf[plo:plo+hi-lo])
}

// align widens r to whole storage bytes.
func (fb *FrameBuffer) align(r image.Rectangle) image.Rectangle {
	info := registry[fb.format]
	r.Min.X &^= info.xAlign - 1
	r.Max.X = roundUp(r.Max.X, info.xAlign)
	r.Min.Y &^= info.yAlign - 1
	r.Max.Y = roundUp(r.Max.Y, info.yAlign)
	return r
}

// Region returns a packed copy of the storage bytes covering r, row by row
// (band by band for MVLSB), in the layout the panel expects for a partial
// window write. r is clipped to the bounds and widened to whole bytes first;
// the second result is the rectangle actually copied.
func (fb *FrameBuffer) Region(r image.Rectangle) ([]byte, image.Rectangle) {
	r = r.Intersect(fb.Bounds())
	if r.Empty() {
		return nil, image.Rectangle{}
	}
	r = fb.align(r)

	if fb.format == MVLSB {
		out := make([]byte, 0, r.Dx()*r.Dy()/8)
		for band := r.Min.Y >> 3; band < r.Max.Y>>3; band++ {
			start := band*fb.stride + r.Min.X
			out = append(out, fb.buf[start:start+r.Dx()]...)
		}
		return out, r
	}

	bpp := registry[fb.format].bpp
	rowBytes := r.Dx() * bpp / 8
	out := make([]byte, 0, rowBytes*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := (y*fb.stride + r.Min.X) * bpp / 8
		out = append(out, fb.buf[start:start+rowBytes]...)
	}
	return out, r
}
