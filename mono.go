package framebuf

// monoValue returns the byte every pixel of a fully covered monochrome byte
// takes for color c.
func monoValue(c uint32) byte {
	if c != 0 {
		return 0xFF
	}
	return 0
}

// setBit sets or clears bit off of *b.
func setBit(b *byte, off uint, on bool) {
	if on {
		*b |= 1 << off
	} else {
		*b &^= 1 << off
	}
}

// mvlsb packs 8 vertical pixels per byte.
//
// Memory layout for an 8-row band, stride 3:
//
//	byte:  0  1  2
//	bit 0: x0 x1 x2  (row 0)
//	bit 1: x0 x1 x2  (row 1)
//	...
//	bit 7: x0 x1 x2  (row 7)
type mvlsb struct{}

func (mvlsb) setPixel(fb *FrameBuffer, x, y int, c uint32) {
	setBit(&fb.buf[(y>>3)*fb.stride+x], uint(y&7), c != 0)
}

func (mvlsb) getPixel(fb *FrameBuffer, x, y int) uint32 {
	return uint32(fb.buf[(y>>3)*fb.stride+x]>>(y&7)) & 0x01
}

// fillRect handles one band at a time: the rows of the rectangle that fall in
// the band form a single bit mask applied to each byte of the span.
func (mvlsb) fillRect(fb *FrameBuffer, x, y, w, h int, c uint32) {
	v := monoValue(c)
	yend := y + h
	for y < yend {
		lo := y & 7
		hi := min(8, lo+yend-y)
		mask := byte(1<<hi - 1<<lo)
		start := (y>>3)*fb.stride + x
		span := fb.buf[start : start+w]
		if mask == 0xFF {
			fillBytes(span, v)
		} else {
			for i := range span {
				span[i] = span[i]&^mask | v&mask
			}
		}
		y += hi - lo
	}
}

// monoHoriz packs 8 horizontal pixels per byte. The leftmost pixel of a byte
// is bit 7, or bit 0 when reverse is set.
type monoHoriz struct {
	reverse bool
}

func (m monoHoriz) offset(x int) uint {
	if m.reverse {
		return uint(x & 7)
	}
	return uint(7 - x&7)
}

func (m monoHoriz) setPixel(fb *FrameBuffer, x, y int, c uint32) {
	setBit(&fb.buf[(x+y*fb.stride)>>3], m.offset(x), c != 0)
}

func (m monoHoriz) getPixel(fb *FrameBuffer, x, y int) uint32 {
	return uint32(fb.buf[(x+y*fb.stride)>>3]>>m.offset(x)) & 0x01
}

func (m monoHoriz) fillRect(fb *FrameBuffer, x, y, w, h int, c uint32) {
	fillPacked(fb, m, 3, x, y, w, h, c, monoValue(c))
}

// fillPacked fills a rectangle of a horizontally packed format holding
// 1<<shift pixels per byte. Partial bytes at either end of a row go through
// setPixel and whole bytes in between are set to pattern.
func fillPacked(fb *FrameBuffer, p pixelFormat, shift uint, x, y, w, h int, c uint32, pattern byte) {
	align := 1<<shift - 1
	xend := x + w
	for yy := y; yy < y+h; yy++ {
		xx := x
		for xx < xend && xx&align != 0 {
			p.setPixel(fb, xx, yy, c)
			xx++
		}
		if n := (xend - xx) >> shift; n > 0 {
			start := (xx + yy*fb.stride) >> shift
			fillBytes(fb.buf[start:start+n], pattern)
			xx += n << shift
		}
		for ; xx < xend; xx++ {
			p.setPixel(fb, xx, yy, c)
		}
	}
}
