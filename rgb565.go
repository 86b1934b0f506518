package framebuf

import "encoding/binary"

// rgb565 stores one native-endian uint16 per pixel. No byte swapping is done;
// see pixcolor.SwapBytes16 for panels that want the high byte first.
type rgb565 struct{}

func (rgb565) setPixel(fb *FrameBuffer, x, y int, c uint32) {
	binary.NativeEndian.PutUint16(fb.buf[(x+y*fb.stride)<<1:], uint16(c))
}

func (rgb565) getPixel(fb *FrameBuffer, x, y int) uint32 {
	return uint32(binary.NativeEndian.Uint16(fb.buf[(x+y*fb.stride)<<1:]))
}

// fillRect encodes the color once at the start of each row and replicates
// the 2-byte pattern across the span.
func (rgb565) fillRect(fb *FrameBuffer, x, y, w, h int, c uint32) {
	for yy := y; yy < y+h; yy++ {
		start := (x + yy*fb.stride) << 1
		span := fb.buf[start : start+w<<1]
		binary.NativeEndian.PutUint16(span, uint16(c))
		replicate(span, 2)
	}
}
