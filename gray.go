package framebuf

// gs2HMSB packs 4 pixels per byte; pixel x occupies bits (x&3)*2 and up.
//
//	Pixels: 0  1  2  3
//	Values: 1  2  3  0
//	Byte:   0b00_11_10_01 = 0x39
type gs2HMSB struct{}

func (gs2HMSB) setPixel(fb *FrameBuffer, x, y int, c uint32) {
	i := (x + y*fb.stride) >> 2
	shift := uint(x&3) << 1
	fb.buf[i] = fb.buf[i]&^(0x03<<shift) | byte(c&0x03)<<shift
}

func (gs2HMSB) getPixel(fb *FrameBuffer, x, y int) uint32 {
	shift := uint(x&3) << 1
	return uint32(fb.buf[(x+y*fb.stride)>>2]>>shift) & 0x03
}

func (g gs2HMSB) fillRect(fb *FrameBuffer, x, y, w, h int, c uint32) {
	fillPacked(fb, g, 2, x, y, w, h, c, byte(c&0x03)*0x55)
}

// gs4HMSB packs 2 pixels per byte: high nibble = even x, low nibble = odd x.
//
//	Pixels: 0  1  2  3
//	Values: 5  10 3  12
//	Bytes:  0x5A  0x3C
type gs4HMSB struct{}

func (gs4HMSB) setPixel(fb *FrameBuffer, x, y int, c uint32) {
	i := (x + y*fb.stride) >> 1
	v := byte(c & 0x0F)
	if x&1 != 0 {
		fb.buf[i] = fb.buf[i]&0xF0 | v
	} else {
		fb.buf[i] = fb.buf[i]&0x0F | v<<4
	}
}

func (gs4HMSB) getPixel(fb *FrameBuffer, x, y int) uint32 {
	b := fb.buf[(x+y*fb.stride)>>1]
	if x&1 != 0 {
		return uint32(b & 0x0F)
	}
	return uint32(b >> 4)
}

func (g gs4HMSB) fillRect(fb *FrameBuffer, x, y, w, h int, c uint32) {
	fillPacked(fb, g, 1, x, y, w, h, c, byte(c&0x0F)*0x11)
}

// gs8 stores one byte per pixel.
type gs8 struct{}

func (gs8) setPixel(fb *FrameBuffer, x, y int, c uint32) {
	fb.buf[x+y*fb.stride] = byte(c)
}

func (gs8) getPixel(fb *FrameBuffer, x, y int) uint32 {
	return uint32(fb.buf[x+y*fb.stride])
}

func (gs8) fillRect(fb *FrameBuffer, x, y, w, h int, c uint32) {
	for yy := y; yy < y+h; yy++ {
		start := x + yy*fb.stride
		fillBytes(fb.buf[start:start+w], byte(c))
	}
}
