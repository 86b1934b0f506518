package pixcolor

import (
	"image/color"
	"strconv"
)

// luma returns the 16-bit luminance of c.
// Standard grayscale conversion: 0.299R + 0.587G + 0.114B
func luma(c color.Color) uint32 {
	r, g, b, _ := c.RGBA()
	return (299*r + 587*g + 114*b + 500) / 1000
}

// Bit represents a 1-bit monochrome color.
type Bit bool

// RGBA returns black for false and white for true.
func (c Bit) RGBA() (r, g, b, a uint32) {
	if c {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (c Bit) String() string {
	if c {
		return "Bit(1)"
	}
	return "Bit(0)"
}

// toBit thresholds the luminance at mid gray.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	return Bit(luma(c) >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Gray2 is a 4-level gray as stored by GS2_HMSB. Bits of Y above the low
// two are ignored.
type Gray2 struct {
	Y uint8
}

// RGBA spreads the two bits over 16 (3 is 0xFFFF).
func (c Gray2) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y&0x03) * 0x5555
	return y, y, y, 0xFFFF
}

func (c Gray2) String() string {
	return "Gray2(" + strconv.Itoa(int(c.Y&0x03)) + ")"
}

func toGray2(c color.Color) color.Color {
	if g, ok := c.(Gray2); ok {
		return g
	}
	return Gray2{Y: uint8(luma(c) >> 14)}
}

// Gray2Model converts colors to Gray2.
var Gray2Model = color.ModelFunc(toGray2)

// Gray4 is a 16-level gray as stored by GS4_HMSB, one nibble per pixel. Y
// values above 15 keep their low nibble.
type Gray4 struct {
	Y uint8
}

// RGBA widens the nibble by repeating it, so 15 maps to full intensity.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

func (c Gray4) String() string {
	return "Gray4(" + strconv.Itoa(int(c.Y&0x0F)) + ")"
}

func toGray4(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	return Gray4{Y: uint8(luma(c) >> 12)}
}

// Gray4Model converts colors to Gray4.
var Gray4Model = color.ModelFunc(toGray4)

// RGB565 is a packed 16-bit color: red in bits 15-11, green in bits 10-5,
// blue in bits 4-0.
type RGB565 uint16

// RGBA expands each channel to 16 bits, replicating the high bits into the
// low bits so that full intensity maps to 0xFFFF.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r = (r5<<3 | r5>>2) * 0x101
	g = (g6<<2 | g6>>4) * 0x101
	b = (b5<<3 | b5>>2) * 0x101
	return r, g, b, 0xFFFF
}

func (c RGB565) String() string {
	return "RGB565(0x" + strconv.FormatUint(uint64(c), 16) + ")"
}

func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB565(RGB565FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}

// RGB565Model converts colors to RGB565.
var RGB565Model = color.ModelFunc(toRGB565)

// RGB565FromRGB packs 8-bit red, green and blue channels into a 16-bit 5-6-5
// value. The low bits of each channel are dropped.
func RGB565FromRGB(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// SwapBytes16 exchanges the high and low bytes of v.
//
// FrameBuffer stores RGB565 pixels in native byte order. Panels that expect the
// high byte first on the wire need colors swapped before they are drawn.
func SwapBytes16(v uint16) uint16 {
	return v>>8 | v<<8
}
