package framebuf

import (
	"fmt"
	"strings"
)

// Format identifies how pixels are packed into the backing buffer.
//
// The numeric values are stable and match the identifiers used by existing
// firmware, so they can be stored or passed across a host boundary as plain
// integers.
type Format uint8

const (
	// MVLSB is 1 bit per pixel, vertically packed. Each byte holds a column of
	// 8 pixels with bit 0 being the topmost; bytes of one 8-row band are laid
	// out left to right.
	MVLSB Format = 0
	// RGB565 is 16 bits per pixel stored as a native-endian uint16.
	RGB565 Format = 1
	// GS4HMSB is 4-bit grayscale, 2 pixels per byte, even x in the high nibble.
	GS4HMSB Format = 2
	// MHLSB is 1 bit per pixel, horizontally packed, leftmost pixel in bit 7.
	MHLSB Format = 3
	// MHMSB is 1 bit per pixel, horizontally packed, leftmost pixel in bit 0.
	MHMSB Format = 4
	// GS2HMSB is 2-bit grayscale, 4 pixels per byte, higher x in higher bits.
	GS2HMSB Format = 5
	// GS8 is 8-bit grayscale, 1 byte per pixel.
	GS8 Format = 6

	numFormats = 7
)

// Aliases using the long monochrome names.
const (
	MonoVLSB = MVLSB
	MonoHLSB = MHLSB
	MonoHMSB = MHMSB
)

var formatNames = [numFormats]string{
	MVLSB:   "MVLSB",
	RGB565:  "RGB565",
	GS4HMSB: "GS4_HMSB",
	MHLSB:   "MHLSB",
	MHMSB:   "MHMSB",
	GS2HMSB: "GS2_HMSB",
	GS8:     "GS8",
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f < numFormats
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatNames[f]
}

// BitsPerPixel returns the storage size of one pixel, or 0 for an invalid
// format.
func (f Format) BitsPerPixel() int {
	if !f.Valid() {
		return 0
	}
	return registry[f].bpp
}

// Mask returns the bit-depth mask colors are truncated to when stored.
// Monochrome formats are the exception: they store any non-zero color as 1.
func (f Format) Mask() uint32 {
	bpp := f.BitsPerPixel()
	if bpp == 0 {
		return 0
	}
	return 1<<bpp - 1
}

// ParseFormat returns the format with the given name. Names are matched
// case-insensitively and the long monochrome aliases (MONO_VLSB, MONO_HLSB,
// MONO_HMSB) are accepted.
func ParseFormat(s string) (Format, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	switch name {
	case "MONO_VLSB":
		return MonoVLSB, nil
	case "MONO_HLSB":
		return MonoHLSB, nil
	case "MONO_HMSB":
		return MonoHMSB, nil
	}
	for f, n := range formatNames {
		if n == name || strings.ReplaceAll(n, "_", "") == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

// pixelFormat is the per-encoding backend. Coordinates passed to it are
// already inside the buffer and rectangles are already clipped.
type pixelFormat interface {
	setPixel(fb *FrameBuffer, x, y int, c uint32)
	getPixel(fb *FrameBuffer, x, y int) uint32
	fillRect(fb *FrameBuffer, x, y, w, h int, c uint32)
}

// formatInfo describes the storage geometry of a format.
type formatInfo struct {
	p   pixelFormat
	bpp int
	// xAlign is the multiple stride and the last row's width are rounded up to.
	xAlign int
	// yAlign is the multiple the height is rounded up to.
	yAlign int
}

// registry maps every format to its backend. A FrameBuffer looks its entry up
// once at construction.
var registry = [numFormats]formatInfo{
	MVLSB:   {p: mvlsb{}, bpp: 1, xAlign: 1, yAlign: 8},
	RGB565:  {p: rgb565{}, bpp: 16, xAlign: 1, yAlign: 1},
	GS4HMSB: {p: gs4HMSB{}, bpp: 4, xAlign: 2, yAlign: 1},
	MHLSB:   {p: monoHoriz{}, bpp: 1, xAlign: 8, yAlign: 1},
	MHMSB:   {p: monoHoriz{reverse: true}, bpp: 1, xAlign: 8, yAlign: 1},
	GS2HMSB: {p: gs2HMSB{}, bpp: 2, xAlign: 4, yAlign: 1},
	GS8:     {p: gs8{}, bpp: 8, xAlign: 1, yAlign: 1},
}

// roundUp rounds v up to a multiple of a, which must be a power of two.
func roundUp(v, a int) int {
	return (v + a - 1) &^ (a - 1)
}

// fillBytes sets every byte of b to v.
func fillBytes(b []byte, v byte) {
	if len(b) == 0 {
		return
	}
	b[0] = v
	replicate(b, 1)
}

// replicate repeats the pattern held in b[:n] over the rest of b.
func replicate(b []byte, n int) {
	for n < len(b) {
		n += copy(b[n:], b[:n])
	}
}
