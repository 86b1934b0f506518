package framebuf

import (
	"errors"
	"fmt"
)

// Construction errors. The errors returned by New, NewStride and BufferLen
// wrap one of these with the offending values.
var (
	// ErrInvalidDimensions is returned when width or height is outside 1..65535.
	ErrInvalidDimensions = errors.New("framebuf: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than width or above 65535.
	ErrInvalidStride = errors.New("framebuf: invalid stride")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("framebuf: invalid format")

	// ErrBufferTooSmall is returned when the backing buffer cannot hold the
	// requested geometry.
	ErrBufferTooSmall = errors.New("framebuf: buffer too small")
)

// maxDim is the largest width, height or stride accepted.
const maxDim = 0xFFFF

// FrameBuffer draws into a caller-owned byte slice interpreted under one of
// the packed pixel formats.
//
// The FrameBuffer borrows buf: it never reallocates or copies it, and the
// slice it holds keeps the backing array reachable for as long as the
// FrameBuffer is. Geometry and format are fixed at construction; only the
// buffer contents change.
//
// Drawing never fails. Coordinates outside the buffer are clipped, and single
// pixel operations outside it do nothing. A FrameBuffer is not safe for
// concurrent use, and concurrent writes to buf by other code while drawing
// give undefined results.
type FrameBuffer struct {
	buf    []byte
	width  int
	height int
	stride int // in pixels, after format rounding
	format Format
	p      pixelFormat
}

// New returns a FrameBuffer over buf with stride equal to width.
func New(buf []byte, width, height int, f Format) (*FrameBuffer, error) {
	return NewStride(buf, width, height, f, width)
}

// NewStride returns a FrameBuffer over buf whose storage rows are stride
// pixels apart. Stride must be at least width; formats packing several pixels
// per byte round it up to a whole number of bytes.
func NewStride(buf []byte, width, height int, f Format, stride int) (*FrameBuffer, error) {
	stride, n, err := geometry(width, height, f, stride)
	if err == nil && len(buf) < n {
		err = fmt.Errorf("%w: have %d bytes, %s %dx%d stride %d needs %d",
			ErrBufferTooSmall, len(buf), f, width, height, stride, n)
	}
	if err != nil {
		logger().Debug("framebuf: rejected geometry", "err", err)
		return nil, err
	}
	fb := &FrameBuffer{
		buf:    buf,
		width:  width,
		height: height,
		stride: stride,
		format: f,
		p:      registry[f].p,
	}
	logger().Debug("framebuf: new", "format", f, "width", width, "height", height, "stride", stride, "len", len(buf))
	return fb, nil
}

// BufferLen returns the minimum buffer length in bytes for the given
// geometry. A stride of 0 means width.
func BufferLen(width, height int, f Format, stride int) (int, error) {
	if stride == 0 {
		stride = width
	}
	_, n, err := geometry(width, height, f, stride)
	return n, err
}

// geometry validates the requested geometry and returns the rounded stride
// and the number of bytes required to hold it.
//
// Every storage row but the last needs a full stride; the last one only
// needs the width rounded to the format's alignment. MVLSB stores rows in
// bands of 8, so the last band is a full 8 rows of width bytes.
func geometry(width, height int, f Format, stride int) (int, int, error) {
	if width < 1 || height < 1 || width > maxDim || height > maxDim {
		return 0, 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if stride > maxDim || stride < width {
		return 0, 0, fmt.Errorf("%w: %d for width %d", ErrInvalidStride, stride, width)
	}
	if !f.Valid() {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidFormat, uint8(f))
	}
	info := registry[f]
	stride = roundUp(stride, info.xAlign)
	widthRequired := roundUp(width, info.xAlign)
	heightRequired := roundUp(height, info.yAlign)
	stridesRequired := heightRequired - info.yAlign
	n := (stridesRequired*stride + (heightRequired-stridesRequired)*widthRequired) * info.bpp / 8
	return stride, n, nil
}

// Width returns the visible width in pixels.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the visible height in pixels.
func (fb *FrameBuffer) Height() int { return fb.height }

// Stride returns the distance between storage rows in pixels, after the
// format's rounding.
func (fb *FrameBuffer) Stride() int { return fb.stride }

// Format returns the pixel format.
func (fb *FrameBuffer) Format() Format { return fb.format }

// Bytes returns the borrowed backing buffer.
func (fb *FrameBuffer) Bytes() []byte { return fb.buf }

// String returns a string representation of the frame buffer.
func (fb *FrameBuffer) String() string {
	return fmt.Sprintf("framebuf.FrameBuffer{%s %dx%d}", fb.format, fb.width, fb.height)
}

func (fb *FrameBuffer) in(x, y int) bool {
	return 0 <= x && x < fb.width && 0 <= y && y < fb.height
}

// Pixel returns the raw value of the pixel at (x, y). ok is false when the
// point is outside the buffer.
func (fb *FrameBuffer) Pixel(x, y int) (c uint32, ok bool) {
	if !fb.in(x, y) {
		return 0, false
	}
	return fb.p.getPixel(fb, x, y), true
}

// SetPixel sets the pixel at (x, y) to c, truncated to the format's bit
// depth. Points outside the buffer are ignored.
func (fb *FrameBuffer) SetPixel(x, y int, c uint32) {
	if fb.in(x, y) {
		fb.p.setPixel(fb, x, y, c)
	}
}

// Fill sets every visible pixel to c.
func (fb *FrameBuffer) Fill(c uint32) {
	fb.p.fillRect(fb, 0, 0, fb.width, fb.height, c)
}

// FillRect sets the w×h rectangle at (x, y) to c. The rectangle is clipped to
// the buffer; empty or fully outside rectangles do nothing.
func (fb *FrameBuffer) FillRect(x, y, w, h int, c uint32) {
	if w < 1 || h < 1 || x+w <= 0 || y+h <= 0 || x >= fb.width || y >= fb.height {
		return
	}
	xend := min(fb.width, x+w)
	yend := min(fb.height, y+h)
	x = max(x, 0)
	y = max(y, 0)
	fb.p.fillRect(fb, x, y, xend-x, yend-y, c)
}
