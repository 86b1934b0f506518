package framebuf

// NoKey disables the transparent color in BlitOpts.
const NoKey = -1

// BlitOpts configures Blit. A nil *BlitOpts copies every pixel unchanged.
type BlitOpts struct {
	// Key is the transparent color: pixels whose final color equals Key are
	// not written. Note that the zero value makes color 0 transparent; set
	// NoKey to copy every pixel.
	Key int

	// Palette, if set, maps each raw source value v to the color at (v, 0)
	// in the palette. Values at or beyond the palette width are not written.
	Palette *FrameBuffer
}

// Blit copies src into fb with its top-left corner at (x, y). Only the part
// of src overlapping fb is drawn; x and y may be negative.
//
// Source values are copied raw, so blitting between formats truncates them
// to the destination's bit depth unless a palette translates them.
func (fb *FrameBuffer) Blit(src *FrameBuffer, x, y int, opts *BlitOpts) {
	key, palette := NoKey, (*FrameBuffer)(nil)
	if opts != nil {
		key, palette = opts.Key, opts.Palette
	}
	if x >= fb.width || y >= fb.height || -x >= src.width || -y >= src.height {
		return
	}

	// Clip.
	dx := max(0, x)
	dy := max(0, y)
	sx := max(0, -x)
	sy := max(0, -y)
	dxend := min(fb.width, x+src.width)
	dyend := min(fb.height, y+src.height)
	fb.copyRect(src, dx, dy, sx, sy, dxend-dx, dyend-dy, key, palette)
}

// copyRect copies the w×h rectangle at (sx, sy) in src to (dx, dy) in fb,
// row by row, top to bottom and left to right. Both rectangles must already
// be clipped.
func (fb *FrameBuffer) copyRect(src *FrameBuffer, dx, dy, sx, sy, w, h, key int, palette *FrameBuffer) {
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			c := src.p.getPixel(src, sx+i, sy+j)
			if palette != nil {
				if c >= uint32(palette.width) {
					continue
				}
				c = palette.p.getPixel(palette, int(c), 0)
			}
			if int64(c) == int64(key) {
				continue
			}
			fb.p.setPixel(fb, dx+i, dy+j, c)
		}
	}
}

// moveRect copies the w×h rectangle at (sx, sy) of fb to (dx, dy) of fb. The
// two may overlap: rows and columns are walked away from the direction of
// travel so every source pixel is read before it is overwritten.
func (fb *FrameBuffer) moveRect(dx, dy, sx, sy, w, h int) {
	j0, jend, jstep := 0, h, 1
	if dy > sy {
		j0, jend, jstep = h-1, -1, -1
	}
	i0, iend, istep := 0, w, 1
	if dy == sy && dx > sx {
		i0, iend, istep = w-1, -1, -1
	}
	for j := j0; j != jend; j += jstep {
		for i := i0; i != iend; i += istep {
			fb.p.setPixel(fb, dx+i, dy+j, fb.p.getPixel(fb, sx+i, sy+j))
		}
	}
}
