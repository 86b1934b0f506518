package framebuf

// Scroll shifts the contents of fb by xstep pixels right and ystep pixels
// down; negative steps shift left and up.
//
// Pixels moved past an edge are lost. The cells left behind are not cleared:
// they keep whatever they held before the scroll. If either step is at least
// the buffer's size along its axis, Scroll does nothing.
func (fb *FrameBuffer) Scroll(xstep, ystep int) {
	// Walk away from the direction of travel so every source pixel is read
	// before it is overwritten.
	var sx, xend, dx int
	if xstep < 0 {
		sx, xend, dx = 0, fb.width+xstep, 1
		if xend <= 0 {
			return
		}
	} else {
		sx, xend, dx = fb.width-1, xstep-1, -1
		if xend >= sx {
			return
		}
	}
	var y, yend, dy int
	if ystep < 0 {
		y, yend, dy = 0, fb.height+ystep, 1
		if yend <= 0 {
			return
		}
	} else {
		y, yend, dy = fb.height-1, ystep-1, -1
		if yend >= y {
			return
		}
	}
	for ; y != yend; y += dy {
		for x := sx; x != xend; x += dx {
			fb.p.setPixel(fb, x, y, fb.p.getPixel(fb, x-xstep, y-ystep))
		}
	}
}
