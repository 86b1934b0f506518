// Package framebuf draws into raw pixel memory for LCD and OLED panels.
//
// A FrameBuffer interprets a caller-owned byte slice under one of seven
// packed pixel formats and provides pixel access, rectangle fills, blits with
// a transparent color key and palette lookup, and in-place scrolling. There is
// no intermediate image: every operation writes the bits the panel controller
// expects, so the slice can be sent to the display as is.
//
// # Formats
//
//	Format    bpp  Packing
//	MVLSB     1    8 vertical pixels per byte, bit 0 on top (SSD1306, PCD8544)
//	MHLSB     1    8 horizontal pixels per byte, leftmost in bit 7
//	MHMSB     1    8 horizontal pixels per byte, leftmost in bit 0
//	GS2HMSB   2    4 horizontal pixels per byte, leftmost in bits 0-1
//	GS4HMSB   4    2 horizontal pixels per byte, leftmost in the high nibble (SSD1322)
//	GS8       8    1 byte per pixel
//	RGB565    16   native-endian uint16 per pixel (ST7789, ILI9341)
//
// Colors are raw values at the format's bit depth. Higher bits are dropped
// when a color is stored; monochrome formats store any non-zero color as 1.
//
// # Basic Usage
//
//	n, _ := framebuf.BufferLen(128, 64, framebuf.MVLSB, 0)
//	buf := make([]byte, n)
//	fb, err := framebuf.New(buf, 128, 64, framebuf.MVLSB)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fb.Fill(0)
//	fb.FillRect(10, 10, 20, 8, 1)
//	fb.SetPixel(0, 0, 1)
//	fb.Scroll(0, -8)
//	// buf now holds the frame, ready to be written to the panel.
//
// # Clipping
//
// Drawing never returns an error. Rectangles and blits are clipped to the
// buffer, pixel writes outside it are ignored and Pixel reports ok=false.
// Callers can pass unclamped coordinates, for example to slide a sprite in
// from off screen.
//
// # Blitting
//
// Blit copies another FrameBuffer, optionally skipping a transparent color
// and translating values through a palette:
//
//	// A 1-bit sprite drawn onto an RGB565 screen: bit 0 is transparent,
//	// bit 1 maps to red.
//	pal, _ := framebuf.New(make([]byte, 4), 2, 1, framebuf.RGB565)
//	pal.SetPixel(0, 0, 0x0000)
//	pal.SetPixel(1, 0, 0xF800)
//	screen.Blit(sprite, x, y, &framebuf.BlitOpts{Key: 0x0000, Palette: pal})
//
// # Interoperability
//
// FrameBuffer implements draw.Image and the display.Drawer interface from
// periph.io, so standard image code and periph.io tools can draw on it with
// color conversion to the buffer's format. DrawScaled imports an arbitrary
// image through golang.org/x/image/draw. NewDisplayer wraps a FrameBuffer
// as a tinygo drivers.Displayer.
//
// # Memory
//
// The FrameBuffer borrows the slice given to New. It never reallocates it and
// never touches bytes outside the geometry it was created with. Callers that
// share the slice with other goroutines must serialize access themselves.
package framebuf
