// Package pixcolor provides color types for the packed pixel encodings used by
// package framebuf.
//
// Each type holds a raw pixel value at the bit depth of its encoding and
// implements color.Color, so packed framebuffers can take part in image/draw
// operations. Every type has a matching color.Model that converts arbitrary
// colors down to the encoding:
//
//   - Bit: 1-bit monochrome (MVLSB, MHLSB, MHMSB)
//   - Gray2: 2-bit grayscale, 4 levels (GS2_HMSB)
//   - Gray4: 4-bit grayscale, 16 levels (GS4_HMSB)
//   - RGB565: 16-bit color, 5 bits red, 6 bits green, 5 bits blue
//
// 8-bit grayscale (GS8) uses color.Gray from the standard library.
//
// Example usage:
//
//	// Pack a 24-bit color for an RGB565 panel
//	v := pixcolor.RGB565FromRGB(0xFF, 0x80, 0x00)
//
//	// Convert any color to 16 gray levels
//	g := pixcolor.Gray4Model.Convert(color.White).(pixcolor.Gray4)
//	println(g.Y) // Output: 15
//
//	// Panels such as the ST7789 expect the high byte first on the wire
//	be := pixcolor.SwapBytes16(v)
package pixcolor
