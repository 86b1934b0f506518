package framebuf

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"
)

func TestScrollRow(t *testing.T) {
	tests := []struct {
		name         string
		xstep, ystep int
		want         []uint32
	}{
		{"none", 0, 0, []uint32{1, 2, 3, 4}},
		{"right by one keeps stale first cell", 1, 0, []uint32{1, 1, 2, 3}},
		{"right by three", 3, 0, []uint32{1, 2, 3, 1}},
		{"left by one keeps stale last cell", -1, 0, []uint32{2, 3, 4, 4}},
		{"left by two", -2, 0, []uint32{3, 4, 3, 4}},
		{"right by width", 4, 0, []uint32{1, 2, 3, 4}},
		{"left by width", -4, 0, []uint32{1, 2, 3, 4}},
		{"right beyond width", 9, 0, []uint32{1, 2, 3, 4}},
		{"vertical beyond height blocks horizontal", 1, 1, []uint32{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := gs8FB(t, [][]uint32{{1, 2, 3, 4}})
			fb.Scroll(tt.xstep, tt.ystep)
			checkPixels(t, fb, [][]uint32{tt.want})
		})
	}
}

func TestScrollColumn(t *testing.T) {
	tests := []struct {
		ystep int
		want  []uint32
	}{
		{0, []uint32{1, 2, 3, 4}},
		{2, []uint32{1, 2, 1, 2}},
		{-1, []uint32{2, 3, 4, 4}},
		{-3, []uint32{4, 2, 3, 4}},
		{4, []uint32{1, 2, 3, 4}},
		{-5, []uint32{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.ystep), func(t *testing.T) {
			fb := gs8FB(t, [][]uint32{{1}, {2}, {3}, {4}})
			fb.Scroll(0, tt.ystep)
			want := make([][]uint32, len(tt.want))
			for i, v := range tt.want {
				want[i] = []uint32{v}
			}
			checkPixels(t, fb, want)
		})
	}
}

// scrollReference returns the expected content of old after Scroll: every
// pixel whose source is inside the buffer takes the source value, the rest
// keep their previous value.
func scrollReference(old [][]uint32, xstep, ystep int) [][]uint32 {
	h, w := len(old), len(old[0])
	want := make([][]uint32, h)
	for y := range old {
		want[y] = append([]uint32(nil), old[y]...)
	}
	if xstep >= w || -xstep >= w || ystep >= h || -ystep >= h {
		return want
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy := x-xstep, y-ystep
			if 0 <= sx && sx < w && 0 <= sy && sy < h {
				want[y][x] = old[sy][sx]
			}
		}
	}
	return want
}

func TestScrollMatchesReference(t *testing.T) {
	steps := [][2]int{
		{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{3, 2}, {-3, 2}, {3, -2}, {-3, -2},
		{8, 8}, {-9, 1}, {16, 0}, {0, -11}, {17, 0}, {0, 12},
	}
	rng := rand.New(rand.NewPCG(13, 14))

	for _, f := range allFormats {
		for _, s := range steps {
			t.Run(fmt.Sprintf("%s/%d,%d", f, s[0], s[1]), func(t *testing.T) {
				fb := newTestFB(t, 17, 12, f, 0)
				old := randomize(fb, rng)
				fb.Scroll(s[0], s[1])
				checkPixels(t, fb, scrollReference(old, s[0], s[1]))
			})
		}
	}
}

func TestScrollOutOfRangeIsNoop(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	for _, f := range allFormats {
		fb := newTestFB(t, 9, 6, f, 0)
		randomize(fb, rng)
		before := bytes.Clone(fb.Bytes())
		for _, s := range [][2]int{{9, 0}, {-9, 0}, {0, 6}, {0, -6}, {1, 100}, {-100, 1}} {
			fb.Scroll(s[0], s[1])
			if !bytes.Equal(fb.Bytes(), before) {
				t.Errorf("%s: Scroll(%d, %d) modified the buffer", f, s[0], s[1])
			}
		}
	}
}
