package outline

import "github.com/glyphvec/glyphvec/geom"

// Rectangles scans the grid row by row and emits one rectangle per
// maximal horizontal run of set pixels. The rectangles cover the set
// pixels exactly, never overlap, and arrive in row-major order — the
// accumulator depends on this exact sequence for deterministic
// tie-breaks. A blank grid yields an empty slice.
//
// Complexity: O(W×H).
func Rectangles(g Grid) []geom.Rect {
	var rects []geom.Rect
	w, h := g.Width(), g.Height()
	for y := 0; y < h; y++ {
		start := -1
		// One trailing iteration with x == w flushes a run ending at the
		// right edge.
		for x := 0; x <= w; x++ {
			on := x < w && g.Pixel(x, y)
			if on && start < 0 {
				start = x
			}
			if !on && start >= 0 {
				rects = append(rects, geom.Rect{
					X1: float64(start), Y1: float64(y),
					X2: float64(x), Y2: float64(y + 1),
				})
				start = -1
			}
		}
	}

	return rects
}
