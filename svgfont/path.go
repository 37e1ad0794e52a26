package svgfont

import (
	"strconv"
	"strings"

	"github.com/glyphvec/glyphvec/outline"
)

// PathData renders a shape as an SVG path description. Member rings are
// emitted in draw order as absolute M/L subpaths closed with Z. The pixel
// grid's y axis points down while font coordinates point up, so vertices
// map through (x, y) → (x·scale, (height−y)·scale).
//
// Quarter-pixel repair tabs stay exact for any scale that is a multiple
// of 4; the default scale (64) yields integer output coordinates.
func PathData(s outline.Shape, height int, scale float64) string {
	var b strings.Builder
	for _, ring := range s.Outlines() {
		for i, p := range ring {
			if i == 0 {
				b.WriteByte('M')
			} else {
				b.WriteByte('L')
			}
			b.WriteString(fmtCoord(p.X * scale))
			b.WriteByte(' ')
			b.WriteString(fmtCoord((float64(height) - p.Y) * scale))
		}
		b.WriteByte('Z')
	}

	return b.String()
}

// fmtCoord formats a font-unit coordinate without trailing zeros.
func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
