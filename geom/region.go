package geom

import (
	"fmt"
	"sort"
)

// span is a half-open x interval [x1, x2) within a band.
type span struct {
	x1, x2 float64
}

// band is a half-open horizontal slab [y1, y2) covered by sorted,
// pairwise disjoint, non-adjacent spans.
type band struct {
	y1, y2 float64
	spans  []span
}

// Region is a rectilinear area in canonical band form: bands sorted by y,
// pairwise disjoint in y, each non-empty, and vertically adjacent bands
// with identical spans coalesced. Canonical form makes Equal a plain
// structural comparison. The zero value is the empty region.
//
// Regions are immutable: every operation returns a new value.
type Region struct {
	bands []band
}

// RegionFromRect builds the region covering a single rectangle.
// Panics if the rectangle is not Valid; degenerate input here is a
// programming error, not a runtime condition.
func RegionFromRect(r Rect) Region {
	if !r.Valid() {
		panic(fmt.Sprintf("geom: invalid rectangle (%g,%g)-(%g,%g)", r.X1, r.Y1, r.X2, r.Y2))
	}

	return Region{bands: []band{{y1: r.Y1, y2: r.Y2, spans: []span{{x1: r.X1, x2: r.X2}}}}}
}

// Empty reports whether the region covers no area.
func (r Region) Empty() bool {
	return len(r.bands) == 0
}

// Area computes the exact covered area.
// Complexity: O(bands × spans).
func (r Region) Area() float64 {
	var total float64
	for _, b := range r.bands {
		h := b.y2 - b.y1
		for _, s := range b.spans {
			total += h * (s.x2 - s.x1)
		}
	}

	return total
}

// Equal reports whether two regions cover the same area. Canonical form
// reduces this to structural equality.
func (r Region) Equal(o Region) bool {
	if len(r.bands) != len(o.bands) {
		return false
	}
	for i, b := range r.bands {
		ob := o.bands[i]
		if b.y1 != ob.y1 || b.y2 != ob.y2 || !equalSpans(b.spans, ob.spans) {
			return false
		}
	}

	return true
}

// Union returns the region covered by either input.
// Complexity: O((Na+Nb) × spans) over the combined y-breakpoints.
func Union(a, b Region) Region {
	return combine(a, b, unionSpans)
}

// Intersect returns the region covered by both inputs.
func Intersect(a, b Region) Region {
	return combine(a, b, intersectSpans)
}

// Overlaps reports whether two regions share interior area.
func Overlaps(a, b Region) bool {
	return Intersect(a, b).Area() > 0
}

// ContainsRect reports whether a rectangle lies entirely inside the region.
// Exact: the intersection area must equal the rectangle's own area.
func (r Region) ContainsRect(rc Rect) bool {
	return Intersect(r, RegionFromRect(rc)).Area() == rc.Area()
}

// PixelCoverage reports the area of the unit pixel square (x,y)-(x+1,y+1)
// covered by the region: 1 for a fully covered pixel, 0 for an untouched
// one. Used to rasterize shapes back onto a grid during verification.
func (r Region) PixelCoverage(x, y int) float64 {
	px := Rect{X1: float64(x), Y1: float64(y), X2: float64(x + 1), Y2: float64(y + 1)}

	return Intersect(r, RegionFromRect(px)).Area()
}

// combine sweeps the union of both regions' y-breakpoints and merges the
// x-spans of each elementary slab with the supplied interval operation.
func combine(a, b Region, op func(p, q []span) []span) Region {
	ys := breakpoints(a, b)
	out := make([]band, 0, len(ys))
	for i := 0; i+1 < len(ys); i++ {
		merged := op(spansAt(a, ys[i]), spansAt(b, ys[i]))
		if len(merged) == 0 {
			continue
		}
		out = append(out, band{y1: ys[i], y2: ys[i+1], spans: merged})
	}

	return Region{bands: coalesce(out)}
}

// breakpoints collects the sorted, de-duplicated y edges of both regions.
func breakpoints(a, b Region) []float64 {
	ys := make([]float64, 0, 2*(len(a.bands)+len(b.bands)))
	for _, bd := range a.bands {
		ys = append(ys, bd.y1, bd.y2)
	}
	for _, bd := range b.bands {
		ys = append(ys, bd.y1, bd.y2)
	}
	sort.Float64s(ys)
	uniq := ys[:0]
	for i, y := range ys {
		if i == 0 || y != uniq[len(uniq)-1] {
			uniq = append(uniq, y)
		}
	}

	return uniq
}

// spansAt returns the spans of the band covering y, or nil. Bands are
// y-disjoint, so at most one band matches.
func spansAt(r Region, y float64) []span {
	for _, b := range r.bands {
		if b.y1 <= y && y < b.y2 {
			return b.spans
		}
		if b.y1 > y {
			break
		}
	}

	return nil
}

// unionSpans merges two sorted disjoint span lists, joining overlapping
// and edge-adjacent intervals.
func unionSpans(p, q []span) []span {
	out := make([]span, 0, len(p)+len(q))
	i, j := 0, 0
	for i < len(p) || j < len(q) {
		var next span
		if j >= len(q) || (i < len(p) && p[i].x1 <= q[j].x1) {
			next = p[i]
			i++
		} else {
			next = q[j]
			j++
		}
		if n := len(out); n > 0 && next.x1 <= out[n-1].x2 {
			if next.x2 > out[n-1].x2 {
				out[n-1].x2 = next.x2
			}
			continue
		}
		out = append(out, next)
	}

	return out
}

// intersectSpans keeps the overlap of two sorted disjoint span lists.
func intersectSpans(p, q []span) []span {
	var out []span
	i, j := 0, 0
	for i < len(p) && j < len(q) {
		lo := maxf(p[i].x1, q[j].x1)
		hi := minf(p[i].x2, q[j].x2)
		if lo < hi {
			out = append(out, span{x1: lo, x2: hi})
		}
		if p[i].x2 < q[j].x2 {
			i++
		} else {
			j++
		}
	}

	return out
}

// subtractSpans removes q's coverage from p.
func subtractSpans(p, q []span) []span {
	var out []span
	j := 0
	for _, s := range p {
		lo := s.x1
		for j < len(q) && q[j].x2 <= lo {
			j++
		}
		k := j
		for k < len(q) && q[k].x1 < s.x2 {
			if q[k].x1 > lo {
				out = append(out, span{x1: lo, x2: q[k].x1})
			}
			if q[k].x2 > lo {
				lo = q[k].x2
			}
			k++
		}
		if lo < s.x2 {
			out = append(out, span{x1: lo, x2: s.x2})
		}
	}

	return out
}

// coalesce merges vertically adjacent bands carrying identical spans,
// restoring canonical form after a sweep.
func coalesce(bands []band) []band {
	if len(bands) == 0 {
		return nil
	}
	out := bands[:1]
	for _, b := range bands[1:] {
		last := &out[len(out)-1]
		if last.y2 == b.y1 && equalSpans(last.spans, b.spans) {
			last.y2 = b.y2
			continue
		}
		out = append(out, b)
	}

	return out
}

func equalSpans(p, q []span) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
