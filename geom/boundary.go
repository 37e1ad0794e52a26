package geom

import "sort"

// Contact is one opposed boundary-edge pair between two regions. Seg is
// the full boundary edge of a; Shared is the positive-length stretch of
// that edge actually lying on b's boundary (interiors on opposite
// sides). Outward is a's outward normal, i.e. the direction leading into
// the neighbouring region.
//
// The whole edge is reported alongside the stretch — an extension
// synthesized from the full edge may protrude past the neighbour, which
// gap repair must detect and discard before it falls back to the
// stretch itself.
type Contact struct {
	Seg     Seg
	Shared  Seg
	Outward Pt
}

// SharedBoundary finds every opposed edge pair between a's and b's
// boundaries: one Contact per pair of collinear edges with opposite
// normals and positive overlap. An a-edge facing several b-edges yields
// one contact per stretch. Corner-only contact yields nothing. Contacts
// are sorted top-to-bottom then left-to-right.
//
// Complexity: O(Ea × Eb) over the regions' boundary edges; glyph-scale
// regions keep this tiny.
func SharedBoundary(a, b Region) []Contact {
	ea := a.boundaryEdges()
	eb := b.boundaryEdges()
	var out []Contact
	for _, x := range ea {
		for _, y := range eb {
			shared, ok := opposed(x, y)
			if !ok {
				continue
			}
			out = append(out, Contact{
				Seg:     Seg{A: x.a, B: x.b},
				Shared:  shared,
				Outward: x.outward(),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := segMin(out[i].Seg), segMin(out[j].Seg)
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		if pi.X != pj.X {
			return pi.X < pj.X
		}
		if out[i].Outward != out[j].Outward {
			return out[i].Outward.X < out[j].Outward.X ||
				(out[i].Outward.X == out[j].Outward.X && out[i].Outward.Y < out[j].Outward.Y)
		}
		si, sj := segMin(out[i].Shared), segMin(out[j].Shared)
		if si.Y != sj.Y {
			return si.Y < sj.Y
		}

		return si.X < sj.X
	})

	return out
}

// opposed reports whether two boundary edges are collinear with opposite
// outward normals and positive overlap, and returns the overlapping
// stretch oriented like x.
func opposed(x, y dirEdge) (Seg, bool) {
	nx, ny := x.outward(), y.outward()
	if nx.X != -ny.X || nx.Y != -ny.Y {
		return Seg{}, false
	}
	if nx.Y != 0 { // horizontal edges
		if x.a.Y != y.a.Y {
			return Seg{}, false
		}
		lo := maxf(minf(x.a.X, x.b.X), minf(y.a.X, y.b.X))
		hi := minf(maxf(x.a.X, x.b.X), maxf(y.a.X, y.b.X))
		if lo >= hi {
			return Seg{}, false
		}
		if x.a.X > x.b.X {
			lo, hi = hi, lo
		}

		return Seg{A: Pt{X: lo, Y: x.a.Y}, B: Pt{X: hi, Y: x.a.Y}}, true
	}
	// Vertical edges.
	if x.a.X != y.a.X {
		return Seg{}, false
	}
	lo := maxf(minf(x.a.Y, x.b.Y), minf(y.a.Y, y.b.Y))
	hi := minf(maxf(x.a.Y, x.b.Y), maxf(y.a.Y, y.b.Y))
	if lo >= hi {
		return Seg{}, false
	}
	if x.a.Y > x.b.Y {
		lo, hi = hi, lo
	}

	return Seg{A: Pt{X: x.a.X, Y: lo}, B: Pt{X: x.a.X, Y: hi}}, true
}

// segMin returns the coordinate-wise smaller endpoint, for sorting.
func segMin(s Seg) Pt {
	p := s.A
	if s.B.Y < p.Y || (s.B.Y == p.Y && s.B.X < p.X) {
		p = s.B
	}

	return p
}

// Touches reports whether two regions share boundary of positive length
// without sharing interior area.
func Touches(a, b Region) bool {
	if Overlaps(a, b) {
		return false
	}

	return len(SharedBoundary(a, b)) > 0
}
