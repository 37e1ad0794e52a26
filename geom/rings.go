package geom

import "sort"

// dirEdge is a directed axis-aligned boundary edge. Edges are oriented
// with the region's interior on the right of travel (y downward), so the
// outward normal of an edge with direction d is (d.Y, -d.X).
type dirEdge struct {
	a, b Pt
}

func (e dirEdge) dir() Pt {
	return Pt{X: sign(e.b.X - e.a.X), Y: sign(e.b.Y - e.a.Y)}
}

func (e dirEdge) outward() Pt {
	d := e.dir()

	return Pt{X: d.Y, Y: -d.X}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// boundaryEdges extracts every directed boundary edge of the region.
// Horizontal edges appear where coverage changes across a band boundary;
// vertical edges are the span sides. Edges never overlap one another
// because spans are disjoint and non-adjacent within a band.
func (r Region) boundaryEdges() []dirEdge {
	var edges []dirEdge

	// Horizontal edges at every distinct band boundary y.
	type hline struct {
		above, below []span
	}
	lines := make(map[float64]*hline)
	at := func(y float64) *hline {
		l, ok := lines[y]
		if !ok {
			l = &hline{}
			lines[y] = l
		}

		return l
	}
	for _, b := range r.bands {
		at(b.y1).below = b.spans
		at(b.y2).above = b.spans
	}
	ys := make([]float64, 0, len(lines))
	for y := range lines {
		ys = append(ys, y)
	}
	sort.Float64s(ys)
	for _, y := range ys {
		l := lines[y]
		// Interior below only: top edge, directed +x.
		for _, s := range subtractSpans(l.below, l.above) {
			edges = append(edges, dirEdge{a: Pt{X: s.x1, Y: y}, b: Pt{X: s.x2, Y: y}})
		}
		// Interior above only: bottom edge, directed -x.
		for _, s := range subtractSpans(l.above, l.below) {
			edges = append(edges, dirEdge{a: Pt{X: s.x2, Y: y}, b: Pt{X: s.x1, Y: y}})
		}
	}

	// Vertical edges: left sides run upward, right sides downward,
	// keeping the interior on the right.
	for _, b := range r.bands {
		for _, s := range b.spans {
			edges = append(edges, dirEdge{a: Pt{X: s.x1, Y: b.y2}, b: Pt{X: s.x1, Y: b.y1}})
			edges = append(edges, dirEdge{a: Pt{X: s.x2, Y: b.y1}, b: Pt{X: s.x2, Y: b.y2}})
		}
	}

	return edges
}

// Rings extracts the region's boundary as closed loops. Exterior rings
// have positive SignedArea, holes negative. At a self-touching corner
// (four edges meeting at one point) the walk takes the sharpest right
// turn, which keeps each loop simple and assigns corner-touching pieces
// their own rings. Edge order is fixed, so output is deterministic.
//
// Collinear intermediate vertices introduced by band splits are kept;
// dropping them is the caller's (optional) simplification pass.
func (r Region) Rings() []Ring {
	edges := r.boundaryEdges()
	if len(edges) == 0 {
		return nil
	}
	// Deterministic walk order: top-to-bottom, left-to-right start points.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].a.Y != edges[j].a.Y {
			return edges[i].a.Y < edges[j].a.Y
		}
		if edges[i].a.X != edges[j].a.X {
			return edges[i].a.X < edges[j].a.X
		}
		di, dj := edges[i].dir(), edges[j].dir()
		if di.X != dj.X {
			return di.X > dj.X
		}

		return di.Y > dj.Y
	})

	bySrc := make(map[Pt][]int, len(edges))
	for i, e := range edges {
		bySrc[e.a] = append(bySrc[e.a], i)
	}
	used := make([]bool, len(edges))

	var rings []Ring
	for start := range edges {
		if used[start] {
			continue
		}
		ring := Ring{edges[start].a}
		cur := start
		for {
			used[cur] = true
			p := edges[cur].b
			if p == edges[start].a {
				break
			}
			ring = append(ring, p)
			next := pickNext(edges, bySrc[p], used, edges[cur].dir())
			if next < 0 {
				// Cannot happen for a well-formed region boundary: every
				// vertex has matching in/out degree.
				panic("geom: open boundary ring")
			}
			cur = next
		}
		rings = append(rings, ring)
	}

	return rings
}

// pickNext chooses the outgoing edge at a vertex, preferring the sharpest
// right turn relative to the incoming direction, then straight, then left.
func pickNext(edges []dirEdge, candidates []int, used []bool, in Pt) int {
	prefs := [4]Pt{
		{X: -in.Y, Y: in.X},  // right turn
		in,                   // straight on
		{X: in.Y, Y: -in.X},  // left turn
		{X: -in.X, Y: -in.Y}, // reversal
	}
	for _, want := range prefs {
		for _, i := range candidates {
			if !used[i] && edges[i].dir() == want {
				return i
			}
		}
	}

	return -1
}

// Holes counts interior rings (negative orientation loops).
func (r Region) Holes() int {
	n := 0
	for _, rg := range r.Rings() {
		if rg.SignedArea() < 0 {
			n++
		}
	}

	return n
}
