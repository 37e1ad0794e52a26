package outline

import "github.com/glyphvec/glyphvec/geom"

// Simplify drops axis-collinear interior vertices from every member ring:
// vertex b goes when its neighbours a and c share b's x or y. The ring's
// starting vertex closes the loop and is never removed, and no ring
// shrinks below four vertices (a closed rectangle). Member areas and
// order are untouched, so all hole and overlap invariants carry over.
func Simplify(s Shape) Shape {
	rings := make([]geom.Ring, len(s.rings))
	for i, rg := range s.rings {
		rings[i] = simplifyRing(rg)
	}

	return Shape{members: s.members, rings: rings}
}

// simplifyRing removes removable vertices until a full pass finds none.
func simplifyRing(rg geom.Ring) geom.Ring {
	out := append(geom.Ring(nil), rg...)
	for changed := true; changed && len(out) > 4; {
		changed = false
		// Vertex 0 is the ring closure; only interior vertices may go.
		for i := 1; i < len(out) && len(out) > 4; i++ {
			a, b, c := out[i-1], out[i], out[(i+1)%len(out)]
			if (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y) {
				out = append(out[:i], out[i+1:]...)
				changed = true
				i--
			}
		}
	}

	return out
}
