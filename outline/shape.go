package outline

import "github.com/glyphvec/glyphvec/geom"

// Shape is the vector form of one character: an ordered list of simple,
// hole-free polygons. List order is draw order — later members render on
// top of earlier ones. A blank character yields the empty Shape.
//
// Shapes are immutable; every pipeline stage returns a new value.
type Shape struct {
	members []geom.Region
	rings   []geom.Ring
}

// newShape builds a Shape from member regions, extracting each member's
// single boundary ring. A member with more than one ring would mean a
// union was accepted despite holes — a defect the accumulator structurally
// prevents, hence the panic rather than an error return.
func newShape(members []geom.Region) Shape {
	rings := make([]geom.Ring, len(members))
	for i, m := range members {
		rs := m.Rings()
		if len(rs) != 1 {
			panic("outline: shape member is not a simple hole-free polygon")
		}
		rings[i] = rs[0]
	}

	return Shape{members: members, rings: rings}
}

// Len reports the number of member polygons.
func (s Shape) Len() int {
	return len(s.members)
}

// Outlines returns each member's closed boundary ring in draw order.
// The slice is a copy; rings themselves are never mutated by the pipeline.
func (s Shape) Outlines() []geom.Ring {
	out := make([]geom.Ring, len(s.rings))
	copy(out, s.rings)

	return out
}

// Regions returns each member's area in draw order, for geometric
// verification (coverage, overlap and touch checks).
func (s Shape) Regions() []geom.Region {
	out := make([]geom.Region, len(s.members))
	copy(out, s.members)

	return out
}

// Covered returns the union of all members: the total area the shape fills.
func (s Shape) Covered() geom.Region {
	var u geom.Region
	for _, m := range s.members {
		u = geom.Union(u, m)
	}

	return u
}

// Equal reports whether two shapes have the same members, areas and order.
func (s Shape) Equal(o Shape) bool {
	if len(s.members) != len(o.members) {
		return false
	}
	for i := range s.members {
		if !s.members[i].Equal(o.members[i]) {
			return false
		}
	}

	return true
}
