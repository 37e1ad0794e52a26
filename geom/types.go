package geom

import "fmt"

// Pt is a 2D point in pixel-grid space: x rightward, y downward.
type Pt struct {
	X, Y float64
}

// Seg is an axis-aligned directed segment from A to B.
type Seg struct {
	A, B Pt
}

// Length reports the segment's extent along its axis.
func (s Seg) Length() float64 {
	if s.A.X == s.B.X {
		return abs(s.B.Y - s.A.Y)
	}

	return abs(s.B.X - s.A.X)
}

// Rect is an axis-aligned rectangle, half-open on the max edges:
// a point (x,y) is inside when X1 ≤ x < X2 and Y1 ≤ y < Y2.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Valid reports whether the rectangle has positive extent on both axes.
func (r Rect) Valid() bool {
	return r.X1 < r.X2 && r.Y1 < r.Y2
}

// Area reports the rectangle's area.
func (r Rect) Area() float64 {
	return (r.X2 - r.X1) * (r.Y2 - r.Y1)
}

// Ring is a closed boundary loop. Vertices are stored once; the edge from
// the last vertex back to the first closes the ring implicitly.
type Ring []Pt

// SignedArea computes the shoelace area of the ring in screen coordinates
// (y downward). Exterior rings produced by Rings are positive, holes negative.
func (rg Ring) SignedArea() float64 {
	var sum float64
	n := len(rg)
	for i := 0; i < n; i++ {
		a, b := rg[i], rg[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}

	return sum / 2
}

// String renders the ring as a vertex list, mainly for test failure output.
func (rg Ring) String() string {
	s := "["
	for i, p := range rg {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("(%g,%g)", p.X, p.Y)
	}

	return s + "]"
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
