package outline

// Grid supplies one character's pixels. Implementations must be cheap and
// side-effect free; charset.Character satisfies the interface.
type Grid interface {
	// Width reports the pixel columns of the grid.
	Width() int
	// Height reports the pixel rows of the grid.
	Height() int
	// Pixel reports whether (x,y) is set, 0 ≤ x < Width, 0 ≤ y < Height.
	Pixel(x, y int) bool
}

// OverlapDepth is how far a gap-repair tab protrudes into the neighbouring
// polygon, in pixel-grid units. A quarter pixel is deep enough to survive
// antialiasing at any output scale and exactly representable in binary
// floating point, keeping all downstream geometry exact.
const OverlapDepth = 0.25

// Options contains tunable parameters for outline extraction.
type Options struct {
	// Simplify enables the collinear-vertex post-pass: interior ring
	// vertices whose neighbours share an axis are dropped. Off by default;
	// the hole/no-hole invariants are identical either way.
	Simplify bool
}

// DefaultOptions returns the reference extraction behavior:
// no ring simplification.
func DefaultOptions() Options {
	return Options{Simplify: false}
}
