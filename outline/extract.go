package outline

// Extract runs the full pipeline for one character: scan runs into
// rectangles, accumulate them into hole-free polygons, repair touch gaps,
// and optionally simplify the rings. Pure and self-contained — distinct
// characters may be extracted concurrently.
func Extract(g Grid, opts Options) Shape {
	s := RepairTouches(Accumulate(Rectangles(g)))
	if opts.Simplify {
		s = Simplify(s)
	}

	return s
}
