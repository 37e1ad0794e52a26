package outline

import "github.com/glyphvec/glyphvec/geom"

// RepairTouches welds members that share boundary without sharing area.
// For the first such pair (A at i, B at j, i < j) in member order, every
// shared boundary edge of A grows a rectangular tab protruding
// OverlapDepth into B; tabs that would leak outside B are discarded
// silently (an expected branch, not a failure). When every full-edge tab
// leaks — staggered junctions where each side's edge outruns the other —
// the tabs are retried from the shared stretches alone, so a
// positive-length contact always welds. When at least one tab fits, A
// plus its tabs replaces A — reinserted directly after B, because the
// extended polygon must now draw on top of the one it pokes into — and
// detection restarts on the updated set, since new tabs can create new
// touch relationships.
//
// The pass ends when a full scan repairs nothing. In the terminal state
// every pair of members is fully disjoint, properly overlapping, or
// corner-touching (a point contact has no segment to extend along).
// Repairing an already-repaired shape is a no-op.
func RepairTouches(s Shape) Shape {
	members := s.Regions()
	for {
		from, into, ext, ok := repairablePair(members)
		if !ok {
			break
		}
		// Drop the extender from its slot and reinsert it right after the
		// member it now pokes into.
		members = append(members[:from], members[from+1:]...)
		if from < into {
			into--
		}
		members = append(members, geom.Region{})
		copy(members[into+2:], members[into+1:])
		members[into+1] = ext
	}

	return newShape(members)
}

// repairablePair scans ordered member pairs for a touching pair that
// accepts at least one tab. The earlier member extends first; when all of
// its tabs leak, the roles swap and the later member tries instead. Pairs
// where neither direction fits a tab are skipped.
func repairablePair(members []geom.Region) (from, into int, ext geom.Region, ok bool) {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !geom.Touches(members[i], members[j]) {
				continue
			}
			if ext, ok = extendInto(members[i], members[j]); ok {
				return i, j, ext, true
			}
			if ext, ok = extendInto(members[j], members[i]); ok {
				return j, i, ext, true
			}
		}
	}

	return 0, 0, geom.Region{}, false
}

// extendInto welds one tab per contact with b onto a, keeping only tabs
// fully contained in b. Full boundary edges are tried first; when none
// fits, the pass retries with the clipped shared stretches, so a
// staggered junction still welds. Reports false when no tab fits either
// way.
func extendInto(a, b geom.Region) (geom.Region, bool) {
	contacts := geom.SharedBoundary(a, b)
	ext := a
	fit := false
	for _, c := range contacts {
		tab := tabRect(c.Seg, c.Outward)
		if !b.ContainsRect(tab) {
			continue
		}
		ext = geom.Union(ext, geom.RegionFromRect(tab))
		fit = true
	}
	if fit {
		return ext, true
	}
	for _, c := range contacts {
		tab := tabRect(c.Shared, c.Outward)
		if !b.ContainsRect(tab) {
			continue
		}
		ext = geom.Union(ext, geom.RegionFromRect(tab))
		fit = true
	}

	return ext, fit
}

// tabRect sweeps a boundary segment OverlapDepth along the first
// region's outward normal, into the neighbour.
func tabRect(s geom.Seg, outward geom.Pt) geom.Rect {
	x1, x2 := s.A.X, s.B.X
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	y1, y2 := s.A.Y, s.B.Y
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	switch {
	case outward.Y < 0:
		return geom.Rect{X1: x1, Y1: y1 - OverlapDepth, X2: x2, Y2: y1}
	case outward.Y > 0:
		return geom.Rect{X1: x1, Y1: y1, X2: x2, Y2: y1 + OverlapDepth}
	case outward.X < 0:
		return geom.Rect{X1: x1 - OverlapDepth, Y1: y1, X2: x1, Y2: y2}
	default:
		return geom.Rect{X1: x1, Y1: y1, X2: x1 + OverlapDepth, Y2: y2}
	}
}
