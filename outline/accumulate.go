package outline

import "github.com/glyphvec/glyphvec/geom"

// Accumulate folds scanner rectangles, in scanner order, into a Shape of
// simple hole-free polygons:
//
//  1. the first rectangle starts the set;
//  2. with a single member, its union with the rectangle replaces it when
//     the union is one polygon without holes — otherwise the rectangle
//     becomes a second member;
//  3. with several members, the first touching member whose union stays
//     simple absorbs the rectangle; if none qualifies it is appended;
//  4. finally, ordered pairs of touching members are re-scanned and the
//     first cleanly unionable pair merged, restarting until no pair
//     merges or one member remains.
//
// Consumption and scan order are fixed, so identical input always yields
// an identical Shape. A set that cannot reduce further is valid terminal
// output, not an error.
func Accumulate(rects []geom.Rect) Shape {
	var members []geom.Region
	for _, rc := range rects {
		r := geom.RegionFromRect(rc)
		switch {
		case len(members) == 0:
			members = append(members, r)
		case len(members) == 1:
			if u := geom.Union(members[0], r); simple(u) {
				members[0] = u
			} else {
				members = append(members, r)
			}
		default:
			members = absorb(members, r)
		}
	}

	return newShape(mergePairs(members))
}

// absorb merges r into the first touching member that accepts it cleanly,
// or appends r as a new disjoint member.
func absorb(members []geom.Region, r geom.Region) []geom.Region {
	for i, m := range members {
		if !geom.Touches(m, r) {
			continue
		}
		if u := geom.Union(m, r); simple(u) {
			members[i] = u

			return members
		}
	}

	return append(members, r)
}

// mergePairs re-attempts unions among the disjoint members until no
// touching pair unions into a simple polygon. First success wins, then
// the scan restarts; pairs whose union would carry a hole are skipped.
func mergePairs(members []geom.Region) []geom.Region {
	for len(members) > 1 {
		i, j, u, ok := mergeablePair(members)
		if !ok {
			break
		}
		members[i] = u
		members = append(members[:j], members[j+1:]...)
	}

	return members
}

// mergeablePair finds the first ordered pair (i < j) of touching members
// whose union is a single hole-free polygon.
func mergeablePair(members []geom.Region) (int, int, geom.Region, bool) {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !geom.Touches(members[i], members[j]) {
				continue
			}
			if u := geom.Union(members[i], members[j]); simple(u) {
				return i, j, u, true
			}
		}
	}

	return 0, 0, geom.Region{}, false
}

// simple reports whether a region is one connected polygon with no holes.
func simple(r geom.Region) bool {
	return r.Components() == 1 && r.Holes() == 0
}
