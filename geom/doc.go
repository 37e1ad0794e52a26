// Package geom implements the axis-aligned region algebra the outline
// pipeline is built on: exact boolean union/intersection, touch and
// containment predicates, and boundary ring extraction.
//
// What:
//
//   - Region is a canonical y-band decomposition of a rectilinear area:
//     sorted horizontal bands, each holding sorted disjoint x-spans.
//   - Union / Intersect combine regions by sweeping shared y-breakpoints.
//   - Components counts connected pieces (corner contact does not connect).
//   - Rings extracts the boundary as closed vertex loops; ring orientation
//     distinguishes exterior loops from holes.
//   - SharedBoundary / Touches / Overlaps / ContainsRect are the predicates
//     the accumulator and gap repair decide with.
//
// Why:
//
//   - Every primitive in this domain is a rectangle, so a general polygon
//     clipper (epsilon comparisons, curved edges, self-intersections) is
//     unnecessary weight. Band decomposition keeps every operation exact:
//     the pipeline only ever produces integer and quarter-pixel
//     coordinates, which float64 represents without rounding.
//   - Canonical form makes equality a plain comparison, so determinism and
//     idempotence are directly testable.
//
// Coordinate conventions: x increases rightward, y increases downward
// (raster scan order). Boundary edges are directed with the interior on
// the right of travel, so exterior rings have positive signed area and
// holes negative.
//
// Complexity:
//
//   - Union / Intersect: O((n+m) · s) for n+m bands of ≤ s spans.
//   - Components: O(n·s) with union-find over spans.
//   - Rings: O(E log E) for E boundary edges.
package geom
