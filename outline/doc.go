// Package outline extracts vector glyph outlines from bitmap pixel grids:
// the core of the raster-to-vector conversion.
//
// What:
//
//   - Rectangles scans a grid row by row into maximal horizontal-run
//     rectangles (one per contiguous run per row, row-major order).
//   - Accumulate folds those rectangles into a Shape: a draw-ordered set
//     of simple, hole-free polygons. Unions that would create an interior
//     ring are rejected and the pieces kept disjoint; after the fold, a
//     pairwise scan keeps re-attempting merges until none succeeds.
//   - RepairTouches finds members that share boundary without sharing
//     area and welds thin quarter-pixel tabs across the seam, so
//     antialiased rendering cannot leave a hairline gap. The extended
//     polygon is reordered to draw after the one it was extended into.
//   - Simplify optionally drops axis-collinear interior ring vertices.
//   - Extract chains the whole pipeline for one character.
//
// Why:
//
//   - Fill rules choke on polygons with holes or point contacts; glyphs
//     with enclosed background (O, A, B, 8) must become layered disjoint
//     shapes instead.
//   - Fixed consumption and scan order make the output deterministic:
//     identical grids produce identical shapes, member order included.
//
// Complexity:
//
//   - Rectangles: O(W×H).
//   - Accumulate: O(R²) union attempts for R rectangles, each cheap on
//     glyph-sized regions.
//   - RepairTouches: O(M²) pair scans per repair, finitely many repairs
//     (each converts a touching pair into a properly overlapping one).
//
// Every function is pure: inputs are never mutated and results share no
// state, so whole charsets can be extracted concurrently.
package outline
