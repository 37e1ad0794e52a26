// Package glyphvec turns raster bitmap fonts — fixed-size pixel grids,
// one per character — into scalable vector glyph outlines.
//
// 🚀 What is glyphvec?
//
//	A pure-Go pipeline that traces every "on" pixel of a bitmap glyph
//	into one or more simple, hole-free closed polygons:
//	  • charset/  — byte-backed pixel grids (8×H characters, .chr layout)
//	  • geom/     — axis-aligned region algebra: union, touch & containment
//	    predicates, boundary ring extraction
//	  • outline/  — the core: row-run rectangle scanning, hole-rejecting
//	    polygon accumulation, and touch-gap repair
//	  • svgfont/  — SVG font serialization (path data, code-page glyph names)
//	  • cmd/makefont — end-to-end converter CLI
//
// ✨ Why glyphvec?
//
//   - No holes, ever — shapes with enclosed background (O, A, B, 8) become
//     layered disjoint polygons instead of rings with interior holes,
//     sidestepping fill-rule artifacts in downstream renderers
//   - Gap-free rendering — polygons that merely touch receive thin
//     quarter-pixel extension tabs so antialiasing never leaves hairlines
//   - Deterministic — fixed consumption and scan order; identical input
//     yields identical output, member order included
//   - Pure — each character is processed independently with no shared
//     state, so whole charsets vectorize in parallel
//
// Quick ASCII example (8×8 fragment):
//
//	 ######     a single merged polygon traces the
//	#      #    staircase boundary of the blob; the
//	# #  # #    enclosed face stays background, so the
//	#      #    ring is emitted as two layered shapes
//	 ######     rather than a polygon with a hole
//
// Start with outline.Extract for a single character, or cmd/makefont to
// convert a whole charset file into an SVG font document.
//
//	go get github.com/glyphvec/glyphvec/outline
package glyphvec
