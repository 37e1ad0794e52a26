// Package svgfont serializes extracted glyph outlines into an SVG font
// document.
//
// What:
//
//   - PathData renders a Shape as an SVG path string, flipping the y axis
//     (pixel grids grow downward, font coordinates grow upward) and
//     scaling pixel units to font units.
//   - Font assembles a whole charset into an SVG <font> document: one
//     <glyph> per printable character, labelled through a legacy code
//     page (CP437 by default) with XML-safe quoting.
//
// Why:
//
//   - Bitmap charsets carry no character identities: a byte value only
//     becomes "A" or "É" through the code page it was authored for.
//     golang.org/x/text/encoding/charmap supplies those mappings.
//   - Control bytes have no visual form; glyphs whose mapped rune is not
//     graphic are dropped rather than emitted empty.
//
// Extraction of the individual characters is embarrassingly parallel, so
// Render fans it out across a configurable number of workers before
// assembling the (deterministic) document.
//
// Errors:
//
//   - ErrNilCharset: Font constructed without a charset.
//   - ErrBadScale: non-positive scale in RenderOptions.
package svgfont
