// Package charset addresses raw byte-backed bitmap fonts as immutable
// per-character pixel grids.
//
// What:
//
//   - Charset wraps the raw bytes of a fixed-width bitmap font file
//     (one byte per row, bit 7 = leftmost pixel, the classic .chr layout).
//   - Every character is Width (8) pixels wide and Height (configurable,
//     default 14) rows tall; characters are stored back to back.
//   - Character is a zero-copy view of one character with a boolean
//     Pixel(x, y) query.
//
// Why:
//
//   - Legacy video ROMs and .chr dumps carry exactly this layout
//     (EGA 8×14, VGA 8×16, CGA 8×8).
//   - The outline pipeline needs nothing more than bounds, dimensions
//     and a per-coordinate "is set" query.
//
// Complexity:
//
//   - New: O(len(data)) time and memory (deep copy).
//   - Pixel: O(1).
//
// Errors:
//
//   - ErrBadHeight: configured character height is not positive.
//   - ErrMalformedData: data length is not a multiple of the height.
//   - ErrCharIndex: requested character index out of range.
//
// Pixel panics on out-of-range coordinates: that is a programming error
// at the call site, not a recoverable runtime condition.
package charset
