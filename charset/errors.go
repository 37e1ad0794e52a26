package charset

import "errors"

// Sentinel errors for charset construction and indexing.
var (
	// ErrBadHeight indicates a non-positive character height.
	ErrBadHeight = errors.New("charset: character height must be positive")
	// ErrMalformedData indicates the byte length is not a multiple of the
	// character height; truncating silently would corrupt every later glyph.
	ErrMalformedData = errors.New("charset: data length must be a multiple of character height")
	// ErrCharIndex indicates a requested character index is out of range.
	ErrCharIndex = errors.New("charset: character index out of range")
)
