package svgfont

import "errors"

// Sentinel errors for font assembly.
var (
	// ErrNilCharset indicates New was given no charset to render.
	ErrNilCharset = errors.New("svgfont: charset must not be nil")
	// ErrBadScale indicates a non-positive pixel-to-font-unit scale.
	ErrBadScale = errors.New("svgfont: scale must be positive")
)
