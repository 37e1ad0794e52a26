package charset

import "fmt"

// Width is the fixed pixel width of every character: one byte per row.
const Width = 8

// DefaultHeight is the character height assumed when Options leave it zero
// (the EGA 8×14 text-mode font).
const DefaultHeight = 14

// lastX is the largest valid x coordinate; bit (lastX - x) of a row byte
// holds pixel x, so bit 7 is the leftmost pixel.
const lastX = Width - 1

// Options contains tunable parameters for charset construction.
type Options struct {
	// Height is the number of rows per character; 0 means DefaultHeight.
	Height int
}

// DefaultOptions returns Options with the default character height (14).
func DefaultOptions() Options {
	return Options{Height: DefaultHeight}
}

// Charset is an immutable bitmap font: a flat run of row bytes, Height
// bytes per character. It is safe for concurrent use once constructed.
type Charset struct {
	data   []byte
	height int
}

// New constructs a Charset from raw font bytes. The input slice is
// deep-copied to ensure immutability.
// Returns ErrBadHeight if the configured height is negative,
// ErrMalformedData if len(data) is not a multiple of the height.
// Complexity: O(len(data)) time and memory.
func New(data []byte, opts Options) (*Charset, error) {
	h := opts.Height
	if h == 0 {
		h = DefaultHeight
	}
	if h < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadHeight, h)
	}
	if len(data)%h != 0 {
		return nil, fmt.Errorf("%w: %d bytes, height %d", ErrMalformedData, len(data), h)
	}
	// Deep copy to prevent external mutation.
	cp := make([]byte, len(data))
	copy(cp, data)

	return &Charset{data: cp, height: h}, nil
}

// Len reports the number of characters in the set.
// Complexity: O(1).
func (cs *Charset) Len() int {
	return len(cs.data) / cs.height
}

// Height reports the configured rows per character.
// Complexity: O(1).
func (cs *Charset) Height() int {
	return cs.height
}

// Char returns a view of character i.
// Returns ErrCharIndex when i is outside [0, Len()).
// Complexity: O(1); the view shares the charset's backing bytes.
func (cs *Charset) Char(i int) (Character, error) {
	if i < 0 || i >= cs.Len() {
		return Character{}, fmt.Errorf("%w: %d of %d", ErrCharIndex, i, cs.Len())
	}

	return Character{set: cs, index: i}, nil
}

// Pixel reports whether pixel (x,y) of character i is set.
// Panics on out-of-range coordinates or character index; callers are
// expected to stay within the advertised dimensions.
func (cs *Charset) Pixel(i, x, y int) bool {
	if i < 0 || i >= cs.Len() {
		panic(fmt.Sprintf("charset: character %d out of range [0,%d)", i, cs.Len()))
	}
	if x < 0 || x > lastX || y < 0 || y >= cs.height {
		panic(fmt.Sprintf("charset: pixel (%d,%d) out of range %dx%d", x, y, Width, cs.height))
	}
	row := cs.data[i*cs.height+y]

	return (row>>(lastX-x))&1 == 1
}

// Character is a read-only view of a single character within a Charset.
// The zero value is not valid; obtain views via Charset.Char.
type Character struct {
	set   *Charset
	index int
}

// Width reports the pixel width of the character (always 8).
func (c Character) Width() int {
	return Width
}

// Height reports the pixel height of the character.
func (c Character) Height() int {
	return c.set.height
}

// Pixel reports whether pixel (x,y) is set. Panics outside
// [0,Width)×[0,Height), mirroring Charset.Pixel.
func (c Character) Pixel(x, y int) bool {
	return c.set.Pixel(c.index, x, y)
}
