package charset

import "fmt"

// ParseArt converts ASCII-art rows into charset row bytes: any non-space
// character sets the pixel, a space leaves it clear. Rows shorter than
// Width are padded with clear pixels on the right; longer rows error.
// Intended for tests, fixtures and hand-authored glyphs.
func ParseArt(rows []string) ([]byte, error) {
	data := make([]byte, len(rows))
	for y, row := range rows {
		if len(row) > Width {
			return nil, fmt.Errorf("%w: row %d is %d pixels wide", ErrMalformedData, y, len(row))
		}
		var b byte
		for x := 0; x < len(row); x++ {
			if row[x] != ' ' {
				b |= 1 << (lastX - x)
			}
		}
		data[y] = b
	}

	return data, nil
}

// MustParseArt is ParseArt for fixtures known to be valid; it panics on error.
func MustParseArt(rows []string) []byte {
	data, err := ParseArt(rows)
	if err != nil {
		panic(err)
	}

	return data
}
