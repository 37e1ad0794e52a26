package outline_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphvec/glyphvec/charset"
	"github.com/glyphvec/glyphvec/geom"
	"github.com/glyphvec/glyphvec/outline"
)

// grid builds a one-character charset from ASCII art and returns its
// pixel-grid view; any non-space rune is a set pixel.
func grid(t *testing.T, rows []string) outline.Grid {
	t.Helper()
	cs, err := charset.New(charset.MustParseArt(rows), charset.Options{Height: len(rows)})
	require.NoError(t, err)
	ch, err := cs.Char(0)
	require.NoError(t, err)

	return ch
}

// Fixture glyphs shared across the package tests.
var (
	// smiley is character 0x01 of the classic EGA font: a hollow face
	// whose frame pieces meet only at corners.
	smiley = []string{
		"        ",
		"        ",
		" ###### ",
		"#      #",
		"# #  # #",
		"#      #",
		"#      #",
		"# #### #",
		"#  ##  #",
		"#      #",
		" ###### ",
		"        ",
		"        ",
		"        ",
	}

	// blank and full are the degenerate 8×14 grids.
	blank = blankRows(14)
	full  = fullRows(14)

	// blob is a contiguous pyramid with varying run widths.
	blob = []string{
		"  ##    ",
		" ####   ",
		"######  ",
	}

	// ring is an O-topology glyph: an outer run of set pixels enclosing
	// unset background.
	ring = []string{
		"####    ",
		"#  #    ",
		"#  #    ",
		"####    ",
	}

	// eight stacks two enclosed counters like the digit 8.
	eight = []string{
		"####    ",
		"#  #    ",
		"####    ",
		"#  #    ",
		"####    ",
	}

	// hourglass holds two pixels meeting only at a corner point.
	hourglass = []string{
		"#       ",
		" #      ",
	}

	// bridge encloses background above an inset bottom bar; both legs are
	// two pixels wide, so each side's contact edge outruns the other's.
	bridge = []string{
		"#####   ",
		"## ##   ",
		" ###    ",
	}
)

func blankRows(h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = "        "
	}

	return rows
}

func fullRows(h int) []string {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = "########"
	}

	return rows
}

// coverageMatches rasterizes the shape back onto the grid with exact
// region arithmetic and compares every pixel against the source.
func coverageMatches(t *testing.T, g outline.Grid, s outline.Shape) {
	t.Helper()
	covered := s.Covered()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			want := 0.0
			if g.Pixel(x, y) {
				want = 1.0
			}
			require.Equal(t, want, covered.PixelCoverage(x, y),
				"pixel (%d,%d) coverage", x, y)
		}
	}
}

// assertNoHoles checks the no-hole invariant on every member.
func assertNoHoles(t *testing.T, s outline.Shape) {
	t.Helper()
	for i, m := range s.Regions() {
		require.Equal(t, 1, m.Components(), "member %d must be one polygon", i)
		require.Equal(t, 0, m.Holes(), "member %d must be hole-free", i)
	}
}

// assertTerminal checks the repaired terminal state: no pair of members
// touches without overlapping.
func assertTerminal(t *testing.T, s outline.Shape) {
	t.Helper()
	members := s.Regions()
	for i := range members {
		for j := i + 1; j < len(members); j++ {
			require.False(t, geom.Touches(members[i], members[j]),
				"members %d and %d still touch without overlap", i, j)
		}
	}
}
