package svgfont_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glyphvec/glyphvec/charset"
	"github.com/glyphvec/glyphvec/outline"
	"github.com/glyphvec/glyphvec/svgfont"
)

// extract builds a one-character charset from ASCII art and runs the
// outline pipeline on it.
func extract(t *testing.T, rows []string, opts outline.Options) outline.Shape {
	t.Helper()
	cs, err := charset.New(charset.MustParseArt(rows), charset.Options{Height: len(rows)})
	require.NoError(t, err)
	ch, err := cs.Char(0)
	require.NoError(t, err)

	return outline.Extract(ch, opts)
}

func TestPathData_FullBlock(t *testing.T) {
	s := extract(t, []string{
		"########",
		"########",
	}, outline.DefaultOptions())

	// y flips: pixel row 0 is the top of the em box.
	got := svgfont.PathData(s, 2, 64)
	assert.Equal(t, "M0 128L512 128L512 0L0 0Z", got)
}

func TestPathData_DrawOrderAndTabs(t *testing.T) {
	s := extract(t, []string{
		"####    ",
		"#  #    ",
		"#  #    ",
		"####    ",
	}, outline.DefaultOptions())
	require.Equal(t, 2, s.Len())

	// Scale 4 keeps the quarter-pixel tabs on integer coordinates. The
	// bottom bar renders first, then the extended n-shape on top of it.
	got := svgfont.PathData(s, 4, 4)
	want := "M0 4L16 4L16 0L0 0Z" +
		"M0 16L16 16L16 12L16 3L12 3L12 12L4 12L4 3L0 3L0 12Z"
	assert.Equal(t, want, got)
}

func TestPathData_FractionalScale(t *testing.T) {
	s := extract(t, []string{
		"####    ",
		"#  #    ",
		"#  #    ",
		"####    ",
	}, outline.DefaultOptions())

	// Unit scale exposes the raw tab depth in the output.
	got := svgfont.PathData(s, 4, 1)
	assert.Contains(t, got, "0.75")
	assert.NotContains(t, got, ".750")
}

func TestPathData_Empty(t *testing.T) {
	s := extract(t, []string{"        "}, outline.DefaultOptions())
	assert.Equal(t, "", svgfont.PathData(s, 1, 64))
}

func TestPathData_OneSubpathPerMember(t *testing.T) {
	s := extract(t, []string{
		"####    ",
		"#  #    ",
		"####    ",
		"#  #    ",
		"####    ",
	}, outline.DefaultOptions())
	require.Equal(t, 3, s.Len())

	got := svgfont.PathData(s, 5, 64)
	assert.Equal(t, 3, strings.Count(got, "M"))
	assert.Equal(t, 3, strings.Count(got, "Z"))
}
