package svgfont_test

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/glyphvec/glyphvec/charset"
	"github.com/glyphvec/glyphvec/svgfont"
)

// letterCharset builds a 66-character charset whose only inked character
// is index 65 ('A' in every single-byte code page): a solid 8×2 block.
func letterCharset(t *testing.T) *charset.Charset {
	t.Helper()
	data := make([]byte, 66*2)
	data[65*2], data[65*2+1] = 0xFF, 0xFF
	cs, err := charset.New(data, charset.Options{Height: 2})
	require.NoError(t, err)

	return cs
}

// renderedDoc mirrors the SVG structure Render emits, for round-tripping.
type renderedDoc struct {
	Defs struct {
		Font struct {
			ID        string  `xml:"id,attr"`
			HorizAdvX float64 `xml:"horiz-adv-x,attr"`
			Face      struct {
				Family     string  `xml:"font-family,attr"`
				UnitsPerEm float64 `xml:"units-per-em,attr"`
				Ascent     float64 `xml:"ascent,attr"`
			} `xml:"font-face"`
			Glyphs []struct {
				Unicode string `xml:"unicode,attr"`
				D       string `xml:"d,attr"`
			} `xml:"glyph"`
		} `xml:"font"`
	} `xml:"defs"`
}

func TestNew_NilCharset(t *testing.T) {
	_, err := svgfont.New("broken", nil, nil)
	assert.ErrorIs(t, err, svgfont.ErrNilCharset)
}

func TestGlyphLabel(t *testing.T) {
	f, err := svgfont.New("test", letterCharset(t), nil)
	require.NoError(t, err)

	// Control bytes carry no glyph in CP437's Unicode mapping.
	_, ok := f.GlyphLabel(0x01)
	assert.False(t, ok)

	r, ok := f.GlyphLabel('A')
	assert.True(t, ok)
	assert.Equal(t, 'A', r)

	// Out of code-page range.
	_, ok = f.GlyphLabel(-1)
	assert.False(t, ok)
	_, ok = f.GlyphLabel(256)
	assert.False(t, ok)
}

func TestGlyphLabel_CodePage(t *testing.T) {
	latin1, err := svgfont.New("test", letterCharset(t), charmap.ISO8859_1)
	require.NoError(t, err)
	cp437, err := svgfont.New("test", letterCharset(t), charmap.CodePage437)
	require.NoError(t, err)

	// Index 0xF7 is '÷' in latin-1 but '≈' in CP437; the code page decides.
	r, ok := latin1.GlyphLabel(0xF7)
	assert.True(t, ok)
	assert.Equal(t, '÷', r)

	r, ok = cp437.GlyphLabel(0xF7)
	assert.True(t, ok)
	assert.Equal(t, '≈', r)
}

func TestRender_Document(t *testing.T) {
	f, err := svgfont.New("ega8x14", letterCharset(t), nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, svgfont.DefaultRenderOptions()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header))

	var doc renderedDoc
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))

	font := doc.Defs.Font
	assert.Equal(t, "ega8x14", font.ID)
	assert.Equal(t, "ega8x14", font.Face.Family)
	assert.Equal(t, float64(charset.Width*svgfont.DefaultScale), font.HorizAdvX)
	assert.Equal(t, float64(2*svgfont.DefaultScale), font.Face.UnitsPerEm)
	assert.Equal(t, float64(2*svgfont.DefaultScale), font.Face.Ascent)

	// CP437 maps indices 0–31 to controls; 32–65 are printable, and only
	// 'A' carries ink.
	require.Len(t, font.Glyphs, 34)
	var gotA string
	for _, g := range font.Glyphs {
		if g.Unicode == "A" {
			gotA = g.D
		} else {
			assert.Empty(t, g.D, "glyph %q should be blank", g.Unicode)
		}
	}
	assert.Equal(t, "M0 128L512 128L512 0L0 0Z", gotA)
}

func TestRender_Deterministic(t *testing.T) {
	f, err := svgfont.New("ega8x14", letterCharset(t), nil)
	require.NoError(t, err)

	render := func(workers int) string {
		opts := svgfont.DefaultRenderOptions()
		opts.Workers = workers
		var buf bytes.Buffer
		require.NoError(t, f.Render(&buf, opts))

		return buf.String()
	}

	want := render(1)
	for _, workers := range []int{2, 4, 7} {
		assert.Equal(t, want, render(workers), "workers=%d", workers)
	}
}

func TestRender_BadScale(t *testing.T) {
	f, err := svgfont.New("test", letterCharset(t), nil)
	require.NoError(t, err)

	opts := svgfont.DefaultRenderOptions()
	opts.Scale = -1
	assert.ErrorIs(t, f.Render(&bytes.Buffer{}, opts), svgfont.ErrBadScale)
}
