package svgfont

import (
	"encoding/xml"
	"fmt"
	"io"
	"runtime"
	"sync"
	"unicode"

	"golang.org/x/text/encoding/charmap"

	"github.com/glyphvec/glyphvec/charset"
	"github.com/glyphvec/glyphvec/outline"
)

// DefaultScale is the pixel-to-font-unit factor used when RenderOptions
// leave Scale zero: 64 font units per pixel, so an 8×14 character maps to
// a 512×896 em box with integer coordinates, repair tabs included.
const DefaultScale = 64

// Font assembles a charset into an SVG font document.
type Font struct {
	name string
	cs   *charset.Charset
	cm   *charmap.Charmap
}

// New creates a font named name over the given charset. A nil code page
// defaults to CP437, the classic PC charset layout.
// Returns ErrNilCharset when cs is nil.
func New(name string, cs *charset.Charset, cm *charmap.Charmap) (*Font, error) {
	if cs == nil {
		return nil, ErrNilCharset
	}
	if cm == nil {
		cm = charmap.CodePage437
	}

	return &Font{name: name, cs: cs, cm: cm}, nil
}

// GlyphLabel maps character index i through the font's code page and
// reports whether the resulting rune is printable. Non-graphic runes
// (controls, unassigned bytes) have no glyph and are skipped by Render.
func (f *Font) GlyphLabel(i int) (rune, bool) {
	if i < 0 || i > 0xFF {
		return 0, false // a single-byte code page names at most 256 glyphs
	}
	r := f.cm.DecodeByte(byte(i))

	return r, unicode.IsGraphic(r)
}

// RenderOptions contains tunable parameters for document assembly.
type RenderOptions struct {
	// Scale is the pixel-to-font-unit factor; 0 means DefaultScale.
	Scale float64
	// Extract configures the outline pipeline per character.
	Extract outline.Options
	// Workers caps concurrent character extraction; 0 means GOMAXPROCS.
	Workers int
}

// DefaultRenderOptions returns the reference assembly behavior.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Scale: DefaultScale, Extract: outline.DefaultOptions()}
}

// svg document structure; encoding/xml takes care of attribute quoting,
// which is the "quoted label" half of the serializer contract.
type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Defs    struct {
		Font fontElem `xml:"font"`
	} `xml:"defs"`
}

type fontElem struct {
	ID        string      `xml:"id,attr"`
	HorizAdvX float64     `xml:"horiz-adv-x,attr"`
	Face      faceElem    `xml:"font-face"`
	Glyphs    []glyphElem `xml:"glyph"`
}

type faceElem struct {
	Family     string  `xml:"font-family,attr"`
	UnitsPerEm float64 `xml:"units-per-em,attr"`
	Ascent     float64 `xml:"ascent,attr"`
	Descent    float64 `xml:"descent,attr"`
}

type glyphElem struct {
	Unicode string `xml:"unicode,attr"`
	D       string `xml:"d,attr,omitempty"`
}

// Render extracts every printable character and writes the SVG font
// document. Characters are independent, so extraction fans out across
// opts.Workers goroutines; assembly order is by character index, keeping
// the document byte-identical across runs.
func (f *Font) Render(w io.Writer, opts RenderOptions) error {
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if scale < 0 {
		return fmt.Errorf("%w: got %g", ErrBadScale, scale)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	n := f.cs.Len()
	shapes := make([]outline.Shape, n)
	idx := make(chan int)
	var wg sync.WaitGroup
	for wk := 0; wk < workers; wk++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				ch, err := f.cs.Char(i)
				if err != nil {
					continue // unreachable: i < Len by construction
				}
				shapes[i] = outline.Extract(ch, opts.Extract)
			}
		}()
	}
	for i := 0; i < n; i++ {
		idx <- i
	}
	close(idx)
	wg.Wait()

	height := f.cs.Height()
	font := fontElem{
		ID:        f.name,
		HorizAdvX: charset.Width * scale,
		Face: faceElem{
			Family:     f.name,
			UnitsPerEm: float64(height) * scale,
			Ascent:     float64(height) * scale,
			Descent:    0,
		},
	}
	for i := 0; i < n; i++ {
		label, ok := f.GlyphLabel(i)
		if !ok {
			continue
		}
		font.Glyphs = append(font.Glyphs, glyphElem{
			Unicode: string(label),
			D:       PathData(shapes[i], height, scale),
		})
	}

	doc := svgDoc{
		Xmlns:   "http://www.w3.org/2000/svg",
		Version: "1.1",
	}
	doc.Defs.Font = font

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("svgfont: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("svgfont: encode document: %w", err)
	}

	return enc.Close()
}
