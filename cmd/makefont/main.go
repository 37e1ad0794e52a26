// Command makefont converts a raw bitmap charset file (.chr layout: one
// byte per row, fixed 8-pixel width) into an SVG font document with
// vector glyph outlines.
//
// Usage:
//
//	makefont -in default.chr -name "EGA 8x14" -out ega.svg
//	makefont -in vga.chr -height 16 -codepage cp850 -simplify
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/text/encoding/charmap"

	"github.com/glyphvec/glyphvec/charset"
	"github.com/glyphvec/glyphvec/outline"
	"github.com/glyphvec/glyphvec/svgfont"
)

// codePages lists the legacy single-byte encodings the converter accepts.
var codePages = map[string]*charmap.Charmap{
	"cp437":  charmap.CodePage437,
	"cp850":  charmap.CodePage850,
	"cp852":  charmap.CodePage852,
	"cp866":  charmap.CodePage866,
	"latin1": charmap.ISO8859_1,
}

func main() {
	var (
		in       = flag.String("in", "", "input charset file (.chr row bytes)")
		out      = flag.String("out", "", "output SVG file (default stdout)")
		height   = flag.Int("height", charset.DefaultHeight, "character height in pixels")
		name     = flag.String("name", "bitmap", "font family name")
		codepage = flag.String("codepage", "cp437", "glyph naming code page")
		scale    = flag.Float64("scale", svgfont.DefaultScale, "font units per pixel")
		simplify = flag.Bool("simplify", false, "drop collinear outline vertices")
		workers  = flag.Int("workers", 0, "concurrent characters (0 = all CPUs)")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "makefont: ", 0)
	if *in == "" {
		logger.Fatal("missing -in charset file")
	}
	cm, ok := codePages[*codepage]
	if !ok {
		logger.Fatalf("unknown code page %q", *codepage)
	}

	if err := run(*in, *out, *height, *name, *scale, *simplify, *workers, cm); err != nil {
		logger.Fatal(err)
	}
}

func run(in, out string, height int, name string, scale float64, simplify bool, workers int, cm *charmap.Charmap) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read charset: %w", err)
	}
	cs, err := charset.New(data, charset.Options{Height: height})
	if err != nil {
		return err
	}
	font, err := svgfont.New(name, cs, cm)
	if err != nil {
		return err
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	opts := svgfont.DefaultRenderOptions()
	opts.Scale = scale
	opts.Workers = workers
	opts.Extract = outline.Options{Simplify: simplify}

	return font.Render(w, opts)
}
