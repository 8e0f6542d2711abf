package fbterm

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BuiltinGlyphTable samples golang.org/x/image/font/basicfont's Face7x13 —
// a self-contained, dependency-free bitmap font — into a GlyphTable of the
// bundled DefaultFontWidth x DefaultFontHeight cell size, satisfying
// spec.md §6's "external loader" contract without shipping a font file.
//
// Face7x13's native glyph cell is 7x13; sampling maps the default 6x12
// cell onto it by nearest-source-pixel lookup, which loses a column and a
// row of the source font's curves but keeps every printable ASCII glyph
// legible at the emulator's fixed cell size.
func BuiltinGlyphTable() *GlyphTable {
	t := NewGlyphTable(DefaultFontWidth, DefaultFontHeight)
	for r := rune(0x20); r <= 0x7e; r++ {
		g, ok := sampleFace(basicfont.Face7x13, r, DefaultFontWidth, DefaultFontHeight)
		if ok {
			t.Put(r, g)
		}
	}
	return t
}

// sampleFace renders r via face.Glyph and resamples its mask into a
// width x height Glyph, thresholding alpha coverage at the midpoint.
func sampleFace(face font.Face, r rune, width, height int) (Glyph, bool) {
	dr, mask, maskp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Glyph{}, false
	}
	srcW := dr.Dx()
	srcH := dr.Dy()
	if srcW == 0 || srcH == 0 {
		return Glyph{}, false
	}

	g := NewGlyph(width, height)
	for row := 0; row < height; row++ {
		srcY := maskp.Y + row*srcH/height
		for col := 0; col < width; col++ {
			srcX := maskp.X + col*srcW/width
			_, _, _, a := mask.At(srcX, srcY).RGBA()
			g.SetCell(row, col, a > 0x7fff)
		}
	}
	return g, true
}
