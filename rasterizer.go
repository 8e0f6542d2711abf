package fbterm

// Rasterizer blits glyphs and solid rectangles into a PixelBuffer. It
// never touches the device buffer: everything it draws lands in the
// shadow first (see buffer.go).
type Rasterizer struct {
	buf  *PixelBuffer
	geom ScreenGeometry
}

// NewRasterizer returns a Rasterizer drawing into buf.
func NewRasterizer(buf *PixelBuffer) *Rasterizer {
	return &Rasterizer{buf: buf, geom: buf.Geometry()}
}

// DrawGlyph blits g at pixel origin (x, y) with the given foreground and
// background. No clipping: callers guarantee x+g.Width <= WidthPx and
// y+g.Height <= HeightPx.
func (r *Rasterizer) DrawGlyph(x, y int, g Glyph, fg, bg Color) {
	fgPx := encodePixel(r.geom.Bpp, fg)
	bgPx := encodePixel(r.geom.Bpp, bg)
	row := make([]byte, 0, g.Width*len(fgPx))
	for i := 0; i < g.Height; i++ {
		row = row[:0]
		for col := 0; col < g.Width; col++ {
			if g.Set(i, col) {
				row = append(row, fgPx...)
			} else {
				row = append(row, bgPx...)
			}
		}
		r.buf.Seek(((y+i)*r.geom.WidthPx + x) * r.geom.BytesPerPixel)
		r.buf.Write(row)
	}
}

// FillRect fills a widthPx x heightPx rectangle at (x, y) with c, one
// encoded row at a time. This is spec.md §4.E's fill_hline, generalized to
// take an explicit pixel width rather than a cell count so callers can
// pass "to end of row" lengths directly.
func (r *Rasterizer) FillRect(x, y, widthPx, heightPx int, c Color) {
	if widthPx <= 0 || heightPx <= 0 {
		return
	}
	px := encodePixel(r.geom.Bpp, c)
	row := make([]byte, 0, widthPx*len(px))
	for i := 0; i < widthPx; i++ {
		row = append(row, px...)
	}
	for i := 0; i < heightPx; i++ {
		r.buf.Seek(((y+i)*r.geom.WidthPx + x) * r.geom.BytesPerPixel)
		r.buf.Write(row)
	}
}

// ClearBelow fills from character line `line` (0-based) to the end of the
// buffer with c.
func (r *Rasterizer) ClearBelow(line, fontHeight int, c Color) {
	r.fillFrom(line*fontHeight*r.geom.Stride, c)
}

// ClearAll fills the whole buffer with c.
func (r *Rasterizer) ClearAll(c Color) {
	r.fillFrom(0, c)
}

func (r *Rasterizer) fillFrom(offset int, c Color) {
	if offset >= r.geom.TotalBytes {
		return
	}
	px := encodePixel(r.geom.Bpp, c)
	repeat := (r.geom.TotalBytes - offset) / len(px)
	r.buf.Fill(offset, px, repeat)
}
