package fbterm

// Screen is TerminalState (spec.md §3) plus everything it owns: the
// shadow buffer, rasterizer, and glyph table. Apply is a pure function of
// (Screen, TerminalOp) — Screen owns its own PixelBuffer rather than
// referencing a package-global, per spec.md §9's "global screen state"
// redesign.
type Screen struct {
	geom    ScreenGeometry
	glyphs  *GlyphTable
	buf     *PixelBuffer
	raster  *Rasterizer
	palette Palette
	parser  *Parser

	CursorX, CursorY int
	Fg, Bg           Color
	ScrollRegion     ScrollRegion
	LastPrintedChar  rune
}

// NewScreen builds a Screen over a freshly allocated shadow buffer sized
// to geom, using glyphs for rendering and cfg for the initial palette,
// colors, and scroll region.
func NewScreen(geom ScreenGeometry, glyphs *GlyphTable, cfg Config) *Screen {
	buf := NewPixelBuffer(geom)
	s := &Screen{
		geom:    geom,
		glyphs:  glyphs,
		buf:     buf,
		raster:  NewRasterizer(buf),
		palette: cfg.Palette,
		Fg:      cfg.Palette[15],
		Bg:      cfg.Palette[0],
		parser:  NewParser(),
	}
	totalLines := geom.HeightPx / glyphs.Height
	s.ScrollRegion = cfg.ScrollRegionDefault.normalize(totalLines)
	s.CursorX, s.CursorY = 0, 0
	return s
}

// Buffer exposes the shadow PixelBuffer, e.g. for DeviceBuffer.Flush.
func (s *Screen) Buffer() *PixelBuffer { return s.buf }

// Geometry returns the screen's geometry.
func (s *Screen) Geometry() ScreenGeometry { return s.geom }

// Feed parses one input byte and applies the TerminalOp it completes, if
// any. Most bytes complete an op immediately; bytes in the middle of an
// escape sequence complete none.
func (s *Screen) Feed(c byte) {
	op, ok := s.parser.Feed(c)
	if !ok {
		return
	}
	s.Apply(op)
}

// Apply interprets a single TerminalOp against the current state,
// mutating cursor/color/scroll-region fields and drawing through the
// rasterizer as needed.
func (s *Screen) Apply(op TerminalOp) {
	fw, fh := s.glyphs.Width, s.glyphs.Height

	switch op.Kind {
	case OpPrint:
		s.print(op.Char)
	case OpCarriageReturn:
		s.CursorX = 0
	case OpBackspace:
		s.CursorX -= min(s.CursorX, fw)
	case OpLineFeed:
		s.lineFeed()
	case OpCursorSet:
		s.CursorY = (op.Line - 1) * fh
		s.CursorX = (op.Col - 1) * fw
	case OpCursorHome:
		s.CursorX, s.CursorY = 0, 0
	case OpCursorSetRow:
		s.CursorY = (op.Line - 1) * fh
	case OpCursorUp:
		s.CursorY -= min(s.CursorY, op.N*fh)
	case OpCursorDown:
		s.CursorY = min(s.CursorY+op.N*fh, s.geom.HeightPx)
	case OpCursorRight:
		s.CursorX = min(s.CursorX+op.N*fw, s.geom.WidthPx)
	case OpCursorLeft:
		s.CursorX -= min(s.CursorX, op.N*fw)
	case OpClearLineFromCursor:
		s.raster.FillRect(s.CursorX, s.CursorY, s.geom.WidthPx-s.CursorX, fh, s.Bg)
	case OpClearEntireLine:
		s.raster.FillRect(0, s.CursorY, s.geom.WidthPx, fh, s.Bg)
	case OpClearBelowCursor:
		s.raster.FillRect(s.CursorX, s.CursorY, s.geom.WidthPx-s.CursorX, fh, s.Bg)
		s.raster.ClearBelow(s.CursorY/fh+1, fh, s.Bg)
	case OpClearScreen:
		s.raster.ClearAll(s.Bg)
	case OpSetGraphics:
		s.setGraphics(op.Params)
	case OpSetScrollRegion:
		totalLines := s.geom.HeightPx / fh
		s.ScrollRegion = ScrollRegion{Top: op.Top, Bottom: op.Bottom}.normalize(totalLines)
	case OpRepeat:
		// Directly synthesize N Print(last_printed_char) ops in place,
		// per spec.md §9, instead of re-feeding bytes through the parser.
		for i := 0; i < op.N; i++ {
			s.print(s.LastPrintedChar)
		}
	case OpIgnore:
	}
}

func (s *Screen) print(c rune) {
	if g, ok := s.glyphs.Get(c); ok {
		s.raster.DrawGlyph(s.CursorX, s.CursorY, g, s.Fg, s.Bg)
	}
	s.CursorX += s.glyphs.Width
	s.LastPrintedChar = c
}

func (s *Screen) lineFeed() {
	fh := s.glyphs.Height
	s.CursorY += fh

	bottomPx := s.ScrollRegion.Bottom * fh
	if s.CursorY >= bottomPx {
		s.CursorY = (s.ScrollRegion.Bottom - 1) * fh

		top, bot := s.ScrollRegion.Top, s.ScrollRegion.Bottom
		stride := s.geom.Stride
		count := (bot - top) * fh * stride
		s.buf.Move((top-1)*fh*stride, top*fh*stride, count)
		s.raster.FillRect(0, (bot-1)*fh, s.geom.WidthPx, fh, s.Bg)
	}
	s.CursorX = 0
}

// setGraphics consumes params left-to-right as an ordered queue, per
// spec.md §4.F's SetGraphics table.
func (s *Screen) setGraphics(params []int) {
	if len(params) == 0 {
		params = []int{0}
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			s.Fg = s.palette[15]
			s.Bg = s.palette[0]
		case p == 1:
			// bold: ignored, no bold rendering in this emulator
		case p >= 30 && p <= 37:
			s.Fg = s.palette[p-30]
		case p >= 90 && p <= 97:
			s.Fg = s.palette[p-82]
		case p >= 40 && p <= 47:
			s.Bg = s.palette[p-40]
		case p >= 100 && p <= 107:
			s.Bg = s.palette[p-92]
		case p == 39:
			s.Fg = s.palette[15]
		case p == 49:
			s.Bg = s.palette[0]
		case p == 38 || p == 48:
			c, consumed, ok := parseExtendedColor(params[i+1:], s.palette)
			if !ok {
				return
			}
			if p == 38 {
				s.Fg = c
			} else {
				s.Bg = c
			}
			i += consumed
		default:
			// unrecognized SGR parameter: ignored
		}
	}
}

// parseExtendedColor consumes the "5;n" (256-color) or "2;r;g;b"
// (truecolor) tail of an extended SGR 38/48 sequence from rest (the
// params following the 38/48 itself). It reports how many of those
// params it consumed, and false if the sequence is malformed — per
// spec.md §4.F, a malformed extended sequence aborts SetGraphics
// silently rather than misinterpreting the remaining params.
func parseExtendedColor(rest []int, p Palette) (Color, int, bool) {
	if len(rest) == 0 {
		return Color{}, 0, false
	}
	switch rest[0] {
	case 5:
		if len(rest) < 2 {
			return Color{}, 0, false
		}
		return colorAt256(p, rest[1]), 2, true
	case 2:
		if len(rest) < 4 {
			return Color{}, 0, false
		}
		return Color{
			R: uint8(bound(rest[1], 0, 255)),
			G: uint8(bound(rest[2], 0, 255)),
			B: uint8(bound(rest[3], 0, 255)),
		}, 4, true
	default:
		return Color{}, 0, false
	}
}

// FlushCaret overlays a caret at (cursor_x, cursor_y + font_height - 1)
// directly on dev, bypassing the shadow buffer, per spec.md §4.G.
func (s *Screen) FlushCaret(dev *DeviceBuffer) {
	y := s.CursorY + s.glyphs.Height - 1
	offset := (y*s.geom.WidthPx + s.CursorX) * s.geom.BytesPerPixel
	dev.WriteAt(offset, caretRow(s.geom.Bpp, s.glyphs.Width, s.Fg))
}
