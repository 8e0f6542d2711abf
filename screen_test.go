package fbterm

import "testing"

// solidGlyph returns a glyph entirely foreground.
func solidGlyph(w, h int) Glyph {
	g := NewGlyph(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			g.SetCell(row, col, true)
		}
	}
	return g
}

// rowGlyph returns a glyph whose only foreground cells are row `fgRow`.
func rowGlyph(w, h, fgRow int) Glyph {
	g := NewGlyph(w, h)
	for col := 0; col < w; col++ {
		g.SetCell(fgRow, col, true)
	}
	return g
}

// colGlyph returns a glyph whose only foreground cells are column `fgCol`.
func colGlyph(w, h, fgCol int) Glyph {
	g := NewGlyph(w, h)
	for row := 0; row < h; row++ {
		g.SetCell(row, fgCol, true)
	}
	return g
}

func pixelAt(s *Screen, x, y int) Color {
	buf := s.Buffer()
	geom := s.Geometry()
	off := (y*geom.WidthPx + x) * geom.BytesPerPixel
	b := buf.Bytes()[off : off+geom.BytesPerPixel]
	return Color{R: b[2], G: b[1], B: b[0]}
}

func newTestScreen(widthPx, heightPx int, glyphs *GlyphTable, scroll ScrollRegion) *Screen {
	cfg := NewConfig()
	cfg.ScrollRegionDefault = scroll
	geom := newGeometry(widthPx, heightPx, 32)
	return NewScreen(geom, glyphs, cfg)
}

func feedString(s *Screen, in string) {
	for i := 0; i < len(in); i++ {
		s.Feed(in[i])
	}
}

// TestScenarioS1 checks: input "AB\n" on a clean 240x96 screen draws A at
// (0,0) and B at (6,0), the cursor ends on row 12, and every set bit of
// glyph A is painted fg.
func TestScenarioS1(t *testing.T) {
	glyphs := NewGlyphTable(6, 12)
	glyphs.Put('A', solidGlyph(6, 12))
	glyphs.Put('B', solidGlyph(6, 12))

	s := newTestScreen(240, 96, glyphs, ScrollRegion{})
	feedString(s, "AB\n")

	for row := 0; row < 12; row++ {
		for col := 0; col < 6; col++ {
			if got := pixelAt(s, col, row); got != s.Fg {
				t.Fatalf("cell A (%d,%d) = %v, want fg %v", col, row, got, s.Fg)
			}
		}
	}
	for row := 0; row < 12; row++ {
		for col := 0; col < 6; col++ {
			if got := pixelAt(s, 6+col, row); got != s.Fg {
				t.Fatalf("cell B (%d,%d) = %v, want fg %v", col, row, got, s.Fg)
			}
		}
	}
	if s.CursorY != 12 {
		t.Fatalf("CursorY = %d, want 12", s.CursorY)
	}
}

// TestScenarioS2 checks: input "X\x1b[H Y" draws Y at cell (6,0) and
// leaves cursor_x at 12.
func TestScenarioS2(t *testing.T) {
	glyphs := NewGlyphTable(6, 12)
	glyphs.Put('X', solidGlyph(6, 12))
	glyphs.Put('Y', solidGlyph(6, 12))

	s := newTestScreen(240, 96, glyphs, ScrollRegion{})
	feedString(s, "X\x1b[H Y")

	for row := 0; row < 12; row++ {
		for col := 0; col < 6; col++ {
			if got := pixelAt(s, 6+col, row); got != s.Fg {
				t.Fatalf("cell Y (%d,%d) = %v, want fg %v", col, row, got, s.Fg)
			}
		}
	}
	if s.CursorX != 12 {
		t.Fatalf("CursorX = %d, want 12", s.CursorX)
	}
}

// TestScenarioS3 checks SetGraphics palette lookups for fg color.
func TestScenarioS3(t *testing.T) {
	glyphs := NewGlyphTable(6, 12)
	glyphs.Put('R', solidGlyph(6, 12))
	glyphs.Put('N', solidGlyph(6, 12))

	s := newTestScreen(240, 96, glyphs, ScrollRegion{})
	feedString(s, "\x1b[31mR\x1b[0mN")

	if got := pixelAt(s, 0, 0); got != DefaultPalette[1] {
		t.Fatalf("R fg = %v, want palette[1] %v", got, DefaultPalette[1])
	}
	if got := pixelAt(s, 6, 0); got != DefaultPalette[15] {
		t.Fatalf("N fg = %v, want palette[15] %v", got, DefaultPalette[15])
	}
}

// TestScenarioS4AndScrollPreservesContent is scenario S4 and testable
// property 3: a scroll within a restricted region shifts lines up and
// clears the vacated bottom line, losing only what scrolled off the top.
func TestScenarioS4AndScrollPreservesContent(t *testing.T) {
	const fw, fh = 6, 12
	glyphs := NewGlyphTable(fw, fh)
	glyphs.Put('A', rowGlyph(fw, fh, 0))    // marks row 0 of its cell
	glyphs.Put('B', rowGlyph(fw, fh, fh-1)) // marks the last row of its cell
	glyphs.Put('C', colGlyph(fw, fh, 0))    // marks column 0 of its cell

	s := newTestScreen(fw*4, fh*3, glyphs, ScrollRegion{Top: 1, Bottom: 2})
	feedString(s, "A\nB\nC")

	// Line 1 (rows 0..11) must show B's marker (last row foreground) and
	// must not show A's marker (row 0 foreground).
	if got := pixelAt(s, 0, 0); got != s.Bg {
		t.Fatalf("line1 row0 = %v, want bg (A must be gone)", got)
	}
	if got := pixelAt(s, 0, fh-1); got != s.Fg {
		t.Fatalf("line1 last row = %v, want fg (B's marker)", got)
	}

	// Line 2 (rows 12..23) must show C's marker (column 0 foreground).
	if got := pixelAt(s, 0, fh); got != s.Fg {
		t.Fatalf("line2 col0 = %v, want fg (C's marker)", got)
	}
	if got := pixelAt(s, 1, fh); got != s.Bg {
		t.Fatalf("line2 col1 = %v, want bg", got)
	}
}

// TestScenarioS5 checks CSI 2J zeroes the entire shadow buffer when
// bg is black.
func TestScenarioS5(t *testing.T) {
	glyphs := NewGlyphTable(6, 12)
	s := newTestScreen(64, 24, glyphs, ScrollRegion{})
	s.Bg = Color{}
	feedString(s, "\x1b[2J")

	for _, b := range s.Buffer().Bytes() {
		if b != 0 {
			t.Fatalf("shadow buffer byte = %d, want 0 after ClearScreen with black bg", b)
			break
		}
	}
}

// TestScenarioS6 checks CSI b repeats the last printed character in place.
func TestScenarioS6(t *testing.T) {
	glyphs := NewGlyphTable(6, 12)
	glyphs.Put('q', solidGlyph(6, 12))

	s := newTestScreen(240, 96, glyphs, ScrollRegion{})
	s.Apply(TerminalOp{Kind: OpClearScreen}) // start bg-filled, as cmd/fbterm does
	feedString(s, "q\x1b[4b")

	for cell := 0; cell < 5; cell++ {
		if got := pixelAt(s, cell*6, 0); got != s.Fg {
			t.Fatalf("cell %d = %v, want fg (q repeated)", cell, got)
		}
	}
	if got := pixelAt(s, 5*6, 0); got != s.Bg {
		t.Fatalf("cell 5 = %v, want bg (no 6th q)", got)
	}
}

// TestCursorClamps is testable property 4.
func TestCursorClamps(t *testing.T) {
	glyphs := NewGlyphTable(6, 12)
	s := newTestScreen(240, 96, glyphs, ScrollRegion{})

	s.CursorY = 24
	s.Apply(TerminalOp{Kind: OpCursorUp, N: 5})
	if s.CursorY != 0 {
		t.Fatalf("CursorUp(5) from row 24(px) = %d, want 0 (clamped)", s.CursorY)
	}

	s.CursorX = 18
	s.Apply(TerminalOp{Kind: OpCursorLeft, N: 10})
	if s.CursorX != 0 {
		t.Fatalf("CursorLeft(10) from col 18(px) = %d, want 0 (clamped)", s.CursorX)
	}
}

// TestPaletteIndices is testable property 5.
func TestPaletteIndices(t *testing.T) {
	glyphs := NewGlyphTable(6, 12)
	glyphs.Put('x', solidGlyph(6, 12))

	for i := 30; i <= 37; i++ {
		s := newTestScreen(240, 96, glyphs, ScrollRegion{})
		s.Apply(TerminalOp{Kind: OpSetGraphics, Params: []int{i}})
		s.Apply(TerminalOp{Kind: OpPrint, Char: 'x'})
		want := DefaultPalette[i-30]
		if s.Fg != want {
			t.Fatalf("SGR %d set fg = %v, want palette[%d] %v", i, s.Fg, i-30, want)
		}
		if got := pixelAt(s, 0, 0); got != want {
			t.Fatalf("SGR %d drawn fg = %v, want %v", i, got, want)
		}
	}
}

func TestSetGraphicsExtendedColor(t *testing.T) {
	glyphs := NewGlyphTable(6, 12)
	s := newTestScreen(240, 96, glyphs, ScrollRegion{})

	s.Apply(TerminalOp{Kind: OpSetGraphics, Params: []int{38, 2, 10, 20, 30}})
	if s.Fg != (Color{10, 20, 30}) {
		t.Fatalf("truecolor fg = %v, want (10,20,30)", s.Fg)
	}

	s.Apply(TerminalOp{Kind: OpSetGraphics, Params: []int{48, 5, 17}})
	if s.Bg != Extended256[1] {
		t.Fatalf("256-color bg = %v, want Extended256[1] %v", s.Bg, Extended256[1])
	}

	before := s.Fg
	s.Apply(TerminalOp{Kind: OpSetGraphics, Params: []int{38, 9}})
	if s.Fg != before {
		t.Fatalf("malformed extended SGR mutated fg to %v, want unchanged %v", s.Fg, before)
	}
}
