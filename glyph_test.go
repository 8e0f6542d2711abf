package fbterm

import (
	"strings"
	"testing"
)

func TestNewGlyphTableHasSpaceGlyph(t *testing.T) {
	table := NewGlyphTable(6, 12)
	g, ok := table.Get(' ')
	if !ok {
		t.Fatal("space glyph missing")
	}
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.Set(row, col) {
				t.Fatalf("space glyph cell (%d,%d) is foreground, want all background", row, col)
			}
		}
	}
}

func TestGlyphTableMissingEntryNotFound(t *testing.T) {
	table := NewGlyphTable(6, 12)
	if _, ok := table.Get('☃'); ok {
		t.Fatal("unexpected glyph for an unloaded character")
	}
}

func TestBuiltinGlyphTableCoversASCII(t *testing.T) {
	table := BuiltinGlyphTable()
	for _, r := range []rune{'A', 'B', 'q', 'Y', 'N', 'R', 'X'} {
		if _, ok := table.Get(r); !ok {
			t.Fatalf("builtin table missing glyph for %q", r)
		}
	}
	if g, _ := table.Get('A'); g.Width != DefaultFontWidth || g.Height != DefaultFontHeight {
		t.Fatalf("glyph %v size = %dx%d, want %dx%d", 'A', g.Width, g.Height, DefaultFontWidth, DefaultFontHeight)
	}
}

func TestLoadGlyphTableText(t *testing.T) {
	src := "U+0041\n" +
		"@@@@@@\n" +
		"......\n" +
		"......\n" +
		"......\n" +
		"......\n" +
		"......\n" +
		"......\n" +
		"......\n" +
		"......\n" +
		"......\n" +
		"......\n" +
		"......\n"

	table, err := LoadGlyphTableText(strings.NewReader(src), 6, 12)
	if err != nil {
		t.Fatalf("LoadGlyphTableText: %v", err)
	}
	g, ok := table.Get('A')
	if !ok {
		t.Fatal("expected glyph for 'A'")
	}
	for col := 0; col < 6; col++ {
		if !g.Set(0, col) {
			t.Fatalf("row 0 col %d not set", col)
		}
	}
	if g.Set(1, 0) {
		t.Fatal("row 1 should be all background")
	}
	if _, ok := table.Get(' '); !ok {
		t.Fatal("space glyph should still be present by default")
	}
}

func TestLoadGlyphTableTextRejectsBadRowLength(t *testing.T) {
	src := "U+0041\n@@\n"
	if _, err := LoadGlyphTableText(strings.NewReader(src), 6, 12); err == nil {
		t.Fatal("expected an error for a short row")
	}
}
