package fbterm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadGlyphTableText reads an external glyph source in the textual
// encoding spec.md §6 describes: for each supported character, a
// "U+XXXX" header line followed by font_height rows of font_width bytes,
// each either '.' (background) or '@' (foreground). Entries are
// separated by blank lines. Width and height give the expected cell size;
// a row of the wrong length is a format error.
func LoadGlyphTableText(r io.Reader, width, height int) (*GlyphTable, error) {
	t := NewGlyphTable(width, height)
	sc := bufio.NewScanner(r)
	lineNo := 0

	nextNonBlank := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := sc.Text()
			if strings.TrimSpace(line) != "" {
				return line, true
			}
		}
		return "", false
	}

	for {
		header, ok := nextNonBlank()
		if !ok {
			break
		}
		cp := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), "U+"))
		code, err := strconv.ParseInt(cp, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("fbterm: glyph source line %d: bad codepoint %q: %w", lineNo, header, err)
		}

		g := NewGlyph(width, height)
		for row := 0; row < height; row++ {
			if !sc.Scan() {
				return nil, fmt.Errorf("fbterm: glyph source line %d: unexpected EOF in glyph for U+%04X", lineNo, code)
			}
			lineNo++
			rowText := sc.Text()
			if len(rowText) != width {
				return nil, fmt.Errorf("fbterm: glyph source line %d: row length %d, want %d", lineNo, len(rowText), width)
			}
			for col, b := range []byte(rowText) {
				switch b {
				case '@':
					g.SetCell(row, col, true)
				case '.':
					g.SetCell(row, col, false)
				default:
					return nil, fmt.Errorf("fbterm: glyph source line %d: cell %q must be '.' or '@'", lineNo, b)
				}
			}
		}
		t.Put(rune(code), g)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
