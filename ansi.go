package fbterm

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// bound clamps x to [lo, hi], carried from sparques-fansiterm/ansi.go.
func bound[N constraints.Integer](x, lo, hi N) N {
	return min(max(x, lo), hi)
}

// parserState is the parser's only state beyond the accumulation buffer.
type parserState int

const (
	stateGround parserState = iota
	stateEscape
)

// maxEscapeBuffer is the sanity limit spec.md §7 describes: an escape
// sequence that grows past this many bytes without terminating is
// recovered by discarding the buffer and returning to Ground.
const maxEscapeBuffer = 64

// Parser is a byte-at-a-time ANSI/ECMA-48 escape sequence recognizer. It
// holds no reference to a Screen: it is a pure function of (state, byte)
// that emits TerminalOp values, per spec.md §9's "parser expressed as
// data, not control flow" redesign.
type Parser struct {
	state  parserState
	buf    []byte
	onWarn func(*ParseInconsistency)
}

// NewParser returns a ready-to-use Parser in the Ground state.
func NewParser() *Parser {
	return &Parser{state: stateGround}
}

// Feed advances the parser by one input byte, returning the TerminalOp it
// produced, if any. Most Ground-state bytes produce exactly one op;
// accumulating Escape-state bytes produce none until the sequence
// terminates.
func (p *Parser) Feed(c byte) (TerminalOp, bool) {
	switch p.state {
	case stateGround:
		return p.feedGround(c)
	default:
		return p.feedEscape(c)
	}
}

func (p *Parser) feedGround(c byte) (TerminalOp, bool) {
	switch c {
	case 0x1b:
		p.state = stateEscape
		p.buf = p.buf[:0]
		return TerminalOp{}, false
	case '\n':
		return TerminalOp{Kind: OpLineFeed}, true
	case '\r':
		return TerminalOp{Kind: OpCarriageReturn}, true
	case '\b':
		return TerminalOp{Kind: OpBackspace}, true
	case 0x00, 0x07:
		return TerminalOp{Kind: OpIgnore}, true
	default:
		return TerminalOp{Kind: OpPrint, Char: rune(c)}, true
	}
}

func (p *Parser) feedEscape(c byte) (TerminalOp, bool) {
	p.buf = append(p.buf, c)

	if len(p.buf) > maxEscapeBuffer {
		if p.onWarn != nil {
			p.onWarn(&ParseInconsistency{Buffered: len(p.buf)})
		}
		p.state = stateGround
		p.buf = p.buf[:0]
		return TerminalOp{}, false
	}

	if !p.escapeComplete() {
		return TerminalOp{}, false
	}

	op := p.parseEscape(p.buf)
	p.state = stateGround
	p.buf = p.buf[:0]
	return op, true
}

// escapeComplete reports whether p.buf (everything accumulated since ESC)
// forms a complete escape sequence under the terminator rules of
// spec.md §4.F.
func (p *Parser) escapeComplete() bool {
	first := p.buf[0]
	switch first {
	case '(', ')', ' ':
		// Charset designators and the vestigial " 7"/" 8"/")0" forms all
		// terminate after exactly one more byte.
		return len(p.buf) >= 2
	case '[':
		last := p.buf[len(p.buf)-1]
		return isEscTerminator(last)
	case ']':
		// OSC: unlike CSI, an ordinary letter never terminates the
		// sequence (window titles are full of letters). Only BEL/'R' and
		// the ST (ESC \) form end it, per original_source/nanoterm.py's
		// write(): the letter/=/\/% clause is gated on "not OSC", while
		// the BEL/'R' check applies unconditionally.
		last := p.buf[len(p.buf)-1]
		if last == 0x07 || last == 'R' {
			return true
		}
		return len(p.buf) >= 2 && p.buf[len(p.buf)-2] == 0x1b && last == '\\'
	default:
		// Simple ESC sequences (ESC 7, ESC 8, ESC c, ESC M, ...) complete
		// after their single following byte.
		return true
	}
}

func isEscTerminator(b byte) bool {
	if b == 0x07 || b == 'R' {
		return true
	}
	if b >= 'A' && b <= 'Z' || b >= 'a' && b <= 'z' {
		return true
	}
	return b == '=' || b == '\\' || b == '%'
}

// parseEscape turns a complete escape-sequence buffer (everything after
// ESC) into a TerminalOp. Unrecognized sequences and OSC sequences (which
// this core does not interpret) yield OpIgnore.
func (p *Parser) parseEscape(buf []byte) TerminalOp {
	switch buf[0] {
	case '[':
		return parseCSI(buf[1:])
	default:
		return TerminalOp{Kind: OpIgnore}
	}
}

// parseCSI parses the bytes between '[' and the sequence terminator
// (inclusive of the final byte) into a TerminalOp, per the table in
// spec.md §4.F.
func parseCSI(seq []byte) TerminalOp {
	if len(seq) == 0 {
		return TerminalOp{Kind: OpIgnore}
	}
	final := seq[len(seq)-1]
	params := string(seq[:len(seq)-1])

	switch final {
	case 'H', 'f':
		if params == "" {
			return TerminalOp{Kind: OpCursorHome}
		}
		line, col := 1, 1
		args := splitIntParams(params, 0)
		switch len(args) {
		case 1:
			line = orDefault(args[0], 1)
		case 2:
			line = orDefault(args[0], 1)
			col = orDefault(args[1], 1)
		}
		return TerminalOp{Kind: OpCursorSet, Line: line, Col: col}
	case 'd':
		return TerminalOp{Kind: OpCursorSetRow, Line: firstIntParam(params, 1)}
	case 'A':
		return TerminalOp{Kind: OpCursorUp, N: firstIntParam(params, 1)}
	case 'B':
		return TerminalOp{Kind: OpCursorDown, N: firstIntParam(params, 1)}
	case 'C':
		return TerminalOp{Kind: OpCursorRight, N: firstIntParam(params, 1)}
	case 'D', 'Z':
		// CSI Z is real-terminal CBT (cursor backward tab); this emulator
		// follows the source's treatment of it as cursor-left. See
		// spec.md §9.
		return TerminalOp{Kind: OpCursorLeft, N: firstIntParam(params, 1)}
	case 'K':
		switch params {
		case "", "0":
			return TerminalOp{Kind: OpClearLineFromCursor}
		case "2":
			return TerminalOp{Kind: OpClearEntireLine}
		}
		return TerminalOp{Kind: OpIgnore}
	case 'J':
		switch params {
		case "", "0":
			return TerminalOp{Kind: OpClearBelowCursor}
		case "2":
			return TerminalOp{Kind: OpClearScreen}
		}
		return TerminalOp{Kind: OpIgnore}
	case 'm':
		return TerminalOp{Kind: OpSetGraphics, Params: splitIntParams(params, 0)}
	case 'b':
		return TerminalOp{Kind: OpRepeat, N: firstIntParam(params, 1)}
	case 'r':
		if params == "" {
			return TerminalOp{Kind: OpSetScrollRegion, Top: 0, Bottom: 0}
		}
		args := splitIntParams(params, 0)
		if len(args) != 2 {
			return TerminalOp{Kind: OpIgnore}
		}
		return TerminalOp{Kind: OpSetScrollRegion, Top: args[0], Bottom: args[1]}
	default:
		return TerminalOp{Kind: OpIgnore}
	}
}

func firstIntParam(params string, def int) int {
	args := splitIntParams(params, def)
	if len(args) == 0 {
		return def
	}
	return orDefault(args[0], def)
}

func orDefault(v, def int) int {
	if v == 0 && def != 0 {
		return def
	}
	return v
}

// splitIntParams splits params at ';' and converts each piece to an int,
// substituting def for empty/unparseable pieces.
func splitIntParams(params string, def int) []int {
	if params == "" {
		return nil
	}
	pieces := strings.Split(params, ";")
	out := make([]int, len(pieces))
	for i, piece := range pieces {
		n, err := strconv.Atoi(piece)
		if err != nil {
			n = def
		}
		out[i] = n
	}
	return out
}
