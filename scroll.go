package fbterm

// ScrollRegion is an inclusive, 1-based character-line range within which
// LineFeed may trigger a scroll. The zero value ({0,0}) means "use the
// whole screen", matching TerminalState's documented default.
type ScrollRegion struct {
	Top, Bottom int
}

// normalize resolves a possibly-zero ScrollRegion against the screen's
// total line count and clamps both ends to a sane range, restoring the
// invariant 0 < Top < Bottom <= totalLines.
func (s ScrollRegion) normalize(totalLines int) ScrollRegion {
	if s.Top == 0 && s.Bottom == 0 {
		return ScrollRegion{Top: 1, Bottom: totalLines}
	}
	top := bound(s.Top, 1, totalLines)
	bot := bound(s.Bottom, top+1, totalLines)
	if bot <= top {
		return ScrollRegion{Top: 1, Bottom: totalLines}
	}
	return ScrollRegion{Top: top, Bottom: bot}
}
