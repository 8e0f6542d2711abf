package fbterm

// caretRow returns one encoded pixel row, fontWidth cells wide, in fg.
// Screen.FlushCaret overlays this directly onto the device buffer at the
// cursor's bottom scanline, bypassing the shadow buffer entirely.
func caretRow(bpp, fontWidth int, fg Color) []byte {
	px := encodePixel(bpp, fg)
	row := make([]byte, 0, fontWidth*len(px))
	for i := 0; i < fontWidth; i++ {
		row = append(row, px...)
	}
	return row
}
