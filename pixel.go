package fbterm

// encodePixel packs a color into its on-the-wire byte representation for
// the given bits-per-pixel, mirroring original_source/famebruffer.py's
// drawpixel byte ordering.
//
// 32bpp: little-endian BGRA (b, g, r, a); alpha is always 0.
// 16bpp: RGB565 packed into two little-endian bytes.
func encodePixel(bpp int, c Color) []byte {
	switch bpp {
	case 32:
		return []byte{c.B, c.G, c.R, 0}
	case 16:
		v := (uint16(c.R)&0xF8)<<8 | (uint16(c.G)&0xFC)<<3 | uint16(c.B)>>3
		return []byte{byte(v), byte(v >> 8)}
	default:
		panic("fbterm: unsupported bpp")
	}
}

// bytesPerPixelFor returns how many bytes encodePixel produces for bpp.
func bytesPerPixelFor(bpp int) int {
	return bpp / 8
}
