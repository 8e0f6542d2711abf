package fbterm

import "testing"

func TestEncodePixelRoundTrip32bpp(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				c := Color{R: uint8(r), G: uint8(g), B: uint8(b)}
				px := encodePixel(32, c)
				if len(px) != 4 {
					t.Fatalf("encodePixel(32, %v) length = %d, want 4", c, len(px))
				}
				got := Color{R: px[2], G: px[1], B: px[0]}
				if got != c {
					t.Fatalf("decoded %v from %v, want %v", got, px, c)
				}
				if px[3] != 0 {
					t.Fatalf("alpha byte = %d, want 0", px[3])
				}
			}
		}
	}
}

func TestEncodePixel16bpp(t *testing.T) {
	px := encodePixel(16, Color{R: 0xff, G: 0xff, B: 0xff})
	if len(px) != 2 {
		t.Fatalf("length = %d, want 2", len(px))
	}
	v := uint16(px[0]) | uint16(px[1])<<8
	if v != 0xffff {
		t.Fatalf("white RGB565 = %#04x, want 0xffff", v)
	}

	px = encodePixel(16, Color{})
	if px[0] != 0 || px[1] != 0 {
		t.Fatalf("black RGB565 = %v, want zero", px)
	}
}

func TestBytesPerPixelFor(t *testing.T) {
	if bytesPerPixelFor(32) != 4 {
		t.Fatalf("bytesPerPixelFor(32) = %d, want 4", bytesPerPixelFor(32))
	}
	if bytesPerPixelFor(16) != 2 {
		t.Fatalf("bytesPerPixelFor(16) = %d, want 2", bytesPerPixelFor(16))
	}
}
