package fbterm

import (
	"os"
	"strconv"
	"strings"
)

// ScreenGeometry describes the fixed shape of the framebuffer device.
// Immutable after probing.
type ScreenGeometry struct {
	WidthPx      int
	HeightPx     int
	Bpp          int // 16 or 32
	BytesPerPixel int
	Stride       int // bytes per row
	TotalBytes   int
}

func newGeometry(widthPx, heightPx, bpp int) ScreenGeometry {
	bytesPerPixel := bpp / 8
	stride := widthPx * bytesPerPixel
	return ScreenGeometry{
		WidthPx:       widthPx,
		HeightPx:      heightPx,
		Bpp:           bpp,
		BytesPerPixel: bytesPerPixel,
		Stride:        stride,
		TotalBytes:    stride * heightPx,
	}
}

const (
	sysfsBppPath  = "/sys/class/graphics/fb0/bits_per_pixel"
	sysfsSizePath = "/sys/class/graphics/fb0/virtual_size"
)

// ProbeGeometry reads screen width, height, and bits-per-pixel from sysfs,
// the way original_source/famebruffer.py's Framebuffer.__init__ does.
func ProbeGeometry() (ScreenGeometry, error) {
	bppRaw, err := os.ReadFile(sysfsBppPath)
	if err != nil {
		return ScreenGeometry{}, &DeviceProbeError{Path: sysfsBppPath, Err: err}
	}
	bppStr := strings.TrimSpace(string(bppRaw))
	if len(bppStr) < 2 {
		return ScreenGeometry{}, &DeviceProbeError{Path: sysfsBppPath, Err: errMalformed(bppStr)}
	}
	bpp, err := strconv.Atoi(bppStr[:2])
	if err != nil {
		return ScreenGeometry{}, &DeviceProbeError{Path: sysfsBppPath, Err: err}
	}

	sizeRaw, err := os.ReadFile(sysfsSizePath)
	if err != nil {
		return ScreenGeometry{}, &DeviceProbeError{Path: sysfsSizePath, Err: err}
	}
	parts := strings.SplitN(strings.TrimSpace(string(sizeRaw)), ",", 2)
	if len(parts) != 2 {
		return ScreenGeometry{}, &DeviceProbeError{Path: sysfsSizePath, Err: errMalformed(string(sizeRaw))}
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ScreenGeometry{}, &DeviceProbeError{Path: sysfsSizePath, Err: err}
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ScreenGeometry{}, &DeviceProbeError{Path: sysfsSizePath, Err: err}
	}

	return newGeometry(width, height, bpp), nil
}

type malformedErr string

func (e malformedErr) Error() string { return "malformed sysfs value: " + string(e) }

func errMalformed(s string) error { return malformedErr(s) }
