package fbterm

import (
	"os"

	"golang.org/x/sys/unix"
)

// PixelBuffer is the shadow buffer: an in-memory byte array the size of
// one screen, with a seek position, written to by the rasterizer. Nothing
// reads the hardware framebuffer directly; every draw lands here first and
// is copied out in one shot by Flush. This is the "double-buffering vs
// direct writes" design spec.md §9 calls out: it makes Scroll's Move
// trivially correct and avoids tearing.
type PixelBuffer struct {
	geom     ScreenGeometry
	bytes    []byte
	position int
}

// NewPixelBuffer allocates a shadow buffer sized to geom.
func NewPixelBuffer(geom ScreenGeometry) *PixelBuffer {
	return &PixelBuffer{geom: geom, bytes: make([]byte, geom.TotalBytes)}
}

// Seek sets the write cursor. Out-of-range offsets are clamped to
// [0, TotalBytes], matching the invariant that writes never cross the
// array bound.
func (b *PixelBuffer) Seek(offset int) {
	b.position = bound(offset, 0, b.geom.TotalBytes)
}

// Write appends data at the current position, advancing it. Writes that
// would run past the end of the buffer are truncated rather than
// panicking or wrapping.
func (b *PixelBuffer) Write(data []byte) (n int) {
	n = min(len(data), b.geom.TotalBytes-b.position)
	copy(b.bytes[b.position:b.position+n], data[:n])
	b.position += n
	return n
}

// Move behaves like memmove: it is overlap-safe regardless of whether
// dest and src ranges intersect, and regardless of which is larger.
func (b *PixelBuffer) Move(dest, src, count int) {
	if dest+count > b.geom.TotalBytes || src+count > b.geom.TotalBytes || count <= 0 {
		return
	}
	// Go's builtin copy is already memmove-safe for overlapping slices of
	// the same underlying array.
	copy(b.bytes[dest:dest+count], b.bytes[src:src+count])
}

// Fill writes pattern repeated repeatCount times starting at offset.
func (b *PixelBuffer) Fill(offset int, pattern []byte, repeatCount int) {
	if len(pattern) == 0 || repeatCount <= 0 {
		return
	}
	pos := bound(offset, 0, b.geom.TotalBytes)
	for i := 0; i < repeatCount; i++ {
		n := min(len(pattern), b.geom.TotalBytes-pos)
		if n <= 0 {
			return
		}
		copy(b.bytes[pos:pos+n], pattern[:n])
		pos += n
	}
}

// Bytes exposes the raw backing slice, read-only by convention (tests use
// it to assert on post-draw state).
func (b *PixelBuffer) Bytes() []byte { return b.bytes }

// Geometry returns the geometry this buffer was sized for.
func (b *PixelBuffer) Geometry() ScreenGeometry { return b.geom }

// DeviceBuffer is a memory-mapped view of the hardware framebuffer
// (/dev/fb0). Only Flush and the caret overlay write to it.
type DeviceBuffer struct {
	file *os.File
	mmap []byte
}

// OpenDeviceBuffer opens path read-write and maps it shared for length
// geom.TotalBytes.
func OpenDeviceBuffer(path string, geom ScreenGeometry) (*DeviceBuffer, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, &DeviceMapError{Path: path, Err: err}
	}
	m, err := unix.Mmap(int(f.Fd()), 0, geom.TotalBytes, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, &DeviceMapError{Path: path, Err: err}
	}
	return &DeviceBuffer{file: f, mmap: m}, nil
}

// Flush copies the full shadow buffer into the device mapping and syncs
// it. No partial flushes: per-frame whole-buffer copy is the contract.
func (d *DeviceBuffer) Flush(src *PixelBuffer) error {
	copy(d.mmap, src.bytes)
	return unix.Msync(d.mmap, unix.MS_SYNC)
}

// WriteAt writes data directly into the device mapping at offset,
// bypassing the shadow buffer, for the caret overlay.
func (d *DeviceBuffer) WriteAt(offset int, data []byte) {
	n := min(len(data), len(d.mmap)-offset)
	if n <= 0 {
		return
	}
	copy(d.mmap[offset:offset+n], data[:n])
}

// Sync flushes pending mmap writes to the device.
func (d *DeviceBuffer) Sync() error {
	return unix.Msync(d.mmap, unix.MS_SYNC)
}

// Close unmaps the device and closes the underlying file.
func (d *DeviceBuffer) Close() error {
	err := unix.Munmap(d.mmap)
	if cerr := d.file.Close(); err == nil {
		err = cerr
	}
	return err
}
