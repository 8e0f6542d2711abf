// Package fbterm implements a minimal terminal emulator that renders a
// PTY-attached shell onto a Linux raw framebuffer device. A byte-stream
// parser recognizes ANSI/ECMA-48 escape sequences, a cursor/screen state
// machine interprets them against a scrollable character grid, and a glyph
// rasterizer composites monochrome bitmap glyphs onto a packed pixel
// buffer that is flushed to the memory-mapped framebuffer.
package fbterm
