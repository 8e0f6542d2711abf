// Command fbterm renders a shell onto /dev/fb0 under a PTY. It probes the
// framebuffer's geometry, maps it, builds the default glyph table and
// screen state, then hands off to the PTY I/O loop until the child shell
// exits.
package main

import (
	"errors"
	"fmt"
	"os"

	"fbterm"
)

const devFramebuffer = "/dev/fb0"

func main() {
	cfg := fbterm.NewConfig()
	logger := cfg.Logger

	geom, err := fbterm.ProbeGeometry()
	if err != nil {
		fail(logger, err)
	}

	dev, err := fbterm.OpenDeviceBuffer(devFramebuffer, geom)
	if err != nil {
		fail(logger, err)
	}
	defer dev.Close()

	glyphs := fbterm.BuiltinGlyphTable()
	screen := fbterm.NewScreen(geom, glyphs, cfg)

	// Start from a clean, bg-filled screen and make sure the initial
	// caret is visible before the shell has produced any output.
	screen.Apply(fbterm.TerminalOp{Kind: fbterm.OpClearScreen})
	if err := dev.Flush(screen.Buffer()); err != nil {
		fail(logger, err)
	}
	screen.FlushCaret(dev)
	if err := dev.Sync(); err != nil {
		fail(logger, err)
	}

	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}

	if err := fbterm.RunPTYLoop(shell, screen, dev, logger); err != nil {
		var ptyErr *fbterm.PtyError
		if errors.As(err, &ptyErr) {
			fail(logger, err)
		}
		logger.Warn("terminal loop ended", "err", err)
		os.Exit(1)
	}

	os.Exit(0)
}

func fail(logger fbterm.Logger, err error) {
	logger.Error("fbterm: fatal", "err", err)
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
