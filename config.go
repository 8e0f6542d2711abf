package fbterm

// Config holds runtime-tunable, non-functional knobs. It intentionally
// does not expose toggles for non-goal features (blink, mouse, bell,
// alternate screen) — those are simply absent from the emulator.
type Config struct {
	// Palette is the 16-entry ANSI palette used to resolve SGR 30-37/40-47
	// (and their bright 90-97/100-107 counterparts) and SGR 0/39/49.
	Palette Palette

	// ScrollRegionDefault, when zero-valued (both fields 0), means "use
	// the whole screen". Set to override the scroll region a fresh
	// Screen starts with.
	ScrollRegionDefault ScrollRegion

	// Logger receives diagnostics from the I/O loop and device setup.
	// NewConfig sets it to the package default (log/slog to stderr, or a
	// discard logger under the logdiscard build tag); a nil Logger is not
	// replaced by that default.
	Logger Logger
}

// NewConfig returns the default configuration: the standard palette and a
// full-screen scroll region.
func NewConfig() Config {
	return Config{
		Palette: DefaultPalette,
		Logger:  defaultLogger,
	}
}
