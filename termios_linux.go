package fbterm

import "golang.org/x/sys/unix"

// cbreakMode puts fd into non-canonical (cbreak) mode: input is available
// byte-at-a-time with no line editing and no local echo, but signal
// generation (ISIG, e.g. ^C) is left enabled — unlike full raw mode. This
// mirrors nanoterm.py's tty.setcbreak(0), adapted to Linux's TCGETS/TCSETS
// ioctls in the style of kungfusheep-glyph's termios_darwin.go.
//
// restore, when called, puts fd back into its original mode.
func cbreakMode(fd int) (restore func() error, err error) {
	orig, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return nil, err
	}

	raw := *orig
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, unix.TCSETS, &raw); err != nil {
		return nil, err
	}

	return func() error {
		return unix.IoctlSetTermios(fd, unix.TCSETS, orig)
	}, nil
}
