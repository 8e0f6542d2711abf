package fbterm

import (
	"os"
	"os/exec"
	"strconv"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

// ioReadSize is the per-read chunk size spec.md §4.H specifies for both
// directions of the loop.
const ioReadSize = 2048

// RunPTYLoop spawns shell under a PTY, advertising screen's character grid
// through COLUMNS and LINES (the PTY's window size is not set), puts stdin
// into cbreak mode, and multiplexes the PTY master and stdin
// with a zero-timeout select() until the child exits or I/O fails. It
// mirrors nanoterm.py's forkpty + select loop one-to-one, using
// creack/pty and golang.org/x/sys/unix in place of the Python originals.
func RunPTYLoop(shell string, screen *Screen, dev *DeviceBuffer, logger Logger) error {
	geom := screen.Geometry()
	cols := geom.WidthPx / screen.glyphs.Width
	lines := geom.HeightPx / screen.glyphs.Height

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLUMNS="+strconv.Itoa(cols),
		"LINES="+strconv.Itoa(lines),
	)

	master, err := pty.Start(cmd)
	if err != nil {
		return &PtyError{Err: err}
	}
	defer master.Close()

	stdinFd := int(os.Stdin.Fd())
	restore, err := cbreakMode(stdinFd)
	if err != nil {
		return &PtyError{Err: err}
	}
	defer func() {
		if err := restore(); err != nil {
			logger.Warn("failed to restore terminal mode", "err", err)
		}
	}()

	masterFd := int(master.Fd())
	buf := make([]byte, ioReadSize)

	for {
		var rfds unix.FdSet
		fdSet(&rfds, masterFd)
		fdSet(&rfds, stdinFd)
		nfd := masterFd
		if stdinFd > nfd {
			nfd = stdinFd
		}

		tv := unix.Timeval{}
		n, err := unix.Select(nfd+1, &rfds, nil, nil, &tv)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return &IoError{Op: "select", Err: err}
		}
		if n == 0 {
			continue
		}

		if fdIsSet(&rfds, masterFd) {
			nr, err := unix.Read(masterFd, buf)
			if err != nil {
				if err == unix.EIO {
					break
				}
				return &IoError{Op: "read pty master", Err: err}
			}
			if nr == 0 {
				break
			}
			for _, b := range buf[:nr] {
				screen.Feed(b)
			}
			if err := dev.Flush(screen.Buffer()); err != nil {
				return &IoError{Op: "flush device", Err: err}
			}
			screen.FlushCaret(dev)
			if err := dev.Sync(); err != nil {
				return &IoError{Op: "sync device", Err: err}
			}
		}

		if fdIsSet(&rfds, stdinFd) {
			nr, err := unix.Read(stdinFd, buf)
			if err != nil {
				return &IoError{Op: "read stdin", Err: err}
			}
			if nr == 0 {
				continue
			}
			if _, err := master.Write(buf[:nr]); err != nil {
				return &IoError{Op: "write pty master", Err: err}
			}
		}
	}

	if err := cmd.Wait(); err != nil {
		logger.Warn("child shell exited with error", "err", err)
	}
	return nil
}

func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/64] |= 1 << uint(fd%64)
}

func fdIsSet(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/64]&(1<<uint(fd%64)) != 0
}
