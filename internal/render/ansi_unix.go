//go:build linux || darwin || freebsd || netbsd || openbsd

package render

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/layout"
	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

const ansiSupported = true

// ANSIRenderer paints straight to the terminal with escape sequences and
// reads keys from stdin in raw mode.
type ANSIRenderer struct {
	out      *termenv.Output
	outFd    int
	inFd     int
	oldState *term.State

	closeOnce sync.Once
	closeErr  error
}

// NewANSIRenderer switches the terminal to raw mode and the alternate screen.
func NewANSIRenderer() (*ANSIRenderer, error) {
	inFd := int(os.Stdin.Fd())
	outFd := int(os.Stdout.Fd())
	if !term.IsTerminal(inFd) || !term.IsTerminal(outFd) {
		return nil, errors.New("stdin and stdout must be a terminal")
	}

	old, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	out := termenv.NewOutput(os.Stdout)
	out.AltScreen()
	out.HideCursor()
	out.ClearScreen()

	return &ANSIRenderer{
		out:      out,
		outFd:    outFd,
		inFd:     inFd,
		oldState: old,
	}, nil
}

// Render repaints the whole screen from the top-left corner.
func (r *ANSIRenderer) Render(f layout.Frame) error {
	w, h, err := term.GetSize(r.outFd)
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}

	// Raw mode disables output post-processing, so newlines need a CR.
	screen := strings.ReplaceAll(Paint(f, w, h), "\n", "\r\n")
	r.out.MoveCursor(1, 1)
	if _, err := r.out.WriteString(screen); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Keys reads pending bytes from stdin.
func (r *ANSIRenderer) Keys() KeySource {
	return NewTTYKeys(r.inFd)
}

// Close leaves the alternate screen and restores the terminal mode.
func (r *ANSIRenderer) Close() error {
	r.closeOnce.Do(func() {
		r.out.ShowCursor()
		r.out.ExitAltScreen()
		r.closeErr = term.Restore(r.inFd, r.oldState)
	})
	return r.closeErr
}

// TTYKeys is a KeySource that checks input readiness with poll(2) and
// never blocks.
type TTYKeys struct {
	fd int
}

// NewTTYKeys creates a key source over a raw-mode file descriptor.
func NewTTYKeys(fd int) TTYKeys {
	return TTYKeys{fd: fd}
}

// Poll reads one key if input is ready.
func (k TTYKeys) Poll() (string, bool) {
	fds := []unix.PollFd{{Fd: int32(k.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
		return "", false
	}

	var buf [1]byte
	read, err := unix.Read(k.fd, buf[:])
	if err != nil || read == 0 {
		return "", false
	}
	return keyName(buf[0]), true
}
