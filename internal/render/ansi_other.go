//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package render

import (
	"errors"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/layout"
)

const ansiSupported = false

// ANSIRenderer is unavailable on this platform.
type ANSIRenderer struct{}

// NewANSIRenderer always fails here; New falls back to bubbletea.
func NewANSIRenderer() (*ANSIRenderer, error) {
	return nil, errors.New("ansi backend is not supported on this platform")
}

func (r *ANSIRenderer) Render(layout.Frame) error { return nil }
func (r *ANSIRenderer) Close() error              { return nil }
func (r *ANSIRenderer) Keys() KeySource           { return NewChannelKeys(nil) }
