package render

import (
	"fmt"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/layout"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/logger"
)

// Backend names.
const (
	BackendTea  = "tea"
	BackendANSI = "ansi"
)

// KeySource yields at most one pending key press without blocking.
type KeySource interface {
	Poll() (string, bool)
}

// Backend owns the terminal for the dashboard's lifetime.
type Backend interface {
	Render(f layout.Frame) error
	Close() error
	Keys() KeySource
}

// New acquires the terminal with the named backend. Platforms without raw
// ANSI support fall back to bubbletea.
func New(name string, log logger.Logger) (Backend, error) {
	if log == nil {
		log = logger.Noop()
	}
	switch name {
	case BackendTea, "":
		return NewTeaRenderer()
	case BackendANSI:
		if !ansiSupported {
			log.Warn("ansi backend isn't supported on this platform, using %s", BackendTea)
			return NewTeaRenderer()
		}
		return NewANSIRenderer()
	default:
		return nil, fmt.Errorf("unknown renderer backend %q", name)
	}
}

// ChannelKeys is a KeySource fed by an event-driven input reader.
type ChannelKeys struct {
	ch <-chan string
}

// NewChannelKeys wraps a key channel.
func NewChannelKeys(ch <-chan string) ChannelKeys {
	return ChannelKeys{ch: ch}
}

// Poll returns the oldest pending key, if any.
func (c ChannelKeys) Poll() (string, bool) {
	select {
	case k := <-c.ch:
		return k, true
	default:
		return "", false
	}
}
