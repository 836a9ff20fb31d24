package dashboard

import "github.com/Rupesh-Jadhav-official/my-dashboard/internal/panel"

// DisplayState holds presentation choices that survive across refreshes.
// It is owned by the Loop and only changed by command handling.
type DisplayState struct {
	SortByMemory bool
}

// Toggle flips the process sort between CPU and memory.
func (d *DisplayState) Toggle() {
	d.SortByMemory = !d.SortByMemory
}

// SortMode returns the active process ranking.
func (d DisplayState) SortMode() panel.SortMode {
	if d.SortByMemory {
		return panel.SortByMemory
	}
	return panel.SortByCPU
}

// State is the loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminating
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	default:
		return "unknown"
	}
}
