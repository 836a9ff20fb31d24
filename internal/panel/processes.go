package panel

import (
	"sort"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/metrics"
)

// SortMode selects the process ranking metric.
type SortMode int

const (
	SortByCPU SortMode = iota
	SortByMemory
)

// String returns the label used in titles and the footer.
func (m SortMode) String() string {
	if m == SortByMemory {
		return "Memory"
	}
	return "CPU"
}

// DefaultTopProcesses is the number of rows in the process table.
const DefaultTopProcesses = 5

// TopProcesses returns up to n processes ranked descending by the selected
// metric. Ties keep the order the source reported them in. The input is
// not modified.
func TopProcesses(procs []metrics.Process, mode SortMode, n int) []metrics.Process {
	if n <= 0 || len(procs) == 0 {
		return nil
	}

	ranked := make([]metrics.Process, len(procs))
	copy(ranked, procs)

	key := func(p metrics.Process) float64 {
		if mode == SortByMemory {
			return p.MemoryPercent
		}
		return p.CPUPercent
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return key(ranked[i]) > key(ranked[j])
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
