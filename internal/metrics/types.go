package metrics

import "time"

// Snapshot is one point-in-time capture of every host metric.
// It is built fresh on each render tick and never mutated afterwards.
type Snapshot struct {
	Taken time.Time

	CPUPercent   float64
	CPUAvailable bool

	Memory    Memory
	Disks     []Disk
	Network   Network
	Processes []Process

	// Temperature is the CPU temperature in Celsius, nil when no sensor is readable.
	Temperature *float64
	// Battery is nil on machines without a battery or when it can't be read.
	Battery *Battery

	Host HostInfo
}

// Memory contains virtual memory usage.
type Memory struct {
	Available  bool
	Percent    float64
	UsedBytes  uint64
	TotalBytes uint64
}

// Disk contains usage for one mounted partition.
type Disk struct {
	Device     string
	MountPath  string
	Percent    float64
	UsedBytes  uint64
	TotalBytes uint64
	FreeBytes  uint64
}

// Network contains interface counters summed across all interfaces.
// Counters are monotonic since boot.
type Network struct {
	Available   bool
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
}

// Process is one row of the process list.
type Process struct {
	PID           int32
	Name          string
	CPUPercent    float64
	MemoryPercent float64
}

// Battery contains power state.
type Battery struct {
	Percent      float64
	PowerPlugged bool
	// SecondsLeft is the estimated discharge time; negative when unknown.
	SecondsLeft int64
}

// HostInfo contains static-ish facts about the machine.
type HostInfo struct {
	Available    bool
	Hostname     string
	OS           string
	Platform     string
	Kernel       string
	Arch         string
	LogicalCPUs  int
	PhysicalCPUs int
	BootTime     time.Time
	IP           string
}

// Uptime returns how long the host has been up at the given instant.
func (h HostInfo) Uptime(now time.Time) time.Duration {
	if h.BootTime.IsZero() || now.Before(h.BootTime) {
		return 0
	}
	return now.Sub(h.BootTime)
}
