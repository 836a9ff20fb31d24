package metrics

import (
	"context"
	"net"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/errors"
	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/shirou/gopsutil/v4/sensors"
)

// preferredSensors are checked in order before falling back to whatever
// sensor sorts first.
var preferredSensors = []string{"coretemp", "cpu_thermal", "k10temp", "zenpower", "acpitz"}

// HostSource reads metrics from the local machine through gopsutil.
//
// Per-process CPU percent is a delta between two calls on the same
// process handle, so handles are cached across samples by PID.
type HostSource struct {
	mu    sync.Mutex
	procs map[int32]*process.Process

	batteries batteryFunc
}

// NewHostSource creates a source for the local host.
func NewHostSource() *HostSource {
	return &HostSource{
		procs:     make(map[int32]*process.Process),
		batteries: battery.GetAll,
	}
}

// Prime takes the baseline readings for system and per-process CPU percent.
func (h *HostSource) Prime(ctx context.Context) error {
	if _, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		return errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't take the CPU baseline",
			"The first CPU reading may show 0%")
	}
	if _, err := h.Processes(ctx); err != nil {
		return errors.WrapWithCode(err, errors.ErrMetrics,
			"Couldn't take the process CPU baseline",
			"Process CPU columns may show 0% for one refresh")
	}
	return nil
}

// CPUPercent returns system-wide utilization since the previous call.
func (h *HostSource) CPUPercent(ctx context.Context) (float64, error) {
	pcts, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return 0, err
	}
	if len(pcts) == 0 {
		return 0, ErrUnavailable
	}
	return pcts[0], nil
}

// Memory returns virtual memory usage.
func (h *HostSource) Memory(ctx context.Context) (Memory, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Memory{}, err
	}
	return Memory{
		Percent:    vm.UsedPercent,
		UsedBytes:  vm.Used,
		TotalBytes: vm.Total,
	}, nil
}

// Disks returns usage for each physical partition. Partitions whose usage
// can't be read (permissions, stale mounts) are skipped.
func (h *HostSource) Disks(ctx context.Context) ([]Disk, error) {
	parts, err := disk.PartitionsWithContext(ctx, false)
	if err != nil {
		return nil, err
	}

	disks := make([]Disk, 0, len(parts))
	for _, p := range parts {
		usage, err := disk.UsageWithContext(ctx, p.Mountpoint)
		if err != nil || usage.Total == 0 {
			continue
		}
		disks = append(disks, Disk{
			Device:     p.Device,
			MountPath:  p.Mountpoint,
			Percent:    usage.UsedPercent,
			UsedBytes:  usage.Used,
			TotalBytes: usage.Total,
			FreeBytes:  usage.Free,
		})
	}
	return disks, nil
}

// Network returns counters summed over all interfaces.
func (h *HostSource) Network(ctx context.Context) (Network, error) {
	counters, err := psnet.IOCountersWithContext(ctx, false)
	if err != nil {
		return Network{}, err
	}
	if len(counters) == 0 {
		return Network{}, ErrUnavailable
	}
	c := counters[0]
	return Network{
		BytesSent:   c.BytesSent,
		BytesRecv:   c.BytesRecv,
		PacketsSent: c.PacketsSent,
		PacketsRecv: c.PacketsRecv,
	}, nil
}

// Processes lists every readable process. Processes that exit or deny
// access mid-scan are dropped silently. Memory percent is resident size
// over the total read once per call.
func (h *HostSource) Processes(ctx context.Context) ([]Process, error) {
	list, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	var total uint64
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		total = vm.Total
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[int32]*process.Process, len(list))
	out := make([]Process, 0, len(list))
	for _, p := range list {
		if cached, ok := h.procs[p.Pid]; ok {
			p = cached
		}
		seen[p.Pid] = p

		cpuPct, err := p.PercentWithContext(ctx, 0)
		if err != nil {
			continue
		}
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}

		out = append(out, Process{
			PID:           p.Pid,
			Name:          name,
			CPUPercent:    cpuPct,
			MemoryPercent: memoryPercent(ctx, p, total),
		})
	}
	h.procs = seen
	return out, nil
}

// memoryPercent is zero when either side can't be read.
func memoryPercent(ctx context.Context, p *process.Process, total uint64) float64 {
	if total == 0 {
		return 0
	}
	info, err := p.MemoryInfoWithContext(ctx)
	if err != nil || info == nil {
		return 0
	}
	return float64(info.RSS) / float64(total) * 100
}

// Temperature returns the CPU temperature in Celsius.
func (h *HostSource) Temperature(ctx context.Context) (float64, error) {
	temps, err := sensors.TemperaturesWithContext(ctx)
	if len(temps) == 0 {
		if err != nil {
			return 0, err
		}
		return 0, ErrUnavailable
	}
	// Partial reads return both data and a warning error; the data wins.
	readings := make([]Reading, 0, len(temps))
	for _, t := range temps {
		readings = append(readings, Reading{Sensor: t.SensorKey, Celsius: t.Temperature})
	}
	if c, ok := PickTemperature(readings); ok {
		return c, nil
	}
	return 0, ErrUnavailable
}

// Battery returns the power state, or ErrUnavailable without a battery.
func (h *HostSource) Battery(_ context.Context) (Battery, error) {
	return readBattery(h.batteries)
}

// Host returns hostname, OS, boot time and the primary IPv4 address.
func (h *HostSource) Host(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{}, err
	}

	hi := HostInfo{
		Hostname: info.Hostname,
		OS:       info.OS,
		Platform: info.Platform,
		Kernel:   info.KernelVersion,
		Arch:     info.KernelArch,
		BootTime: time.Unix(int64(info.BootTime), 0),
		IP:       PrimaryIPv4(),
	}
	if hi.Platform == "" {
		hi.Platform = runtime.GOOS
	}
	if hi.Arch == "" {
		hi.Arch = runtime.GOARCH
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		hi.LogicalCPUs = n
	}
	if n, err := cpu.CountsWithContext(ctx, false); err == nil {
		hi.PhysicalCPUs = n
	}
	return hi, nil
}

// Reading is one temperature sensor value.
type Reading struct {
	Sensor  string
	Celsius float64
}

// PickTemperature chooses the CPU temperature from a set of readings.
// Sensor keys carry a suffix per core (coretemp_core_0, k10temp_tctl), so
// matching is by prefix. Without a preferred sensor the first positive
// reading by key is used, which keeps the choice stable across samples.
func PickTemperature(readings []Reading) (float64, bool) {
	if len(readings) == 0 {
		return 0, false
	}
	for _, name := range preferredSensors {
		for _, r := range readings {
			if hasSensorPrefix(r.Sensor, name) {
				return r.Celsius, true
			}
		}
	}

	sorted := make([]Reading, len(readings))
	copy(sorted, readings)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Sensor < sorted[j].Sensor })
	for _, r := range sorted {
		if r.Celsius > 0 {
			return r.Celsius, true
		}
	}
	return 0, false
}

func hasSensorPrefix(key, name string) bool {
	if len(key) < len(name) || key[:len(name)] != name {
		return false
	}
	return len(key) == len(name) || key[len(name)] == '_' || key[len(name)] == ' '
}

// PrimaryIPv4 returns the first non-loopback IPv4 address of an up
// interface, or "N/A" when there is none.
func PrimaryIPv4() string {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "N/A"
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagLoopback != 0 || iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		if ip := firstIPv4(addrs); ip != "" {
			return ip
		}
	}
	return "N/A"
}

func firstIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		if ip != nil && ip.To4() != nil && !ip.IsLoopback() {
			return ip.String()
		}
	}
	return ""
}
