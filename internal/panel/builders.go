package panel

import (
	"fmt"
	"time"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/docker"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/metrics"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/util"
	"github.com/dustin/go-humanize"
)

// Panel titles.
const (
	Title           = "My Command Center"
	TitleCPUMemory  = "CPU & Memory"
	TitleDisks      = "Disk Usage"
	TitleNetwork    = "Network Stats"
	TitleContainers = "Docker Containers"
)

// Display widths for truncated names.
const (
	ProcessNameWidth   = 20
	ContainerNameWidth = 15
	ImageNameWidth     = 20
)

// NotAvailable is the placeholder for any metric that couldn't be read.
const NotAvailable = "N/A"

const separator = "  |  "

func sep() Span {
	return Span{Text: separator, Style: dimStyle}
}

// Header shows the title, host identity and uptime.
func Header(snap metrics.Snapshot, now time.Time) Box {
	line := Line{{Text: Title, Style: Style{Color: ColorMagenta, Bold: true}}}

	h := snap.Host
	if h.Available {
		line = append(line,
			sep(),
			Span{Text: h.Hostname, Style: Style{Color: ColorWhite, Bold: true}},
			Span{Text: " (" + util.JoinOrDefault([]string{h.Platform, h.Arch}, " ", h.OS) + ")", Style: dimStyle},
			sep(),
			Span{Text: "Uptime: ", Style: dimStyle},
			Span{Text: FormatUptime(h.Uptime(now)), Style: Style{Color: ColorCyan, Bold: true}},
		)
	} else {
		line = append(line,
			sep(),
			Span{Text: "Uptime: ", Style: dimStyle},
			Span{Text: NotAvailable, Style: dimStyle},
		)
	}

	ip := h.IP
	if ip == "" {
		ip = NotAvailable
	}
	line = append(line,
		sep(),
		Span{Text: "IP: ", Style: dimStyle},
		Span{Text: ip, Style: Style{Color: ColorCyan}},
	)

	return Box{Child: Text{Lines: []Line{line}}}
}

// CPUMemory shows CPU load and temperature, memory, core counts and battery.
func CPUMemory(snap metrics.Snapshot) Box {
	var rows []GridRow

	if snap.CPUAvailable {
		style := Styled(CPULevel(snap.CPUPercent), ColorGreen)
		rows = append(rows, gaugeRow("CPU Usage:", snap.CPUPercent, style))
	} else {
		rows = append(rows, naRow("CPU Usage:"))
	}

	if snap.Temperature != nil {
		style := Styled(TempLevel(snap.Temperature), ColorGreen)
		rows = append(rows, GridRow{
			Label: "CPU Temp:",
			Value: Line{{Text: fmt.Sprintf("%.1f°C", *snap.Temperature), Style: style}},
		})
	} else {
		rows = append(rows, naRow("CPU Temp:"))
	}

	if snap.Memory.Available {
		style := Styled(MemoryLevel(snap.Memory.Percent), ColorCyan)
		rows = append(rows,
			gaugeRow("RAM Usage:", snap.Memory.Percent, style),
			GridRow{
				Label: "RAM Used:",
				Value: Line{{
					Text:  fmt.Sprintf("%.2f GB / %.2f GB", GiB(snap.Memory.UsedBytes), GiB(snap.Memory.TotalBytes)),
					Style: dimStyle,
				}},
			},
		)
	} else {
		rows = append(rows, naRow("RAM Usage:"))
	}

	if snap.Host.LogicalCPUs > 0 {
		rows = append(rows, GridRow{
			Label: "Cores:",
			Value: Line{{
				Text:  fmt.Sprintf("%d logical / %d physical", snap.Host.LogicalCPUs, snap.Host.PhysicalCPUs),
				Style: dimStyle,
			}},
		})
	}

	if b := snap.Battery; b != nil {
		style := Styled(BatteryLevel(b.Percent), ColorGreen)
		rows = append(rows,
			gaugeRow("Battery:", b.Percent, style),
			GridRow{Value: Line{batteryStatus(*b)}},
		)
	} else {
		rows = append(rows, naRow("Battery:"))
	}

	return Box{Title: TitleCPUMemory, Child: Grid{Rows: rows}}
}

func batteryStatus(b metrics.Battery) Span {
	switch {
	case b.PowerPlugged && b.Percent < 100:
		return Span{Text: "[Charging]", Style: Style{Color: ColorGreen, Level: LevelNormal, Bold: true}}
	case b.PowerPlugged:
		return Span{Text: "[Full]", Style: Style{Color: ColorGreen, Level: LevelNormal, Bold: true}}
	case b.SecondsLeft > 0:
		return Span{Text: "[" + FormatTimeLeft(b.SecondsLeft) + " left]", Style: dimStyle}
	default:
		return Span{Text: "[Discharging]", Style: Style{Color: ColorYellow, Level: LevelWarning}}
	}
}

// Disks shows one gauge plus used and free lines per partition.
func Disks(snap metrics.Snapshot) Box {
	if len(snap.Disks) == 0 {
		return Box{Title: TitleDisks, Child: Message("No disks found", dimStyle)}
	}

	rows := make([]GridRow, 0, len(snap.Disks)*3)
	for _, d := range snap.Disks {
		freeGB := GiB(d.FreeBytes)
		rows = append(rows,
			gaugeRow(d.Device+":", d.Percent, Styled(DiskLevel(d.Percent), ColorGreen)),
			GridRow{
				Label: "Used:",
				Value: Line{{
					Text:  fmt.Sprintf("%.1f GB / %.1f GB", GiB(d.UsedBytes), GiB(d.TotalBytes)),
					Style: dimStyle,
				}},
			},
			GridRow{
				Label: "Free:",
				Value: Line{{
					Text:  fmt.Sprintf("%.1f GB", freeGB),
					Style: Styled(FreeSpaceLevel(freeGB), ColorGreen),
				}},
			},
		)
	}
	return Box{Title: TitleDisks, Child: Grid{Rows: rows}}
}

// Network shows cumulative traffic counters.
func Network(snap metrics.Snapshot) Box {
	n := snap.Network
	if !n.Available {
		return Box{Title: TitleNetwork, Child: Message("Network statistics unavailable", dimStyle)}
	}

	rows := []GridRow{
		{Label: "Bytes Sent:", Value: Line{{Text: FormatBytes(n.BytesSent), Style: Style{Color: ColorYellow, Bold: true}}}},
		{Label: "Bytes Received:", Value: Line{{Text: FormatBytes(n.BytesRecv), Style: Style{Color: ColorCyan, Bold: true}}}},
		{Label: "Packets Sent:", Value: Line{{Text: humanize.Comma(int64(n.PacketsSent)), Style: plainStyle}}},
		{Label: "Packets Received:", Value: Line{{Text: humanize.Comma(int64(n.PacketsRecv)), Style: plainStyle}}},
	}
	return Box{Title: TitleNetwork, Child: Grid{Rows: rows}}
}

// ProcessesTitle is the process panel title for a sort mode.
func ProcessesTitle(mode SortMode) string {
	return "Top Processes (by " + mode.String() + ")"
}

// Processes shows the top n processes ranked by the selected metric.
func Processes(snap metrics.Snapshot, mode SortMode, n int) Box {
	top := TopProcesses(snap.Processes, mode, n)

	rows := make([][]Span, 0, len(top))
	for _, p := range top {
		name := util.Truncate(p.Name, ProcessNameWidth)
		if name == "" {
			name = NotAvailable
		}
		rows = append(rows, []Span{
			{Text: fmt.Sprintf("%d", p.PID), Style: Style{Color: ColorCyan}},
			{Text: name, Style: Style{Color: ColorWhite}},
			{Text: fmt.Sprintf("%.1f%%", p.CPUPercent), Style: Styled(ProcessLevel(p.CPUPercent), ColorGreen)},
			{Text: fmt.Sprintf("%.1f%%", p.MemoryPercent), Style: Styled(ProcessLevel(p.MemoryPercent), ColorCyan)},
		})
	}

	return Box{
		Title: ProcessesTitle(mode),
		Child: Table{
			Columns: []Column{
				{Title: "PID", Align: AlignRight, Width: 7},
				{Title: "Name", Align: AlignLeft},
				{Title: "CPU %", Align: AlignRight, Width: 7},
				{Title: "Mem %", Align: AlignRight, Width: 7},
			},
			Rows: rows,
		},
	}
}

// Containers shows the container table, or a one-line reason when there
// is nothing to list.
func Containers(res docker.Result) Box {
	if msg := res.Placeholder(); msg != "" {
		style := dimStyle
		if res.Unavailable != nil && res.Unavailable.Reason == docker.ReasonError {
			style = Style{Color: ColorRed, Level: LevelCritical}
		}
		return Box{Title: TitleContainers, Child: Message(msg, style)}
	}

	rows := make([][]Span, 0, len(res.Containers))
	for _, c := range res.Containers {
		cpu := Span{Text: NotAvailable, Style: dimStyle}
		if c.CPU != docker.NotAvailable {
			cpu = Span{Text: c.CPU, Style: Styled(ContainerCPULevel(c.CPUPercent), ColorGreen)}
		}
		rows = append(rows, []Span{
			{Text: util.Truncate(c.Name, ContainerNameWidth), Style: Style{Color: ColorCyan}},
			{Text: util.Truncate(c.Image, ImageNameWidth), Style: dimStyle},
			{Text: c.Status, Style: Styled(StatusLevel(c.Running), ColorGreen)},
			cpu,
			{Text: c.Memory, Style: plainStyle},
		})
	}

	return Box{
		Title: TitleContainers,
		Child: Table{
			Columns: []Column{
				{Title: "Container", Align: AlignLeft},
				{Title: "Image", Align: AlignLeft},
				{Title: "Status", Align: AlignLeft, Width: 12},
				{Title: "CPU %", Align: AlignRight, Width: 8},
				{Title: "Mem Usage", Align: AlignRight, Width: 18},
			},
			Rows: rows,
		},
	}
}

// Footer shows the clock and the key hints.
func Footer(now time.Time, mode SortMode) Box {
	key := Style{Color: ColorYellow, Bold: true}
	line := Line{
		{Text: "Current Time: " + now.Format("2006-01-02 15:04:05"), Style: Style{Color: ColorGreen, Bold: true}},
		sep(),
		{Text: "m", Style: key},
		{Text: " sort by Memory/CPU (current: " + mode.String() + ")", Style: dimStyle},
		sep(),
		{Text: "q", Style: key},
		{Text: " quit", Style: dimStyle},
	}
	return Box{Child: Text{Lines: []Line{line}}}
}

func gaugeRow(label string, percent float64, style Style) GridRow {
	return GridRow{
		Label: label,
		Gauge: &Gauge{Percent: percent, Style: style},
		Value: Line{{Text: percentText(percent), Style: style}},
	}
}

func naRow(label string) GridRow {
	return GridRow{Label: label, Value: Line{{Text: NotAvailable, Style: dimStyle}}}
}
