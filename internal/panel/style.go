package panel

// Level is the severity tier a value falls into.
type Level int

const (
	// LevelNeutral marks placeholders and values without a threshold.
	LevelNeutral Level = iota
	LevelNormal
	LevelWarning
	LevelCritical
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelNormal:
		return "normal"
	case LevelWarning:
		return "warning"
	case LevelCritical:
		return "critical"
	default:
		return "neutral"
	}
}

// Color is a semantic color name; the renderer maps it to a terminal color.
type Color string

const (
	ColorDefault Color = ""
	ColorGreen   Color = "green"
	ColorCyan    Color = "cyan"
	ColorYellow  Color = "yellow"
	ColorRed     Color = "red"
	ColorMagenta Color = "magenta"
	ColorBlue    Color = "blue"
	ColorWhite   Color = "white"
)

// Style describes how a span or gauge is drawn.
type Style struct {
	Color Color
	Level Level
	Bold  bool
	Dim   bool
}

var (
	dimStyle   = Style{Dim: true}
	plainStyle = Style{}
)

// Styled returns the bold style for a level. normal is the hue used for
// LevelNormal, since memory-type metrics read cyan where CPU reads green.
func Styled(level Level, normal Color) Style {
	switch level {
	case LevelCritical:
		return Style{Color: ColorRed, Level: level, Bold: true}
	case LevelWarning:
		return Style{Color: ColorYellow, Level: level, Bold: true}
	case LevelNormal:
		return Style{Color: normal, Level: level, Bold: true}
	default:
		return Style{Level: LevelNeutral, Dim: true}
	}
}

// Thresholds. CPU and memory gauges use a two-tier split at 80 inclusive;
// everything else is three-tier with strict comparisons.
const (
	GaugeCritical = 80.0

	ContainerCPUCritical = 80.0
	ContainerCPUWarning  = 50.0

	TempCritical = 80.0
	TempWarning  = 60.0

	DiskCritical = 90.0
	DiskWarning  = 70.0

	FreeSpaceCriticalGB = 10.0
	FreeSpaceWarningGB  = 50.0

	BatteryCritical = 20.0
	BatteryWarning  = 50.0

	ProcessCritical = 50.0
	ProcessWarning  = 20.0
)

// CPULevel grades system CPU percent.
func CPULevel(p float64) Level {
	if p >= GaugeCritical {
		return LevelCritical
	}
	return LevelNormal
}

// MemoryLevel grades system memory percent.
func MemoryLevel(p float64) Level {
	if p >= GaugeCritical {
		return LevelCritical
	}
	return LevelNormal
}

// ContainerCPULevel grades a container's CPU percent.
func ContainerCPULevel(p float64) Level {
	switch {
	case p > ContainerCPUCritical:
		return LevelCritical
	case p > ContainerCPUWarning:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// TempLevel grades a temperature in Celsius; nil is neutral.
func TempLevel(c *float64) Level {
	switch {
	case c == nil:
		return LevelNeutral
	case *c > TempCritical:
		return LevelCritical
	case *c > TempWarning:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// DiskLevel grades a partition's used percent.
func DiskLevel(p float64) Level {
	switch {
	case p > DiskCritical:
		return LevelCritical
	case p > DiskWarning:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// FreeSpaceLevel grades free space in GiB.
func FreeSpaceLevel(gb float64) Level {
	switch {
	case gb < FreeSpaceCriticalGB:
		return LevelCritical
	case gb < FreeSpaceWarningGB:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// BatteryLevel grades remaining charge percent.
func BatteryLevel(p float64) Level {
	switch {
	case p < BatteryCritical:
		return LevelCritical
	case p < BatteryWarning:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// ProcessLevel grades a process's CPU or memory percent.
func ProcessLevel(p float64) Level {
	switch {
	case p > ProcessCritical:
		return LevelCritical
	case p > ProcessWarning:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// StatusLevel grades a container status line.
func StatusLevel(running bool) Level {
	if running {
		return LevelNormal
	}
	return LevelCritical
}
