package panel

import (
	"fmt"
	"time"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatBytes renders b in the largest 1024-based unit below 1024, with
// two decimals. Values past TB stay in PB however large they get.
func FormatBytes(b uint64) string {
	v := float64(b)
	for _, unit := range byteUnits {
		if v < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f PB", v)
}

const gib = 1024 * 1024 * 1024

// GiB converts bytes to GiB.
func GiB(b uint64) float64 {
	return float64(b) / gib
}

// FormatUptime renders d as "Xd Yh Zm", dropping the day part under a day.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// FormatTimeLeft renders a battery estimate as "Xh Ym".
func FormatTimeLeft(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

func percentText(p float64) string {
	return fmt.Sprintf("%5.1f%%", p)
}
