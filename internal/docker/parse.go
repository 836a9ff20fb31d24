package docker

import (
	"strings"

	"github.com/spf13/cast"
)

// parseList parses tab-separated `docker ps` output. Lines with fewer
// than three columns are skipped.
func parseList(out string) []Container {
	var containers []Container
	for _, line := range splitLines(out) {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		containers = append(containers, Container{
			Name:   parts[0],
			Image:  parts[1],
			Status: parts[2],
		})
	}
	return containers
}

// parseStats parses tab-separated `docker stats` output keyed by name.
func parseStats(out string) map[string]Stats {
	stats := make(map[string]Stats)
	for _, line := range splitLines(out) {
		parts := strings.Split(line, "\t")
		if len(parts) < 3 {
			continue
		}
		stats[parts[0]] = Stats{CPU: parts[1], Memory: parts[2]}
	}
	return stats
}

func splitLines(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// statusWord is the first word of a status like "Up 3 hours".
func statusWord(status string) string {
	fields := strings.Fields(status)
	if len(fields) == 0 {
		return "Unknown"
	}
	return fields[0]
}

func isRunning(status string) bool {
	return strings.Contains(status, "Up")
}

// parseCPUPercent reads "12.34%" as 12.34. Anything without a percent
// sign, or unparsable, is 0.
func parseCPUPercent(s string) float64 {
	if !strings.Contains(s, "%") {
		return 0
	}
	v, err := cast.ToFloat64E(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%")))
	if err != nil {
		return 0
	}
	return v
}
