package render

import (
	"strings"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/panel"
	"github.com/charmbracelet/lipgloss"
)

// Palette using ANSI color codes so the dashboard follows the terminal theme.
const (
	ColorRed     lipgloss.Color = "1"
	ColorGreen   lipgloss.Color = "2"
	ColorYellow  lipgloss.Color = "3"
	ColorBlue    lipgloss.Color = "4"
	ColorMagenta lipgloss.Color = "5"
	ColorCyan    lipgloss.Color = "6"
	ColorWhite   lipgloss.Color = "7"
	ColorMuted   lipgloss.Color = "8"  // Gray (bright black)
	ColorBorder  lipgloss.Color = "12" // Bright blue
)

var palette = map[panel.Color]lipgloss.Color{
	panel.ColorRed:     ColorRed,
	panel.ColorGreen:   ColorGreen,
	panel.ColorYellow:  ColorYellow,
	panel.ColorBlue:    ColorBlue,
	panel.ColorMagenta: ColorMagenta,
	panel.ColorCyan:    ColorCyan,
	panel.ColorWhite:   ColorWhite,
}

var (
	borderStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	titleStyle  = lipgloss.NewStyle().Foreground(ColorBorder).Bold(true)
	labelStyle  = lipgloss.NewStyle()
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// colorFor maps a semantic color to the palette. Unknown and default
// colors come back empty, which lipgloss treats as "no color".
func colorFor(c panel.Color) lipgloss.Color {
	return palette[c]
}

// spanStyle converts a panel style into a lipgloss style.
func spanStyle(s panel.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c := colorFor(s.Color); c != "" {
		st = st.Foreground(c)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Dim {
		st = st.Faint(true)
	}
	return st
}

// gaugeColor is the bar fill for a style; neutral gauges are muted.
func gaugeColor(s panel.Style) lipgloss.Color {
	if c := colorFor(s.Color); c != "" {
		return c
	}
	return ColorMuted
}

// sectionHeader renders the top border with an optional title.
// Format: ╭─ Title ──────────────────╮
func sectionHeader(title string, width int) string {
	if width < 2 {
		return strings.Repeat(" ", max(width, 0))
	}
	if title == "" || width < 8 {
		return borderStyle.Render("╭" + strings.Repeat("─", width-2) + "╮")
	}

	// Left: "╭─ " + title + " ", right: "╮"
	maxTitle := width - 6
	title = lipgloss.NewStyle().MaxWidth(maxTitle).Render(title)
	fillWidth := width - 3 - lipgloss.Width(title) - 1 - 1
	if fillWidth < 0 {
		fillWidth = 0
	}

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat("─", fillWidth)+"╮")
}

// sectionFooter renders the bottom border.
// Format: ╰──────────────────────────╯
func sectionFooter(width int) string {
	if width < 2 {
		return strings.Repeat(" ", max(width, 0))
	}
	return borderStyle.Render("╰" + strings.Repeat("─", width-2) + "╯")
}

// sectionContentLine renders a content line between side borders, padded
// or clipped to width.
// Format: │ content                    │
func sectionContentLine(content string, width int) string {
	if width < 4 {
		return strings.Repeat(" ", max(width, 0))
	}

	innerWidth := width - 4
	content = lipgloss.NewStyle().MaxWidth(innerWidth).Render(content)

	padding := innerWidth - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}

	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}
