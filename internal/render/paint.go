// Package render draws layout frames to the terminal.
//
// Paint is a pure frame-to-string conversion. The backends (bubbletea or
// raw ANSI) own the terminal: alternate screen, raw input and restoring
// everything on exit.
package render

import (
	"strings"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/layout"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/panel"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Gauge sizing.
const (
	GaugeWidth    = 20
	MinGaugeWidth = 5
)

// Paint renders a frame into a width x height block of text.
func Paint(f layout.Frame, width, height int) string {
	tree := f.Tree()
	if tree == nil || width <= 0 || height <= 0 {
		return ""
	}
	rects := tree.Measure(width, height)

	region := func(r layout.Region) string {
		rect := rects[r]
		return drawRegion(f.Panel(r), rect.Width, rect.Height)
	}

	left := joinVertical(region(layout.RegionCPURAM), region(layout.RegionDisk))
	right := joinVertical(region(layout.RegionNetwork), region(layout.RegionProcesses))

	body := ""
	if rects[layout.RegionBody].Height > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}

	return joinVertical(
		region(layout.RegionHeader),
		body,
		region(layout.RegionDocker),
		region(layout.RegionFooter),
	)
}

// joinVertical stacks non-empty blocks.
func joinVertical(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}

// drawRegion draws n as a bordered box filling exactly width x height.
func drawRegion(n panel.Node, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	title := ""
	child := n
	if b, ok := n.(panel.Box); ok {
		title = b.Title
		child = b.Child
	}
	return strings.Join(drawBox(title, child, width, height), "\n")
}

func drawBox(title string, child panel.Node, width, height int) []string {
	lines := make([]string, 0, height)
	lines = append(lines, sectionHeader(title, width))
	if height == 1 {
		return lines
	}

	inner := height - 2
	content := renderNode(child, max(width-4, 0))
	for i := 0; i < inner; i++ {
		line := ""
		if i < len(content) {
			line = content[i]
		}
		lines = append(lines, sectionContentLine(line, width))
	}
	return append(lines, sectionFooter(width))
}

// renderNode renders a node's content lines for the given inner width.
func renderNode(n panel.Node, width int) []string {
	switch n := n.(type) {
	case panel.Text:
		out := make([]string, 0, len(n.Lines))
		for _, l := range n.Lines {
			out = append(out, renderLine(l))
		}
		return out
	case panel.Grid:
		return renderGrid(n, width)
	case panel.Table:
		return renderTable(n, width)
	case panel.Gauge:
		return []string{renderGauge(n, width)}
	case panel.Box:
		inner := renderNode(n.Child, max(width-4, 0))
		return drawBox(n.Title, n.Child, width, len(inner)+2)
	default:
		return nil
	}
}

func renderLine(l panel.Line) string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(spanStyle(s.Style).Render(s.Text))
	}
	return b.String()
}

func renderGrid(g panel.Grid, width int) []string {
	labelWidth := 0
	valueWidth := 0
	for _, r := range g.Rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
		if r.Gauge != nil {
			valueWidth = max(valueWidth, lipgloss.Width(r.Value.Plain()))
		}
	}

	// label  gauge  value
	gaugeWidth := min(GaugeWidth, width-labelWidth-valueWidth-4)
	label := labelStyle.Width(labelWidth).Align(lipgloss.Right)

	out := make([]string, 0, len(g.Rows))
	for _, r := range g.Rows {
		parts := []string{label.Render(r.Label)}
		if r.Gauge != nil && gaugeWidth >= MinGaugeWidth {
			parts = append(parts, renderGauge(*r.Gauge, gaugeWidth))
		}
		parts = append(parts, renderLine(r.Value))
		out = append(out, strings.Join(parts, "  "))
	}
	return out
}

// renderGauge draws a solid bar colored by the gauge's level.
func renderGauge(g panel.Gauge, width int) string {
	if width <= 0 {
		return ""
	}
	bar := progress.New(
		progress.WithSolidFill(string(gaugeColor(g.Style))),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(ColorMuted)

	ratio := g.Percent / 100
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return bar.ViewAs(ratio)
}

func renderTable(t panel.Table, width int) []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Title
	}
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		cells := make([]string, len(t.Columns))
		for j := range cells {
			if j < len(r) {
				cells[j] = r[j].Text
			}
		}
		rows[i] = cells
	}

	tb := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle(t, row, col)
		})
	if width > 0 {
		tb = tb.Width(width)
	}

	return strings.Split(tb.Render(), "\n")
}

func cellStyle(t panel.Table, row, col int) lipgloss.Style {
	st := lipgloss.NewStyle().PaddingRight(1)
	if col < 0 || col >= len(t.Columns) {
		return st
	}
	c := t.Columns[col]
	if c.Width > 0 {
		st = st.Width(c.Width)
	}
	if c.Align == panel.AlignRight {
		st = st.Align(lipgloss.Right)
	}
	if row == table.HeaderRow {
		return st.Inherit(headerStyle)
	}
	if row >= 0 && row < len(t.Rows) && col < len(t.Rows[row]) {
		st = st.Inherit(spanStyle(t.Rows[row][col].Style))
	}
	return st
}
