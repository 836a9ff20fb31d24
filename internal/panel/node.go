// Package panel turns a metrics Snapshot into declarative panel trees.
//
// Builders are pure: the same Snapshot and sort mode always produce the
// same nodes. Nothing here knows how a terminal draws; the render package
// owns that.
package panel

import "strings"

// Node is one element of a panel tree.
type Node interface {
	isNode()
}

// Span is a run of text in a single style.
type Span struct {
	Text  string
	Style Style
}

// Line is a sequence of spans rendered on one row.
type Line []Span

// Plain returns the line's text without styling.
func (l Line) Plain() string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(span.Text)
	}
	return b.String()
}

// Text is one or more styled lines.
type Text struct {
	Lines []Line
}

// Gauge is a horizontal bar filled to Percent (0-100).
type Gauge struct {
	Percent float64
	Style   Style
}

// GridRow is a label followed by an optional gauge and a value.
type GridRow struct {
	Label string
	Gauge *Gauge
	Value Line
}

// Grid is a label/value list, labels right-aligned in one column.
type Grid struct {
	Rows []GridRow
}

// Align is the horizontal alignment of a table column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column. Width 0 lets the column flex.
type Column struct {
	Title string
	Align Align
	Width int
}

// Table is a header row plus data rows of one span per column.
type Table struct {
	Columns []Column
	Rows    [][]Span
}

// Box is a bordered, optionally titled container around one child.
type Box struct {
	Title string
	Child Node
}

func (Text) isNode()  {}
func (Gauge) isNode() {}
func (Grid) isNode()  {}
func (Table) isNode() {}
func (Box) isNode()   {}

// Message builds a single-line text node.
func Message(text string, style Style) Text {
	return Text{Lines: []Line{{{Text: text, Style: style}}}}
}
