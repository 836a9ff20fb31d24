// Package layout arranges panels into the fixed dashboard region tree.
//
// The topology is built once and never changes:
//
//	header   (fixed rows)
//	body     left: cpu_ram / disk    right: network / processes
//	docker   (fixed rows)
//	footer   (fixed rows)
//
// Each refresh binds new panel content to the leaves.
package layout

import (
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/panel"
)

// Region names a node in the tree.
type Region string

const (
	RegionHeader    Region = "header"
	RegionBody      Region = "body"
	RegionLeft      Region = "left"
	RegionRight     Region = "right"
	RegionCPURAM    Region = "cpu_ram"
	RegionDisk      Region = "disk"
	RegionNetwork   Region = "network"
	RegionProcesses Region = "processes"
	RegionDocker    Region = "docker"
	RegionFooter    Region = "footer"
)

// Leaves lists every region that holds content, in paint order.
var Leaves = []Region{
	RegionHeader,
	RegionCPURAM,
	RegionDisk,
	RegionNetwork,
	RegionProcesses,
	RegionDocker,
	RegionFooter,
}

// Direction is how a node splits its space among children.
type Direction int

const (
	// Vertical stacks children top to bottom.
	Vertical Direction = iota
	// Horizontal places children left to right.
	Horizontal
)

// Sizes are the fixed heights of the non-flexible rows.
type Sizes struct {
	Header int
	Docker int
	Footer int
}

// DefaultSizes matches the classic three-row header and footer.
func DefaultSizes() Sizes {
	return Sizes{Header: 3, Docker: 10, Footer: 3}
}

// node is one region. Size 0 means flex; flex siblings share what the
// fixed siblings leave, equally.
type node struct {
	region   Region
	size     int
	split    Direction
	children []*node
}

// Tree is the immutable region topology.
type Tree struct {
	root  *node
	sizes Sizes
}

// New builds the region tree.
func New(sizes Sizes) *Tree {
	left := &node{region: RegionLeft, split: Vertical, children: []*node{
		{region: RegionCPURAM},
		{region: RegionDisk},
	}}
	right := &node{region: RegionRight, split: Vertical, children: []*node{
		{region: RegionNetwork},
		{region: RegionProcesses},
	}}
	body := &node{region: RegionBody, split: Horizontal, children: []*node{left, right}}

	root := &node{split: Vertical, children: []*node{
		{region: RegionHeader, size: sizes.Header},
		body,
		{region: RegionDocker, size: sizes.Docker},
		{region: RegionFooter, size: sizes.Footer},
	}}
	return &Tree{root: root, sizes: sizes}
}

// Regions returns every named region, parents before children.
func (t *Tree) Regions() []Region {
	var out []Region
	var walk func(n *node)
	walk = func(n *node) {
		if n.region != "" {
			out = append(out, n.region)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	return out
}

// Panels holds the content for each leaf region.
type Panels struct {
	Header    panel.Node
	CPURAM    panel.Node
	Disk      panel.Node
	Network   panel.Node
	Processes panel.Node
	Docker    panel.Node
	Footer    panel.Node
}

// Frame is a tree with content bound to every leaf.
type Frame struct {
	tree    *Tree
	content map[Region]panel.Node
}

// Bind returns a frame with p bound to the leaves. The tree itself is
// shared and unchanged.
func (t *Tree) Bind(p Panels) Frame {
	return Frame{
		tree: t,
		content: map[Region]panel.Node{
			RegionHeader:    p.Header,
			RegionCPURAM:    p.CPURAM,
			RegionDisk:      p.Disk,
			RegionNetwork:   p.Network,
			RegionProcesses: p.Processes,
			RegionDocker:    p.Docker,
			RegionFooter:    p.Footer,
		},
	}
}

// Panel returns the content bound to a region, or nil.
func (f Frame) Panel(r Region) panel.Node {
	return f.content[r]
}

// Tree returns the topology the frame was bound on.
func (f Frame) Tree() *Tree {
	return f.tree
}

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Measure resolves every region to a rectangle for a width x height
// screen. Flex space is split evenly with any remainder going to the
// first flex child. Fixed rows shrink in order when the screen is too
// small to fit them all.
func (t *Tree) Measure(width, height int) map[Region]Rect {
	out := make(map[Region]Rect)
	measure(t.root, Rect{Width: max(width, 0), Height: max(height, 0)}, out)
	return out
}

func measure(n *node, r Rect, out map[Region]Rect) {
	if n.region != "" {
		out[n.region] = r
	}
	if len(n.children) == 0 {
		return
	}

	total := r.Height
	if n.split == Horizontal {
		total = r.Width
	}

	lengths := splitLengths(n.children, total)
	offset := 0
	for i, c := range n.children {
		cr := r
		if n.split == Horizontal {
			cr.X = r.X + offset
			cr.Width = lengths[i]
		} else {
			cr.Y = r.Y + offset
			cr.Height = lengths[i]
		}
		offset += lengths[i]
		measure(c, cr, out)
	}
}

// splitLengths divides total among children: fixed children first, then
// flex children share the rest.
func splitLengths(children []*node, total int) []int {
	lengths := make([]int, len(children))
	remaining := total
	flex := 0
	for i, c := range children {
		if c.size == 0 {
			flex++
			continue
		}
		l := min(c.size, remaining)
		lengths[i] = l
		remaining -= l
	}
	if flex == 0 {
		return lengths
	}

	share := remaining / flex
	extra := remaining % flex
	for i, c := range children {
		if c.size != 0 {
			continue
		}
		lengths[i] = share
		if extra > 0 {
			lengths[i]++
			extra--
		}
	}
	return lengths
}
