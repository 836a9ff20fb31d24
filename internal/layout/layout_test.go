package layout

import (
	"testing"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsFixed(t *testing.T) {
	tree := New(DefaultSizes())
	assert.Equal(t, []Region{
		RegionHeader,
		RegionBody, RegionLeft, RegionCPURAM, RegionDisk,
		RegionRight, RegionNetwork, RegionProcesses,
		RegionDocker,
		RegionFooter,
	}, tree.Regions())
}

func TestBindDoesNotChangeTopology(t *testing.T) {
	tree := New(DefaultSizes())
	before := tree.Regions()

	f1 := tree.Bind(Panels{Header: panel.Message("one", panel.Style{})})
	f2 := tree.Bind(Panels{Header: panel.Message("two", panel.Style{})})

	assert.Equal(t, before, tree.Regions())
	assert.Same(t, tree, f1.Tree())
	assert.Same(t, f1.Tree(), f2.Tree())

	assert.Equal(t, "one", f1.Panel(RegionHeader).(panel.Text).Lines[0].Plain())
	assert.Equal(t, "two", f2.Panel(RegionHeader).(panel.Text).Lines[0].Plain())
	assert.Nil(t, f1.Panel(RegionDisk))
	assert.Nil(t, f1.Panel(RegionBody))
}

func TestBindAllLeaves(t *testing.T) {
	msg := func(s string) panel.Node { return panel.Message(s, panel.Style{}) }
	f := New(DefaultSizes()).Bind(Panels{
		Header:    msg("header"),
		CPURAM:    msg("cpu_ram"),
		Disk:      msg("disk"),
		Network:   msg("network"),
		Processes: msg("processes"),
		Docker:    msg("docker"),
		Footer:    msg("footer"),
	})

	for _, r := range Leaves {
		require.NotNil(t, f.Panel(r), r)
		assert.Equal(t, string(r), f.Panel(r).(panel.Text).Lines[0].Plain())
	}
}

func TestMeasure(t *testing.T) {
	rects := New(DefaultSizes()).Measure(101, 40)

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 101, Height: 3}, rects[RegionHeader])
	assert.Equal(t, Rect{X: 0, Y: 3, Width: 101, Height: 24}, rects[RegionBody])
	assert.Equal(t, Rect{X: 0, Y: 27, Width: 101, Height: 10}, rects[RegionDocker])
	assert.Equal(t, Rect{X: 0, Y: 37, Width: 101, Height: 3}, rects[RegionFooter])

	// Odd width: the extra column goes left.
	assert.Equal(t, Rect{X: 0, Y: 3, Width: 51, Height: 24}, rects[RegionLeft])
	assert.Equal(t, Rect{X: 51, Y: 3, Width: 50, Height: 24}, rects[RegionRight])

	assert.Equal(t, Rect{X: 0, Y: 3, Width: 51, Height: 12}, rects[RegionCPURAM])
	assert.Equal(t, Rect{X: 0, Y: 15, Width: 51, Height: 12}, rects[RegionDisk])
	assert.Equal(t, Rect{X: 51, Y: 3, Width: 50, Height: 12}, rects[RegionNetwork])
	assert.Equal(t, Rect{X: 51, Y: 15, Width: 50, Height: 12}, rects[RegionProcesses])
}

func TestMeasureTinyScreen(t *testing.T) {
	rects := New(DefaultSizes()).Measure(10, 5)

	assert.Equal(t, 3, rects[RegionHeader].Height)
	assert.Equal(t, 0, rects[RegionBody].Height)
	assert.Equal(t, 2, rects[RegionDocker].Height)
	assert.Equal(t, 0, rects[RegionFooter].Height)

	neg := New(DefaultSizes()).Measure(-1, -1)
	assert.Equal(t, 0, neg[RegionHeader].Width)
}
