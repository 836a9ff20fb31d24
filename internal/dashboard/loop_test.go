package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/docker"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/errors"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/layout"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/metrics"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

type harness struct {
	loop       *Loop
	sampler    *fakeSampler
	containers *fakeContainers
	keys       *queueKeys
	renderer   *fakeRenderer
}

func newHarness(opts Options) *harness {
	h := &harness{
		sampler:    &fakeSampler{},
		containers: &fakeContainers{result: docker.PendingResult()},
		keys:       &queueKeys{},
		renderer:   &fakeRenderer{},
	}
	h.loop = New(h.sampler, h.containers, h.keys, h.renderer, nil, opts)
	return h
}

func processesTitle(f layout.Frame) string {
	return f.Panel(layout.RegionProcesses).(panel.Box).Title
}

func TestStartPrimesThenPaints(t *testing.T) {
	h := newHarness(Options{})
	require.NoError(t, h.loop.start(context.Background(), t0))

	primed, samples := h.sampler.count()
	assert.Equal(t, 1, primed)
	assert.Equal(t, 1, samples)
	assert.Equal(t, 1, h.renderer.count())
	assert.Equal(t, 1, h.containers.requests)
	assert.Equal(t, StateRunning, h.loop.State())
}

func TestStepRendersOnInterval(t *testing.T) {
	h := newHarness(Options{})
	ctx := context.Background()
	require.NoError(t, h.loop.start(ctx, t0))

	for i := 1; i < 20; i++ {
		require.NoError(t, h.loop.Step(ctx, t0.Add(time.Duration(i)*100*time.Millisecond)))
	}
	assert.Equal(t, 1, h.renderer.count(), "nothing due before 2s")

	require.NoError(t, h.loop.Step(ctx, t0.Add(2*time.Second)))
	assert.Equal(t, 2, h.renderer.count())
}

func TestToggleRendersImmediately(t *testing.T) {
	h := newHarness(Options{})
	ctx := context.Background()
	require.NoError(t, h.loop.start(ctx, t0))
	assert.Equal(t, "Top Processes (by CPU)", processesTitle(h.renderer.last()))

	h.keys.push("m")
	require.NoError(t, h.loop.Step(ctx, t0.Add(100*time.Millisecond)))

	assert.Equal(t, 2, h.renderer.count())
	assert.True(t, h.loop.Display().SortByMemory)
	assert.Equal(t, "Top Processes (by Memory)", processesTitle(h.renderer.last()))
}

func TestToggleDefersNextRender(t *testing.T) {
	h := newHarness(Options{})
	ctx := context.Background()
	require.NoError(t, h.loop.start(ctx, t0))

	h.keys.push("m")
	require.NoError(t, h.loop.Step(ctx, t0.Add(1900*time.Millisecond)))
	assert.Equal(t, 2, h.renderer.count())

	// The 2s tick was pushed out by the toggle's repaint.
	require.NoError(t, h.loop.Step(ctx, t0.Add(2*time.Second)))
	assert.Equal(t, 2, h.renderer.count())

	require.NoError(t, h.loop.Step(ctx, t0.Add(3900*time.Millisecond)))
	assert.Equal(t, 3, h.renderer.count())
}

func TestToggleAndTickDueTogetherRenderOnce(t *testing.T) {
	h := newHarness(Options{})
	ctx := context.Background()
	require.NoError(t, h.loop.start(ctx, t0))

	h.keys.push("m")
	require.NoError(t, h.loop.Step(ctx, t0.Add(2*time.Second)))
	assert.Equal(t, 2, h.renderer.count())
}

func TestOneKeyPerPoll(t *testing.T) {
	h := newHarness(Options{})
	ctx := context.Background()
	require.NoError(t, h.loop.start(ctx, t0))

	h.keys.push("m", "m")
	require.NoError(t, h.loop.Step(ctx, t0.Add(100*time.Millisecond)))
	assert.True(t, h.loop.Display().SortByMemory)

	// Poll deadline not reached: the second key waits.
	require.NoError(t, h.loop.Step(ctx, t0.Add(150*time.Millisecond)))
	assert.True(t, h.loop.Display().SortByMemory)

	require.NoError(t, h.loop.Step(ctx, t0.Add(200*time.Millisecond)))
	assert.False(t, h.loop.Display().SortByMemory)
	assert.Equal(t, 3, h.renderer.count())
}

func TestUnknownKeyIgnored(t *testing.T) {
	h := newHarness(Options{})
	ctx := context.Background()
	require.NoError(t, h.loop.start(ctx, t0))

	h.keys.push("x")
	require.NoError(t, h.loop.Step(ctx, t0.Add(100*time.Millisecond)))

	assert.Equal(t, 1, h.renderer.count())
	assert.Equal(t, DisplayState{}, h.loop.Display())
	assert.Equal(t, StateRunning, h.loop.State())
}

func TestQuitStopsSampling(t *testing.T) {
	h := newHarness(Options{})
	ctx := context.Background()
	require.NoError(t, h.loop.start(ctx, t0))

	h.keys.push("Q")
	require.NoError(t, h.loop.Step(ctx, t0.Add(2*time.Second)))
	assert.Equal(t, StateTerminating, h.loop.State())

	_, samples := h.sampler.count()
	requests := h.containers.requests
	require.NoError(t, h.loop.Step(ctx, t0.Add(10*time.Second)))

	_, after := h.sampler.count()
	assert.Equal(t, samples, after)
	assert.Equal(t, requests, h.containers.requests)
	assert.Equal(t, 1, h.renderer.count())
}

func TestRunQuitsOnKey(t *testing.T) {
	h := newHarness(Options{RenderInterval: 50 * time.Millisecond, PollInterval: 5 * time.Millisecond})
	h.keys.push("m", "q")

	done := make(chan error, 1)
	go func() { done <- h.loop.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}

	assert.Equal(t, StateTerminating, h.loop.State())
	assert.Equal(t, 1, h.renderer.closes())
	assert.True(t, h.loop.Display().SortByMemory)
}

func TestRunStopsOnCancel(t *testing.T) {
	h := newHarness(Options{RenderInterval: 20 * time.Millisecond, PollInterval: 5 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.loop.Run(ctx) }()

	require.Eventually(t, func() bool { return h.renderer.count() >= 3 }, 5*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, 1, h.renderer.closes())
}

func TestRunRendererErrorIsFatal(t *testing.T) {
	h := newHarness(Options{RenderInterval: 10 * time.Millisecond, PollInterval: 5 * time.Millisecond})
	h.renderer.failOn = 2

	err := h.loop.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrRender))
	assert.ErrorIs(t, err, errTerminalGone)
	assert.Equal(t, 1, h.renderer.closes())
}

func TestRunFirstPaintFailure(t *testing.T) {
	h := newHarness(Options{})
	h.renderer.failOn = 1

	err := h.loop.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateTerminating, h.loop.State())
}

func TestUntilNext(t *testing.T) {
	h := newHarness(Options{})
	require.NoError(t, h.loop.start(context.Background(), t0))

	assert.Equal(t, 100*time.Millisecond, h.loop.untilNext(t0))
	assert.Equal(t, time.Duration(0), h.loop.untilNext(t0.Add(time.Second)))
}

func TestNewDefaults(t *testing.T) {
	l := New(&fakeSampler{}, &fakeContainers{}, &queueKeys{}, &fakeRenderer{}, nil, Options{})
	assert.Equal(t, DefaultOptions(), l.opts)
}

// A fixed snapshot flows through the builders and layout with the
// documented tiers and byte formatting.
func TestFrameEndToEnd(t *testing.T) {
	snap := metrics.Snapshot{
		CPUPercent:   95,
		CPUAvailable: true,
		Memory:       metrics.Memory{Available: true, Percent: 50, UsedBytes: 4 << 30, TotalBytes: 8 << 30},
		Disks:        []metrics.Disk{{Device: "/dev/sda1", Percent: 65, UsedBytes: 65 << 30, TotalBytes: 100 << 30, FreeBytes: 35 << 30}},
		Network:      metrics.Network{Available: true, BytesSent: 500 * 1024 * 1024, BytesRecv: 2 * 1024 * 1024 * 1024},
		Processes: []metrics.Process{
			{PID: 1, Name: "a", CPUPercent: 10, MemoryPercent: 1},
			{PID: 2, Name: "b", CPUPercent: 5, MemoryPercent: 9},
		},
	}
	h := newHarness(Options{})
	f := h.loop.Frame(snap, docker.Result{}, t0)

	for _, r := range layout.Leaves {
		require.NotNil(t, f.Panel(r), r)
	}

	cpu := gridRow(t, f, layout.RegionCPURAM, "CPU Usage:")
	require.NotNil(t, cpu.Gauge)
	assert.Equal(t, panel.LevelCritical, cpu.Gauge.Style.Level)

	ram := gridRow(t, f, layout.RegionCPURAM, "RAM Usage:")
	assert.Equal(t, panel.LevelNormal, ram.Gauge.Style.Level)

	disk := gridRow(t, f, layout.RegionDisk, "/dev/sda1:")
	assert.Equal(t, panel.LevelNormal, disk.Gauge.Style.Level)

	assert.Equal(t, "500.00 MB", gridRow(t, f, layout.RegionNetwork, "Bytes Sent:").Value.Plain())
	assert.Equal(t, "2.00 GB", gridRow(t, f, layout.RegionNetwork, "Bytes Received:").Value.Plain())

	procs := f.Panel(layout.RegionProcesses).(panel.Box).Child.(panel.Table)
	assert.Len(t, procs.Rows, 2)

	// Missing temperature and battery show explicit placeholders.
	assert.Equal(t, panel.NotAvailable, gridRow(t, f, layout.RegionCPURAM, "CPU Temp:").Value.Plain())
	assert.Equal(t, panel.NotAvailable, gridRow(t, f, layout.RegionCPURAM, "Battery:").Value.Plain())
}

func TestFrameWithMissingDocker(t *testing.T) {
	h := newHarness(Options{})
	h.containers.result = docker.Result{Unavailable: &docker.ProbeError{Reason: docker.ReasonNotInstalled}}

	require.NoError(t, h.loop.start(context.Background(), t0))

	box := h.renderer.last().Panel(layout.RegionDocker).(panel.Box)
	assert.Equal(t, "Docker is not installed", box.Child.(panel.Text).Lines[0].Plain())
	assert.NotNil(t, h.renderer.last().Panel(layout.RegionCPURAM))
}

func gridRow(t *testing.T, f layout.Frame, region layout.Region, label string) panel.GridRow {
	t.Helper()
	box, ok := f.Panel(region).(panel.Box)
	require.True(t, ok)
	grid, ok := box.Child.(panel.Grid)
	require.True(t, ok)
	for _, r := range grid.Rows {
		if r.Label == label {
			return r
		}
	}
	t.Fatalf("no row %q in %s", label, region)
	return panel.GridRow{}
}
