package dashboard

import (
	"context"
	"time"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/docker"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/errors"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/layout"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/logger"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/metrics"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/panel"
)

// Default cadences.
const (
	DefaultRenderInterval = 2 * time.Second
	DefaultPollInterval   = 100 * time.Millisecond
)

// KeySource yields at most one pending key press without blocking.
type KeySource interface {
	Poll() (string, bool)
}

// Renderer draws frames and owns the terminal. Close must be idempotent.
type Renderer interface {
	Render(f layout.Frame) error
	Close() error
}

// Sampler produces metric snapshots.
type Sampler interface {
	Prime(ctx context.Context)
	Sample(ctx context.Context) metrics.Snapshot
}

// Containers provides the latest container query result without blocking.
type Containers interface {
	Request()
	Latest() docker.Result
}

// Options tunes the loop.
type Options struct {
	RenderInterval time.Duration
	PollInterval   time.Duration
	TopProcesses   int
	Sizes          layout.Sizes
}

// DefaultOptions returns the standard cadence and layout.
func DefaultOptions() Options {
	return Options{
		RenderInterval: DefaultRenderInterval,
		PollInterval:   DefaultPollInterval,
		TopProcesses:   panel.DefaultTopProcesses,
		Sizes:          layout.DefaultSizes(),
	}
}

// Loop is the dashboard state machine.
type Loop struct {
	sampler    Sampler
	containers Containers
	keys       KeySource
	renderer   Renderer
	log        logger.Logger
	tree       *layout.Tree
	opts       Options
	now        func() time.Time

	display    DisplayState
	state      State
	nextPoll   time.Time
	nextRender time.Time
}

// New creates a loop. Zero option fields take their defaults.
func New(sampler Sampler, containers Containers, keys KeySource, renderer Renderer, log logger.Logger, opts Options) *Loop {
	def := DefaultOptions()
	if opts.RenderInterval <= 0 {
		opts.RenderInterval = def.RenderInterval
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = def.PollInterval
	}
	if opts.TopProcesses <= 0 {
		opts.TopProcesses = def.TopProcesses
	}
	if opts.Sizes == (layout.Sizes{}) {
		opts.Sizes = def.Sizes
	}
	if log == nil {
		log = logger.Noop()
	}

	return &Loop{
		sampler:    sampler,
		containers: containers,
		keys:       keys,
		renderer:   renderer,
		log:        log,
		tree:       layout.New(opts.Sizes),
		opts:       opts,
		now:        time.Now,
		state:      StateRunning,
	}
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Display returns the current display state.
func (l *Loop) Display() DisplayState {
	return l.display
}

// Run primes the metric baselines, paints the first frame and then serves
// both deadlines until quit or ctx is cancelled. It returns an error only
// when the renderer fails. The renderer is closed before returning.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.start(ctx, l.now()); err != nil {
		return l.finish(err)
	}

	timer := time.NewTimer(l.untilNext(l.now()))
	defer timer.Stop()

	for l.state == StateRunning {
		select {
		case <-ctx.Done():
			l.log.Debug("context done: %v", ctx.Err())
			l.state = StateTerminating

		case <-timer.C:
			if err := l.Step(ctx, l.now()); err != nil {
				return l.finish(err)
			}
			if l.state == StateRunning {
				timer.Reset(l.untilNext(l.now()))
			}
		}
	}

	return l.finish(nil)
}

// start performs the baseline sample and the first paint.
func (l *Loop) start(ctx context.Context, now time.Time) error {
	l.sampler.Prime(ctx)
	if err := l.Rebuild(ctx, now); err != nil {
		return err
	}
	l.nextPoll = now.Add(l.opts.PollInterval)
	l.nextRender = now.Add(l.opts.RenderInterval)
	return nil
}

// Step handles whichever deadlines are due at now. At most one key is
// consumed per poll deadline.
func (l *Loop) Step(ctx context.Context, now time.Time) error {
	if l.state != StateRunning {
		return nil
	}

	if !now.Before(l.nextPoll) {
		l.nextPoll = now.Add(l.opts.PollInterval)
		if key, ok := l.keys.Poll(); ok {
			rebuilt, err := l.handleKey(ctx, key, now)
			if err != nil || rebuilt || l.state != StateRunning {
				return err
			}
		}
	}

	if !now.Before(l.nextRender) {
		l.nextRender = now.Add(l.opts.RenderInterval)
		return l.Rebuild(ctx, now)
	}
	return nil
}

// handleKey applies one key. It reports whether the display was rebuilt.
func (l *Loop) handleKey(ctx context.Context, key string, now time.Time) (bool, error) {
	cmd := ParseKey(key)
	l.log.Debug("key %q -> %s", key, cmd)

	switch cmd {
	case CommandQuit:
		l.state = StateTerminating
		return false, nil
	case CommandToggleSort:
		l.display.Toggle()
		l.nextRender = now.Add(l.opts.RenderInterval)
		return true, l.Rebuild(ctx, now)
	default:
		return false, nil
	}
}

// Rebuild samples, builds every panel, binds them to the layout and paints.
func (l *Loop) Rebuild(ctx context.Context, now time.Time) error {
	snap := l.sampler.Sample(ctx)

	l.containers.Request()
	containers := l.containers.Latest()

	frame := l.Frame(snap, containers, now)
	if err := l.renderer.Render(frame); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Lost the terminal while drawing the dashboard",
			"Check the terminal is still attached, or try --backend ansi")
	}
	return nil
}

// Frame builds the panels for a snapshot and binds them to the layout.
func (l *Loop) Frame(snap metrics.Snapshot, containers docker.Result, now time.Time) layout.Frame {
	mode := l.display.SortMode()
	return l.tree.Bind(layout.Panels{
		Header:    panel.Header(snap, now),
		CPURAM:    panel.CPUMemory(snap),
		Disk:      panel.Disks(snap),
		Network:   panel.Network(snap),
		Processes: panel.Processes(snap, mode, l.opts.TopProcesses),
		Docker:    panel.Containers(containers),
		Footer:    panel.Footer(now, mode),
	})
}

// untilNext is the wait until the earliest deadline, never negative.
func (l *Loop) untilNext(now time.Time) time.Duration {
	next := l.nextPoll
	if l.nextRender.Before(next) {
		next = l.nextRender
	}
	if d := next.Sub(now); d > 0 {
		return d
	}
	return 0
}

// finish moves to Terminating and releases the renderer.
func (l *Loop) finish(err error) error {
	l.state = StateTerminating
	if closeErr := l.renderer.Close(); closeErr != nil {
		l.log.Debug("close renderer: %v", closeErr)
	}
	return err
}
