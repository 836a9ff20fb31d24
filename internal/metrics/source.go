// Package metrics samples host facts (CPU, memory, disks, network, processes,
// temperature, battery) into immutable Snapshots.
//
// A Source answers one query per metric. Any query may fail on its own: a
// missing sensor, a platform without the capability, a permission error.
// Sample absorbs all of those and marks the metric unavailable so the
// dashboard can show a placeholder instead of aborting the refresh.
package metrics

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/logger"
)

// ErrUnavailable reports that a metric can't be read on this machine.
// It is expected (no battery, no sensors) and never logged.
var ErrUnavailable = errors.New("metric unavailable")

// Source is a provider of point-in-time system facts. Each call is a
// snapshot, not a stream.
type Source interface {
	// Prime establishes baselines for stateful counters (CPU percent).
	// It must run once before the first real Sample.
	Prime(ctx context.Context) error

	CPUPercent(ctx context.Context) (float64, error)
	Memory(ctx context.Context) (Memory, error)
	Disks(ctx context.Context) ([]Disk, error)
	Network(ctx context.Context) (Network, error)
	Processes(ctx context.Context) ([]Process, error)
	Temperature(ctx context.Context) (float64, error)
	Battery(ctx context.Context) (Battery, error)
	Host(ctx context.Context) (HostInfo, error)
}

// Sampler assembles Snapshots from a Source.
type Sampler struct {
	source  Source
	timeout time.Duration
	log     logger.Logger
	now     func() time.Time
}

// NewSampler creates a sampler. timeout bounds a whole Sample call; zero
// means the caller's context is the only bound.
func NewSampler(source Source, timeout time.Duration, log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{
		source:  source,
		timeout: timeout,
		log:     log,
		now:     time.Now,
	}
}

// Prime forwards to the source. Failures only mean the first CPU reading
// may be zero, so they are logged and swallowed.
func (s *Sampler) Prime(ctx context.Context) {
	if err := s.source.Prime(ctx); err != nil {
		s.log.Debug("prime: %v", err)
	}
}

// Sample queries every metric concurrently and assembles the results.
// It returns once all queries finish or the timeout expires, whichever is
// first; queries that miss the deadline are left unavailable.
func (s *Sampler) Sample(ctx context.Context) Snapshot {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		closed bool
		snap   = Snapshot{Taken: s.now()}
	)

	// set applies fn to the snapshot unless Sample already returned.
	set := func(fn func(*Snapshot)) {
		mu.Lock()
		defer mu.Unlock()
		if !closed {
			fn(&snap)
		}
	}

	run := func(name string, query func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := query(); err != nil {
				s.report(name, err)
			}
		}()
	}

	run("cpu", func() error {
		pct, err := s.source.CPUPercent(ctx)
		if err != nil {
			return err
		}
		set(func(sn *Snapshot) {
			sn.CPUPercent = pct
			sn.CPUAvailable = true
		})
		return nil
	})

	run("memory", func() error {
		m, err := s.source.Memory(ctx)
		if err != nil {
			return err
		}
		m.Available = true
		set(func(sn *Snapshot) { sn.Memory = m })
		return nil
	})

	run("disks", func() error {
		disks, err := s.source.Disks(ctx)
		if err != nil {
			return err
		}
		set(func(sn *Snapshot) { sn.Disks = disks })
		return nil
	})

	run("network", func() error {
		n, err := s.source.Network(ctx)
		if err != nil {
			return err
		}
		n.Available = true
		set(func(sn *Snapshot) { sn.Network = n })
		return nil
	})

	run("processes", func() error {
		procs, err := s.source.Processes(ctx)
		if err != nil {
			return err
		}
		set(func(sn *Snapshot) { sn.Processes = procs })
		return nil
	})

	run("temperature", func() error {
		temp, err := s.source.Temperature(ctx)
		if err != nil {
			return err
		}
		set(func(sn *Snapshot) { sn.Temperature = &temp })
		return nil
	})

	run("battery", func() error {
		b, err := s.source.Battery(ctx)
		if err != nil {
			return err
		}
		set(func(sn *Snapshot) { sn.Battery = &b })
		return nil
	})

	run("host", func() error {
		h, err := s.source.Host(ctx)
		if err != nil {
			return err
		}
		h.Available = true
		set(func(sn *Snapshot) { sn.Host = h })
		return nil
	})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Debug("sample deadline hit, rendering partial snapshot")
	}

	mu.Lock()
	defer mu.Unlock()
	closed = true
	return snap
}

func (s *Sampler) report(name string, err error) {
	if errors.Is(err, ErrUnavailable) {
		return
	}
	s.log.Debug("%s: %v", name, err)
}
