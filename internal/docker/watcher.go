package docker

import (
	"context"
	"sync"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/logger"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/util"
)

// Watcher runs container queries in the background so a slow or hung
// runtime never stalls the render loop. At most one query is in flight.
type Watcher struct {
	probe Probe
	log   logger.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	latest   Result
	inflight bool
	closed   bool
}

// NewWatcher creates a watcher whose Latest result is pending until the
// first query completes.
func NewWatcher(probe Probe, log logger.Logger) *Watcher {
	if log == nil {
		log = logger.Noop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		probe:  probe,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
		latest: PendingResult(),
	}
}

// Request starts a query unless one is already running.
func (w *Watcher) Request() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inflight || w.closed {
		return
	}
	w.inflight = true
	w.wg.Add(1)
	go w.query()
}

func (w *Watcher) query() {
	defer w.wg.Done()

	res, err := Query(w.ctx, w.probe)
	if err != nil {
		w.log.Debug("container stats: %v", err)
	}
	switch {
	case res.Unavailable == nil:
		n := len(res.Containers)
		w.log.Debug("%d running %s", n, util.Pluralize(n, "container", "containers"))
	case res.Unavailable.Reason != ReasonDisabled:
		w.log.Debug("containers unavailable: %v", res.Unavailable)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.inflight = false
	if !w.closed {
		w.latest = res
	}
}

// Latest returns the most recent completed result.
func (w *Watcher) Latest() Result {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.latest
}

// Close cancels any running query and waits for it to return.
func (w *Watcher) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
}
