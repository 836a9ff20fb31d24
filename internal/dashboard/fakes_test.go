package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/docker"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/layout"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/metrics"
)

type fakeSampler struct {
	mu      sync.Mutex
	snap    metrics.Snapshot
	primed  int
	samples int
}

func (f *fakeSampler) Prime(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.primed++
}

func (f *fakeSampler) Sample(context.Context) metrics.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.samples++
	return f.snap
}

func (f *fakeSampler) count() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.primed, f.samples
}

type fakeContainers struct {
	mu       sync.Mutex
	result   docker.Result
	requests int
}

func (f *fakeContainers) Request() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
}

func (f *fakeContainers) Latest() docker.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// queueKeys hands out queued keys one per Poll.
type queueKeys struct {
	mu   sync.Mutex
	keys []string
}

func (q *queueKeys) push(keys ...string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.keys = append(q.keys, keys...)
}

func (q *queueKeys) Poll() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.keys) == 0 {
		return "", false
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k, true
}

type fakeRenderer struct {
	mu      sync.Mutex
	frames  []layout.Frame
	failOn  int
	closed  int
	renders int
}

var errTerminalGone = errors.New("terminal gone")

func (f *fakeRenderer) Render(fr layout.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renders++
	if f.failOn > 0 && f.renders >= f.failOn {
		return errTerminalGone
	}
	f.frames = append(f.frames, fr)
	return nil
}

func (f *fakeRenderer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed++
	return nil
}

func (f *fakeRenderer) last() layout.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames[len(f.frames)-1]
}

func (f *fakeRenderer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.frames)
}

func (f *fakeRenderer) closes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
