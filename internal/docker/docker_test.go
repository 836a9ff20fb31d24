package docker

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"

	dasherrors "github.com/Rupesh-Jadhav-official/my-dashboard/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner answers by subcommand (ps or stats).
type fakeRunner struct {
	mu      sync.Mutex
	outputs map[string]string
	errs    map[string]error
	calls   []string
	hang    bool
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	f.mu.Unlock()

	if f.hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	sub := args[0]
	if err := f.errs[sub]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[sub]), nil
}

func TestCLIProbeCommands(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"ps": "", "stats": ""}}
	p := NewCLIProbe("podman", 0, 0).WithRunner(r)

	_, err := p.List(context.Background())
	require.NoError(t, err)
	_, err = p.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, r.calls, 2)
	assert.Equal(t, "podman ps --format {{.Names}}\t{{.Image}}\t{{.Status}}", r.calls[0])
	assert.Equal(t, "podman stats --no-stream --format {{.Name}}\t{{.CPUPerc}}\t{{.MemUsage}}", r.calls[1])
}

func TestNewCLIProbeDefaults(t *testing.T) {
	p := NewCLIProbe("", 0, 0)
	assert.Equal(t, "docker", p.binary)
	assert.Equal(t, DefaultListTimeout, p.listTimeout)
	assert.Equal(t, DefaultStatsTimeout, p.statsTimeout)
}

func TestQueryJoinsStats(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"ps": "web\tnginx:latest\tUp 3 hours\n" +
			"db\tpostgres:16\tExited (0) 2 minutes ago\n" +
			"broken line\n",
		"stats": "web\t12.34%\t50MiB / 1GiB\n",
	}}
	p := NewCLIProbe("docker", time.Second, time.Second).WithRunner(r)

	res, err := Query(context.Background(), p)
	require.NoError(t, err)
	assert.Nil(t, res.Unavailable)
	assert.Empty(t, res.Placeholder())
	require.Len(t, res.Containers, 2)

	web := res.Containers[0]
	assert.Equal(t, "web", web.Name)
	assert.Equal(t, "nginx:latest", web.Image)
	assert.Equal(t, "Up", web.Status)
	assert.True(t, web.Running)
	assert.Equal(t, "12.34%", web.CPU)
	assert.InDelta(t, 12.34, web.CPUPercent, 0.0001)
	assert.Equal(t, "50MiB / 1GiB", web.Memory)

	db := res.Containers[1]
	assert.Equal(t, "Exited", db.Status)
	assert.False(t, db.Running)
	assert.Equal(t, NotAvailable, db.CPU)
	assert.Equal(t, NotAvailable, db.Memory)
	assert.Zero(t, db.CPUPercent)
}

func TestQueryStatsFailureDegrades(t *testing.T) {
	exitErr := &exec.ExitError{}
	r := &fakeRunner{
		outputs: map[string]string{"ps": "web\tnginx\tUp 1 second\n"},
		errs:    map[string]error{"stats": exitErr},
	}
	p := NewCLIProbe("docker", time.Second, time.Second).WithRunner(r)

	res, err := Query(context.Background(), p)
	require.Error(t, err)
	assert.True(t, dasherrors.IsCode(err, dasherrors.ErrProbe))
	assert.ErrorIs(t, err, exitErr)
	assert.Nil(t, res.Unavailable, "a stats failure keeps the container list")
	require.Len(t, res.Containers, 1)
	assert.Equal(t, NotAvailable, res.Containers[0].CPU)
	assert.Equal(t, NotAvailable, res.Containers[0].Memory)
}

func TestQueryNoContainers(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"ps": "\n"}}
	p := NewCLIProbe("docker", time.Second, time.Second).WithRunner(r)

	res, err := Query(context.Background(), p)
	require.NoError(t, err)
	assert.Empty(t, res.Containers)
	assert.Equal(t, "No running containers", res.Placeholder())
	// Stats is skipped when nothing is running.
	assert.Len(t, r.calls, 1)
}

func TestQueryFailureReasons(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not installed", exec.ErrNotFound, "Docker is not installed"},
		{"not installed wrapped", &exec.Error{Name: "docker", Err: exec.ErrNotFound}, "Docker is not installed"},
		{"daemon down", &exec.ExitError{}, "Docker not available or not running"},
		{"other", errors.New("permission denied while trying to connect"), "Error: permission denied while trying"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{errs: map[string]error{"ps": tt.err}}
			p := NewCLIProbe("docker", time.Second, time.Second).WithRunner(r)

			res, err := Query(context.Background(), p)
			require.NoError(t, err)
			require.NotNil(t, res.Unavailable)
			assert.Empty(t, res.Containers)
			assert.Equal(t, tt.want, res.Placeholder())
		})
	}
}

func TestQueryTimeout(t *testing.T) {
	r := &fakeRunner{hang: true}
	p := NewCLIProbe("docker", 20*time.Millisecond, time.Second).WithRunner(r)

	res, err := Query(context.Background(), p)
	require.NoError(t, err)
	require.NotNil(t, res.Unavailable)
	assert.Equal(t, ReasonTimeout, res.Unavailable.Reason)
	assert.Equal(t, "Docker command timed out", res.Placeholder())
}

func TestDisabledProbe(t *testing.T) {
	res, err := Query(context.Background(), DisabledProbe{})
	require.NoError(t, err)
	assert.Equal(t, "Container monitoring disabled", res.Placeholder())
}

func TestErrorMessageTruncatesRunes(t *testing.T) {
	pe := &ProbeError{Reason: ReasonError, Err: errors.New(strings.Repeat("é", 40))}
	assert.Equal(t, "Error: "+strings.Repeat("é", 30), pe.Message())
	assert.Equal(t, "Error: unknown", (&ProbeError{Reason: ReasonError}).Message())
}

func TestParseCPUPercent(t *testing.T) {
	assert.InDelta(t, 0.5, parseCPUPercent("0.50%"), 0.0001)
	assert.InDelta(t, 150.0, parseCPUPercent(" 150% "), 0.0001)
	assert.Zero(t, parseCPUPercent(NotAvailable))
	assert.Zero(t, parseCPUPercent("--%"))
	assert.Zero(t, parseCPUPercent("12.5"))
}

func TestStatusWord(t *testing.T) {
	assert.Equal(t, "Up", statusWord("Up 2 days (healthy)"))
	assert.Equal(t, "Unknown", statusWord(""))
	assert.Equal(t, "Unknown", statusWord("   "))
}

func TestPendingResult(t *testing.T) {
	assert.Equal(t, "Querying containers…", PendingResult().Placeholder())
}
