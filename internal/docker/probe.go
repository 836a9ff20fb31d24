// Package docker reports running containers and their resource usage by
// shelling out to the docker CLI.
//
// Every failure of the container runtime (missing binary, daemon down,
// hung command) is reported as a Result with an Unavailable reason. The
// dashboard never sees these as errors.
package docker

import (
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"time"
)

// Default command timeouts.
const (
	DefaultListTimeout  = 5 * time.Second
	DefaultStatsTimeout = 10 * time.Second
)

const (
	listFormat  = "{{.Names}}\t{{.Image}}\t{{.Status}}"
	statsFormat = "{{.Name}}\t{{.CPUPerc}}\t{{.MemUsage}}"
)

// Container is one line of `docker ps`.
type Container struct {
	Name   string
	Image  string
	Status string
}

// Stats is the usage reported by `docker stats` for one container.
type Stats struct {
	CPU    string
	Memory string
}

// Probe queries a container runtime.
type Probe interface {
	List(ctx context.Context) ([]Container, error)
	Stats(ctx context.Context) (map[string]Stats, error)
}

// Runner executes a command and returns its stdout.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes name with args, killing it when ctx is done.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// CLIProbe talks to the docker CLI (or a compatible one like podman).
type CLIProbe struct {
	binary       string
	listTimeout  time.Duration
	statsTimeout time.Duration
	runner       Runner
}

// NewCLIProbe creates a probe for the given binary. Zero timeouts fall
// back to the defaults.
func NewCLIProbe(binary string, listTimeout, statsTimeout time.Duration) *CLIProbe {
	if binary == "" {
		binary = "docker"
	}
	if listTimeout <= 0 {
		listTimeout = DefaultListTimeout
	}
	if statsTimeout <= 0 {
		statsTimeout = DefaultStatsTimeout
	}
	return &CLIProbe{
		binary:       binary,
		listTimeout:  listTimeout,
		statsTimeout: statsTimeout,
		runner:       ExecRunner{},
	}
}

// WithRunner swaps the command runner. Used by tests.
func (p *CLIProbe) WithRunner(r Runner) *CLIProbe {
	p.runner = r
	return p
}

// List returns running containers.
func (p *CLIProbe) List(ctx context.Context) ([]Container, error) {
	out, err := p.run(ctx, p.listTimeout, "ps", "--format", listFormat)
	if err != nil {
		return nil, err
	}
	return parseList(string(out)), nil
}

// Stats returns a one-shot usage reading per container name.
func (p *CLIProbe) Stats(ctx context.Context) (map[string]Stats, error) {
	out, err := p.run(ctx, p.statsTimeout, "stats", "--no-stream", "--format", statsFormat)
	if err != nil {
		return nil, err
	}
	return parseStats(string(out)), nil
}

func (p *CLIProbe) run(ctx context.Context, timeout time.Duration, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := p.runner.Run(ctx, p.binary, args...)
	if err != nil {
		return nil, classify(ctx, err)
	}
	return out, nil
}

// classify turns a command failure into a ProbeError with a reason.
// A deadline wins over the exit status since a killed process also exits
// non-zero.
func classify(ctx context.Context, err error) *ProbeError {
	var pe *ProbeError
	if stderrors.As(err, &pe) {
		return pe
	}
	switch {
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded), stderrors.Is(err, context.DeadlineExceeded):
		return &ProbeError{Reason: ReasonTimeout, Err: err}
	case stderrors.Is(err, exec.ErrNotFound), stderrors.Is(err, os.ErrNotExist):
		return &ProbeError{Reason: ReasonNotInstalled, Err: err}
	}
	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return &ProbeError{Reason: ReasonNotRunning, Err: err}
	}
	return &ProbeError{Reason: ReasonError, Err: err}
}

// DisabledProbe stands in when container monitoring is turned off.
type DisabledProbe struct{}

// List always reports monitoring as disabled.
func (DisabledProbe) List(context.Context) ([]Container, error) {
	return nil, &ProbeError{Reason: ReasonDisabled}
}

// Stats always reports monitoring as disabled.
func (DisabledProbe) Stats(context.Context) (map[string]Stats, error) {
	return nil, &ProbeError{Reason: ReasonDisabled}
}
