package config

import (
	"fmt"
	"time"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/errors"
)

// Bounds on the loop cadences.
const (
	// MinInterval keeps the dashboard from hammering the OS with full samples.
	MinInterval = 500 * time.Millisecond
	// MinPoll is the finest input-poll tick accepted.
	MinPoll = 10 * time.Millisecond
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	if err := validateRefresh(cfg.Refresh); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'refresh' section of your config.")
	}

	if err := validateMetrics(cfg.Metrics); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'metrics' section of your config.")
	}

	if err := validateDocker(cfg.Docker); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'docker' section of your config.")
	}

	if err := validateRenderer(cfg.Renderer); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'renderer' section of your config.")
	}

	return nil
}

// validateRefresh checks the two cadences. The input tick has to be finer
// than the render tick or a sort toggle would lag behind the repaint.
func validateRefresh(r RefreshConfig) error {
	if r.Interval < MinInterval {
		return fmt.Errorf("refresh.interval %v is too short - the minimum is %v", r.Interval, MinInterval)
	}
	if r.Poll < MinPoll {
		return fmt.Errorf("refresh.poll %v is too short - the minimum is %v", r.Poll, MinPoll)
	}
	if r.Poll >= r.Interval {
		return fmt.Errorf("refresh.poll (%v) must be shorter than refresh.interval (%v)", r.Poll, r.Interval)
	}
	return nil
}

func validateMetrics(m MetricsConfig) error {
	if m.SampleTimeout <= 0 {
		return fmt.Errorf("metrics.sample_timeout must be positive, got %v", m.SampleTimeout)
	}
	if m.TopProcesses < 1 {
		return fmt.Errorf("metrics.top_processes must be at least 1, got %d", m.TopProcesses)
	}
	return nil
}

func validateDocker(d DockerConfig) error {
	if !d.Enabled {
		return nil
	}
	if d.Binary == "" {
		return fmt.Errorf("docker.binary is empty - set it to 'docker' or a compatible CLI like 'podman'")
	}
	if d.ListTimeout <= 0 {
		return fmt.Errorf("docker.list_timeout must be positive, got %v", d.ListTimeout)
	}
	if d.StatsTimeout <= 0 {
		return fmt.Errorf("docker.stats_timeout must be positive, got %v", d.StatsTimeout)
	}
	return nil
}

func validateRenderer(r RendererConfig) error {
	switch r.Backend {
	case BackendTea, BackendANSI:
		return nil
	default:
		return fmt.Errorf("renderer.backend '%s' isn't valid - use '%s' or '%s'", r.Backend, BackendTea, BackendANSI)
	}
}
