package config

import "time"

// Renderer backends.
const (
	// BackendTea paints through a Bubble Tea program (default).
	BackendTea = "tea"
	// BackendANSI paints with raw escape sequences and polls stdin directly.
	BackendANSI = "ansi"
)

// Config represents the complete dashboard configuration file.
type Config struct {
	Refresh  RefreshConfig  `yaml:"refresh" mapstructure:"refresh"`
	Metrics  MetricsConfig  `yaml:"metrics" mapstructure:"metrics"`
	Docker   DockerConfig   `yaml:"docker" mapstructure:"docker"`
	Renderer RendererConfig `yaml:"renderer" mapstructure:"renderer"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// RefreshConfig controls the two loop cadences.
type RefreshConfig struct {
	// Interval is the render tick: a full re-sample and repaint.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// Poll is the input tick: how often one pending key is checked.
	Poll time.Duration `yaml:"poll" mapstructure:"poll"`
}

// MetricsConfig controls host metric sampling.
type MetricsConfig struct {
	// SampleTimeout bounds one full snapshot so a slow provider can't
	// stall keyboard handling.
	SampleTimeout time.Duration `yaml:"sample_timeout" mapstructure:"sample_timeout"`

	// TopProcesses is how many rows the process table shows.
	TopProcesses int `yaml:"top_processes" mapstructure:"top_processes"`
}

// DockerConfig controls the container runtime probe.
type DockerConfig struct {
	Enabled      bool          `yaml:"enabled" mapstructure:"enabled"`
	Binary       string        `yaml:"binary" mapstructure:"binary"`
	ListTimeout  time.Duration `yaml:"list_timeout" mapstructure:"list_timeout"`
	StatsTimeout time.Duration `yaml:"stats_timeout" mapstructure:"stats_timeout"`
}

// RendererConfig selects how the dashboard reaches the terminal.
type RendererConfig struct {
	// Backend is "tea" or "ansi".
	Backend string `yaml:"backend" mapstructure:"backend"`
}

// LogConfig controls where log output goes while the dashboard owns the screen.
type LogConfig struct {
	// File receives log output. Empty discards it.
	File string `yaml:"file" mapstructure:"file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Refresh: RefreshConfig{
			Interval: 2 * time.Second,
			Poll:     100 * time.Millisecond,
		},
		Metrics: MetricsConfig{
			SampleTimeout: 250 * time.Millisecond,
			TopProcesses:  5,
		},
		Docker: DockerConfig{
			Enabled:      true,
			Binary:       "docker",
			ListTimeout:  5 * time.Second,
			StatsTimeout: 10 * time.Second,
		},
		Renderer: RendererConfig{
			Backend: BackendTea,
		},
	}
}
