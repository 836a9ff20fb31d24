package config

import (
	"gopkg.in/yaml.v3"
)

// Marshal renders the effective configuration as YAML. Durations are written
// the way they are typed in the file (2s, 100ms) rather than as nanoseconds.
func Marshal(cfg *Config) ([]byte, error) {
	doc := map[string]interface{}{
		"refresh": map[string]interface{}{
			"interval": cfg.Refresh.Interval.String(),
			"poll":     cfg.Refresh.Poll.String(),
		},
		"metrics": map[string]interface{}{
			"sample_timeout": cfg.Metrics.SampleTimeout.String(),
			"top_processes":  cfg.Metrics.TopProcesses,
		},
		"docker": map[string]interface{}{
			"enabled":       cfg.Docker.Enabled,
			"binary":        cfg.Docker.Binary,
			"list_timeout":  cfg.Docker.ListTimeout.String(),
			"stats_timeout": cfg.Docker.StatsTimeout.String(),
		},
		"renderer": map[string]interface{}{
			"backend": cfg.Renderer.Backend,
		},
		"log": map[string]interface{}{
			"file": cfg.Log.File,
		},
	}
	return yaml.Marshal(doc)
}
