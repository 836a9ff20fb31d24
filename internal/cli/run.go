package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/config"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/dashboard"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/docker"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/errors"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/logger"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/metrics"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/render"
)

// runDashboard wires the metric sampler, container watcher and renderer
// into the dashboard loop and runs it until quit or SIGINT/SIGTERM.
func runDashboard(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// The screen belongs to the renderer, so logs go to a file or nowhere.
	restore, err := logger.SetOutputFile(config.ExpandTilde(cfg.Log.File))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't open log file "+cfg.Log.File,
			"Check the directory exists, or clear log.file")
	}
	defer restore()

	log := logger.Default()

	sampler := metrics.NewSampler(metrics.NewHostSource(), cfg.Metrics.SampleTimeout, log)

	watcher := docker.NewWatcher(newProbe(cfg.Docker), log)
	defer watcher.Close()

	backend, err := render.New(cfg.Renderer.Backend, log)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't take over the terminal",
			"Run the dashboard from an interactive terminal, or try --backend "+otherBackend(cfg.Renderer.Backend))
	}
	defer func() { _ = backend.Close() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := dashboard.New(sampler, watcher, backend.Keys(), backend, log, dashboard.Options{
		RenderInterval: cfg.Refresh.Interval,
		PollInterval:   cfg.Refresh.Poll,
		TopProcesses:   cfg.Metrics.TopProcesses,
	})
	log.Debug("dashboard starting: interval=%v poll=%v backend=%s docker=%t",
		cfg.Refresh.Interval, cfg.Refresh.Poll, cfg.Renderer.Backend, cfg.Docker.Enabled)

	return loop.Run(ctx)
}

// newProbe picks the container probe for the docker config.
func newProbe(d config.DockerConfig) docker.Probe {
	if !d.Enabled {
		return docker.DisabledProbe{}
	}
	return docker.NewCLIProbe(d.Binary, d.ListTimeout, d.StatsTimeout)
}

func otherBackend(current string) string {
	if current == config.BackendANSI {
		return config.BackendTea
	}
	return config.BackendANSI
}
