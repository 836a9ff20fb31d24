package cli

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/config"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/errors"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/logger"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile      string
	verbose      bool
	intervalFlag string
	backendFlag  string
	noDocker     bool
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Live terminal dashboard for host and container metrics",
	Long: `Show CPU, memory, disks, network, top processes and Docker containers
in one full-screen view that refreshes on a fixed interval.

Keys:
  m   toggle process sort between CPU and memory
  q   quit

Examples:
  dashboard
  dashboard --interval 5s
  dashboard --no-docker --backend ansi`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger.SetDebug(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runDashboard(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .dashboard.yaml, then ~/.config/dashboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().StringVar(&intervalFlag, "interval", "", "refresh interval, e.g. 2s (minimum 500ms)")
	rootCmd.Flags().StringVar(&backendFlag, "backend", "", "renderer backend: tea or ansi")
	rootCmd.Flags().BoolVar(&noDocker, "no-docker", false, "don't query the container runtime")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError makes sure plain cobra errors get the same shape as
// structured ones.
func formatError(err error) string {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return err.Error()
	}
	return "✗ " + err.Error() + "\n"
}

// loadConfig resolves the config file, applies flag overrides and validates
// the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cfg, intervalFlag, backendFlag, noDocker); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides config values with any flags the user set.
func applyFlags(cfg *config.Config, interval, backend string, disableDocker bool) error {
	if interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Invalid --interval '%s'", interval),
				"Use a Go duration like 2s or 1500ms")
		}
		cfg.Refresh.Interval = d
	}
	if backend != "" {
		cfg.Renderer.Backend = backend
	}
	if disableDocker {
		cfg.Docker.Enabled = false
	}
	return nil
}
