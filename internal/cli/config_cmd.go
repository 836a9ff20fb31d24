package cli

import (
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/config"
	"github.com/Rupesh-Jadhav-official/my-dashboard/internal/errors"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the dashboard would run with, after defaults,
the config file and DASHBOARD_* environment overrides are merged.

Examples:
  dashboard config
  dashboard config --config ./dash.yaml
  DASHBOARD_REFRESH_INTERVAL=5s dashboard config`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(cfgFile)
		if err != nil {
			return err
		}
		return printConfig(cmd, cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func printConfig(cmd *cobra.Command, cfg *config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't encode the configuration",
			"This is a bug, please report it")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
