// Package cli implements the dashboard command-line interface.
//
// The root command runs the live dashboard. It loads config, applies flag
// overrides, acquires the terminal and hands control to the dashboard loop
// until the user quits or a signal arrives:
//
//	dashboard                  - Run the live dashboard
//	dashboard version          - Print build information
//	dashboard config           - Print the effective configuration
//
// Global flags (--config, --verbose) are defined on the root command and
// available to all subcommands.
package cli
