// Package cmd implements the command-line interface for ocsview.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Verbose  bool
	ShowLogs bool
	JSON     bool
	Resolve  bool
	FilePath string // default file from config/env; overridden by the argument
}

func init() {
	viper.SetDefault("resolve", true)
	viper.SetDefault("json", false)

	viper.SetEnvPrefix("OCSVIEW")
	viper.AutomaticEnv()
}

// NewConfigFromFlags creates a Config from parsed command flags, with
// viper-provided defaults (OCSVIEW_* environment variables) underneath.
func NewConfigFromFlags(cmd *cobra.Command) *Config {
	resolve := viper.GetBool("resolve")
	if getBoolFlag(cmd, "no-resolve") {
		resolve = false
	}

	jsonOut := viper.GetBool("json")
	if getBoolFlag(cmd, "json") {
		jsonOut = true
	}

	return &Config{
		Verbose:  getBoolFlag(cmd, "verbose"),
		ShowLogs: getBoolFlag(cmd, "logs"),
		JSON:     jsonOut,
		Resolve:  resolve,
		FilePath: viper.GetString("path"),
	}
}

// getBoolFlag retrieves a boolean flag, checking both local and persistent flags
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		// Try persistent flags if not found in local flags
		val, _ = cmd.PersistentFlags().GetBool(name)
	}

	return val
}
