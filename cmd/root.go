// Package cmd provides the command-line interface for slink with
// configuration from multiple sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration with clear precedence:
//	1. Command-line flags (--config, --log-level, etc.) - highest priority
//	2. SLINK_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (SLINK_LOG_LEVEL, etc.)
//	4. Configuration files (.slink.yml) - lowest priority
//
// Environment Variables:
//
//	SLINK_CONFIG_FILE: Path to custom configuration file
//	SLINK_LOG_LEVEL: Override log level
//	SLINK_OUTPUT_FORMAT: Override result rendering format
//	And the rest following the SLINK_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slink",
	Short: "A singly-linked-list engine with a scriptable demo driver",
	Long: `slink is a singly-linked-list engine with a CLI that exercises
every operation and prints the results for inspection.

Key Features:
  • Insert at head, tail, position, after a node, or in sorted order
  • Delete by node (constant time for non-tail nodes), by value, by name
  • Linear search, first-common-value search across two lists
  • YAML demo scripts with per-step outcome reporting
  • File watching with automatic script re-runs

Quick Start:
  slink demo                      Run the built-in demo scenarios
  slink run script.yaml           Execute a demo script
  slink watch script.yaml         Re-run the script on every change
  slink version                   Show version information`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .slink.yml, can also use SLINK_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().StringP("format", "f", "table", "result rendering format (table, plain)")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))

	AddFlagValidation(rootCmd, "log-level", oneOf("log level", "debug", "info", "warn", "error"))
	AddFlagValidation(rootCmd, "log-format", oneOf("log format", "text", "json"))
	AddFlagValidation(rootCmd, "format", oneOf("format", "table", "plain"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. SLINK_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .slink.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("SLINK_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".slink")
	}

	viper.SetEnvPrefix("SLINK")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or malformed config file is not fatal; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
