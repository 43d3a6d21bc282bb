// Mainviews is an editor for the custom main views of a colour-screen radio.
//
// It composes up to five screens from layouts, zones and widgets, stores
// them in YAML records, and lets the user edit them with the radio's own
// menu in a terminal simulator or over a WebSocket preview server.
//
// Usage:
//
//	mainviews [command] [flags]
//
// Running without arguments launches the terminal simulator.
// See 'mainviews --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/mainviews/internal/config"
	"github.com/muurk/mainviews/internal/logging"
	"github.com/muurk/mainviews/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Sync()
}

// Global flags
var (
	configPath  string
	modelPath   string
	generalPath string
	logLevel    string
	logFile     string
)

var rootCmd = &cobra.Command{
	Use:   "mainviews",
	Short: "Custom main view editor",
	Long: `An editor for the custom main views of a colour-screen radio.

Screens are built from a layout whose zones each host a widget, and are
edited with the radio's own setup menu. Records are stored as YAML.

If no command is specified, the terminal simulator will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSim(cmd, args)
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "Model record file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&generalPath, "general", "", "General settings file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mainviews %s (commit: %s) %s\n", version.Version, version.Commit, version.Platform())
	},
}

// loadConfig reads the configuration and applies the command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if modelPath != "" {
		cfg.ModelPath = modelPath
	}
	if generalPath != "" {
		cfg.GeneralPath = generalPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	return cfg, nil
}

func setupLogging() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}
