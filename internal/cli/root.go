package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thruflo/statewindow/internal/config"
	"github.com/thruflo/statewindow/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	logLevel   string

	// loadedConfig is populated before any subcommand runs.
	loadedConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "statewindow",
	Short: "Judge state start/end from boolean observation windows",
	Long: `statewindow compares the share of true observations in a long and a
short sliding window to decide whether a condition is in progress, just
started, or just ended.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("statewindow version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// loadSettings reads the config file and applies the log level. The
// --log-level flag wins over the file.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logging.SetLevel(level)

	loadedConfig = cfg
	return nil
}

// currentConfig returns the loaded config, or defaults when no command
// hook has run.
func currentConfig() config.Config {
	if loadedConfig == nil {
		return config.DefaultConfig()
	}
	return *loadedConfig
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
