package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wealthpath/wealth-calculator/internal/calculation"
	"github.com/wealthpath/wealth-calculator/internal/config"
	"github.com/wealthpath/wealth-calculator/internal/store"
)

var (
	flagConfigDir string
	flagDataDir   string
	flagDebug     bool
	flagQuiet     bool
)

// Resolved once per invocation by loadSettings.
var (
	configDir string
	dataDir   string
	settings  config.Settings
	logger    calculation.Logger = calculation.NopLogger{}
)

var rootCmd = &cobra.Command{
	Use:   "wealthpath",
	Short: "Savings plan projection calculator",
	Long: "Project how an initial investment plus monthly contributions grows over time,\n" +
		"and what it is worth after taxes in a taxable, traditional or roth account.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Settings directory (default $XDG_CONFIG_HOME/wealthpath)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for run history (default $XDG_DATA_HOME/wealthpath)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log projection details to stderr")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadSettings resolves directories, settings and the logger. Flags win over
// the environment, which wins over the settings file.
func loadSettings(cmd *cobra.Command, _ []string) error {
	envCfg, err := config.LoadEnv()
	if err != nil {
		return err
	}

	configDir = firstNonEmpty(flagConfigDir, envCfg.ConfigDir)
	dataDir = firstNonEmpty(flagDataDir, envCfg.DataDir)

	settings, err = config.Load(configDir)
	if err != nil {
		return err
	}
	envCfg.Apply(&settings)

	logger = calculation.NewWriterLogger(cmd.ErrOrStderr(), flagDebug || envCfg.Debug)
	return nil
}

// newEngine returns a projection engine wired to the command logger.
func newEngine() *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(logger)
	return engine
}

// openHistory opens the run history, or returns nil when history is disabled.
func openHistory() (*store.History, error) {
	if !settings.History.Enabled {
		return nil, nil
	}
	h, err := store.Open(settings.HistoryPath(dataDir))
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}
	return h, nil
}

// progressf writes a status line to stderr unless --quiet is set.
func progressf(cmd *cobra.Command, format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "  "+format+"\n", args...)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
