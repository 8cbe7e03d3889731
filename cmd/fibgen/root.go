package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/fibgen/internal/config"
	"github.com/aretw0/fibgen/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fibgen",
	Short: "fibgen generates the first N terms of the Fibonacci sequence",
	Long: `fibgen computes Fibonacci sequences with arbitrary-precision integers.

Run without a subcommand to be prompted for the number of terms.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the fibgen configuration file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logs on stderr")
}

// loadConfig reads the configuration selected by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the server logger from the config level; --debug wins.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return logging.New(slog.LevelDebug), nil
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}
