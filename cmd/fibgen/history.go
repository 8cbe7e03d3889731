package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/fibgen/internal/cli"
	"github.com/aretw0/fibgen/internal/config"
	"github.com/aretw0/fibgen/internal/logging"
	"github.com/aretw0/fibgen/pkg/ports"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the request journal",
	Long:  `Lists or deletes the requests recorded by 'fibgen serve' and 'fibgen mcp'. Only the file and redis drivers persist across processes.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded requests, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store ports.RecordStore) error {
			return cli.RunHistoryList(ctx, os.Stdout, store)
		})
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a recorded request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store ports.RecordStore) error {
			return cli.RunHistoryDelete(ctx, os.Stdout, store, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyDeleteCmd)
}

func withStore(cmd *cobra.Command, fn func(context.Context, ports.RecordStore) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	switch cfg.Store.Driver {
	case config.DriverMemory, config.DriverNone:
		return fmt.Errorf("store driver %q keeps no history between processes; use file or redis", cfg.Store.Driver)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.NewNop()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logger, _ = newLogger(cmd, cfg)
	}

	store, closeStore, err := cli.OpenStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(ctx, store)
}
