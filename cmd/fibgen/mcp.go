package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/fibgen"
	"github.com/aretw0/fibgen/internal/cli"
	"github.com/aretw0/fibgen/internal/config"
	"github.com/aretw0/fibgen/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts fibgen as an MCP Server exposing the generate_fibonacci and list_history tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		if cmd.Flags().Changed("transport") {
			cfg.MCP.Transport, _ = cmd.Flags().GetString("transport")
		}
		if cmd.Flags().Changed("port") {
			cfg.MCP.Port, _ = cmd.Flags().GetInt("port")
		}

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		logger, err := newLogger(cmd, cfg)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		store, closeStore, err := cli.OpenStore(context.Background(), cfg.Store, logger)
		if err != nil {
			log.Fatalf("Error opening store: %v", err)
		}
		defer closeStore()

		svc := fibgen.New(
			fibgen.WithStore(store),
			fibgen.WithMaxTerms(cfg.Server.MaxTerms),
			fibgen.WithLogger(logger),
		)
		srv := mcp.NewServer(svc, mcp.WithLogger(logger))

		switch cfg.MCP.Transport {
		case config.TransportStdio:
			logger.Info("Starting fibgen MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				logger.Error("MCP Server execution failed", "error", err)
				closeStore()
				os.Exit(1)
			}
		case config.TransportSSE:
			logger.Info("Starting fibgen MCP Server (SSE)", "port", cfg.MCP.Port)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, cfg.MCP.Port); err != nil && err != http.ErrServerClosed {
				logger.Error("MCP Server execution failed", "error", err)
				closeStore()
				os.Exit(1)
			}
			logger.Info("MCP Server stopped gracefully")
		default:
			fmt.Fprintf(os.Stderr, "Unknown transport: %s. Supported: stdio, sse\n", cfg.MCP.Transport)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", config.TransportStdio, "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8081, "Port to listen on (only for SSE)")
}
