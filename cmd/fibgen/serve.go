package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/fibgen"
	"github.com/aretw0/fibgen/internal/cli"
	httpAdapter "github.com/aretw0/fibgen/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Long:  `Serves Fibonacci sequences as JSON over HTTP, with a request journal, Prometheus metrics and an OpenAPI document.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("max-terms") {
			cfg.Server.MaxTerms, _ = cmd.Flags().GetInt("max-terms")
		}

		logger, err := newLogger(cmd, cfg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		store, closeStore, err := cli.OpenStore(context.Background(), cfg.Store, logger)
		if err != nil {
			fmt.Printf("Error opening store: %v\n", err)
			os.Exit(1)
		}
		defer closeStore()

		svc := fibgen.New(
			fibgen.WithStore(store),
			fibgen.WithMaxTerms(cfg.Server.MaxTerms),
			fibgen.WithLogger(logger),
		)

		handler, err := httpAdapter.NewHandler(svc, httpAdapter.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error initializing server: %v\n", err)
			os.Exit(1)
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("Starting fibgen server", "addr", srv.Addr, "store", cfg.Store.Driver, "max_terms", cfg.Server.MaxTerms)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			logger.Error("Server error", "error", err)
			closeStore()
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("Start shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("Error killing server", "error", err)
				}
			}
			logger.Info("fibgen server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (overrides server.port)")
	serveCmd.Flags().Int("max-terms", 10000, "Largest term count per request, 0 for no limit (overrides server.max_terms)")
}
