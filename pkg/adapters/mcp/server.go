package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/fibgen"
	"github.com/aretw0/fibgen/internal/logging"
	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/aretw0/fibgen/pkg/sequence"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const historyURI = "fibgen://history"

// Service defines the operations exposed as MCP tools.
type Service interface {
	Sequence(ctx context.Context, n int, source domain.Source) (*domain.Result, error)
	History(ctx context.Context) ([]*domain.Record, error)
}

// Server wraps the Service and exposes it as an MCP Server.
type Server struct {
	service   Service
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(svc Service, opts ...Option) *Server {
	s := &Server{
		service:   svc,
		logger:    logging.NewNop(),
		mcpServer: server.NewMCPServer("fibgen-mcp", strings.TrimSpace(fibgen.Version)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
// It returns when ctx is cancelled or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_fibonacci",
		mcp.WithDescription("Generate the first n terms of the Fibonacci sequence, starting at 0, 1."),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("Number of terms (non-negative integer)")),
	)
	s.mcpServer.AddTool(generateTool, s.handleGenerate)

	historyTool := mcp.NewTool("list_history",
		mcp.WithDescription("List the journal of served requests, newest first."),
	)
	s.mcpServer.AddTool(historyTool, s.handleHistory)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(historyURI, "Request Journal",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := s.historyJSON(ctx)
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      historyURI,
				MIMEType: "application/json",
				Text:     data,
			},
		}, nil
	})
}

func (s *Server) handleGenerate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, err := termCount(request.GetArguments()["n"])
	if err != nil {
		s.logger.Debug("generate_fibonacci: Input rejected", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.Sequence(ctx, n, domain.SourceMCP)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generate failed: %v", err)), nil
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, err := s.historyJSON(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(data), nil
}

func (s *Server) historyJSON(ctx context.Context) (string, error) {
	records, err := s.service.History(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list history: %w", err)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to encode history: %w", err)
	}
	return string(data), nil
}

// termCount converts a JSON-RPC argument to a term count.
// Numbers must be integral; strings go through the same parser as the CLI.
func termCount(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, domain.ErrEmptyInput
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: %v", domain.ErrNonIntegerInput, n)
		}
		if n < 0 {
			return 0, domain.ErrNegativeInput
		}
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %.0f is out of range", domain.ErrTooManyTerms, n)
		}
		return int(n), nil
	case json.Number:
		return sequence.ParseTermCount(n.String())
	case string:
		return sequence.ParseTermCount(n)
	}
	return 0, fmt.Errorf("%w: unexpected type %T", domain.ErrNonIntegerInput, v)
}

