package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/fibgen"
	"github.com/aretw0/fibgen/internal/logging"
	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/aretw0/fibgen/pkg/sequence"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Service defines the operations the HTTP API exposes.
type Service interface {
	Sequence(ctx context.Context, n int, source domain.Source) (*domain.Result, error)
	History(ctx context.Context) ([]*domain.Record, error)
	Record(ctx context.Context, id string) (*domain.Record, error)
	Forget(ctx context.Context, id string) error
}

// Server serves the JSON API.
type Server struct {
	Service Service
	Streams *StreamManager
	Metrics *Metrics
	spec    *openapi3.T
	logger  *slog.Logger
	router  chi.Router
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the service.
// It fails if the embedded OpenAPI document does not validate.
func NewHandler(svc Service, opts ...Option) (http.Handler, error) {
	return NewServer(svc, opts...)
}

// NewServer creates the Server and its routes.
func NewServer(svc Service, opts ...Option) (*Server, error) {
	spec, err := LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}

	s := &Server{
		Service: svc,
		Streams: NewStreamManager(),
		Metrics: NewMetrics(),
		spec:    spec,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.Metrics.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/sequence/{n}", s.GetSequence)
	r.Get("/history", s.ListHistory)
	r.Get("/history/{id}", s.GetRecord)
	r.Delete("/history/{id}", s.DeleteRecord)
	r.Get("/events", s.SubscribeEvents)
	r.Method(http.MethodGet, "/metrics", s.Metrics.Handler())
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})

	s.router = r
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.spec != nil && s.spec.Info != nil {
		apiVersion = s.spec.Info.Version
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "fibgen-http",
		"version":     strings.TrimSpace(fibgen.Version),
		"api_version": apiVersion,
	})
}

// GetSequence handles the GET /sequence/{n} request.
func (s *Server) GetSequence(w http.ResponseWriter, r *http.Request) {
	n, err := sequence.ParseTermCount(chi.URLParam(r, "n"))
	if err != nil {
		s.logger.Warn("GetSequence: Input rejected", "input", chi.URLParam(r, "n"), "error", err)
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.Service.Sequence(r.Context(), n, domain.SourceHTTP)
	if err != nil {
		if errors.Is(err, domain.ErrNegativeInput) || errors.Is(err, domain.ErrTooManyTerms) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("GetSequence failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("sequence error: %v", err))
		return
	}

	s.Metrics.ObserveTerms(n)
	s.Streams.Broadcast(fmt.Sprintf(`{"terms":%d}`, n))
	s.writeJSON(w, http.StatusOK, result)
}

// ListHistory handles the GET /history request.
func (s *Server) ListHistory(w http.ResponseWriter, r *http.Request) {
	records, err := s.Service.History(r.Context())
	if err != nil {
		s.logger.Error("ListHistory failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

// GetRecord handles the GET /history/{id} request.
func (s *Server) GetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	record, err := s.Service.Record(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrInvalidRecord) {
			s.writeError(w, http.StatusNotFound, domain.ErrRecordNotFound.Error())
			return
		}
		s.logger.Error("GetRecord failed", "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

// DeleteRecord handles the DELETE /history/{id} request.
func (s *Server) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.Service.Forget(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrInvalidRecord) {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("DeleteRecord failed", "id", id, "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.Streams.Subscribe()
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("SSE Client Disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
