package fibgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/fibgen/internal/logging"
	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/aretw0/fibgen/pkg/ports"
	"github.com/aretw0/fibgen/pkg/sequence"
	"github.com/google/uuid"
)

// Generate returns the first n Fibonacci terms. Any n <= 0 yields an empty sequence.
func Generate(n int) domain.Sequence {
	return sequence.Generate(n)
}

// Service is the entry point used by the server adapters.
// It validates term counts, enforces the term cap and journals every served request.
type Service struct {
	store    ports.RecordStore
	maxTerms int
	logger   *slog.Logger
	newID    func() string
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithStore sets the request journal. Without one, requests are not recorded.
func WithStore(store ports.RecordStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithMaxTerms caps the term count of a single request. Zero disables the cap.
func WithMaxTerms(max int) Option {
	return func(s *Service) {
		s.maxTerms = max
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithIDGenerator replaces the UUID generator used for record IDs.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{
		logger: logging.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sequence validates n, generates the sequence and records the request.
// It returns domain.ErrNegativeInput for n < 0 and domain.ErrTooManyTerms above the cap.
// A journal failure is logged and does not fail the request.
func (s *Service) Sequence(ctx context.Context, n int, source domain.Source) (*domain.Result, error) {
	if n < 0 {
		return nil, domain.ErrNegativeInput
	}
	if err := sequence.CheckLimit(n, s.maxTerms); err != nil {
		return nil, err
	}

	result := &domain.Result{Terms: n, Sequence: sequence.Generate(n)}

	if s.store != nil {
		record := domain.NewRecord(s.newID(), n, source)
		if err := s.store.Save(ctx, record); err != nil {
			s.logger.Warn("Failed to record request", "id", record.ID, "error", err)
		} else {
			s.logger.Debug("Request recorded", "id", record.ID, "terms", n, "source", source)
		}
	}
	return result, nil
}

// History lists the journal, newest first. It is empty when no store is configured.
func (s *Service) History(ctx context.Context) ([]*domain.Record, error) {
	if s.store == nil {
		return []*domain.Record{}, nil
	}
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return records, nil
}

// Record returns a single journal entry.
func (s *Service) Record(ctx context.Context, id string) (*domain.Record, error) {
	if s.store == nil {
		return nil, domain.ErrRecordNotFound
	}
	return s.store.Load(ctx, id)
}

// Forget removes a journal entry. It is a no-op without a store.
func (s *Service) Forget(ctx context.Context, id string) error {
	if s.store == nil {
		return nil
	}
	return s.store.Delete(ctx, id)
}
