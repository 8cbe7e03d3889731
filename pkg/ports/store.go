package ports

import (
	"context"

	"github.com/aretw0/fibgen/pkg/domain"
)

// RecordStore defines the interface for persisting the request journal.
type RecordStore interface {
	// Save persists a record under its ID, replacing any previous value.
	Save(ctx context.Context, record *domain.Record) error

	// Load retrieves the record for a given ID.
	// Returns domain.ErrRecordNotFound if the record does not exist.
	Load(ctx context.Context, id string) (*domain.Record, error)

	// Delete removes the record for a given ID. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns all stored records, newest first.
	List(ctx context.Context) ([]*domain.Record, error)
}
