package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Source identifies which adapter served a request.
type Source string

const (
	SourceHTTP Source = "http"
	SourceMCP  Source = "mcp"
)

// Record is one entry of the request journal.
// It captures who asked for how many terms, never the terms themselves.
type Record struct {
	ID        string    `json:"id"`
	Terms     int       `json:"terms"`
	Source    Source    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecord creates a record stamped with the current time.
func NewRecord(id string, terms int, source Source) *Record {
	return &Record{
		ID:        id,
		Terms:     terms,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks that the record can be stored.
func (r *Record) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}
	if r.ID == "" {
		return fmt.Errorf("%w: id cannot be empty", ErrInvalidRecord)
	}
	return nil
}

// SortNewestFirst orders records by creation time, newest first.
// Records created at the same instant are ordered by ID.
func SortNewestFirst(records []*Record) {
	slices.SortFunc(records, func(a, b *Record) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
