package domain

import "errors"

// ErrEmptyInput is returned when the user submitted a blank term count.
var ErrEmptyInput = errors.New("empty input")

// ErrNonIntegerInput is returned when the term count does not parse as an integer.
var ErrNonIntegerInput = errors.New("input is not an integer")

// ErrNegativeInput is returned when the term count parses but is negative.
var ErrNegativeInput = errors.New("input is negative")

// ErrTooManyTerms is returned when a request exceeds the configured term cap.
var ErrTooManyTerms = errors.New("too many terms requested")

// ErrRecordNotFound is returned when a record ID cannot be found in the store.
var ErrRecordNotFound = errors.New("record not found")

// ErrInvalidRecord is returned when a record is nil or has no ID.
var ErrInvalidRecord = errors.New("invalid record")
