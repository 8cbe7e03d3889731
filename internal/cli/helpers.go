package cli

import (
	"errors"
	"log/slog"

	"github.com/aretw0/fibgen/internal/logging"
	"github.com/aretw0/fibgen/pkg/domain"
)

// Messages printed by the interactive front-end.
const (
	MsgHeader       = "=== Fibonacci Generator ==="
	MsgPrompt       = "Enter the number of terms: "
	MsgEmptyInput   = "Please enter a valid number."
	MsgNonInteger   = "Invalid input. Please enter an integer."
	MsgNegative     = "Please enter a non-negative integer."
	MsgVerifyHeader = "=== Automated Verification ==="
	verifySeparator = "--------------------"
)

// createLogger configures the application logger.
// Outside debug mode the interactive commands stay silent so stdout is exactly the user dialogue.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// InputMessage returns the user-facing message for a term count validation error,
// or "" when err is not one of the input errors.
func InputMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return MsgEmptyInput
	case errors.Is(err, domain.ErrNonIntegerInput):
		return MsgNonInteger
	case errors.Is(err, domain.ErrNegativeInput):
		return MsgNegative
	case errors.Is(err, domain.ErrTooManyTerms):
		return err.Error()
	}
	return ""
}
