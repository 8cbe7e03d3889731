package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/fibgen/internal/presentation/tui"
	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/aretw0/fibgen/pkg/sequence"
)

// Output formats accepted by RunGenerate.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// ErrUnknownFormat is returned for an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown output format")

// GenerateOptions contains the configuration for the generate command.
type GenerateOptions struct {
	Format string
	// Render turns markdown into terminal output. Defaults to tui.NewRenderer.
	Render func(string) (string, error)
}

// RunGenerate validates raw as a term count and writes the sequence to out.
// Unlike the prompt, invalid input is returned as an error carrying the user message.
func RunGenerate(out io.Writer, raw string, opts GenerateOptions) error {
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	switch format {
	case FormatText, FormatJSON, FormatTable:
	default:
		return fmt.Errorf("%w %q (want text, json or table)", ErrUnknownFormat, format)
	}

	n, err := sequence.ParseTermCount(raw)
	if err != nil {
		return &InputError{Err: err}
	}
	seq := sequence.Generate(n)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		if err := enc.Encode(domain.Result{Terms: n, Sequence: seq}); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	case FormatTable:
		render := opts.Render
		if render == nil {
			render, err = tui.NewRenderer()
			if err != nil {
				return err
			}
		}
		rendered, err := render(tui.SequenceTable(seq))
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		fmt.Fprint(out, rendered)
	default:
		fmt.Fprintln(out, seq.String())
	}
	return nil
}

// InputError wraps a term count validation error with its user message.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return InputMessage(e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
