package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/fibgen/internal/presentation/tui"
	"github.com/aretw0/fibgen/pkg/sequence"
)

// PromptOptions contains the configuration for the interactive prompt.
type PromptOptions struct {
	Banner bool
	Debug  bool
	Logger *slog.Logger
}

// RunPrompt asks for a term count on in and writes the dialogue to out.
//
// Invalid input is answered with a message and is not an error: the only
// errors returned are failures to read from in.
func RunPrompt(in io.Reader, out io.Writer, opts PromptOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = createLogger(opts.Debug)
	}

	if opts.Banner {
		tui.PrintBanner(out)
	}
	fmt.Fprintln(out, MsgHeader)
	fmt.Fprint(out, MsgPrompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		// Keep the dialogue on its own line when stdin closed without a newline.
		fmt.Fprintln(out)
	}

	n, err := sequence.ParseTermCount(line)
	if err != nil {
		logger.Debug("Input rejected", "input", line, "error", err)
		fmt.Fprintln(out, InputMessage(err))
		return nil
	}

	seq := sequence.Generate(n)
	logger.Debug("Sequence generated", "terms", n)

	fmt.Fprintf(out, "Fibonacci sequence (%d terms):\n", n)
	fmt.Fprintln(out, seq.String())
	return nil
}
