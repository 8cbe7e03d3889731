package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/fibgen/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// SequenceTable formats a sequence as a markdown table with one row per term.
func SequenceTable(seq domain.Sequence) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Fibonacci sequence (%d terms)**\n\n", seq.Len())
	sb.WriteString("| Index | Value |\n")
	sb.WriteString("|------:|------:|\n")
	for i, v := range seq {
		fmt.Fprintf(&sb, "| %d | %s |\n", i, v.String())
	}
	return sb.String()
}

// RenderSequence renders the markdown table of seq for the terminal.
func RenderSequence(seq domain.Sequence) (string, error) {
	render, err := NewRenderer()
	if err != nil {
		return "", err
	}
	return render(SequenceTable(seq))
}
