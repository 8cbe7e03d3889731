package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`   __ _ _                       `, "#fde68a"},
	{`  / _(_) |__   __ _  ___ _ __   `, "#fcd34d"},
	{` | |_| | '_ \ / _' |/ _ \ '_ \  `, "#fbbf24"},
	{` |  _| | |_) | (_| |  __/ | | | `, "#f59e0b"},
	{` |_| |_|_.__/ \__, |\___|_| |_| `, "#d97706"},
	{`               |___/            `, "#b45309"},
}

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintBanner writes the fibgen ASCII banner to w, coloured with a warm gradient.
// Colours degrade to plain text when the terminal does not support them.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line.text).Foreground(p.Color(line.color)))
	}
	fmt.Fprintln(w)
}
