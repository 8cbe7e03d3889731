package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runPrompt(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := RunPrompt(strings.NewReader(input), &out, PromptOptions{})
	require.NoError(t, err)
	return out.String()
}

func TestRunPrompt_Valid(t *testing.T) {
	out := runPrompt(t, "7\n")

	assert.Equal(t,
		MsgHeader+"\n"+
			MsgPrompt+"Fibonacci sequence (7 terms):\n"+
			"[0, 1, 1, 2, 3, 5, 8]\n",
		out)
}

func TestRunPrompt_Zero(t *testing.T) {
	out := runPrompt(t, "0\n")
	assert.Contains(t, out, "Fibonacci sequence (0 terms):\n[]\n")
}

func TestRunPrompt_Messages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty line", "\n", MsgEmptyInput},
		{"whitespace only", "   \n", MsgEmptyInput},
		{"closed stdin", "", MsgEmptyInput},
		{"letters", "abc\n", MsgNonInteger},
		{"decimal", "2.5\n", MsgNonInteger},
		{"negative", "-3\n", MsgNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runPrompt(t, tt.input)
			assert.Contains(t, out, tt.want)
			assert.NotContains(t, out, "Fibonacci sequence (", "generator must not run")
		})
	}
}

func TestRunPrompt_NoTrailingNewline(t *testing.T) {
	out := runPrompt(t, " 3 ")
	assert.Contains(t, out, "Fibonacci sequence (3 terms):\n[0, 1, 1]\n")
}

func TestRunPrompt_Banner(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, RunPrompt(strings.NewReader("1\n"), &out, PromptOptions{Banner: true}))

	s := out.String()
	assert.Less(t, strings.Index(s, "|___/"), strings.Index(s, MsgHeader), "banner precedes the header")
	assert.Contains(t, s, "[0]\n")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestRunPrompt_ReadError(t *testing.T) {
	var out bytes.Buffer
	err := RunPrompt(failingReader{}, &out, PromptOptions{})
	assert.ErrorContains(t, err, "broken pipe")
}
