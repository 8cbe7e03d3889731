package domain

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Sequence is an ordered run of Fibonacci terms.
// Terms are arbitrary precision, so values never overflow.
type Sequence []*big.Int

// Len returns the number of terms.
func (s Sequence) Len() int {
	return len(s)
}

// String renders the sequence as a bracketed, comma separated list, e.g. "[0, 1, 1, 2]".
func (s Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether both sequences hold the same terms in the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i].Cmp(other[i]) != 0 {
			return false
		}
	}
	return true
}

// Strings returns the decimal representation of every term.
func (s Sequence) Strings() []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = v.String()
	}
	return out
}

// MarshalJSON encodes the sequence as an array of JSON numbers with exact digits.
// An empty sequence encodes as [] rather than null.
func (s Sequence) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]*big.Int(s))
}

// UnmarshalJSON decodes an array of JSON numbers.
func (s *Sequence) UnmarshalJSON(data []byte) error {
	var raw []json.Number
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode sequence: %w", err)
	}
	out := make(Sequence, len(raw))
	for i, n := range raw {
		v, ok := new(big.Int).SetString(n.String(), 10)
		if !ok {
			return fmt.Errorf("term %d is not an integer: %q", i, n)
		}
		out[i] = v
	}
	*s = out
	return nil
}

// Result pairs a sequence with the term count that produced it.
// It is the response body shared by the CLI, HTTP and MCP surfaces.
type Result struct {
	Terms    int      `json:"terms"`
	Sequence Sequence `json:"sequence"`
}
