package sequence

import (
	"math/big"

	"github.com/aretw0/fibgen/pkg/domain"
)

// Generate returns the first n Fibonacci terms, starting at 0, 1.
// Any n <= 0 returns an empty sequence. Every term is a fresh *big.Int,
// so callers may modify the result freely.
func Generate(n int) domain.Sequence {
	if n <= 0 {
		return domain.Sequence{}
	}

	seq := make(domain.Sequence, n)
	seq[0] = big.NewInt(0)
	if n == 1 {
		return seq
	}
	seq[1] = big.NewInt(1)

	for i := 2; i < n; i++ {
		seq[i] = new(big.Int).Add(seq[i-1], seq[i-2])
	}
	return seq
}
