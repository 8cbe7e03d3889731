package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/fibgen/pkg/sequence"
)

// DefaultVerifyInputs are the sample term counts exercised by the verification harness.
var DefaultVerifyInputs = []int{-5, 0, 1, 7, 15}

// RunVerify calls the generator with each input and prints input and output.
// Generation never fails, so every input produces an Output line.
func RunVerify(out io.Writer, inputs []int) {
	fmt.Fprintln(out, MsgVerifyHeader)
	for _, n := range inputs {
		fmt.Fprintf(out, "Input: %d\n", n)
		fmt.Fprintf(out, "Output: %s\n", sequence.Generate(n))
		fmt.Fprintln(out, verifySeparator)
	}
}
