/*
Package sequence produces Fibonacci sequences and validates user supplied term counts.

Generate is total over every int: counts of zero or below yield an empty
sequence. ParseTermCount is the stricter boundary used by the CLI, HTTP and
MCP adapters, which reject negative counts before ever calling Generate.

	seq := sequence.Generate(7)
	fmt.Println(seq) // [0, 1, 1, 2, 3, 5, 8]
*/
package sequence
