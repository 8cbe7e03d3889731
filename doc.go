/*
Package fibgen computes the first N terms of the Fibonacci sequence.

The sequence is built iteratively with arbitrary-precision integers, so terms
never overflow. Counts of zero or below yield an empty sequence; the function
never fails.

# Usage

	seq := fibgen.Generate(7)
	fmt.Println(seq) // [0, 1, 1, 2, 3, 5, 8]

# Serving

Service wraps the generator for the network adapters. It rejects negative
counts, enforces an optional cap and journals every request into a
ports.RecordStore (memory, file or Redis):

	svc := fibgen.New(
		fibgen.WithStore(memory.NewStore()),
		fibgen.WithMaxTerms(10000),
	)
	res, err := svc.Sequence(ctx, 15, domain.SourceHTTP)

The `fibgen` command wraps the same pieces: an interactive prompt, a
verification harness, a JSON HTTP API (`fibgen serve`) and an MCP server
(`fibgen mcp`).
*/
package fibgen
