/*
Package domain contains the core value types shared by every fibgen adapter.

It is kept pure and free of I/O so that the generator, the CLI, the HTTP API
and the MCP server all agree on the same representation.

# Key Entities

  - Sequence: the first N Fibonacci terms as arbitrary-precision integers.
  - Record: one entry of the request journal kept by the server adapters.
*/
package domain
