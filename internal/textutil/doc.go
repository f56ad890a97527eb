// Package textutil provides the small text-assembly helpers shared by the
// gallery encoder and the CLI.
//
// The primary use cases are:
//   - Accumulating tokens into delimiter-joined groups with Accumulator
//   - Escaping values before they are inserted into wiki template parameters
//
// Accumulator drops empty tokens on Add, so callers can feed optional fields
// directly without guarding each one.
package textutil
