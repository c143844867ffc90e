// Package console drives a query engine from a stream of lines.
//
// Batch reads a file or pipe and writes one output line per reply. Interactive
// runs a prompt over a raw-mode terminal. Both substitute a fixed fallback
// line for any query that fails, and print nothing for definitions.
package console
