// Package dataset loads the bundled German Credit CSV into an immutable
// in-memory table and provides predicate filtering over it.
//
// The table is loaded once at process start and only replaced wholesale by
// Reload; individual records are never mutated, so filtered views can alias
// the backing slice safely.
package dataset
