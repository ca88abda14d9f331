// Package errors defines the structured error type shared by the
// compiler's boundary layers.
//
// Errors carry the pipeline phase where they occurred and a machine
// comparable kind, so callers can match with errors.Is without parsing
// messages. The IR core itself never returns these: absent results use
// comma-ok returns, and invariant violations panic.
package errors
