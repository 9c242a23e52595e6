// Package apperrors defines structured application error types and the exit
// codes they map to, so the entry point can tell a configuration mistake
// from a runtime failure.
//
// Error types implement Unwrap where they carry a cause, so errors.Is and
// errors.As work across wrapping done with fmt.Errorf and %w.
package apperrors
