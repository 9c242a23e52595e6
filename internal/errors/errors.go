package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
const (
	ExitSuccess      = 0 // Indicates successful execution.
	ExitErrorGeneric = 1 // Indicates a generic error.
	ExitErrorConfig  = 4 // Indicates a configuration error.
)

// ConfigError represents a user configuration error, such as an invalid flag
// or environment value. The application cannot proceed with such input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
	// Cause is the underlying parse error, if any.
	Cause error
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying parse error, or nil.
func (e ConfigError) Unwrap() error { return e.Cause }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// OutputError reports a failure to write results to the output stream,
// preserving the underlying cause.
type OutputError struct {
	// Cause is the underlying write error.
	Cause error
}

// Error returns a message prefixed with the failing stage.
func (e OutputError) Error() string { return "writing output: " + e.Cause.Error() }

// Unwrap returns the original wrapped error.
func (e OutputError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCodeFor maps an error to the process exit code reported to the OS.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}
