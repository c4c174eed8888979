package cli

import "errors"

// UsageError marks argument and option problems so the entry point can exit
// with the usage status instead of the runtime-failure status.
type UsageError struct {
	cause error
}

// NewUsageError wraps cause as a usage error.
func NewUsageError(cause error) *UsageError {
	return &UsageError{cause: cause}
}

// Error returns the underlying message.
func (usageError *UsageError) Error() string {
	return usageError.cause.Error()
}

// Unwrap exposes the wrapped cause.
func (usageError *UsageError) Unwrap() error {
	return usageError.cause
}

// IsUsageError reports whether err is or wraps a UsageError.
func IsUsageError(err error) bool {
	var usageError *UsageError
	return errors.As(err, &usageError)
}
