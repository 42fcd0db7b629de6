package domain

import (
	"errors"
	"strings"
)

// ErrCycleNotConfigured is wrapped by every ConfigError raised because no
// anchor date has been recorded.
var ErrCycleNotConfigured = errors.New("cycle not configured")

// ConfigError reports that the cycle configuration is missing. It is
// recoverable: the host prompts the user to set up their cycle.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewNotConfiguredError returns the ConfigError raised when the anchor date is nil.
func NewNotConfiguredError() *ConfigError {
	return &ConfigError{Err: ErrCycleNotConfigured}
}

// ValidationError reports a record that violates a domain invariant. Such
// records are rejected at creation and never persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every violation found in a single record.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual errors to errors.As.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

// orNil returns nil for an empty collection so callers can return it directly.
func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
