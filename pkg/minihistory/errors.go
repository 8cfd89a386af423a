package minihistory

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/minihistory/pkg/minihistory/tap"
)

// Sentinel errors for common conditions.
var (
	// ErrNotImplemented is matched by every error from GoForward and from Go
	// with a positive delta. The host has no forward navigation.
	ErrNotImplemented = errors.New("minihistory: not implemented")

	// ErrNotPatchable indicates the host has no router slot to observe.
	ErrNotPatchable = tap.ErrNotPatchable

	// ErrNilHost is returned by New when no host is given.
	ErrNilHost = errors.New("minihistory: nil host")
)

// NotImplementedError carries a localized message for an unsupported
// operation. errors.Is(err, ErrNotImplemented) is true for every instance.
type NotImplementedError struct {
	Op      string // Operation that was called, e.g. "goForward"
	Message string // Localized description
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("minihistory: %s: %s", e.Op, e.Message)
}

func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// ConfigurationError means the host environment cannot support a history.
// It is only returned from New; a history that was created never produces one.
type ConfigurationError struct {
	Op     string // Setup step that failed (e.g., "install", "metrics")
	Detail string // Localized explanation, may be empty
	Err    error  // Underlying error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Detail != "" && e.Err != nil:
		return fmt.Sprintf("minihistory: %s: %s: %v", e.Op, e.Detail, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("minihistory: %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("minihistory: %s", e.Op)
	}
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsNotImplemented checks if an error reports an unsupported navigation.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
