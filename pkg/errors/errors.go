// Package errors defines the error taxonomy shared by the pipeline stages.
// Every stage surfaces errors synchronously to its caller; the CLI maps them
// to process exit codes via ExitCode.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks a malformed count or frequency line (wrong field
	// count, non-numeric value).
	ErrParse = errors.New("parse error")
	// ErrMissingTotal marks a count file whose __total__ line was never
	// seen before normalization was attempted.
	ErrMissingTotal = errors.New("count file has no __total__ line")
	// ErrInsufficientSources marks a merge requested with fewer sources
	// than the trimmed mean can support.
	ErrInsufficientSources = errors.New("merging frequencies requires at least 3 frequency lists")
	// ErrFormatMismatch marks a count file handed to a stage that expects
	// a frequency file.
	ErrFormatMismatch = errors.New("this is a count file, not a frequency file")
	// ErrValueUsage marks an internal contract violation, such as
	// serializing a mapping that still contains the __total__ sentinel.
	ErrValueUsage = errors.New("invalid value usage")
	// ErrStoreUnavailable marks a failed PostgreSQL or Redis dependency.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrInternal is the fallback for unexpected failures.
	ErrInternal = errors.New("internal error")
)

// AppError attaches a human-readable message and a process exit code to one
// of the sentinel errors above.
type AppError struct {
	Err      error
	Message  string
	ExitCode int
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(sentinel error, exitCode int, message string) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  message,
		ExitCode: exitCode,
	}
}

func Newf(sentinel error, exitCode int, format string, args ...any) *AppError {
	return &AppError{
		Err:      sentinel,
		Message:  fmt.Sprintf(format, args...),
		ExitCode: exitCode,
	}
}

// ExitCode maps an error to the exit code the CLI should terminate with.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.ExitCode
	}

	switch {
	case errors.Is(err, ErrParse):
		return 2
	case errors.Is(err, ErrMissingTotal):
		return 3
	case errors.Is(err, ErrInsufficientSources):
		return 4
	case errors.Is(err, ErrFormatMismatch):
		return 5
	case errors.Is(err, ErrValueUsage):
		return 6
	case errors.Is(err, ErrStoreUnavailable):
		return 7
	default:
		return 1
	}
}

// Class returns the taxonomy name of an error for CLI reporting.
func Class(err error) string {
	switch {
	case errors.Is(err, ErrParse):
		return "ParseError"
	case errors.Is(err, ErrMissingTotal):
		return "MissingTotalError"
	case errors.Is(err, ErrInsufficientSources):
		return "InsufficientSourcesError"
	case errors.Is(err, ErrFormatMismatch):
		return "FormatMismatchError"
	case errors.Is(err, ErrValueUsage):
		return "ValueUsageError"
	case errors.Is(err, ErrStoreUnavailable):
		return "StoreUnavailableError"
	default:
		return "InternalError"
	}
}
