package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, failed lint, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for the failure kinds of a lint run.
var (
	// ErrMissingInput indicates a required path argument is absent or empty.
	ErrMissingInput = crdb.New("missing input")

	// ErrInvalidPath indicates a path escapes the root, does not exist,
	// or is not a directory.
	ErrInvalidPath = crdb.New("invalid path")

	// ErrSchemaLoad indicates a schema file could not be parsed.
	ErrSchemaLoad = crdb.New("schema load error")

	// ErrValidation marks XML that is not well-formed.
	ErrValidation = crdb.New("validation error")

	// ErrReportWrite indicates the report could not be written.
	ErrReportWrite = crdb.New("report write error")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrLintFailed indicates at least one error was recorded during the run.
	ErrLintFailed = crdb.New("XMLLint FAILED!")
)

// Wrapping helpers re-exported from cockroachdb/errors so call sites only
// import this package.
var (
	New      = crdb.New
	Newf     = crdb.Newf
	Wrap     = crdb.Wrap
	Wrapf    = crdb.Wrapf
	Mark     = crdb.Mark
	Is       = crdb.Is
	As       = crdb.As
	Unwrap   = crdb.Unwrap
	WithHint = crdb.WithHint
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: xmllint config show",
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Classify maps a lint run error onto an ExitError. Errors that already
// carry an exit code are returned unchanged.
func Classify(err error) *ExitError {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr
	}

	switch {
	case crdb.Is(err, ErrMissingInput):
		return NewUserError(err, "Pass --xsds and --xmls, or set them in .xmllint.yaml")
	case crdb.Is(err, ErrInvalidPath):
		return NewUserError(err, "Paths must be existing directories inside --root")
	case crdb.Is(err, ErrInvalidConfig):
		return NewConfigError(err)
	case crdb.Is(err, ErrReportWrite):
		return NewSystemError(err, "Check permissions on the report directory")
	default:
		return NewExitError(err, ExitUser)
	}
}
