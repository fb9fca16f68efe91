// Package errors provides error handling conventions for the xmllint CLI.
//
// It defines sentinel errors for the failure kinds of a lint run, re-exports
// the wrapping helpers of [github.com/cockroachdb/errors], and provides an
// ExitError type for CLI exit code handling.
//
// # Sentinel Errors
//
// Fatal conditions are reported as errors marked with a sentinel so callers
// can check them with [Is]:
//
//	if errors.Is(err, lintErrors.ErrInvalidPath) {
//	    // a path escaped the root or is not a directory
//	}
//
// Recorded (non-fatal) failures never travel as Go errors; they are collected
// as validator issues and only summarized by [ErrLintFailed].
//
// # Exit Codes
//
//   - ExitSuccess (0): all documents passed
//   - ExitUser (1): invalid input, invalid path, or recorded lint errors
//   - ExitSystem (2): the report could not be written
//
// [Classify] maps a run error onto an [ExitError] with a suggestion.
package errors
