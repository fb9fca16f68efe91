package config

import (
	"github.com/thoreinstein/xmllint/internal/errors"
)

// Log formats accepted by the log_format key.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// FieldError names the configuration key a validation error applies to.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate checks that the configuration can drive a lint run. Missing
// directories are marked errors.ErrMissingInput; other problems are marked
// errors.ErrInvalidConfig. Paths are only checked for presence here; their
// resolution against the root happens when the run starts.
func (c Config) Validate() error {
	if c.XSDsPath == "" {
		return &FieldError{Field: KeyXSDsPath, Err: errors.Wrap(errors.ErrMissingInput, `missing value for "XSDs Path"`)}
	}
	if c.XMLsPath == "" {
		return &FieldError{Field: KeyXMLsPath, Err: errors.Wrap(errors.ErrMissingInput, `missing value for "XMLs Path"`)}
	}
	if c.Workers < 0 {
		return &FieldError{Field: KeyWorkers, Err: errors.Wrapf(errors.ErrInvalidConfig, "must be >= 0, got %d", c.Workers)}
	}
	switch c.LogFormat {
	case "", LogFormatText, LogFormatJSON:
	default:
		return &FieldError{Field: KeyLogFormat, Err: errors.Wrapf(errors.ErrInvalidConfig, "unknown format %q", c.LogFormat)}
	}
	return nil
}
