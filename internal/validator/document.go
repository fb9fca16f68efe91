package validator

import (
	xsderrors "github.com/jacoelho/xsd/errors"

	"github.com/thoreinstein/xmllint/internal/xmldoc"
)

// Schema is a compiled schema able to validate a file on disk.
type Schema interface {
	ValidateFile(path string) error
}

// ValidateDocument validates the XML file at absPath against s and returns
// nil on success. Only the first violation is reported; the record uses
// relPath so reports stay independent of the workspace location.
func ValidateDocument(relPath, absPath string, s Schema) *Issue {
	err := s.ValidateFile(absPath)
	if err == nil {
		return nil
	}

	if violations, ok := xsderrors.AsValidations(err); ok && len(violations) > 0 {
		first := violations[0]
		issue := NewIssue(KindValidation, relPath, first.Line, first.Column, violationMessage(first))
		return &issue
	}

	line, col := xmldoc.Position(err)
	issue := NewIssue(KindValidation, relPath, line, col, err.Error())
	return &issue
}

func violationMessage(v xsderrors.Validation) string {
	msg := v.Message
	if v.Code != "" {
		msg = v.Code + ": " + msg
	}
	if v.Path != "" {
		msg += " at " + v.Path
	}
	return msg
}
