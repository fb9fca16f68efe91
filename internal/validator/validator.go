package validator

import (
	"fmt"
	"strings"
)

// Severity is the annotation level of a recorded issue.
type Severity string

// SeverityFailure is the only level the linter records.
const SeverityFailure Severity = "failure"

// Kind tells which phase recorded an issue.
type Kind int

const (
	// KindValidation covers malformed documents, schema violations and
	// schemas that could not be applied to a document.
	KindValidation Kind = iota
	// KindSchemaLoad covers schema files that could not be parsed or read.
	KindSchemaLoad
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindSchemaLoad:
		return "schema-load"
	default:
		return "unknown"
	}
}

// Issue represents a single recorded failure.
type Issue struct {
	// Path is the offending file relative to the run root, slash separated.
	Path string `json:"path"`
	// StartLine is 1-based, or 0 when no position is available.
	StartLine int `json:"start_line"`
	// EndLine equals StartLine; the linter reports single-line positions.
	EndLine int `json:"end_line"`
	// Severity is always SeverityFailure.
	Severity Severity `json:"annotation_level"`
	// Message is the diagnostic from the underlying parser or validator.
	Message string `json:"message"`
	// Kind is the phase that recorded the issue. It is not serialized.
	Kind Kind `json:"-"`
	// Column is kept for progress output only.
	Column int `json:"-"`
}

// NewIssue builds a failure record at a single line.
func NewIssue(kind Kind, path string, line, column int, message string) Issue {
	if line < 0 {
		line = 0
	}
	return Issue{
		Path:      path,
		StartLine: line,
		EndLine:   line,
		Severity:  SeverityFailure,
		Message:   message,
		Kind:      kind,
		Column:    column,
	}
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Path)
	if i.StartLine > 0 {
		fmt.Fprintf(&sb, ":%d", i.StartLine)
	}
	sb.WriteString(": ")
	sb.WriteString(i.Message)
	return sb.String()
}

// Result aggregates the issues of a run in detection order.
type Result struct {
	Issues []Issue

	// Schemas is the number of namespaces registered.
	Schemas int
	// Linted is the number of documents validated against a schema.
	Linted int
	// Skipped is the number of documents with no usable namespace match.
	Skipped int

	// ReportFile is the written report, empty when none was requested.
	ReportFile string
}

// Add appends an issue, preserving detection order.
func (r *Result) Add(i Issue) {
	r.Issues = append(r.Issues, i)
}

// Passed reports whether no issue was recorded.
func (r *Result) Passed() bool {
	return r == nil || len(r.Issues) == 0
}

// Len returns the number of recorded issues.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Issues)
}

// ByKind returns the issues recorded by one phase.
func (r *Result) ByKind(k Kind) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Kind == k {
			res = append(res, i)
		}
	}
	return res
}

// Records returns the issues for serialization, never nil, so an empty
// run encodes as [] rather than null.
func (r *Result) Records() []Issue {
	if r == nil || r.Issues == nil {
		return []Issue{}
	}
	return r.Issues
}
