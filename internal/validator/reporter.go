package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for lint summaries.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces the report records as JSON.
	FormatJSON Format = "json"
)

// Reporter formats and writes lint results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result.Records()), "encoding JSON summary")
}

func (r *Reporter) reportText(result *Result) error {
	counts := fmt.Sprintf("%d schema(s), %d linted, %d skipped", result.Schemas, result.Linted, result.Skipped)

	if result.Passed() {
		fmt.Fprintf(r.out, "%s (%s)\n", color.GreenString("✓ Lint passed"), counts)
	} else {
		fmt.Fprintf(r.out, "Lint failed: %s (%s)\n\n", color.RedString("%d error(s)", result.Len()), counts)
		r.section("Schemas:", result.ByKind(KindSchemaLoad))
		r.section("Documents:", result.ByKind(KindValidation))
	}

	if result.ReportFile != "" {
		fmt.Fprintf(r.out, "Report written to %s\n", result.ReportFile)
	}
	return nil
}

func (r *Reporter) section(title string, issues []Issue) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(r.out, title)
	for _, i := range issues {
		fmt.Fprintln(r.out, formatIssue(i))
	}
	fmt.Fprintln(r.out)
}

// formatIssue renders "  • path:line:col message"; unknown positions are omitted.
func formatIssue(i Issue) string {
	var sb strings.Builder
	sb.WriteString("  • ")
	sb.WriteString(color.RedString(i.Path))
	switch {
	case i.StartLine > 0 && i.Column > 0:
		sb.WriteString(color.HiBlackString(":%d:%d", i.StartLine, i.Column))
	case i.StartLine > 0:
		sb.WriteString(color.HiBlackString(":%d", i.StartLine))
	}
	sb.WriteString(" ")
	sb.WriteString(i.Message)
	return sb.String()
}
