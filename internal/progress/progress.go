// Package progress prints the line-oriented run log of a lint run: a
// begin/end marker pair, one header per phase and one line per file.
package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/thoreinstein/xmllint/internal/xmldoc"
)

// Title names the run in the begin and end markers.
const Title = "XML Linter"

// Printer writes progress lines. All methods are safe for concurrent use,
// although callers replay outcomes sequentially to keep walk order.
// A nil *Printer discards everything.
type Printer struct {
	mu  sync.Mutex
	out io.Writer

	header  *color.Color
	ok      *color.Color
	skip    *color.Color
	failure *color.Color
}

// New returns a Printer writing to out.
func New(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		header:  color.New(color.Bold),
		ok:      color.New(color.FgGreen),
		skip:    color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
}

// Discard returns a Printer that writes nothing.
func Discard() *Printer {
	return New(io.Discard)
}

func (p *Printer) line(c *color.Color, format string, args ...any) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	if c != nil {
		msg = c.Sprint(msg)
	}
	fmt.Fprintln(p.out, msg)
}

// Begin prints the run start marker.
func (p *Printer) Begin() {
	p.line(nil, "")
	p.line(p.header, "--[B: %s]--", Title)
	p.line(nil, "")
}

// End prints the run end marker.
func (p *Printer) End() {
	p.line(p.header, "--[E: %s]--", Title)
	p.line(nil, "")
}

// LoadingSchemas opens the schema phase.
func (p *Printer) LoadingSchemas(dir string) {
	p.line(p.header, "[+] Loading XSD files from %s", dir)
}

// LintingDocuments opens the document phase.
func (p *Printer) LintingDocuments(dir string) {
	p.line(p.header, "[+] Linting XML files from %s", dir)
}

// Done closes a phase.
func (p *Printer) Done() {
	p.line(nil, " + Done")
	p.line(nil, "")
}

// Loaded reports a registered schema.
func (p *Printer) Loaded(rel, namespace string) {
	p.line(p.ok, "    ~ Loaded %s (%s)", rel, namespace)
}

// Replacing reports a namespace collision; the later schema wins.
func (p *Printer) Replacing(previous, namespace string) {
	p.line(p.skip, "    ~ Replacing %s for %s", previous, namespace)
}

// MissingTargetNamespace reports a schema skipped for lack of a namespace.
func (p *Printer) MissingTargetNamespace(rel string) {
	p.line(p.skip, "    ~ Skipping %s. Missing \"targetNamespace\" attribute", rel)
}

// Linted reports a document that passed validation.
func (p *Printer) Linted(rel string) {
	p.line(p.ok, "    ~ Linted %s", rel)
}

// MissingNamespace reports a document skipped for lack of xmlns.
func (p *Printer) MissingNamespace(rel string) {
	p.line(p.skip, "    ~ Skipping %s. Missing \"xmlns\" attribute", rel)
}

// NoMatchingSchema reports a document whose namespace is not registered.
func (p *Printer) NoMatchingSchema(rel string) {
	p.line(p.skip, "    ~ Skipping %s. No matching \"XSD\" found", rel)
}

// ParseFailed reports a parse or validation failure at a position. A line
// of zero prints the path alone.
func (p *Printer) ParseFailed(rel string, line, column int, message string) {
	p.line(p.failure, "    ~ ERROR parsing %s", xmldoc.FormatPosition(rel, line, column))
	p.message(message)
}

// LoadFailed reports a file that could not be read.
func (p *Printer) LoadFailed(rel, message string) {
	p.line(p.failure, "    ~ ERROR loading %s", rel)
	p.message(message)
}

func (p *Printer) message(msg string) {
	p.line(nil, "      Message = %s", msg)
}
