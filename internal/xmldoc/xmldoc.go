// Package xmldoc parses XML files into a DOM and reads the root-element
// attributes used to match documents with schemas.
package xmldoc

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/agentflare-ai/go-xmldom"

	"github.com/thoreinstein/xmllint/internal/errors"
)

// Root attribute names read by the resolver.
const (
	AttrDefaultNamespace = "xmlns"
	AttrTargetNamespace  = "targetNamespace"
)

// ParseError reports a document that is not well-formed. Line and Column
// are 1-based and 0 when the parser gave no position.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is a parsed XML file.
type Document struct {
	root xmldom.Element
}

// Parse reads and parses one XML document from r. Malformed content,
// including anything but whitespace, comments or processing instructions
// outside the single root element, yields a *ParseError marked
// errors.ErrValidation.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading document")
	}

	doc, err := xmldom.Decode(bytes.NewReader(data))
	if err != nil {
		line, col := Position(err)
		return nil, newParseError(line, col, err)
	}
	if doc == nil || doc.DocumentElement() == nil {
		return nil, newParseError(0, 0, errors.New("document has no root element"))
	}
	if err := checkSingleRoot(data); err != nil {
		return nil, err
	}
	return &Document{root: doc.DocumentElement()}, nil
}

func newParseError(line, column int, err error) *ParseError {
	return &ParseError{Line: line, Column: column, Err: errors.Mark(err, errors.ErrValidation)}
}

var utf8BOM = []byte("\xef\xbb\xbf")

// checkSingleRoot scans the document-level tokens and rejects a second
// root element or character data outside the root. The DOM decoder
// tolerates both.
func checkSingleRoot(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	dec.Strict = false
	dec.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }

	depth, roots := 0, 0
	for {
		line, col := dec.InputPos()
		tok, err := dec.RawToken()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			// Errors inside the root were already judged by the DOM decoder.
			return nil
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return newParseError(line, col, errors.Newf("content after the root element: <%s>", t.Name.Local))
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(bytes.TrimSpace(t)) > 0 {
				where := "before"
				if roots > 0 {
					where = "after"
				}
				return newParseError(line, col, errors.Newf("text %s the root element", where))
			}
		}
	}
}

// ParseFile opens and parses the XML file at path. Errors opening or
// reading the file are returned as-is; malformed content yields *ParseError.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	return Parse(f)
}

// DefaultNamespace returns the literal value of the root element's
// unprefixed xmlns attribute. Prefixed declarations are not consulted.
// The second result is false when the attribute is absent or empty.
func (d *Document) DefaultNamespace() (string, bool) {
	return d.attr(AttrDefaultNamespace)
}

// TargetNamespace returns the root element's targetNamespace attribute.
// The second result is false when the attribute is absent or empty.
func (d *Document) TargetNamespace() (string, bool) {
	return d.attr(AttrTargetNamespace)
}

// attr looks an attribute up by its qualified name as written, so "xmlns"
// never matches a prefixed "xmlns:p" declaration.
func (d *Document) attr(name string) (string, bool) {
	if attrs := d.root.Attributes(); attrs != nil {
		for i := uint(0); i < attrs.Length(); i++ {
			a := attrs.Item(i)
			if a == nil || string(a.NodeName()) != name {
				continue
			}
			v := string(a.NodeValue())
			return v, v != ""
		}
	}
	v := string(d.root.GetAttribute(xmldom.DOMString(name)))
	return v, v != ""
}

var positionPattern = regexp.MustCompile(`line (\d+)(?:, column (\d+)|:(\d+))?`)

// Position extracts a line and column from a parser error. encoding/xml
// syntax errors carry a line only; other decoders embed the position in
// their message. Missing values are returned as 0.
func Position(err error) (line, column int) {
	if err == nil {
		return 0, 0
	}

	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Line, 0
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr.Line > 0 {
		return parseErr.Line, parseErr.Column
	}

	m := positionPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, 0
	}
	line, _ = strconv.Atoi(m[1])
	switch {
	case m[2] != "":
		column, _ = strconv.Atoi(m[2])
	case m[3] != "":
		column, _ = strconv.Atoi(m[3])
	}
	return line, column
}

// FormatPosition renders "path@line:column" the way failures are printed,
// or just path when no line is known.
func FormatPosition(path string, line, column int) string {
	if line <= 0 {
		return path
	}
	return fmt.Sprintf("%s@%d:%d", path, line, column)
}
