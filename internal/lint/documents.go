package lint

import (
	"context"

	"github.com/thoreinstein/xmllint/internal/errors"
	"github.com/thoreinstein/xmllint/internal/logging"
	"github.com/thoreinstein/xmllint/internal/paths"
	"github.com/thoreinstein/xmllint/internal/scan"
	"github.com/thoreinstein/xmllint/internal/schema"
	"github.com/thoreinstein/xmllint/internal/validator"
	"github.com/thoreinstein/xmllint/internal/xmldoc"
)

type docStatus int

const (
	docLinted docStatus = iota
	docInvalid
	docMalformed
	docUnreadable
	docNoNamespace
	docNoSchema
)

func (s docStatus) String() string {
	switch s {
	case docLinted:
		return "linted"
	case docInvalid:
		return "invalid"
	case docMalformed:
		return "malformed"
	case docUnreadable:
		return "unreadable"
	case docNoNamespace:
		return "no-namespace"
	case docNoSchema:
		return "no-schema"
	}
	return "unknown"
}

// docOutcome is the result of linting one document.
type docOutcome struct {
	status docStatus
	rel    string
	ns     string
	issue  validator.Issue
}

func (e *Engine) lintDocuments(ctx context.Context, d dirs, reg *schema.Registry, workers int, result *validator.Result) error {
	files, err := scan.Files(d.xmls, Extension)
	if err != nil {
		return err
	}

	outcomes, err := scan.Ordered(ctx, workers, files, func(_ context.Context, path string) docOutcome {
		return lintDocument(d.root, path, reg)
	})
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		e.logger.Log(ctx, logging.LevelTrace, "document", "file", o.rel, "namespace", o.ns, "status", o.status.String())
		switch o.status {
		case docLinted:
			result.Linted++
			e.progress.Linted(o.rel)
		case docInvalid:
			result.Linted++
			e.progress.ParseFailed(o.rel, o.issue.StartLine, o.issue.Column, o.issue.Message)
			result.Add(o.issue)
		case docMalformed:
			e.progress.ParseFailed(o.rel, o.issue.StartLine, o.issue.Column, o.issue.Message)
			result.Add(o.issue)
		case docUnreadable:
			e.progress.LoadFailed(o.rel, o.issue.Message)
			result.Add(o.issue)
		case docNoNamespace:
			result.Skipped++
			e.progress.MissingNamespace(o.rel)
		case docNoSchema:
			result.Skipped++
			e.progress.NoMatchingSchema(o.rel)
		}
	}
	return nil
}

// lintDocument parses one document, resolves its schema and validates it.
// It touches no shared state besides reading reg.
func lintDocument(root, path string, reg *schema.Registry) docOutcome {
	rel := paths.RelSlash(root, path)

	doc, err := xmldoc.ParseFile(path)
	if err != nil {
		if errors.Is(err, errors.ErrValidation) {
			line, col := xmldoc.Position(err)
			return docOutcome{
				status: docMalformed,
				rel:    rel,
				issue:  validator.NewIssue(validator.KindValidation, rel, line, col, err.Error()),
			}
		}
		return docOutcome{
			status: docUnreadable,
			rel:    rel,
			issue:  validator.NewIssue(validator.KindValidation, rel, 0, 0, err.Error()),
		}
	}

	ns, ok := doc.DefaultNamespace()
	if !ok {
		return docOutcome{status: docNoNamespace, rel: rel}
	}

	entry, ok := reg.Lookup(ns)
	if !ok {
		return docOutcome{status: docNoSchema, rel: rel, ns: ns}
	}

	if issue := validator.ValidateDocument(rel, path, entry); issue != nil {
		return docOutcome{status: docInvalid, rel: rel, ns: ns, issue: *issue}
	}
	return docOutcome{status: docLinted, rel: rel, ns: ns}
}
