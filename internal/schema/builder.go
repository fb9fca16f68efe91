package schema

import (
	"context"
	"log/slog"

	"github.com/jacoelho/xsd"

	"github.com/thoreinstein/xmllint/internal/errors"
	"github.com/thoreinstein/xmllint/internal/logging"
	"github.com/thoreinstein/xmllint/internal/paths"
	"github.com/thoreinstein/xmllint/internal/progress"
	"github.com/thoreinstein/xmllint/internal/scan"
	"github.com/thoreinstein/xmllint/internal/validator"
	"github.com/thoreinstein/xmllint/internal/xmldoc"
)

// Extension is the file suffix of schema files, matched case-insensitively.
const Extension = ".xsd"

// CompileFunc compiles the schema file at path.
type CompileFunc func(path string) (*xsd.Schema, error)

// Builder builds a Registry from a schema directory.
type Builder struct {
	workers  int
	logger   *slog.Logger
	progress *progress.Printer
	compile  CompileFunc
}

// Option configures a Builder.
type Option func(*Builder)

// WithWorkers bounds the number of files parsed and compiled at once.
// Zero or less means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		b.workers = n
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithProgress sets the progress printer.
func WithProgress(p *progress.Printer) Option {
	return func(b *Builder) {
		b.progress = p
	}
}

// WithCompiler replaces the schema compiler.
func WithCompiler(fn CompileFunc) Option {
	return func(b *Builder) {
		if fn != nil {
			b.compile = fn
		}
	}
}

// NewBuilder creates a Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		logger:  logging.NewDiscard(),
		compile: xsd.LoadFile,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type status int

const (
	statusLoaded status = iota
	statusNoNamespace
	statusParseFailed
	statusReadFailed
)

// outcome is the result of loading one schema file.
type outcome struct {
	status status
	rel    string
	entry  *Entry
	issue  validator.Issue
}

// Build scans dir for schema files and registers each by target namespace.
// Paths in issues and progress are relative to root. Per-file failures are
// returned as issues and never fail the build; an error is returned only
// when dir cannot be scanned or ctx is cancelled.
func (b *Builder) Build(ctx context.Context, root, dir string) (*Registry, []validator.Issue, error) {
	files, err := scan.Files(dir, Extension)
	if err != nil {
		return nil, nil, err
	}

	b.logger.Debug("loading schemas", "dir", dir, "files", len(files))

	outcomes, err := scan.Ordered(ctx, b.workers, files, func(_ context.Context, path string) outcome {
		return b.load(root, path)
	})
	if err != nil {
		return nil, nil, err
	}

	reg := NewRegistry()
	var issues []validator.Issue
	for _, o := range outcomes {
		switch o.status {
		case statusLoaded:
			if prev := reg.put(o.entry); prev != nil {
				b.progress.Replacing(prev.SourcePath, o.entry.Namespace)
				b.logger.Warn("namespace declared by more than one schema, keeping the later one",
					"namespace", o.entry.Namespace,
					"replaced", prev.SourcePath,
					"schema", o.rel)
			}
			b.progress.Loaded(o.rel, o.entry.Namespace)
		case statusNoNamespace:
			b.progress.MissingTargetNamespace(o.rel)
		case statusParseFailed:
			b.progress.ParseFailed(o.rel, o.issue.StartLine, o.issue.Column, o.issue.Message)
			issues = append(issues, o.issue)
		case statusReadFailed:
			b.progress.LoadFailed(o.rel, o.issue.Message)
			issues = append(issues, o.issue)
		}
	}

	b.logger.Info("schemas loaded", "namespaces", reg.Len(), "errors", len(issues))
	b.logger.Debug("schema registry", "namespaces", reg.Namespaces())
	return reg, issues, nil
}

func (b *Builder) load(root, path string) outcome {
	rel := paths.RelSlash(root, path)

	doc, err := xmldoc.ParseFile(path)
	if err != nil {
		var perr *xmldoc.ParseError
		if errors.As(err, &perr) {
			return outcome{
				status: statusParseFailed,
				rel:    rel,
				issue:  validator.NewIssue(validator.KindSchemaLoad, rel, perr.Line, perr.Column, perr.Error()),
			}
		}
		return outcome{
			status: statusReadFailed,
			rel:    rel,
			issue:  validator.NewIssue(validator.KindSchemaLoad, rel, 0, 0, err.Error()),
		}
	}

	ns, ok := doc.TargetNamespace()
	if !ok {
		b.logger.Debug("schema has no target namespace", "schema", rel)
		return outcome{status: statusNoNamespace, rel: rel}
	}

	compiled, err := b.compile(path)
	if err != nil {
		b.logger.Warn("schema does not compile, documents in its namespace will fail",
			"schema", rel,
			"namespace", ns,
			"error", err)
	}

	return outcome{
		status: statusLoaded,
		rel:    rel,
		entry:  NewEntry(ns, rel, compiled, err),
	}
}
