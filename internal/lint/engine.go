package lint

import (
	"context"
	"log/slog"

	"github.com/thoreinstein/xmllint/internal/errors"
	"github.com/thoreinstein/xmllint/internal/logging"
	"github.com/thoreinstein/xmllint/internal/paths"
	"github.com/thoreinstein/xmllint/internal/progress"
	"github.com/thoreinstein/xmllint/internal/report"
	"github.com/thoreinstein/xmllint/internal/schema"
	"github.com/thoreinstein/xmllint/internal/validator"
)

// Extension is the file suffix of documents, matched case-insensitively.
const Extension = ".xml"

// Options are the inputs of one run. Paths other than Root are relative to
// Root and must resolve inside it.
type Options struct {
	// Root is the directory every other path is confined to.
	Root string
	// XSDsPath is the schema directory. Required.
	XSDsPath string
	// XMLsPath is the document directory. Required.
	XMLsPath string
	// ReportPath is the report directory. Empty disables the report.
	ReportPath string
	// Workers bounds per-file parallelism. Zero or less means GOMAXPROCS.
	Workers int
}

// Engine runs batch lints.
type Engine struct {
	logger   *slog.Logger
	progress *progress.Printer
	emitter  *report.Emitter
	compile  schema.CompileFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithProgress sets the progress printer.
func WithProgress(p *progress.Printer) Option {
	return func(e *Engine) {
		if p != nil {
			e.progress = p
		}
	}
}

// WithEmitter replaces the report emitter.
func WithEmitter(em *report.Emitter) Option {
	return func(e *Engine) {
		if em != nil {
			e.emitter = em
		}
	}
}

// WithCompiler replaces the schema compiler.
func WithCompiler(fn schema.CompileFunc) Option {
	return func(e *Engine) {
		e.compile = fn
	}
}

// NewEngine creates an Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		logger:   logging.NewDiscard(),
		progress: progress.Discard(),
		emitter:  report.NewEmitter(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// dirs holds the guarded absolute paths of a run.
type dirs struct {
	root, xsds, xmls string
}

func guard(opts Options) (dirs, error) {
	if opts.XSDsPath == "" {
		return dirs{}, errors.Wrap(errors.ErrMissingInput, `missing value for "XSDs Path"`)
	}
	if opts.XMLsPath == "" {
		return dirs{}, errors.Wrap(errors.ErrMissingInput, `missing value for "XMLs Path"`)
	}

	root, err := paths.Root(opts.Root)
	if err != nil {
		return dirs{}, err
	}
	xsds, err := paths.Resolve(root, opts.XSDsPath, paths.MustExist)
	if err != nil {
		return dirs{}, errors.Wrap(err, "XSDs Path")
	}
	xmls, err := paths.Resolve(root, opts.XMLsPath, paths.MustExist)
	if err != nil {
		return dirs{}, errors.Wrap(err, "XMLs Path")
	}
	if opts.ReportPath != "" {
		if _, err := paths.Resolve(root, opts.ReportPath, paths.MayCreate); err != nil {
			return dirs{}, errors.Wrap(err, "Report Path")
		}
	}
	return dirs{root: root, xsds: xsds, xmls: xmls}, nil
}

// Run performs one lint. A returned error is fatal: a missing or invalid
// path (before any file is read), a directory that cannot be walked, a
// cancelled context, or a failed report write. Recorded problems are in
// the result and do not produce an error.
func (e *Engine) Run(ctx context.Context, opts Options) (*validator.Result, error) {
	d, err := guard(opts)
	if err != nil {
		return nil, err
	}

	log := e.logger.With("root", d.root)
	log.Debug("starting lint", "xsds", opts.XSDsPath, "xmls", opts.XMLsPath, "report", opts.ReportPath)

	e.progress.Begin()

	e.progress.LoadingSchemas(opts.XSDsPath)
	builderOpts := []schema.Option{
		schema.WithWorkers(opts.Workers),
		schema.WithLogger(log),
		schema.WithProgress(e.progress),
	}
	if e.compile != nil {
		builderOpts = append(builderOpts, schema.WithCompiler(e.compile))
	}
	reg, issues, err := schema.NewBuilder(builderOpts...).Build(ctx, d.root, d.xsds)
	if err != nil {
		return nil, err
	}
	e.progress.Done()

	result := &validator.Result{Schemas: reg.Len()}
	for _, i := range issues {
		result.Add(i)
	}

	e.progress.LintingDocuments(opts.XMLsPath)
	if err := e.lintDocuments(ctx, d, reg, opts.Workers, result); err != nil {
		return nil, err
	}
	e.progress.Done()

	file, err := e.emitter.Emit(result, d.root, opts.ReportPath)
	e.progress.End()
	if err != nil {
		return result, err
	}
	result.ReportFile = file

	log.Info("lint finished",
		"schemas", result.Schemas,
		"linted", result.Linted,
		"skipped", result.Skipped,
		"errors", result.Len())
	return result, nil
}
