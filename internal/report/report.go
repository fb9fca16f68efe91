// Package report writes the JSON error report of a lint run and decides
// the run verdict.
package report

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/thoreinstein/xmllint/internal/errors"
	"github.com/thoreinstein/xmllint/internal/paths"
	"github.com/thoreinstein/xmllint/internal/validator"
	"github.com/thoreinstein/xmllint/pkg/fileutil"
)

// FilePerm is the mode of written report files.
const FilePerm = 0o644

// FileName returns the report file name for id.
func FileName(id uuid.UUID) string {
	return fmt.Sprintf("XMLLint.%s.json", id)
}

// Emitter writes report files.
type Emitter struct {
	newID func() uuid.UUID
}

// EmitterOption configures an Emitter.
type EmitterOption func(*Emitter)

// WithIDSource sets the function naming report files.
func WithIDSource(fn func() uuid.UUID) EmitterOption {
	return func(e *Emitter) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// NewEmitter returns an Emitter naming files with random UUIDs.
func NewEmitter(opts ...EmitterOption) *Emitter {
	e := &Emitter{newID: uuid.New}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit writes the records of result as a JSON array to a fresh file in
// reportPath, resolved against root, and returns the file's path. An empty
// reportPath writes nothing and returns "". The directory is created when
// missing. Every failure, including a name collision, is marked
// ErrReportWrite; an existing file is never overwritten.
func (e *Emitter) Emit(result *validator.Result, root, reportPath string) (string, error) {
	if reportPath == "" {
		return "", nil
	}

	dir, err := paths.Resolve(root, reportPath, paths.MayCreate)
	if err != nil {
		return "", err
	}

	if err := paths.EnsureDir(dir, paths.DefaultDirPerm); err != nil {
		return "", errors.Mark(errors.Wrapf(err, "failed to create %s", dir), errors.ErrReportWrite)
	}

	file := filepath.Join(dir, FileName(e.newID()))
	if err := fileutil.CreateExclusiveJSON(file, result.Records(), FilePerm); err != nil {
		if errors.Is(err, fileutil.ErrExists) {
			return "", errors.Mark(errors.Newf("%s already exists", file), errors.ErrReportWrite)
		}
		return "", errors.Mark(errors.Wrapf(err, "writing report %s", file), errors.ErrReportWrite)
	}

	return file, nil
}

// Verdict returns nil when result recorded no errors, and an error marked
// ErrLintFailed carrying the error count otherwise.
func Verdict(result *validator.Result) error {
	if result.Passed() {
		return nil
	}
	return errors.Mark(errors.Newf("XMLLint FAILED! %d error(s) recorded", result.Len()), errors.ErrLintFailed)
}
