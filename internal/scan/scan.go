// Package scan enumerates input files and runs per-file work on a bounded
// worker pool while keeping results in walk order.
package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/thoreinstein/xmllint/internal/errors"
)

// Files returns the regular files under dir whose name ends in ext,
// compared case-insensitively. The result is in lexical walk order, so two
// scans of an unchanged tree return the same sequence.
func Files(dir, ext string) ([]string, error) {
	ext = strings.ToLower(ext)

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.HasSuffix(strings.ToLower(d.Name()), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s for %s files", dir, ext)
	}
	return files, nil
}

// Workers normalizes a worker count. Values of zero or below mean
// GOMAXPROCS; the count never exceeds the number of jobs.
func Workers(n, jobs int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if jobs > 0 && jobs < n {
		n = jobs
	}
	return max(n, 1)
}

// Ordered calls fn for every item using at most workers goroutines and
// returns the outcomes indexed like items. fn must not share mutable state
// across calls. The context is checked before each item is started; a
// cancelled context stops new work and its error is returned.
func Ordered[T, R any](ctx context.Context, workers int, items []T, fn func(ctx context.Context, item T) R) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers, len(items)))

	for i, item := range items {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = fn(gctx, item)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "processing files")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "processing files")
	}
	return out, nil
}
