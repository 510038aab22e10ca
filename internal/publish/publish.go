// Package publish runs a full mirror build: load the catalog, group it,
// render the index, then write the index, the file copies and the ledger.
//
// Rendering happens before anything touches the output directory, so a
// catalog that references an unreadable file leaves the output untouched.
package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"pocmirror/internal/catalog"
	"pocmirror/internal/failure"
	"pocmirror/internal/log"
	"pocmirror/internal/render"
	"pocmirror/internal/state"
)

// Options describes one build.
type Options struct {
	CatalogPath string
	SourceDir   string
	OutputDir   string
	// Title overrides the index heading when set.
	Title string
	// WriteSum enables the mirror.sum integrity ledger.
	WriteSum bool
	// LockPath, when set, is locked for the duration of the build.
	LockPath string
}

// Result summarizes a successful build.
type Result struct {
	Years     int
	Issues    int
	Files     int
	IndexPath string
	SumPath   string
}

// Build runs every stage in order and stops at the first error. Errors are
// *failure.Error values, except for context cancellation and lock errors.
func Build(ctx context.Context, opts Options) (_ *Result, err error) {
	if opts.LockPath != "" {
		release, lerr := state.AcquireLock(opts.LockPath)
		if lerr != nil {
			return nil, lerr
		}
		defer func() {
			if rerr := release(); rerr != nil && err == nil {
				err = rerr
			}
		}()
	}

	filesDir := filepath.Join(opts.OutputDir, state.FilesDir)
	if err := checkOverlap(opts.SourceDir, filesDir); err != nil {
		return nil, err
	}

	c, err := catalog.Load(opts.CatalogPath)
	if err != nil {
		return nil, err
	}
	if dups := c.DuplicateVolumes(); len(dups) > 0 {
		log.Warnf("catalog repeats volume numbers %v; equal volumes keep catalog order", dups)
	}

	mirror := catalog.Transform(c)
	log.Debug("grouped catalog", "issues", mirror.IssueCount(), "years", len(mirror.Years))

	r := render.New(os.DirFS(opts.SourceDir), render.WithTitle(opts.Title))
	doc, err := r.Render(ctx, mirror)
	if err != nil {
		var fe *failure.Error
		if errors.As(err, &fe) && fe.Kind == failure.HashIO {
			fe.Path = filepath.Join(opts.SourceDir, filepath.FromSlash(fe.Path))
		}
		return nil, err
	}
	log.Debug("rendered index", "bytes", len(doc.HTML), "hashed", len(doc.Files))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filesDir, state.DirPerm); err != nil {
		return nil, failure.New(failure.Output, "create output directory", filesDir, err)
	}

	indexPath := filepath.Join(opts.OutputDir, state.IndexFile)
	if err := state.AtomicWriteFile(indexPath, doc.HTML, state.FilePerm); err != nil {
		return nil, failure.New(failure.Output, "write index", indexPath, err)
	}
	log.Debug("wrote index", "path", indexPath)

	files := mirror.Files()
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		src := filepath.Join(opts.SourceDir, filepath.FromSlash(f.Name()))
		dst := filepath.Join(filesDir, filepath.FromSlash(f.Name()))
		if err := copyFile(src, dst); err != nil {
			return nil, failure.New(failure.Copy, "copy", f.Name(), err)
		}
		log.Debug("copied file", "name", f.Name())
	}

	res := &Result{
		Years:     len(mirror.Years),
		Issues:    mirror.IssueCount(),
		Files:     len(files),
		IndexPath: indexPath,
	}

	if opts.WriteSum {
		title := opts.Title
		if title == "" {
			title = render.DefaultTitle
		}
		sumPath := filepath.Join(opts.OutputDir, state.SumFile)
		if err := state.SaveSum(sumPath, state.NewSum(title, doc.Files)); err != nil {
			return nil, failure.New(failure.Output, "write ledger", sumPath, err)
		}
		res.SumPath = sumPath
	}

	return res, nil
}

// checkOverlap rejects a layout where the published files directory is the
// source directory, since copying would truncate every source file.
func checkOverlap(sourceDir, filesDir string) error {
	src, err := filepath.Abs(sourceDir)
	if err != nil {
		return failure.New(failure.Input, "resolve source directory", sourceDir, err)
	}
	dst, err := filepath.Abs(filesDir)
	if err != nil {
		return failure.New(failure.Output, "resolve output directory", filesDir, err)
	}
	if src == dst {
		return failure.New(failure.Output, "check output directory", filesDir, errors.New("published files directory is the source directory"))
	}
	return nil
}
