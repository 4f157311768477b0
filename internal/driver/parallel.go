package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"dacite/internal/diag"
	"dacite/internal/source"
)

// DiagnoseFileResult is the verdict for one file of a directory walk.
type DiagnoseFileResult struct {
	Path     string
	Broken   bool
	Errors   int
	Warnings int
	FileSet  *source.FileSet // nil on a cache hit
	Bag      *diag.Bag       // nil on a cache hit
	Cached   bool
}

// DiagnoseEvent reports per-file progress while a walk is running.
type DiagnoseEvent struct {
	Path   string
	Index  int
	Total  int
	Broken bool
	Cached bool
}

// DiagnoseDirOptions configures a directory walk.
type DiagnoseDirOptions struct {
	MaxDiagnostics int
	// Jobs caps worker goroutines; 0 means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, skips files whose content hash already has a
	// verdict.
	Cache *DiskCache
	// Progress, when non-nil, is called once per finished file. Calls may
	// come from worker goroutines.
	Progress func(DiagnoseEvent)
}

// ListSourceFiles returns every *.dt file under dir, sorted. The diagnose
// walk visits exactly this list, in this order.
func ListSourceFiles(dir string) ([]string, error) {
	return listSourceFiles(dir)
}

// listSourceFiles returns every *.dt file under dir, sorted for
// deterministic result order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".dt") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// DiagnoseDir checks every .dt file under dir in parallel: lex, parse and
// compile, no execution. Results come back in sorted path order regardless
// of completion order.
func DiagnoseDir(ctx context.Context, dir string, opts DiagnoseDirOptions) ([]DiagnoseFileResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	// Indices are unique per goroutine, so no mutex around results.
	results := make([]DiagnoseFileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res := diagnoseFile(path, opts)
			results[i] = res

			if opts.Progress != nil {
				opts.Progress(DiagnoseEvent{
					Path:   path,
					Index:  i,
					Total:  len(files),
					Broken: res.Broken,
					Cached: res.Cached,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func diagnoseFile(path string, opts DiagnoseDirOptions) DiagnoseFileResult {
	fset := source.NewFileSet()
	fileID, err := fset.Load(path)
	if err != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, err.Error()))
		return DiagnoseFileResult{
			Path:    path,
			Broken:  true,
			Errors:  1,
			FileSet: fset,
			Bag:     bag,
		}
	}
	file := fset.Get(fileID)

	if opts.Cache != nil {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(file.Hash, &payload); err == nil && hit {
			return DiagnoseFileResult{
				Path:     path,
				Broken:   payload.Broken,
				Errors:   payload.Errors,
				Warnings: payload.Warnings,
				Cached:   true,
			}
		}
	}

	parse, err := parseFile(fset, fileID, opts.MaxDiagnostics)
	if err != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, err.Error()))
		return DiagnoseFileResult{Path: path, Broken: true, Errors: 1, FileSet: fset, Bag: bag}
	}
	checked := check(parse, RunOptions{MaxDiagnostics: opts.MaxDiagnostics})

	bag := parse.Bag
	if checked.CompileErr != nil {
		bag.Add(diag.NewError(compileErrCode(checked.CompileErr), source.Span{File: fileID}, checked.CompileErr.Error()))
	}
	bag.Sort()

	errCount, warnCount := 0, 0
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errCount++
		case diag.SevWarning:
			warnCount++
		}
	}

	res := DiagnoseFileResult{
		Path:     path,
		Broken:   bag.HasErrors(),
		Errors:   errCount,
		Warnings: warnCount,
		FileSet:  fset,
		Bag:      bag,
	}

	if opts.Cache != nil {
		// Cache write failures are not fatal to the walk.
		_ = opts.Cache.Put(file.Hash, &DiskPayload{
			Path:     path,
			Broken:   res.Broken,
			Errors:   res.Errors,
			Warnings: res.Warnings,
		})
	}
	return res
}
