// Package driver wires the pipeline stages together for the CLI: lex,
// parse, compile, run, and the multi-file diagnose walk. Each entry point
// owns its FileSet so callers get spans they can resolve.
package driver

import (
	"io"

	"dacite/internal/diag"
	"dacite/internal/lexer"
	"dacite/internal/source"
	"dacite/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// TokenizeOptions controls the token stream the CLI sees.
type TokenizeOptions struct {
	MaxDiagnostics int
	EmitWhitespace bool
	EmitComments   bool
	Trace          io.Writer
}

// Tokenize lexes one file from disk.
func Tokenize(path string, opts TokenizeOptions) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fileID, opts), nil
}

// TokenizeBytes lexes in-memory source under a virtual file name.
func TokenizeBytes(name string, src []byte, opts TokenizeOptions) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return tokenizeFile(fs, fileID, opts)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, opts TokenizeOptions) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)

	lx := lexer.New(file, lexer.Options{
		Reporter:       diag.BagReporter{Bag: bag},
		EmitWhitespace: opts.EmitWhitespace,
		EmitComments:   opts.EmitComments,
		Trace:          opts.Trace,
	})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  lx.TokenizeAll(),
		Bag:     bag,
	}
}
