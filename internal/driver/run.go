package driver

import (
	"errors"
	"io"
	"strings"

	"dacite/internal/bytecode"
	"dacite/internal/compiler"
	"dacite/internal/diag"
	"dacite/internal/value"
	"dacite/internal/vm"
)

// RunOptions configures the check/run pipelines. The trace writers are
// independent so `--trace` surfaces can be toggled per stage.
type RunOptions struct {
	MaxDiagnostics int
	TraceCompile   io.Writer
	TraceExec      io.Writer
}

// CheckResult is everything up to and including bytecode. Chunk is nil
// when parsing failed with errors or compilation failed; CompileErr holds
// the single compiler message in the latter case.
type CheckResult struct {
	Parse      *ParseResult
	Chunk      *bytecode.Chunk
	CompileErr error
}

// HasErrors reports whether any stage up to compilation failed.
func (r *CheckResult) HasErrors() bool {
	return r.Parse.Bag.HasErrors() || r.CompileErr != nil
}

// RunResult extends CheckResult with the VM outcome.
type RunResult struct {
	CheckResult
	Value      value.Value
	RuntimeErr string
}

// HasErrors reports whether any stage failed.
func (r *RunResult) HasErrors() bool {
	return r.CheckResult.HasErrors() || r.RuntimeErr != ""
}

// Check parses and compiles one file from disk without executing it.
func Check(path string, opts RunOptions) (*CheckResult, error) {
	parse, err := Parse(path, opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}
	return check(parse, opts), nil
}

// CheckBytes is Check over in-memory source.
func CheckBytes(name string, src []byte, opts RunOptions) (*CheckResult, error) {
	parse, err := ParseBytes(name, src, opts.MaxDiagnostics)
	if err != nil {
		return nil, err
	}
	return check(parse, opts), nil
}

func check(parse *ParseResult, opts RunOptions) *CheckResult {
	res := &CheckResult{Parse: parse}
	if parse.Bag.HasErrors() {
		return res
	}

	chunk := bytecode.NewChunk()
	err := compiler.CompileInto(parse.Builder, parse.Program, chunk, compiler.Options{
		Trace: opts.TraceCompile,
	})
	if err != nil {
		res.CompileErr = err
		return res
	}
	res.Chunk = chunk
	return res
}

// Run executes one file from disk through the whole pipeline. The
// returned error covers I/O only; language-level failures land in the
// result.
func Run(path string, opts RunOptions) (*RunResult, error) {
	checked, err := Check(path, opts)
	if err != nil {
		return nil, err
	}
	return execute(checked, opts), nil
}

// RunBytes is Run over in-memory source.
func RunBytes(name string, src []byte, opts RunOptions) (*RunResult, error) {
	checked, err := CheckBytes(name, src, opts)
	if err != nil {
		return nil, err
	}
	return execute(checked, opts), nil
}

// compileErrCode classifies a compiler error for diagnostic rendering.
func compileErrCode(err error) diag.Code {
	switch {
	case errors.Is(err, compiler.ErrNoFunctions):
		return diag.CmpNoFunctions
	case errors.Is(err, compiler.ErrMultipleFunctions):
		return diag.CmpMultipleFns
	case errors.Is(err, compiler.ErrTooManyConstants):
		return diag.CmpTooManyConstants
	case strings.Contains(err.Error(), "invalid integer literal"):
		return diag.CmpBadIntLiteral
	case strings.Contains(err.Error(), "no body"):
		return diag.CmpMissingBody
	case strings.Contains(err.Error(), "unsupported expression"):
		return diag.CmpUnsupportedExpr
	default:
		return diag.CmpUnsupportedStmt
	}
}

func execute(checked *CheckResult, opts RunOptions) *RunResult {
	res := &RunResult{CheckResult: *checked}
	if checked.HasErrors() || checked.Chunk == nil {
		return res
	}

	machine := vm.New(vm.Options{Trace: opts.TraceExec})
	if machine.Run(checked.Chunk) != vm.ResultOK {
		res.RuntimeErr = machine.Err()
		return res
	}
	if top, err := machine.Top(); err == nil {
		res.Value = top
	}
	return res
}
