// Package compiler lowers the arena AST into bytecode. Unlike the lexer
// and parser it does not accumulate diagnostics: the first structural
// error stops compilation and is returned as a single error value.
package compiler

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"dacite/internal/ast"
	"dacite/internal/bytecode"
	"dacite/internal/value"
)

// maxConstIndex is the largest pool index addressable by OpConstant's
// single operand byte.
const maxConstIndex = 255

var (
	ErrNoFunctions       = errors.New("no functions to compile")
	ErrMultipleFunctions = errors.New("multiple functions not yet supported")
	ErrTooManyConstants  = errors.New("too many constants")
)

type Options struct {
	// Trace, when non-nil, receives a line per compiled node.
	Trace io.Writer
}

type Compiler struct {
	arenas *ast.Builder
	chunk  *bytecode.Chunk
	opts   Options
}

// Compile lowers the sole function of program into a fresh chunk.
func Compile(arenas *ast.Builder, program ast.ProgramID) (*bytecode.Chunk, error) {
	chunk := bytecode.NewChunk()
	if err := CompileInto(arenas, program, chunk, Options{}); err != nil {
		return nil, err
	}
	return chunk, nil
}

// CompileInto lowers program into an existing chunk, which is cleared
// first. The chunk-reusing form keeps the REPL loop allocation-free.
func CompileInto(arenas *ast.Builder, program ast.ProgramID, chunk *bytecode.Chunk, opts Options) error {
	chunk.Clear()
	c := Compiler{
		arenas: arenas,
		chunk:  chunk,
		opts:   opts,
	}
	return c.compileProgram(program)
}

func (c *Compiler) trace(format string, args ...any) {
	if c.opts.Trace != nil {
		fmt.Fprintf(c.opts.Trace, format+"\n", args...)
	}
}

func (c *Compiler) compileProgram(id ast.ProgramID) error {
	program := c.arenas.Programs.Get(id)
	if program == nil {
		return ErrNoFunctions
	}

	var fns []ast.DeclID
	for _, decl := range program.Decls {
		if c.arenas.Decls.Get(decl).Kind == ast.DeclFn {
			fns = append(fns, decl)
		}
	}

	switch {
	case len(fns) == 0:
		return ErrNoFunctions
	case len(fns) > 1:
		return ErrMultipleFunctions
	}

	return c.compileFn(fns[0])
}

func (c *Compiler) compileFn(id ast.DeclID) error {
	fn, ok := c.arenas.Decls.Fn(id)
	if !ok {
		return fmt.Errorf("declaration %d is not a function", id)
	}
	c.trace("compiling fn %s", c.arenas.Strings.MustLookup(fn.Name))

	if !fn.Body.IsValid() {
		return errors.New("function has no body")
	}
	return c.compileStmt(fn.Body)
}

func (c *Compiler) compileStmt(id ast.StmtID) error {
	stmt := c.arenas.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtBlock:
		block, _ := c.arenas.Stmts.Block(id)
		for _, s := range block.Stmts {
			if err := c.compileStmt(s); err != nil {
				return err
			}
		}
		return nil

	case ast.StmtReturn:
		ret, _ := c.arenas.Stmts.Return(id)
		if ret.Expr.IsValid() {
			if err := c.compileExpr(ret.Expr); err != nil {
				return err
			}
		} else {
			// Bare return yields nil.
			if err := c.emitConstant(value.NewNil()); err != nil {
				return err
			}
		}
		c.chunk.WriteOp(bytecode.OpReturn)
		c.trace("emitted RETURN")
		return nil

	default:
		return fmt.Errorf("unsupported statement kind %d", stmt.Kind)
	}
}

func (c *Compiler) compileExpr(id ast.ExprID) error {
	expr := c.arenas.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIntLit:
		lit, _ := c.arenas.Exprs.IntLit(id)
		text := c.arenas.Strings.MustLookup(lit.Text)
		// Base 0 gives the 0x / 0b / leading-zero-octal radix rules the
		// lexer classified by.
		parsed, err := strconv.ParseInt(text, 0, 32)
		if err != nil {
			return fmt.Errorf("invalid integer literal: %s", text)
		}
		c.trace("emitted constant %d", parsed)
		return c.emitConstant(value.NewInt(int32(parsed)))

	case ast.ExprBinary:
		bin, _ := c.arenas.Exprs.Binary(id)
		if err := c.compileExpr(bin.Left); err != nil {
			return err
		}
		if err := c.compileExpr(bin.Right); err != nil {
			return err
		}
		op, err := binaryOpcode(bin.Op)
		if err != nil {
			return err
		}
		c.chunk.WriteOp(op)
		c.trace("emitted %s", op)
		return nil

	default:
		return fmt.Errorf("unsupported expression kind %d", expr.Kind)
	}
}

func (c *Compiler) emitConstant(v value.Value) error {
	idx := c.chunk.AddConstant(v)
	if idx > maxConstIndex {
		return ErrTooManyConstants
	}
	c.chunk.WriteOp(bytecode.OpConstant)
	c.chunk.WriteByte(byte(idx))
	return nil
}

func binaryOpcode(op ast.BinaryOp) (bytecode.Op, error) {
	switch op {
	case ast.BinAdd:
		return bytecode.OpAdd, nil
	case ast.BinSub:
		return bytecode.OpSubtract, nil
	case ast.BinMul:
		return bytecode.OpMultiply, nil
	case ast.BinDiv:
		return bytecode.OpDivide, nil
	case ast.BinEq:
		return bytecode.OpEqual, nil
	case ast.BinNotEq:
		return bytecode.OpNotEqual, nil
	case ast.BinLess:
		return bytecode.OpLess, nil
	case ast.BinLessEq:
		return bytecode.OpLessEqual, nil
	case ast.BinGreater:
		return bytecode.OpGreater, nil
	case ast.BinGreaterEq:
		return bytecode.OpGreaterEqual, nil
	default:
		return 0, fmt.Errorf("unsupported binary operator %d", op)
	}
}
