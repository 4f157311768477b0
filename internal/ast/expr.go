package ast

import (
	"dacite/internal/source"
)

type ExprKind uint8

const (
	ExprIntLit ExprKind = iota
	ExprBinary
)

// BinaryOp is the operator of a binary expression.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinEq
	BinNotEq
	BinLess
	BinLessEq
	BinGreater
	BinGreaterEq
)

var binaryOpNames = [...]string{
	BinAdd:       "+",
	BinSub:       "-",
	BinMul:       "*",
	BinDiv:       "/",
	BinEq:        "==",
	BinNotEq:     "!=",
	BinLess:      "<",
	BinLessEq:    "<=",
	BinGreater:   ">",
	BinGreaterEq: ">=",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprIntLitData keeps the literal text exactly as written, radix prefix
// included; the compiler parses it.
type ExprIntLitData struct {
	Text source.StringID
}

type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	IntLits  *Arena[ExprIntLitData]
	Binaries *Arena[ExprBinaryData]
}

func NewExprs(capHint uint) *Exprs {
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		IntLits:  NewArena[ExprIntLitData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIntLit creates an integer literal expression.
func (e *Exprs) NewIntLit(span source.Span, text source.StringID) ExprID {
	payload := e.IntLits.Allocate(ExprIntLitData{Text: text})
	return e.new(ExprIntLit, span, PayloadID(payload))
}

// IntLit returns the literal data for the given expression ID.
func (e *Exprs) IntLit(id ExprID) (*ExprIntLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIntLit {
		return nil, false
	}
	return e.IntLits.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}
