package parser

import (
	"dacite/internal/ast"
	"dacite/internal/token"
)

// Binary operator precedence, higher binds tighter. All levels are
// left-associative.
const (
	precComparison     = 1 // == != < <= > >=
	precAdditive       = 2 // + -
	precMultiplicative = 3 // * /
)

// binaryOpPrec returns the precedence of kind, or -1 when kind is not a
// binary operator.
func binaryOpPrec(kind token.Kind) int {
	switch kind {
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash:
		return precMultiplicative
	default:
		return -1
	}
}

func tokenKindToBinaryOp(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNotEq
	case token.Lt:
		return ast.BinLess
	case token.LtEq:
		return ast.BinLessEq
	case token.Gt:
		return ast.BinGreater
	case token.GtEq:
		return ast.BinGreaterEq
	default:
		panic("not a binary operator: " + kind.String())
	}
}
