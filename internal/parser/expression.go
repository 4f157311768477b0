package parser

import (
	"dacite/internal/ast"
	"dacite/internal/diag"
	"dacite/internal/token"
)

func (p *Parser) parseExpr() (ast.ExprID, bool) {
	return p.parseBinaryExpr(precComparison)
}

// parseBinaryExpr runs the precedence-climbing loop. minPrec is the lowest
// operator precedence the current level still accepts; recursing with
// prec+1 makes every level left-associative.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		prec := binaryOpPrec(p.lx.Peek().Kind)
		if prec < minPrec {
			return left, true
		}

		opTok := p.advance()

		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			p.err(diag.SynExpectExpression, "expected expression after binary operator")
			return ast.NoExprID, false
		}

		op := tokenKindToBinaryOp(opTok.Kind)
		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, op, left, right)
	}
}

// parsePrimary accepts the only primary form there is: an integer literal.
func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	if p.at(token.IntLit) {
		tok := p.advance()
		return p.arenas.Exprs.NewIntLit(tok.Span, p.arenas.Intern(tok.Text)), true
	}
	p.err(diag.SynExpectExpression, "expected expression")
	return ast.NoExprID, false
}
