package parser

import (
	"dacite/internal/ast"
	"dacite/internal/diag"
	"dacite/internal/token"
)

// parseBlock handles `{ {Statement} }`. A failed statement triggers
// block-level resynchronization and the loop keeps going, so one bad
// statement does not take the rest of the block with it.
func (p *Parser) parseBlock() (ast.StmtID, bool) {
	lbrace, ok := p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{'")
	if !ok {
		return ast.NoStmtID, false
	}

	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
			continue
		}
		stmts = append(stmts, stmt)
	}

	endSpan := p.diagSpan()
	if rbrace, ok := p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after block"); ok {
		endSpan = rbrace.Span
	}

	return p.arenas.Stmts.NewBlock(lbrace.Span.Cover(endSpan), stmts), true
}

func (p *Parser) parseStmt() (ast.StmtID, bool) {
	if p.at(token.KwReturn) {
		return p.parseReturnStmt()
	}
	p.err(diag.SynExpectStatement, "expected statement")
	return ast.NoStmtID, false
}

// parseReturnStmt handles `return [Expression] ;`. A missing semicolon is
// reported but the statement node is still produced.
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	retTok := p.advance() // 'return'

	expr := ast.NoExprID
	if !p.at(token.Semicolon) {
		var ok bool
		expr, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	}

	endSpan := p.lastSpan
	if semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return statement"); ok {
		endSpan = semiTok.Span
	}

	return p.arenas.Stmts.NewReturn(retTok.Span.Cover(endSpan), expr), true
}
