package parser

import (
	"dacite/internal/ast"
	"dacite/internal/diag"
	"dacite/internal/token"
)

// parsePackageDecl handles `package IDENT ;`. A missing semicolon is
// reported but the declaration is still produced, so the rest of the file
// parses normally.
func (p *Parser) parsePackageDecl() (ast.DeclID, bool) {
	pkgTok := p.advance() // 'package'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectPackageName, "expected package name after 'package'")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.arenas.Intern(nameTok.Text)

	endSpan := nameTok.Span
	if semiTok, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after package declaration"); ok {
		endSpan = semiTok.Span
	}

	return p.arenas.Decls.NewPackage(pkgTok.Span.Cover(endSpan), name), true
}

// parseFnDecl handles `fn IDENT ( ) Type Block`. The parameter list is
// required syntactically but stays empty; no parameter nodes exist yet.
func (p *Parser) parseFnDecl() (ast.DeclID, bool) {
	fnTok := p.advance() // 'fn'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectFnName, "expected function name after 'fn'")
	if !ok {
		return ast.NoDeclID, false
	}
	name := p.arenas.Intern(nameTok.Text)

	if _, ok := p.expect(token.LParen, diag.SynExpectLParen, "expected '(' after function name"); !ok {
		return ast.NoDeclID, false
	}
	if _, ok := p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after parameters"); !ok {
		return ast.NoDeclID, false
	}

	returnType, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoDeclID, false
	}

	span := fnTok.Span.Cover(p.arenas.Stmts.Get(body).Span)
	return p.arenas.Decls.NewFn(span, name, returnType, body), true
}

// parseType accepts a type name. `void` is a keyword but still names a
// type.
func (p *Parser) parseType() (ast.TypeID, bool) {
	if p.atOr(token.Ident, token.KwVoid) {
		tok := p.advance()
		return p.arenas.Types.New(tok.Span, p.arenas.Intern(tok.Text)), true
	}
	p.err(diag.SynExpectType, "expected return type")
	return ast.NoTypeID, false
}
