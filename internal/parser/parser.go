// Package parser builds the arena AST from the token stream by recursive
// descent. Errors go through the Reporter and trigger panic-mode recovery,
// so one pass surfaces multiple independent errors.
package parser

import (
	"slices"

	"dacite/internal/ast"
	"dacite/internal/diag"
	"dacite/internal/lexer"
	"dacite/internal/source"
	"dacite/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent. MaxErrors == 0 means
// unlimited.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Program ast.ProgramID
	Bag     *diag.Bag
}

// Parser holds per-file parsing state.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	program  ast.ProgramID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span
}

// ParseFile parses one file into arenas. The returned Program ID is always
// valid; on errors the program is partially populated and the diagnostics
// say what went wrong.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		program:  arenas.NewProgram(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseProgram()

	var bag *diag.Bag
	switch br := opts.Reporter.(type) {
	case diag.BagReporter:
		bag = br.Bag
	case *diag.BagReporter:
		bag = br.Bag
	}
	return Result{
		Program: p.program,
		Bag:     bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// advance eats the next token and remembers its span for diagnostics.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan picks the span to attach a diagnostic to. At EOF the lookahead
// span is empty, so point just past the last consumed token instead.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports code with msg.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.lx.Peek().Text}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	// Budget check happens before the increment so MaxErrors == N lets
	// exactly N errors through.
	if p.opts.Enough() {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
}

func (p *Parser) parseProgram() {
	startSpan := p.lx.Peek().Span

	if p.at(token.KwPackage) {
		if decl, ok := p.parsePackageDecl(); ok {
			p.arenas.SetPackage(p.program, decl)
		} else {
			p.resyncTop()
		}
	}

	for !p.at(token.EOF) {
		decl, ok := p.parseDecl()
		if !ok {
			p.resyncTop()
			continue
		}
		p.arenas.PushDecl(p.program, decl)
	}

	p.arenas.Programs.Get(p.program).Span = startSpan.Cover(p.lastSpan)
}

func (p *Parser) parseDecl() (ast.DeclID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwFn:
		return p.parseFnDecl()
	case token.KwPackage:
		p.err(diag.SynUnexpectedTopLevel, "package declaration must be the first declaration in the file")
		return ast.NoDeclID, false
	default:
		p.err(diag.SynUnexpectedTopLevel, "unexpected top-level construct, expected 'fn'")
		return ast.NoDeclID, false
	}
}

// resyncTop skips to the start of the next plausible declaration, or past
// the next semicolon. The first token is consumed unconditionally so
// recovery always makes progress, even when the offending token is itself
// a declaration starter.
func (p *Parser) resyncTop() {
	if !p.at(token.EOF) {
		p.advance()
	}
	for !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.KwFn, token.KwReturn:
			return
		case token.Semicolon:
			p.advance()
			return
		default:
			p.advance()
		}
	}
}

// resyncStmt recovers inside a block: skip up to the next statement start,
// past the next semicolon, or to the closing brace. As with resyncTop the
// first token is consumed unconditionally.
func (p *Parser) resyncStmt() {
	if !p.at(token.EOF) && !p.at(token.RBrace) {
		p.advance()
	}
	for !p.at(token.EOF) && !p.at(token.RBrace) {
		switch p.lx.Peek().Kind {
		case token.KwFn, token.KwReturn:
			return
		case token.Semicolon:
			p.advance()
			return
		default:
			p.advance()
		}
	}
}
