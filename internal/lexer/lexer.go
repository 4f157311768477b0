// Package lexer turns raw source bytes into a token stream.
//
// The lexer never stops on bad input: malformed literals and unexpected
// characters produce an Invalid token, report a diagnostic through the
// configured Reporter, and scanning continues from the next byte.
package lexer

import (
	"fmt"

	"dacite/internal/source"
	"dacite/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. Whitespace and comments are skipped unless
// Options asked for them. After the end of input it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		if lx.cursor.EOF() {
			return lx.emit(token.Token{Kind: token.EOF, Span: lx.EmptySpan()})
		}

		ch := lx.cursor.Peek()

		switch {
		case isSpace(ch):
			tok := lx.scanWhitespace()
			if lx.opts.EmitWhitespace {
				return lx.emit(tok)
			}

		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			tok := lx.scanLineComment()
			if lx.opts.EmitComments {
				return lx.emit(tok)
			}

		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			tok := lx.scanBlockComment()
			if lx.opts.EmitComments || tok.Kind == token.Invalid {
				return lx.emit(tok)
			}

		case isAlpha(ch):
			return lx.emit(lx.scanIdentOrKeyword())

		case isDec(ch):
			return lx.emit(lx.scanNumber())

		case ch == '"':
			return lx.emit(lx.scanString())

		case ch == '\'':
			return lx.emit(lx.scanChar())

		default:
			return lx.emit(lx.scanOperatorOrPunct())
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// TokenizeAll drains the lexer, returning every token including the final
// EOF.
func (lx *Lexer) TokenizeAll() []token.Token {
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Whitespace, Span: sp, Text: lx.lexeme(sp)}
}

func (lx *Lexer) emit(tok token.Token) token.Token {
	if lx.opts.Trace != nil {
		lc := lx.file.LineColAt(tok.Span.Start)
		fmt.Fprintf(lx.opts.Trace, "[%d:%d] %s(%q)\n", lc.Line, lc.Col, tok.Kind, tok.Text)
	}
	return tok
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
