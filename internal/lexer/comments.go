package lexer

import (
	"dacite/internal/diag"
	"dacite/internal/token"
)

// scanLineComment consumes "//" through the end of the line, excluding the
// newline itself.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.LineComment, Span: sp, Text: lx.lexeme(sp)}
}

// scanBlockComment consumes "/*" through the matching "*/". Block comments
// do not nest. Hitting EOF first yields an Invalid token.
func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'

	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.BlockComment, Span: sp, Text: lx.lexeme(sp)}
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
}
