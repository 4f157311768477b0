package lexer

import (
	"strings"

	"dacite/internal/diag"
	"dacite/internal/token"
)

// scanString consumes a double-quoted literal. Token.Text holds the decoded
// value, not the raw lexeme. A newline or EOF before the closing quote
// yields an Invalid token.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var buf strings.Builder
	bad := false
	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
		}
		ch := lx.cursor.Bump()
		if ch == '"' {
			break
		}
		if ch == '\\' {
			dec, ok := lx.bumpEscape(start)
			if !ok {
				bad = true
				continue
			}
			buf.WriteByte(dec)
			continue
		}
		buf.WriteByte(ch)
	}

	sp := lx.cursor.SpanFrom(start)
	if bad {
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
	}
	return token.Token{Kind: token.StringLit, Span: sp, Text: buf.String()}
}

// scanChar consumes a single-quoted literal holding exactly one character,
// possibly escaped.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	if lx.cursor.Peek() == '\'' {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexEmptyChar, sp, "empty char literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
	}

	var value byte
	bad := false
	if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnterminatedChar, sp, "unterminated char literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
	}
	ch := lx.cursor.Bump()
	if ch == '\\' {
		dec, ok := lx.bumpEscape(start)
		if !ok {
			bad = true
		}
		value = dec
	} else {
		value = ch
	}

	if !lx.cursor.Eat('\'') {
		// Skip ahead to the closing quote or end of line so scanning can
		// resume past the literal.
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\'' && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.cursor.Eat('\'')
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnterminatedChar, sp, "unterminated char literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	if bad {
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
	}
	return token.Token{Kind: token.CharLit, Span: sp, Text: string(value)}
}

// bumpEscape decodes the byte after a backslash. The backslash itself has
// already been consumed.
func (lx *Lexer) bumpEscape(start Mark) (byte, bool) {
	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadEscape, sp, "escape at end of input")
		return 0, false
	}
	ch := lx.cursor.Bump()
	switch ch {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '0':
		return 0, true
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadEscape, sp, "invalid escape sequence '\\"+string(ch)+"'")
		return 0, false
	}
}
