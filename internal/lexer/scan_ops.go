package lexer

import (
	"fmt"

	"dacite/internal/diag"
	"dacite/internal/token"
)

// scanOperatorOrPunct applies longest-match: two-byte operators are tried
// before single-byte ones. Operator tokens carry no text; the kind is
// enough.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case '+':
		kind = lx.pick('=', token.PlusAssign, token.Plus)
	case '-':
		switch {
		case lx.cursor.Eat('='):
			kind = token.MinusAssign
		case lx.cursor.Eat('>'):
			kind = token.Arrow
		default:
			kind = token.Minus
		}
	case '*':
		kind = lx.pick('=', token.StarAssign, token.Star)
	case '/':
		kind = lx.pick('=', token.SlashAssign, token.Slash)
	case '%':
		kind = lx.pick('=', token.PercentAssign, token.Percent)
	case '=':
		kind = lx.pick('=', token.EqEq, token.Assign)
	case '!':
		kind = lx.pick('=', token.BangEq, token.Bang)
	case '<':
		kind = lx.pick('=', token.LtEq, token.Lt)
	case '>':
		kind = lx.pick('=', token.GtEq, token.Gt)
	case '&':
		if lx.cursor.Eat('&') {
			kind = token.AndAnd
		} else {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexLoneAmp, sp, "unexpected character '&' (did you mean '&&'?)")
			return token.Token{Kind: token.Invalid, Span: sp, Text: "&"}
		}
	case '|':
		if lx.cursor.Eat('|') {
			kind = token.OrOr
		} else {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexLonePipe, sp, "unexpected character '|' (did you mean '||'?)")
			return token.Token{Kind: token.Invalid, Span: sp, Text: "|"}
		}
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case ':':
		kind = token.Colon
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnexpectedChar, sp, fmt.Sprintf("unexpected character %q", rune(ch)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.lexeme(sp)}
	}

	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}
}

// pick consumes next and returns two-byte kind two when it matches, one
// otherwise.
func (lx *Lexer) pick(next byte, two, one token.Kind) token.Kind {
	if lx.cursor.Eat(next) {
		return two
	}
	return one
}
