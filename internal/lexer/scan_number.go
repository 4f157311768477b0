package lexer

import (
	"dacite/internal/token"
)

// scanNumber handles 0, 123, 0x1F, 0b101, 07 and decimal floats (1.5).
// Digit validity against the radix is not enforced here: "0x" with no
// digits or an out-of-range octal digit ends the token, and the compiler
// rejects the text when it fails to parse.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			return lx.numberToken(start, kind)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for lx.cursor.Peek() == '0' || lx.cursor.Peek() == '1' {
				lx.cursor.Bump()
			}
			return lx.numberToken(start, kind)
		}
		if isDec(lx.cursor.PeekAt(1)) {
			// Octal. Scanning stops at the first digit >= '8', so "089"
			// lexes as "0" followed by "89".
			lx.cursor.Bump()
			for isDec(lx.cursor.Peek()) && lx.cursor.Peek() < '8' {
				lx.cursor.Bump()
			}
			return lx.numberToken(start, kind)
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// A '.' followed by a digit reclassifies the literal as a float.
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.numberToken(start, kind)
}

func (lx *Lexer) numberToken(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.lexeme(sp)}
}
