package token

import (
	"dacite/internal/source"
)

// Token represents a single source token with its location.
// Text carries the decoded literal value for strings/chars, the raw lexeme
// for identifiers/keywords/numbers/comments, and is empty for pure
// operators and punctuation.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, string, or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwPackage, KwFn, KwVoid, KwReturn, KwIf, KwElse, KwWhile, KwFor, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsTrivia reports whether the token is a comment or whitespace token;
// these appear in the stream only when the lexer is configured to emit them.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case LineComment, BlockComment, Whitespace:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, PlusAssign, MinusAssign,
		StarAssign, SlashAssign, PercentAssign, EqEq, BangEq, Lt, LtEq, Gt,
		GtEq, AndAnd, OrOr, Bang, Arrow, Semicolon, Comma, Dot, Colon,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}
