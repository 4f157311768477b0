package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token; its Text carries the message.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwVoid represents the 'void' keyword.
	KwVoid // void
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false

	// IntLit represents an integer literal in any radix; Text keeps the
	// lexeme exactly as written, prefix included.
	IntLit
	// FloatLit represents a float literal.
	FloatLit
	// StringLit represents a string literal; Text holds the decoded value.
	StringLit
	// CharLit represents a character literal; Text holds the decoded value.
	CharLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// Bang represents the logical-not operator token.
	Bang // !
	// Arrow represents the arrow operator token.
	Arrow // ->

	// Semicolon represents the ';' punctuation token.
	Semicolon // ;
	// Comma represents the ',' punctuation token.
	Comma // ,
	// Dot represents the '.' punctuation token.
	Dot // .
	// Colon represents the ':' punctuation token.
	Colon // :
	// LParen represents the '(' punctuation token.
	LParen // (
	// RParen represents the ')' punctuation token.
	RParen // )
	// LBrace represents the '{' punctuation token.
	LBrace // {
	// RBrace represents the '}' punctuation token.
	RBrace // }
	// LBracket represents the '[' punctuation token.
	LBracket // [
	// RBracket represents the ']' punctuation token.
	RBracket // ]

	// LineComment represents a '//' comment; emitted only on request.
	LineComment
	// BlockComment represents a '/* */' comment; emitted only on request.
	BlockComment
	// Whitespace represents a run of blanks; emitted only on request.
	Whitespace
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	KwPackage:     "KwPackage",
	KwFn:          "KwFn",
	KwVoid:        "KwVoid",
	KwReturn:      "KwReturn",
	KwIf:          "KwIf",
	KwElse:        "KwElse",
	KwWhile:       "KwWhile",
	KwFor:         "KwFor",
	KwTrue:        "KwTrue",
	KwFalse:       "KwFalse",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	StringLit:     "StringLit",
	CharLit:       "CharLit",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Assign:        "Assign",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	EqEq:          "EqEq",
	BangEq:        "BangEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	Bang:          "Bang",
	Arrow:         "Arrow",
	Semicolon:     "Semicolon",
	Comma:         "Comma",
	Dot:           "Dot",
	Colon:         "Colon",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LineComment:   "LineComment",
	BlockComment:  "BlockComment",
	Whitespace:    "Whitespace",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
