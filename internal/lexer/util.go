package lexer

import "dacite/internal/source"

// ASCII classifiers. Source files are expected to be ASCII; any byte
// outside these classes falls through to the operator scanner, which
// reports it as unexpected.

func isAlpha(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isAlnum(b byte) bool {
	return isAlpha(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHex(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// lexeme returns the raw source text covered by sp.
func (lx *Lexer) lexeme(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
