package token

var keywords = map[string]Kind{
	"package": KwPackage,
	"fn":      KwFn,
	"void":    KwVoid,
	"return":  KwReturn,
	"if":      KwIf,
	"else":    KwElse,
	"while":   KwWhile,
	"for":     KwFor,
	"true":    KwTrue,
	"false":   KwFalse,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only the lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
