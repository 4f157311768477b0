package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"dacite/internal/source"
	"dacite/internal/token"
)

// DumpTokens writes one line per token: position, kind and, where the
// kind alone is not enough, the text.
func DumpTokens(w io.Writer, tokens []token.Token, fs *source.FileSet) {
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		if tok.Text != "" {
			fmt.Fprintf(w, "%4d:%-3d %s(%q)\n", start.Line, start.Col, tok.Kind, tok.Text)
		} else {
			fmt.Fprintf(w, "%4d:%-3d %s\n", start.Line, start.Col, tok.Kind)
		}
	}
}

type jsonToken struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// DumpTokensJSON writes the token stream as an indented JSON array.
func DumpTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	out := make([]jsonToken, 0, len(tokens))
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		out = append(out, jsonToken{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: start.Line,
			Col:  start.Col,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
