package lexer

import (
	"io"

	"dacite/internal/diag"
	"dacite/internal/source"
)

// Options configures a Lexer. The zero value skips trivia and drops
// diagnostics.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil, in which case
	// errors are dropped but lexing continues.
	Reporter diag.Reporter
	// EmitWhitespace makes Next return whitespace runs as tokens instead
	// of skipping them.
	EmitWhitespace bool
	// EmitComments makes Next return comment tokens instead of skipping
	// them.
	EmitComments bool
	// Trace, when non-nil, receives a human-readable line per produced
	// token.
	Trace io.Writer
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
