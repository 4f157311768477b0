// Package diagfmt renders diagnostics and pipeline artifacts for the CLI:
// pretty terminal output, JSON, token dumps and AST dumps.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"dacite/internal/diag"
	"dacite/internal/source"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow, color.Bold)
	infoColor  = color.New(color.FgCyan, color.Bold)
	locColor   = color.New(color.Bold)
	caretColor = color.New(color.FgGreen)
)

// Pretty writes every diagnostic in bag as
//
//	<path>:<line>:<col>: <severity>[<code>]: <message>
//	    <source line>
//	    ^~~~
//
// Call bag.Sort() first when stable ordering matters.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printDiagnostic(w, d, fs, opts)
	}
}

func printDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	loc := fmt.Sprintf("%s:%d:%d", file.Path, start.Line, start.Col)
	sev := severityLabel(d.Severity, opts.Color)
	if opts.Color {
		loc = locColor.Sprint(loc)
	}

	fmt.Fprintf(w, "%s: %s[%s]: %s\n", loc, sev, d.Code.ID(), d.Message)

	if opts.ShowSource {
		printContext(w, file, d.Primary, opts)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", file.Path, nStart.Line, nStart.Col, n.Msg)
		}
	}
}

// printContext shows the first line the span touches with a caret
// underline. Multi-line spans are truncated to their first line.
func printContext(w io.Writer, file *source.File, sp source.Span, opts PrettyOpts) {
	start := file.LineColAt(sp.Start)
	line := file.GetLine(start.Line)
	if line == "" && sp.Start >= uint32(len(file.Content)) {
		return
	}

	fmt.Fprintf(w, "    %s\n", line)

	width := int(sp.Len())
	lineRemainder := len(line) - int(start.Col) + 1
	if width > lineRemainder {
		width = lineRemainder
	}
	if width < 1 {
		width = 1
	}
	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = caretColor.Sprint(marker)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", int(start.Col)-1), marker)
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := strings.ToLower(sev.String())
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(label)
	case diag.SevWarning:
		return warnColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}
