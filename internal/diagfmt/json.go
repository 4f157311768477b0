package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"dacite/internal/diag"
	"dacite/internal/source"
)

type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Path     string `json:"path"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
	EndLine  uint32 `json:"endLine"`
	EndCol   uint32 `json:"endCol"`
}

// JSON writes the bag as one JSON array, one object per diagnostic.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		file := fs.Get(d.Primary.File)
		start, end := fs.Resolve(d.Primary)
		out = append(out, jsonDiagnostic{
			Severity: strings.ToLower(d.Severity.String()),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Path:     file.Path,
			Line:     start.Line,
			Col:      start.Col,
			EndLine:  end.Line,
			EndCol:   end.Col,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
