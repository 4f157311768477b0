package diagfmt_test

import (
	"encoding/json"
	"strings"
	"testing"

	"dacite/internal/diag"
	"dacite/internal/diagfmt"
	"dacite/internal/driver"
	"dacite/internal/source"
)

func TestPrettyOutput(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("main.dt", []byte("package ;\nfn main() i32 { return 1; }"))

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SynExpectPackageName, source.Span{File: fileID, Start: 8, End: 9}, "expected package name after 'package'"))

	var buf strings.Builder
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowSource: true})

	out := buf.String()
	for _, want := range []string{
		"main.dt:1:9",
		"error[SYN2001]",
		"expected package name",
		"package ;",
		"^",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyCaretPlacement(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("x.dt", []byte("return value;"))

	bag := diag.NewBag(8)
	// Span covers "value".
	bag.Add(diag.NewError(diag.SynExpectExpression, source.Span{File: fileID, Start: 7, End: 12}, "expected expression"))

	var buf strings.Builder
	diagfmt.Pretty(&buf, bag, fs, diagfmt.PrettyOpts{ShowSource: true})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output too short:\n%s", buf.String())
	}
	caretLine := lines[2]
	if !strings.Contains(caretLine, "^~~~~") {
		t.Errorf("caret line = %q, want ^~~~~ under the span", caretLine)
	}
	if idx := strings.Index(caretLine, "^"); idx != 4+7 {
		t.Errorf("caret at column %d, want %d", idx, 4+7)
	}
}

func TestJSONOutput(t *testing.T) {
	res := driver.TokenizeBytes("bad.dt", []byte("a & b"), driver.TokenizeOptions{})

	var buf strings.Builder
	if err := diagfmt.JSON(&buf, res.Bag, res.FileSet, diagfmt.JSONOpts{}); err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(decoded))
	}
	d := decoded[0]
	if d["code"] != "LEX1007" || d["severity"] != "error" {
		t.Errorf("diagnostic = %v", d)
	}
	if d["line"] != float64(1) || d["col"] != float64(3) {
		t.Errorf("position = %v:%v, want 1:3", d["line"], d["col"])
	}
}

func TestDumpTokens(t *testing.T) {
	res := driver.TokenizeBytes("t.dt", []byte("return 3;"), driver.TokenizeOptions{})

	var buf strings.Builder
	diagfmt.DumpTokens(&buf, res.Tokens, res.FileSet)

	out := buf.String()
	for _, want := range []string{`KwReturn("return")`, `IntLit("3")`, "Semicolon", "EOF"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpAST(t *testing.T) {
	parsed, err := driver.ParseBytes("p.dt", []byte("package main; fn main() i32 { return 1 + 2; }"), 8)
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	diagfmt.DumpAST(&buf, parsed.Builder, parsed.Program)

	out := buf.String()
	for _, want := range []string{"Program", "PackageDecl main", "FnDecl main() i32", "Block", "Return", "Binary +", "IntLit 1", "IntLit 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("AST dump missing %q:\n%s", want, out)
		}
	}
}
