package parser_test

import (
	"testing"

	"dacite/internal/ast"
	"dacite/internal/diag"
	"dacite/internal/lexer"
	"dacite/internal/parser"
	"dacite/internal/source"
)

func parseSource(t *testing.T, input string) (*ast.Builder, parser.Result) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.dt", []byte(input))

	bag := diag.NewBag(64)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	arenas := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, arenas, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return arenas, res
}

// soleFn digs out the single function declaration of a parsed program.
func soleFn(t *testing.T, b *ast.Builder, res parser.Result) *ast.FnDeclData {
	t.Helper()
	program := b.Programs.Get(res.Program)
	if len(program.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(program.Decls))
	}
	fn, ok := b.Decls.Fn(program.Decls[0])
	if !ok {
		t.Fatal("sole decl is not a function")
	}
	return fn
}

// returnExpr digs out the expression of the first return statement in the
// function body.
func returnExpr(t *testing.T, b *ast.Builder, fn *ast.FnDeclData) ast.ExprID {
	t.Helper()
	block, ok := b.Stmts.Block(fn.Body)
	if !ok || len(block.Stmts) == 0 {
		t.Fatalf("function body mismatch: %+v", block)
	}
	ret, ok := b.Stmts.Return(block.Stmts[0])
	if !ok {
		t.Fatal("first statement is not a return")
	}
	return ret.Expr
}

func TestParseMinimalProgram(t *testing.T) {
	b, res := parseSource(t, "package main; fn main() i32 { return 3; }")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}

	program := b.Programs.Get(res.Program)
	if !program.Package.IsValid() {
		t.Fatal("package decl missing")
	}
	pkg, ok := b.Decls.Package(program.Package)
	if !ok || b.Strings.MustLookup(pkg.Name) != "main" {
		t.Fatalf("package name mismatch: %+v", pkg)
	}

	fn := soleFn(t, b, res)
	if b.Strings.MustLookup(fn.Name) != "main" {
		t.Errorf("fn name = %q", b.Strings.MustLookup(fn.Name))
	}
	if len(fn.Params) != 0 {
		t.Errorf("params = %v, want empty", fn.Params)
	}
	ty := b.Types.Get(fn.ReturnType)
	if ty == nil || b.Strings.MustLookup(ty.Name) != "i32" {
		t.Error("return type mismatch")
	}

	lit, ok := b.Exprs.IntLit(returnExpr(t, b, soleFn(t, b, res)))
	if !ok || b.Strings.MustLookup(lit.Text) != "3" {
		t.Fatalf("return literal mismatch: %+v", lit)
	}
}

func TestParseVoidReturnType(t *testing.T) {
	b, res := parseSource(t, "fn main() void { return; }")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	fn := soleFn(t, b, res)
	ty := b.Types.Get(fn.ReturnType)
	if b.Strings.MustLookup(ty.Name) != "void" {
		t.Errorf("return type = %q, want void", b.Strings.MustLookup(ty.Name))
	}
	if expr := returnExpr(t, b, fn); expr != ast.NoExprID {
		t.Errorf("bare return carries expr %v", expr)
	}
}

func TestParsePackageOptional(t *testing.T) {
	b, res := parseSource(t, "fn main() i32 { return 1; }")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if b.Programs.Get(res.Program).Package.IsValid() {
		t.Error("phantom package decl")
	}
}

// exprShape flattens an expression for structural comparison, post-order.
func exprShape(b *ast.Builder, id ast.ExprID) string {
	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIntLit:
		lit, _ := b.Exprs.IntLit(id)
		return b.Strings.MustLookup(lit.Text)
	case ast.ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		return "(" + exprShape(b, bin.Left) + " " + bin.Op.String() + " " + exprShape(b, bin.Right) + ")"
	default:
		return "?"
	}
}

func TestExpressionPrecedence(t *testing.T) {
	cases := []struct {
		expr  string
		shape string
	}{
		{"2 + 3 * 4", "(2 + (3 * 4))"},
		{"2 * 3 + 4", "((2 * 3) + 4)"},
		{"10 - 4 / 2 + 1", "((10 - (4 / 2)) + 1)"},
		{"1 + 2 + 3", "((1 + 2) + 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"5 > 3", "(5 > 3)"},
		{"1 + 2 == 3", "((1 + 2) == 3)"},
		{"1 < 2 == 3", "((1 < 2) == 3)"},
		{"2 <= 1 + 1", "(2 <= (1 + 1))"},
		{"7 != 2 * 4", "(7 != (2 * 4))"},
	}
	for _, tc := range cases {
		b, res := parseSource(t, "fn main() i32 { return "+tc.expr+"; }")
		if res.Bag.HasErrors() {
			t.Errorf("%q: unexpected diagnostics: %v", tc.expr, res.Bag.Items())
			continue
		}
		got := exprShape(b, returnExpr(t, b, soleFn(t, b, res)))
		if got != tc.shape {
			t.Errorf("%q parsed as %s, want %s", tc.expr, got, tc.shape)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"missing package name", "package ; fn main() i32 { return 1; }", diag.SynExpectPackageName},
		{"missing fn name", "fn () i32 { return 1; }", diag.SynExpectFnName},
		{"missing lparen", "fn main i32 { return 1; }", diag.SynExpectLParen},
		{"missing rparen", "fn main( i32 { return 1; }", diag.SynExpectRParen},
		{"missing type", "fn main() { return 1; }", diag.SynExpectType},
		{"missing lbrace", "fn main() i32 return 1; }", diag.SynExpectLBrace},
		{"missing rbrace", "fn main() i32 { return 1;", diag.SynExpectRBrace},
		{"missing return semicolon", "fn main() i32 { return 1 }", diag.SynExpectSemicolon},
		{"bad statement", "fn main() i32 { 42; return 1; }", diag.SynExpectStatement},
		{"bad expression", "fn main() i32 { return fn; }", diag.SynExpectExpression},
		{"top-level junk", "42 fn main() i32 { return 1; }", diag.SynUnexpectedTopLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, res := parseSource(t, tc.input)
			if !res.Bag.HasErrors() {
				t.Fatalf("no diagnostics for %q", tc.input)
			}
			found := false
			for _, d := range res.Bag.Items() {
				if d.Code == tc.code {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("missing %s in %v", tc.code.ID(), res.Bag.Items())
			}
			if !res.Program.IsValid() {
				t.Error("Program ID must stay valid on errors")
			}
		})
	}
}

func TestRecoveryAfterMissingPackageSemicolon(t *testing.T) {
	b, res := parseSource(t, "package main fn main() i32 { return 3; }")

	if !res.Bag.HasErrors() {
		t.Fatal("missing semicolon went unreported")
	}
	fn := soleFn(t, b, res)
	lit, ok := b.Exprs.IntLit(returnExpr(t, b, fn))
	if !ok || b.Strings.MustLookup(lit.Text) != "3" {
		t.Fatalf("function did not survive recovery: %+v", lit)
	}
}

func TestRecoveryInsideBlock(t *testing.T) {
	// The junk statement is skipped, the two returns survive.
	b, res := parseSource(t, "fn main() i32 { junk junk; return 1; return 2; }")

	if !res.Bag.HasErrors() {
		t.Fatal("bad statement went unreported")
	}
	fn := soleFn(t, b, res)
	block, _ := b.Stmts.Block(fn.Body)
	if len(block.Stmts) != 2 {
		t.Fatalf("got %d statements after recovery, want 2", len(block.Stmts))
	}
}

func TestMultipleFunctionsParse(t *testing.T) {
	b, res := parseSource(t, "fn a() i32 { return 1; } fn b() i32 { return 2; }")
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if got := len(b.Programs.Get(res.Program).Decls); got != 2 {
		t.Fatalf("got %d decls, want 2", got)
	}
}

func TestMaxErrorsBound(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.dt", []byte("@ @ @ @ @ @ @ @"))

	bag := diag.NewBag(64)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	arenas := ast.NewBuilder(ast.Hints{})
	parser.ParseFile(fs, lx, arenas, parser.Options{MaxErrors: 3, Reporter: diag.BagReporter{Bag: bag}})

	count := 0
	for _, d := range bag.Items() {
		if d.Code.ID()[:3] == "SYN" {
			count++
		}
	}
	if count > 3 {
		t.Errorf("parser reported %d syntax errors, cap is 3", count)
	}
}

func TestMaxErrorsExactBudget(t *testing.T) {
	// A budget of one admits exactly one error, not zero.
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.dt", []byte("@ @ @"))

	bag := diag.NewBag(64)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	arenas := ast.NewBuilder(ast.Hints{})
	parser.ParseFile(fs, lx, arenas, parser.Options{MaxErrors: 1, Reporter: diag.BagReporter{Bag: bag}})

	count := 0
	for _, d := range bag.Items() {
		if d.Code.ID()[:3] == "SYN" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("parser reported %d syntax errors, want exactly 1", count)
	}
}
