package ast_test

import (
	"testing"

	"dacite/internal/ast"
	"dacite/internal/source"
)

func TestArenaIDsAreOneBased(t *testing.T) {
	a := ast.NewArena[int](4)
	if got := a.Allocate(10); got != 1 {
		t.Fatalf("first Allocate = %d, want 1", got)
	}
	if got := a.Allocate(20); got != 2 {
		t.Fatalf("second Allocate = %d, want 2", got)
	}
	if a.Get(0) != nil {
		t.Error("Get(0) should be nil")
	}
	if a.Get(3) != nil {
		t.Error("Get past end should be nil")
	}
	if v := a.Get(2); v == nil || *v != 20 {
		t.Errorf("Get(2) = %v, want 20", v)
	}
	if a.Len() != 2 {
		t.Errorf("Len = %d, want 2", a.Len())
	}
}

func TestBuilderRoundTrip(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})

	sp := func(start, end uint32) source.Span {
		return source.Span{Start: start, End: end}
	}

	program := b.NewProgram(sp(0, 40))
	pkg := b.Decls.NewPackage(sp(0, 13), b.Intern("main"))
	b.SetPackage(program, pkg)

	lit := b.Exprs.NewIntLit(sp(30, 31), b.Intern("3"))
	ret := b.Stmts.NewReturn(sp(23, 32), lit)
	body := b.Stmts.NewBlock(sp(21, 34), []ast.StmtID{ret})
	voidTy := b.Types.New(sp(16, 20), b.Intern("void"))
	fn := b.Decls.NewFn(sp(14, 34), b.Intern("main"), voidTy, body)
	b.PushDecl(program, fn)

	p := b.Programs.Get(program)
	if !p.Package.IsValid() {
		t.Fatal("program lost its package decl")
	}
	pkgData, ok := b.Decls.Package(p.Package)
	if !ok || b.Strings.MustLookup(pkgData.Name) != "main" {
		t.Fatalf("package decl mismatch: %+v", pkgData)
	}

	if len(p.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(p.Decls))
	}
	fnData, ok := b.Decls.Fn(p.Decls[0])
	if !ok {
		t.Fatal("fn decl payload missing")
	}
	if b.Strings.MustLookup(fnData.Name) != "main" {
		t.Errorf("fn name = %q", b.Strings.MustLookup(fnData.Name))
	}
	if len(fnData.Params) != 0 {
		t.Errorf("params should be empty, got %v", fnData.Params)
	}
	if ty := b.Types.Get(fnData.ReturnType); ty == nil || b.Strings.MustLookup(ty.Name) != "void" {
		t.Error("return type lost")
	}

	block, ok := b.Stmts.Block(fnData.Body)
	if !ok || len(block.Stmts) != 1 {
		t.Fatalf("body block mismatch: %+v", block)
	}
	retData, ok := b.Stmts.Return(block.Stmts[0])
	if !ok || !retData.Expr.IsValid() {
		t.Fatalf("return stmt mismatch: %+v", retData)
	}
	litData, ok := b.Exprs.IntLit(retData.Expr)
	if !ok || b.Strings.MustLookup(litData.Text) != "3" {
		t.Fatalf("int literal mismatch: %+v", litData)
	}
}

func TestKindMismatchAccessors(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{})
	lit := b.Exprs.NewIntLit(source.Span{}, b.Intern("1"))

	if _, ok := b.Exprs.Binary(lit); ok {
		t.Error("Binary accessor accepted an int literal")
	}
	if _, ok := b.Exprs.IntLit(ast.NoExprID); ok {
		t.Error("IntLit accessor accepted the invalid ID")
	}
}

func TestBinaryOpString(t *testing.T) {
	cases := map[ast.BinaryOp]string{
		ast.BinAdd:       "+",
		ast.BinDiv:       "/",
		ast.BinEq:        "==",
		ast.BinNotEq:     "!=",
		ast.BinLessEq:    "<=",
		ast.BinGreaterEq: ">=",
	}
	for op, want := range cases {
		if op.String() != want {
			t.Errorf("%d.String() = %q, want %q", op, op.String(), want)
		}
	}
}
