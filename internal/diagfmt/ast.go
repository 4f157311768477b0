package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"dacite/internal/ast"
)

// DumpAST writes an indented tree of program, one node per line.
func DumpAST(w io.Writer, b *ast.Builder, program ast.ProgramID) {
	p := b.Programs.Get(program)
	if p == nil {
		fmt.Fprintln(w, "Program <invalid>")
		return
	}
	fmt.Fprintln(w, "Program")

	if p.Package.IsValid() {
		if pkg, ok := b.Decls.Package(p.Package); ok {
			fmt.Fprintf(w, "  PackageDecl %s\n", b.Strings.MustLookup(pkg.Name))
		}
	}
	for _, decl := range p.Decls {
		dumpDecl(w, b, decl, 1)
	}
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func dumpDecl(w io.Writer, b *ast.Builder, id ast.DeclID, depth int) {
	decl := b.Decls.Get(id)
	switch decl.Kind {
	case ast.DeclPackage:
		pkg, _ := b.Decls.Package(id)
		fmt.Fprintf(w, "%sPackageDecl %s\n", indent(depth), b.Strings.MustLookup(pkg.Name))
	case ast.DeclFn:
		fn, _ := b.Decls.Fn(id)
		ret := "?"
		if ty := b.Types.Get(fn.ReturnType); ty != nil {
			ret = b.Strings.MustLookup(ty.Name)
		}
		fmt.Fprintf(w, "%sFnDecl %s() %s\n", indent(depth), b.Strings.MustLookup(fn.Name), ret)
		if fn.Body.IsValid() {
			dumpStmt(w, b, fn.Body, depth+1)
		}
	}
}

func dumpStmt(w io.Writer, b *ast.Builder, id ast.StmtID, depth int) {
	stmt := b.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtBlock:
		block, _ := b.Stmts.Block(id)
		fmt.Fprintf(w, "%sBlock\n", indent(depth))
		for _, s := range block.Stmts {
			dumpStmt(w, b, s, depth+1)
		}
	case ast.StmtReturn:
		ret, _ := b.Stmts.Return(id)
		fmt.Fprintf(w, "%sReturn\n", indent(depth))
		if ret.Expr.IsValid() {
			dumpExpr(w, b, ret.Expr, depth+1)
		}
	}
}

func dumpExpr(w io.Writer, b *ast.Builder, id ast.ExprID, depth int) {
	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIntLit:
		lit, _ := b.Exprs.IntLit(id)
		fmt.Fprintf(w, "%sIntLit %s\n", indent(depth), b.Strings.MustLookup(lit.Text))
	case ast.ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		fmt.Fprintf(w, "%sBinary %s\n", indent(depth), bin.Op)
		dumpExpr(w, b, bin.Left, depth+1)
		dumpExpr(w, b, bin.Right, depth+1)
	}
}

type jsonNode struct {
	Node     string     `json:"node"`
	Name     string     `json:"name,omitempty"`
	Type     string     `json:"type,omitempty"`
	Op       string     `json:"op,omitempty"`
	Text     string     `json:"text,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

// DumpASTJSON writes the tree of program as indented JSON.
func DumpASTJSON(w io.Writer, b *ast.Builder, program ast.ProgramID) error {
	p := b.Programs.Get(program)
	if p == nil {
		return fmt.Errorf("invalid program id %d", program)
	}
	root := jsonNode{Node: "Program"}
	if p.Package.IsValid() {
		if pkg, ok := b.Decls.Package(p.Package); ok {
			root.Children = append(root.Children, jsonNode{
				Node: "PackageDecl",
				Name: b.Strings.MustLookup(pkg.Name),
			})
		}
	}
	for _, decl := range p.Decls {
		root.Children = append(root.Children, jsonDecl(b, decl))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(root)
}

func jsonDecl(b *ast.Builder, id ast.DeclID) jsonNode {
	decl := b.Decls.Get(id)
	switch decl.Kind {
	case ast.DeclPackage:
		pkg, _ := b.Decls.Package(id)
		return jsonNode{Node: "PackageDecl", Name: b.Strings.MustLookup(pkg.Name)}
	case ast.DeclFn:
		fn, _ := b.Decls.Fn(id)
		node := jsonNode{Node: "FnDecl", Name: b.Strings.MustLookup(fn.Name)}
		if ty := b.Types.Get(fn.ReturnType); ty != nil {
			node.Type = b.Strings.MustLookup(ty.Name)
		}
		if fn.Body.IsValid() {
			node.Children = append(node.Children, jsonStmt(b, fn.Body))
		}
		return node
	}
	return jsonNode{Node: "Decl"}
}

func jsonStmt(b *ast.Builder, id ast.StmtID) jsonNode {
	stmt := b.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtBlock:
		block, _ := b.Stmts.Block(id)
		node := jsonNode{Node: "Block"}
		for _, s := range block.Stmts {
			node.Children = append(node.Children, jsonStmt(b, s))
		}
		return node
	case ast.StmtReturn:
		ret, _ := b.Stmts.Return(id)
		node := jsonNode{Node: "Return"}
		if ret.Expr.IsValid() {
			node.Children = append(node.Children, jsonExpr(b, ret.Expr))
		}
		return node
	}
	return jsonNode{Node: "Stmt"}
}

func jsonExpr(b *ast.Builder, id ast.ExprID) jsonNode {
	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprIntLit:
		lit, _ := b.Exprs.IntLit(id)
		return jsonNode{Node: "IntLit", Text: b.Strings.MustLookup(lit.Text)}
	case ast.ExprBinary:
		bin, _ := b.Exprs.Binary(id)
		return jsonNode{
			Node:     "Binary",
			Op:       bin.Op.String(),
			Children: []jsonNode{jsonExpr(b, bin.Left), jsonExpr(b, bin.Right)},
		}
	}
	return jsonNode{Node: "Expr"}
}
