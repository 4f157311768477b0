package ast

import (
	"dacite/internal/source"
)

type Hints struct{ Programs, Decls, Stmts, Exprs uint }

// Builder owns every arena of one parse. Node IDs are only meaningful
// together with the builder that produced them.
type Builder struct {
	Programs *Programs
	Decls    *Decls
	Stmts    *Stmts
	Exprs    *Exprs
	Types    *Types
	Strings  *source.Interner
}

func NewBuilder(hints Hints) *Builder {
	if hints.Programs == 0 {
		hints.Programs = 1
	}
	if hints.Decls == 0 {
		hints.Decls = 1 << 4
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 6
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 7
	}
	return &Builder{
		Programs: NewPrograms(hints.Programs),
		Decls:    NewDecls(hints.Decls),
		Stmts:    NewStmts(hints.Stmts),
		Exprs:    NewExprs(hints.Exprs),
		Types:    NewTypes(hints.Decls),
		Strings:  source.NewInterner(),
	}
}

func (b *Builder) NewProgram(sp source.Span) ProgramID {
	return b.Programs.New(sp)
}

// SetPackage records the package declaration of a program.
func (b *Builder) SetPackage(program ProgramID, decl DeclID) {
	b.Programs.Get(program).Package = decl
}

// PushDecl appends a declaration to a program.
func (b *Builder) PushDecl(program ProgramID, decl DeclID) {
	p := b.Programs.Get(program)
	p.Decls = append(p.Decls, decl)
}

// Intern is a convenience passthrough to the string interner.
func (b *Builder) Intern(s string) source.StringID {
	return b.Strings.Intern(s)
}
