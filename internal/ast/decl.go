package ast

import (
	"dacite/internal/source"
)

type DeclKind uint8

const (
	DeclPackage DeclKind = iota
	DeclFn
)

// Decl is a top-level declaration header; kind-specific fields live in the
// payload arenas.
type Decl struct {
	Kind    DeclKind
	Span    source.Span
	Payload PayloadID
}

// PackageDeclData carries the declared package name.
type PackageDeclData struct {
	Name source.StringID
}

// FnDeclData carries a function declaration. Params is syntactically
// required to be empty for now but keeps its slot for when parameters
// arrive.
type FnDeclData struct {
	Name       source.StringID
	Params     []DeclID
	ReturnType TypeID
	Body       StmtID
}

// Decls manages allocation of declarations.
type Decls struct {
	Arena    *Arena[Decl]
	Packages *Arena[PackageDeclData]
	Fns      *Arena[FnDeclData]
}

func NewDecls(capHint uint) *Decls {
	return &Decls{
		Arena:    NewArena[Decl](capHint),
		Packages: NewArena[PackageDeclData](capHint),
		Fns:      NewArena[FnDeclData](capHint),
	}
}

func (d *Decls) new(kind DeclKind, span source.Span, payload PayloadID) DeclID {
	return DeclID(d.Arena.Allocate(Decl{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}

// NewPackage creates a package declaration.
func (d *Decls) NewPackage(span source.Span, name source.StringID) DeclID {
	payload := d.Packages.Allocate(PackageDeclData{Name: name})
	return d.new(DeclPackage, span, PayloadID(payload))
}

// Package returns the package data for the given declaration ID.
func (d *Decls) Package(id DeclID) (*PackageDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclPackage {
		return nil, false
	}
	return d.Packages.Get(uint32(decl.Payload)), true
}

// NewFn creates a function declaration.
func (d *Decls) NewFn(span source.Span, name source.StringID, returnType TypeID, body StmtID) DeclID {
	payload := d.Fns.Allocate(FnDeclData{
		Name:       name,
		ReturnType: returnType,
		Body:       body,
	})
	return d.new(DeclFn, span, PayloadID(payload))
}

// Fn returns the function data for the given declaration ID.
func (d *Decls) Fn(id DeclID) (*FnDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclFn {
		return nil, false
	}
	return d.Fns.Get(uint32(decl.Payload)), true
}
