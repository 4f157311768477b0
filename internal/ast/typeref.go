package ast

import (
	"dacite/internal/source"
)

// TypeRef is a named type annotation, e.g. the `void` in `fn main() void`.
// There is no type checker yet; the name is kept verbatim.
type TypeRef struct {
	Span source.Span
	Name source.StringID
}

type Types struct {
	Arena *Arena[TypeRef]
}

func NewTypes(capHint uint) *Types {
	return &Types{
		Arena: NewArena[TypeRef](capHint),
	}
}

func (t *Types) New(span source.Span, name source.StringID) TypeID {
	return TypeID(t.Arena.Allocate(TypeRef{Span: span, Name: name}))
}

func (t *Types) Get(id TypeID) *TypeRef {
	return t.Arena.Get(uint32(id))
}
