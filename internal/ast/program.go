package ast

import (
	"dacite/internal/source"
)

// Program is the root node of one source file: an optional package
// declaration plus the function declarations in source order.
type Program struct {
	Span    source.Span
	Package DeclID // NoDeclID when the package clause is missing
	Decls   []DeclID
}

type Programs struct {
	Arena *Arena[Program]
}

func NewPrograms(capHint uint) *Programs {
	return &Programs{
		Arena: NewArena[Program](capHint),
	}
}

func (p *Programs) New(span source.Span) ProgramID {
	return ProgramID(p.Arena.Allocate(Program{Span: span}))
}

func (p *Programs) Get(id ProgramID) *Program {
	return p.Arena.Get(uint32(id))
}
