package ast

// Node handles. All IDs are 1-based arena indices; 0 means "no node".
type (
	ProgramID uint32
	DeclID    uint32
	StmtID    uint32
	ExprID    uint32
	TypeID    uint32

	PayloadID uint32
)

const (
	NoProgramID ProgramID = 0
	NoDeclID    DeclID    = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoTypeID    TypeID    = 0
	NoPayloadID PayloadID = 0
)

func (id ProgramID) IsValid() bool { return id != NoProgramID }
func (id DeclID) IsValid() bool    { return id != NoDeclID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id TypeID) IsValid() bool    { return id != NoTypeID }
