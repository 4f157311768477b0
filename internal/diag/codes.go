package diag

import (
	"fmt"
)

// Code identifies one diagnostic category. Ranges are reserved per phase:
// 1000s lexer, 2000s parser, 3000s compiler, 4000s VM, 5000s I/O.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnexpectedChar           Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedChar         Code = 1003
	LexEmptyChar                Code = 1004
	LexBadEscape                Code = 1005
	LexUnterminatedBlockComment Code = 1006
	LexLoneAmp                  Code = 1007
	LexLonePipe                 Code = 1008

	// Syntax
	SynInfo               Code = 2000
	SynExpectPackageName  Code = 2001
	SynExpectSemicolon    Code = 2002
	SynExpectFnName       Code = 2003
	SynExpectLParen       Code = 2004
	SynExpectRParen       Code = 2005
	SynExpectLBrace       Code = 2006
	SynExpectRBrace       Code = 2007
	SynExpectType         Code = 2008
	SynExpectStatement    Code = 2009
	SynExpectExpression   Code = 2010
	SynUnexpectedTopLevel Code = 2011

	// Compile
	CmpInfo             Code = 3000
	CmpNoFunctions      Code = 3001
	CmpMultipleFns      Code = 3002
	CmpMissingBody      Code = 3003
	CmpUnsupportedStmt  Code = 3004
	CmpUnsupportedExpr  Code = 3005
	CmpBadIntLiteral    Code = 3006
	CmpTooManyConstants Code = 3007

	// Runtime
	RunInfo  Code = 4000
	RunError Code = 4001

	// I/O
	IOLoadFileError Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnexpectedChar:           "Unexpected character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexEmptyChar:                "Empty character literal",
	LexBadEscape:                "Invalid escape sequence",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexLoneAmp:                  "Invalid character '&'",
	LexLonePipe:                 "Invalid character '|'",
	SynInfo:                     "Syntax information",
	SynExpectPackageName:        "Expected package name",
	SynExpectSemicolon:          "Expected semicolon",
	SynExpectFnName:             "Expected function name",
	SynExpectLParen:             "Expected '('",
	SynExpectRParen:             "Expected ')'",
	SynExpectLBrace:             "Expected '{'",
	SynExpectRBrace:             "Expected '}'",
	SynExpectType:               "Expected type name",
	SynExpectStatement:          "Expected statement",
	SynExpectExpression:         "Expected expression",
	SynUnexpectedTopLevel:       "Unexpected top-level construct",
	CmpInfo:                     "Compile information",
	CmpNoFunctions:              "No functions to compile",
	CmpMultipleFns:              "Multiple functions not yet supported",
	CmpMissingBody:              "Function has no body",
	CmpUnsupportedStmt:          "Unsupported statement",
	CmpUnsupportedExpr:          "Unsupported expression",
	CmpBadIntLiteral:            "Invalid integer literal",
	CmpTooManyConstants:         "Too many constants",
	RunInfo:                     "Runtime information",
	RunError:                    "Runtime error",
	IOLoadFileError:             "Could not load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CMP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("RUN%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
