package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
		ok    bool
	}{
		{"package", KwPackage, true},
		{"fn", KwFn, true},
		{"void", KwVoid, true},
		{"return", KwReturn, true},
		{"if", KwIf, true},
		{"else", KwElse, true},
		{"while", KwWhile, true},
		{"for", KwFor, true},
		{"true", KwTrue, true},
		{"false", KwFalse, true},
		{"main", 0, false},
		{"Return", 0, false}, // case-sensitive
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := LookupKeyword(tt.ident)
		if ok != tt.ok {
			t.Errorf("LookupKeyword(%q): expected ok=%v, got %v", tt.ident, tt.ok, ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("LookupKeyword(%q): expected %v, got %v", tt.ident, tt.want, got)
		}
	}
}

func TestKindString(t *testing.T) {
	if EqEq.String() != "EqEq" {
		t.Errorf("expected EqEq, got %s", EqEq.String())
	}
	if Kind(250).String() != "Kind(?)" {
		t.Errorf("unknown kind must stringify defensively, got %s", Kind(250).String())
	}
}

func TestTokenClassifiers(t *testing.T) {
	if !(Token{Kind: IntLit}).IsLiteral() {
		t.Error("IntLit must classify as literal")
	}
	if !(Token{Kind: KwPackage}).IsKeyword() {
		t.Error("KwPackage must classify as keyword")
	}
	if !(Token{Kind: BlockComment}).IsTrivia() {
		t.Error("BlockComment must classify as trivia")
	}
	if !(Token{Kind: Arrow}).IsPunctOrOp() {
		t.Error("Arrow must classify as operator")
	}
	if (Token{Kind: Ident}).IsKeyword() || (Token{Kind: Ident}).IsLiteral() {
		t.Error("Ident must not classify as keyword or literal")
	}
}
