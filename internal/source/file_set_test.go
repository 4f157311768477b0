package source

import (
	"testing"
)

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.dt", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.dt", []byte("package main;"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.dt", []byte("package other;"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}

	latest, ok := fs.GetLatest("test.dt")
	if !ok || latest != id2 {
		t.Errorf("expected latest ID %d, got %d (ok=%v)", id2, latest, ok)
	}

	if string(fs.Get(id1).Content) != "package main;" {
		t.Error("first version should remain addressable")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.dt", []byte("ab\ncd\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline belongs to line 1
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tt := range tests {
		got, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if got != tt.want {
			t.Errorf("Resolve(off=%d): expected %+v, got %+v", tt.off, tt.want, got)
		}
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	content, changed := normalizeCRLF([]byte("a\r\nb"))
	if !changed {
		t.Fatal("expected CRLF normalization to report a change")
	}
	if string(content) != "a\nb" {
		t.Errorf("expected %q, got %q", "a\nb", string(content))
	}

	_, changed = normalizeCRLF([]byte("a\nb"))
	if changed {
		t.Error("expected no change without \\r")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.dt", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d): expected %q, got %q", tt.line, tt.want, got)
		}
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()

	id1 := in.Intern("main")
	id2 := in.Intern("main")
	if id1 != id2 {
		t.Errorf("expected stable IDs, got %d and %d", id1, id2)
	}

	id3 := in.Intern("other")
	if id3 == id1 {
		t.Error("distinct strings must get distinct IDs")
	}

	if s := in.MustLookup(id1); s != "main" {
		t.Errorf("expected %q, got %q", "main", s)
	}
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Error("expected lookup of unknown ID to fail")
	}
	if in.Intern("") != NoStringID {
		t.Error("empty string must map to NoStringID")
	}
}
