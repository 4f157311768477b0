// Package value defines the runtime value representation shared by the
// compiler's constant pool and the VM stack.
package value

import (
	"fmt"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	Nil Kind = iota
	Int
	Bool
	// Function is reserved for when functions become first-class; no
	// constructor exists yet.
	Function
)

var kindNames = [...]string{
	Nil:      "nil",
	Int:      "integer",
	Bool:     "boolean",
	Function: "function",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Value is a closed tagged union. The zero value is nil.
type Value struct {
	kind Kind
	i    int32
	b    bool
}

func NewNil() Value {
	return Value{kind: Nil}
}

func NewInt(i int32) Value {
	return Value{kind: Int, i: i}
}

func NewBool(b bool) Value {
	return Value{kind: Bool, b: b}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNil() bool {
	return v.kind == Nil
}

func (v Value) IsInt() bool {
	return v.kind == Int
}

func (v Value) IsBool() bool {
	return v.kind == Bool
}

// AsInt returns the integer payload, or an error when the value holds a
// different variant. Wrong-variant access is an expected condition, not a
// panic.
func (v Value) AsInt() (int32, error) {
	if v.kind != Int {
		return 0, fmt.Errorf("value is %s, not integer", v.kind)
	}
	return v.i, nil
}

// AsBool returns the boolean payload, or an error on a wrong variant.
func (v Value) AsBool() (bool, error) {
	if v.kind != Bool {
		return false, fmt.Errorf("value is %s, not boolean", v.kind)
	}
	return v.b, nil
}

// Equal is structural equality. Values of different kinds are never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Nil:
		return true
	case Int:
		return v.i == other.i
	case Bool:
		return v.b == other.b
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case Nil:
		return "nil"
	case Int:
		return strconv.FormatInt(int64(v.i), 10)
	case Bool:
		return strconv.FormatBool(v.b)
	default:
		return "<" + v.kind.String() + ">"
	}
}
