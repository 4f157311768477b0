package bytecode

import (
	"fmt"
	"strings"

	"dacite/internal/value"
)

// Chunk is one compiled unit: raw code bytes plus the constant pool they
// index into.
type Chunk struct {
	code      []byte
	constants []value.Value
}

func NewChunk() *Chunk {
	return &Chunk{}
}

func (c *Chunk) WriteByte(b byte) {
	c.code = append(c.code, b)
}

func (c *Chunk) WriteOp(op Op) {
	c.WriteByte(byte(op))
}

// AddConstant appends v to the pool and returns its index. The pool is
// append-only; the caller checks the index against the operand-byte range.
func (c *Chunk) AddConstant(v value.Value) int {
	c.constants = append(c.constants, v)
	return len(c.constants) - 1
}

// Constant returns the pool entry at index, or an error when the index is
// out of range.
func (c *Chunk) Constant(index int) (value.Value, error) {
	if index < 0 || index >= len(c.constants) {
		return value.Value{}, fmt.Errorf("constant index %d out of range (pool size %d)", index, len(c.constants))
	}
	return c.constants[index], nil
}

// Code returns the raw code bytes. Callers must not mutate the slice.
func (c *Chunk) Code() []byte {
	return c.code
}

// Constants returns the constant pool. Callers must not mutate the slice.
func (c *Chunk) Constants() []value.Value {
	return c.constants
}

// Clear empties the chunk for reuse.
func (c *Chunk) Clear() {
	c.code = c.code[:0]
	c.constants = c.constants[:0]
}

// Disassemble renders the chunk one instruction per line, operands inline.
// A truncated trailing instruction is rendered as such rather than
// breaking the dump.
func (c *Chunk) Disassemble(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s ==\n", name)

	for offset := 0; offset < len(c.code); {
		op := Op(c.code[offset])
		fmt.Fprintf(&b, "%04d %s", offset, op)

		if !op.HasOperand() {
			b.WriteByte('\n')
			offset++
			continue
		}

		if offset+1 >= len(c.code) {
			b.WriteString(" <missing operand>\n")
			offset++
			continue
		}
		idx := int(c.code[offset+1])
		fmt.Fprintf(&b, " %d", idx)
		if v, err := c.Constant(idx); err == nil {
			fmt.Fprintf(&b, " (%s)", v)
		} else {
			b.WriteString(" (<bad index>)")
		}
		b.WriteByte('\n')
		offset += 2
	}

	return b.String()
}
