// Package bytecode defines the instruction set and the Chunk container the
// compiler emits into and the VM executes.
package bytecode

// Op is a one-byte instruction tag. The numeric encoding is part of the
// chunk format; new opcodes go at the end.
type Op byte

const (
	// OpConstant loads constants[operand] and pushes it. One operand byte.
	OpConstant Op = iota
	// OpReturn ends execution, leaving the returned value on the stack.
	OpReturn

	// Arithmetic. Each pops two integers and pushes the integer result.
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide

	// Comparisons. Equality pops any two values; orderings pop two
	// integers. All push a boolean.
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

var opNames = [...]string{
	OpConstant:     "CONSTANT",
	OpReturn:       "RETURN",
	OpAdd:          "ADD",
	OpSubtract:     "SUBTRACT",
	OpMultiply:     "MULTIPLY",
	OpDivide:       "DIVIDE",
	OpEqual:        "EQUAL",
	OpNotEqual:     "NOT_EQUAL",
	OpLess:         "LESS",
	OpLessEqual:    "LESS_EQUAL",
	OpGreater:      "GREATER",
	OpGreaterEqual: "GREATER_EQUAL",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "Op(?)"
}

// HasOperand reports whether op is followed by an operand byte.
func (op Op) HasOperand() bool {
	return op == OpConstant
}
