// Package vm executes bytecode chunks on a value stack.
//
// Every opcode pre-checks its operands (stack depth, variant kinds,
// divisor) and turns violations into a retained runtime error; the only
// panics left are for internal invariant breaks that the pre-checks make
// unreachable.
package vm

import (
	"fmt"
	"io"
	"strings"

	"dacite/internal/bytecode"
	"dacite/internal/value"
)

// DefaultMaxStackDepth bounds the value stack unless Options overrides it.
const DefaultMaxStackDepth = 256

type Result uint8

const (
	ResultOK Result = iota
	ResultRuntimeError
)

type Options struct {
	// MaxStackDepth caps the stack; 0 means DefaultMaxStackDepth.
	MaxStackDepth int
	// Trace, when non-nil, receives the stack and the decoded instruction
	// before each step.
	Trace io.Writer
}

// VM is a stack machine. One VM runs one chunk at a time; concurrent Run
// calls on the same VM are not supported.
type VM struct {
	stack    []value.Value
	maxDepth int
	errMsg   string
	opts     Options
}

func New(opts Options) *VM {
	maxDepth := opts.MaxStackDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxStackDepth
	}
	return &VM{
		stack:    make([]value.Value, 0, maxDepth),
		maxDepth: maxDepth,
		opts:     opts,
	}
}

// Reset clears the stack and the retained error, making the VM ready for
// another run.
func (vm *VM) Reset() {
	vm.stack = vm.stack[:0]
	vm.errMsg = ""
}

// Err returns the retained error message of the last failed run, or "".
func (vm *VM) Err() string {
	return vm.errMsg
}

// StackSize returns the current stack depth.
func (vm *VM) StackSize() int {
	return len(vm.stack)
}

// Top returns the value at the top of the stack without popping it.
func (vm *VM) Top() (value.Value, error) {
	if len(vm.stack) == 0 {
		return value.Value{}, fmt.Errorf("stack is empty")
	}
	return vm.stack[len(vm.stack)-1], nil
}

// Run executes chunk from offset 0. On ResultRuntimeError the message is
// retained and readable via Err until the next Run or Reset. An empty
// chunk is a no-op success.
func (vm *VM) Run(chunk *bytecode.Chunk) Result {
	vm.errMsg = ""
	code := chunk.Code()
	ip := 0

	for ip < len(code) {
		if vm.opts.Trace != nil {
			vm.traceStep(chunk, ip)
		}

		op := bytecode.Op(code[ip])
		ip++

		switch op {
		case bytecode.OpConstant:
			if ip >= len(code) {
				return vm.fail("missing constant index after CONSTANT")
			}
			idx := int(code[ip])
			ip++
			v, err := chunk.Constant(idx)
			if err != nil {
				return vm.fail("invalid constant index: %v", err)
			}
			if !vm.push(v) {
				return ResultRuntimeError
			}

		case bytecode.OpReturn:
			if len(vm.stack) == 0 {
				return vm.fail("cannot return: stack is empty")
			}
			// No call frames exist: pop the result and put it back so it
			// stays observable via Top after the halt.
			result := vm.pop()
			vm.push(result)
			return ResultOK

		case bytecode.OpAdd, bytecode.OpSubtract, bytecode.OpMultiply, bytecode.OpDivide:
			if !vm.arithmetic(op) {
				return ResultRuntimeError
			}

		case bytecode.OpEqual, bytecode.OpNotEqual:
			if len(vm.stack) < 2 {
				return vm.fail("not enough values on stack for %s", op)
			}
			b := vm.pop()
			a := vm.pop()
			eq := a.Equal(b)
			if op == bytecode.OpNotEqual {
				eq = !eq
			}
			vm.push(value.NewBool(eq))

		case bytecode.OpLess, bytecode.OpLessEqual, bytecode.OpGreater, bytecode.OpGreaterEqual:
			if !vm.ordering(op) {
				return ResultRuntimeError
			}

		default:
			return vm.fail("unknown opcode: %d", byte(op))
		}
	}

	return ResultOK
}

// arithmetic handles the four integer operations, divisor check included.
func (vm *VM) arithmetic(op bytecode.Op) bool {
	if len(vm.stack) < 2 {
		vm.fail("not enough values on stack for %s", op)
		return false
	}
	b, a := vm.pop(), vm.pop()
	bi, errB := b.AsInt()
	ai, errA := a.AsInt()
	if errA != nil || errB != nil {
		vm.fail("%s requires integer values", op)
		return false
	}

	var r int32
	switch op {
	case bytecode.OpAdd:
		r = ai + bi
	case bytecode.OpSubtract:
		r = ai - bi
	case bytecode.OpMultiply:
		r = ai * bi
	case bytecode.OpDivide:
		if bi == 0 {
			vm.fail("division by zero")
			return false
		}
		r = ai / bi
	}
	return vm.push(value.NewInt(r))
}

// ordering handles the four integer comparisons.
func (vm *VM) ordering(op bytecode.Op) bool {
	if len(vm.stack) < 2 {
		vm.fail("not enough values on stack for %s", op)
		return false
	}
	b, a := vm.pop(), vm.pop()
	bi, errB := b.AsInt()
	ai, errA := a.AsInt()
	if errA != nil || errB != nil {
		vm.fail("%s requires integer values", op)
		return false
	}

	var r bool
	switch op {
	case bytecode.OpLess:
		r = ai < bi
	case bytecode.OpLessEqual:
		r = ai <= bi
	case bytecode.OpGreater:
		r = ai > bi
	case bytecode.OpGreaterEqual:
		r = ai >= bi
	}
	return vm.push(value.NewBool(r))
}

func (vm *VM) push(v value.Value) bool {
	if len(vm.stack) >= vm.maxDepth {
		vm.fail("stack overflow")
		return false
	}
	vm.stack = append(vm.stack, v)
	return true
}

// pop removes the stack top. Callers have already checked the depth.
func (vm *VM) pop() value.Value {
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}

func (vm *VM) fail(format string, args ...any) Result {
	vm.errMsg = fmt.Sprintf(format, args...)
	return ResultRuntimeError
}

// traceStep prints the stack and the instruction about to execute.
func (vm *VM) traceStep(chunk *bytecode.Chunk, ip int) {
	var b strings.Builder
	b.WriteString("stack: [")
	for i, v := range vm.stack {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteString("]\n")

	code := chunk.Code()
	op := bytecode.Op(code[ip])
	fmt.Fprintf(&b, "%04d %s", ip, op)
	if op.HasOperand() && ip+1 < len(code) {
		idx := int(code[ip+1])
		fmt.Fprintf(&b, " %d", idx)
		if v, err := chunk.Constant(idx); err == nil {
			fmt.Fprintf(&b, " (%s)", v)
		}
	}
	b.WriteByte('\n')
	io.WriteString(vm.opts.Trace, b.String())
}
