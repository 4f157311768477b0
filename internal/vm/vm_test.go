package vm_test

import (
	"strings"
	"testing"

	"dacite/internal/bytecode"
	"dacite/internal/value"
	"dacite/internal/vm"
)

func chunkOf(constants []value.Value, code ...byte) *bytecode.Chunk {
	c := bytecode.NewChunk()
	for _, v := range constants {
		c.AddConstant(v)
	}
	for _, b := range code {
		c.WriteByte(b)
	}
	return c
}

func ints(vals ...int32) []value.Value {
	out := make([]value.Value, len(vals))
	for i, v := range vals {
		out[i] = value.NewInt(v)
	}
	return out
}

// runBinary executes `a b op RETURN` and returns the result value.
func runBinary(t *testing.T, a, b value.Value, op bytecode.Op) value.Value {
	t.Helper()
	c := chunkOf([]value.Value{a, b},
		byte(bytecode.OpConstant), 0,
		byte(bytecode.OpConstant), 1,
		byte(op),
		byte(bytecode.OpReturn),
	)
	m := vm.New(vm.Options{})
	if res := m.Run(c); res != vm.ResultOK {
		t.Fatalf("run failed: %s", m.Err())
	}
	top, err := m.Top()
	if err != nil {
		t.Fatal(err)
	}
	return top
}

func TestRunEmptyChunkIsOK(t *testing.T) {
	m := vm.New(vm.Options{})
	if res := m.Run(bytecode.NewChunk()); res != vm.ResultOK {
		t.Fatalf("empty chunk: %s", m.Err())
	}
	if m.StackSize() != 0 {
		t.Errorf("stack size = %d, want 0", m.StackSize())
	}
}

func TestReturnLeavesValueOnStack(t *testing.T) {
	c := chunkOf(ints(3), byte(bytecode.OpConstant), 0, byte(bytecode.OpReturn))
	m := vm.New(vm.Options{})
	if res := m.Run(c); res != vm.ResultOK {
		t.Fatalf("run failed: %s", m.Err())
	}
	top, err := m.Top()
	if err != nil {
		t.Fatal(err)
	}
	if !top.Equal(value.NewInt(3)) {
		t.Errorf("top = %v, want 3", top)
	}
	if m.StackSize() != 1 {
		t.Errorf("stack size = %d, want 1", m.StackSize())
	}
}

func TestReturnHaltsExecution(t *testing.T) {
	// The second CONSTANT must never run.
	c := chunkOf(ints(1, 2),
		byte(bytecode.OpConstant), 0,
		byte(bytecode.OpReturn),
		byte(bytecode.OpConstant), 1,
	)
	m := vm.New(vm.Options{})
	if res := m.Run(c); res != vm.ResultOK {
		t.Fatalf("run failed: %s", m.Err())
	}
	if m.StackSize() != 1 {
		t.Errorf("stack size = %d, want 1", m.StackSize())
	}
}

func TestArithmetic(t *testing.T) {
	cases := []struct {
		a, b int32
		op   bytecode.Op
		want int32
	}{
		{2, 3, bytecode.OpAdd, 5},
		{10, 4, bytecode.OpSubtract, 6},
		{3, 4, bytecode.OpMultiply, 12},
		{10, 2, bytecode.OpDivide, 5},
		{7, 2, bytecode.OpDivide, 3},
		{-7, 2, bytecode.OpDivide, -3},
	}
	for _, tc := range cases {
		got := runBinary(t, value.NewInt(tc.a), value.NewInt(tc.b), tc.op)
		if !got.Equal(value.NewInt(tc.want)) {
			t.Errorf("%d %s %d = %v, want %d", tc.a, tc.op, tc.b, got, tc.want)
		}
	}
}

func TestComparisons(t *testing.T) {
	cases := []struct {
		a, b int32
		op   bytecode.Op
		want bool
	}{
		{5, 3, bytecode.OpGreater, true},
		{3, 5, bytecode.OpGreater, false},
		{3, 3, bytecode.OpGreaterEqual, true},
		{3, 5, bytecode.OpLess, true},
		{5, 5, bytecode.OpLessEqual, true},
		{5, 5, bytecode.OpEqual, true},
		{5, 6, bytecode.OpEqual, false},
		{5, 6, bytecode.OpNotEqual, true},
	}
	for _, tc := range cases {
		got := runBinary(t, value.NewInt(tc.a), value.NewInt(tc.b), tc.op)
		if !got.Equal(value.NewBool(tc.want)) {
			t.Errorf("%d %s %d = %v, want %v", tc.a, tc.op, tc.b, got, tc.want)
		}
	}
}

func TestEqualityIsStructuralAcrossKinds(t *testing.T) {
	got := runBinary(t, value.NewInt(1), value.NewBool(true), bytecode.OpEqual)
	if !got.Equal(value.NewBool(false)) {
		t.Errorf("1 == true evaluated to %v", got)
	}
	got = runBinary(t, value.NewNil(), value.NewNil(), bytecode.OpEqual)
	if !got.Equal(value.NewBool(true)) {
		t.Errorf("nil == nil evaluated to %v", got)
	}
}

func TestRuntimeErrors(t *testing.T) {
	cases := []struct {
		name string
		c    *bytecode.Chunk
		msg  string
	}{
		{
			"invalid constant index",
			chunkOf(nil, byte(bytecode.OpConstant), 99),
			"invalid constant index",
		},
		{
			"missing operand",
			chunkOf(nil, byte(bytecode.OpConstant)),
			"missing constant index",
		},
		{
			"return on empty stack",
			chunkOf(nil, byte(bytecode.OpReturn)),
			"stack is empty",
		},
		{
			"add underflow",
			chunkOf(ints(1), byte(bytecode.OpConstant), 0, byte(bytecode.OpAdd)),
			"not enough values",
		},
		{
			"add type mismatch",
			chunkOf([]value.Value{value.NewInt(1), value.NewBool(true)},
				byte(bytecode.OpConstant), 0, byte(bytecode.OpConstant), 1, byte(bytecode.OpAdd)),
			"requires integer values",
		},
		{
			"ordering type mismatch",
			chunkOf([]value.Value{value.NewNil(), value.NewInt(1)},
				byte(bytecode.OpConstant), 0, byte(bytecode.OpConstant), 1, byte(bytecode.OpLess)),
			"requires integer values",
		},
		{
			"division by zero",
			chunkOf(ints(5, 0), byte(bytecode.OpConstant), 0, byte(bytecode.OpConstant), 1, byte(bytecode.OpDivide)),
			"division by zero",
		},
		{
			"unknown opcode",
			chunkOf(nil, 200),
			"unknown opcode",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := vm.New(vm.Options{})
			if res := m.Run(tc.c); res != vm.ResultRuntimeError {
				t.Fatalf("expected runtime error, got %v", res)
			}
			if m.Err() == "" || !strings.Contains(m.Err(), tc.msg) {
				t.Errorf("Err() = %q, want substring %q", m.Err(), tc.msg)
			}
		})
	}
}

func TestInvalidConstantLeavesStackEmpty(t *testing.T) {
	c := chunkOf(nil, byte(bytecode.OpConstant), 99)
	m := vm.New(vm.Options{})
	m.Run(c)
	if m.StackSize() != 0 {
		t.Errorf("stack size = %d, want 0", m.StackSize())
	}
	if _, err := m.Top(); err == nil {
		t.Error("Top on empty stack must fail")
	}
}

func TestStackOverflow(t *testing.T) {
	c := bytecode.NewChunk()
	c.AddConstant(value.NewInt(1))
	for i := 0; i < 5; i++ {
		c.WriteOp(bytecode.OpConstant)
		c.WriteByte(0)
	}

	m := vm.New(vm.Options{MaxStackDepth: 4})
	if res := m.Run(c); res != vm.ResultRuntimeError {
		t.Fatal("expected overflow")
	}
	if !strings.Contains(m.Err(), "stack overflow") {
		t.Errorf("Err() = %q", m.Err())
	}
	if m.StackSize() != 4 {
		t.Errorf("stack size = %d, want 4", m.StackSize())
	}
}

func TestResetClearsState(t *testing.T) {
	m := vm.New(vm.Options{})
	m.Run(chunkOf(nil, byte(bytecode.OpReturn)))
	if m.Err() == "" {
		t.Fatal("setup run should have failed")
	}

	m.Reset()
	if m.Err() != "" || m.StackSize() != 0 {
		t.Errorf("Reset left err=%q size=%d", m.Err(), m.StackSize())
	}

	c := chunkOf(ints(2), byte(bytecode.OpConstant), 0, byte(bytecode.OpReturn))
	if res := m.Run(c); res != vm.ResultOK {
		t.Fatalf("run after Reset failed: %s", m.Err())
	}
}

func TestTraceOutput(t *testing.T) {
	var buf strings.Builder
	c := chunkOf(ints(2, 3),
		byte(bytecode.OpConstant), 0,
		byte(bytecode.OpConstant), 1,
		byte(bytecode.OpAdd),
		byte(bytecode.OpReturn),
	)
	m := vm.New(vm.Options{Trace: &buf})
	if res := m.Run(c); res != vm.ResultOK {
		t.Fatalf("run failed: %s", m.Err())
	}

	out := buf.String()
	for _, want := range []string{"CONSTANT 0 (2)", "CONSTANT 1 (3)", "ADD", "RETURN", "stack: [2, 3]"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
}
