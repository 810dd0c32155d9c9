package opr

import "fmt"

// MatMulParam configures MatMul. The operation is fully implied by the
// operand shapes, so it carries no fields.
type MatMulParam struct{}

// ElemwiseOp is the binary operator applied by Interelem.
type ElemwiseOp int

// Element-wise operators.
const (
	Add ElemwiseOp = iota + 1
	Sub
	Mul
	Div
	Mod
	And
	Or
	Xor
)

var elemwiseNames = map[ElemwiseOp]string{
	Add: "add",
	Sub: "sub",
	Mul: "mul",
	Div: "div",
	Mod: "mod",
	And: "and",
	Or:  "or",
	Xor: "xor",
}

// String returns the operator name.
func (op ElemwiseOp) String() string {
	if s, ok := elemwiseNames[op]; ok {
		return s
	}
	return fmt.Sprintf("elemwise(%d)", int(op))
}

// Valid reports whether op is a known operator.
func (op ElemwiseOp) Valid() bool {
	_, ok := elemwiseNames[op]
	return ok
}

// IsLogical reports whether op is a bitwise/logical operator.
func (op ElemwiseOp) IsLogical() bool {
	return op == And || op == Or || op == Xor
}

// InterelemParam configures Interelem.
type InterelemParam struct {
	Op ElemwiseOp
}

// RepeatParam configures Repeat.
type RepeatParam struct {
	Repeats int // Repetitions of each element, must be positive.
	Axis    int // Axis to repeat along, outermost first.
}
