package opr

import (
	"github.com/born-ml/numnet/internal/status"
	"github.com/born-ml/numnet/internal/tensor"
)

// DeduceMatMul returns the shape of a @ b.
//
// Both operands need rank >= 2 and the same rank. The two innermost axes are
// the matrix axes, {m, k} @ {k, n} -> {m, n}; any outer axes are batch axes and
// must match exactly.
func DeduceMatMul(a, b tensor.Shape) (tensor.Shape, status.Status) {
	if a.NDim() < 2 || b.NDim() < 2 {
		return tensor.Shape{}, status.New(status.Core, status.InvalidArgument,
			"matmul: operands need at least 2 dims, got %v and %v", a, b)
	}
	if a.NDim() != b.NDim() {
		return tensor.Shape{}, status.New(status.Core, status.MismatchedShape,
			"matmul: rank mismatch %v @ %v", a, b)
	}
	ad, bd := a.Dims(), b.Dims()
	n := len(ad)
	for i := 0; i < n-2; i++ {
		if ad[i] != bd[i] {
			return tensor.Shape{}, status.New(status.Core, status.MismatchedShape,
				"matmul: batch dimension %d mismatch %v @ %v", i, a, b)
		}
	}
	if ad[n-1] != bd[n-2] {
		return tensor.Shape{}, status.New(status.Core, status.MismatchedShape,
			"matmul: shape mismatch %v @ %v", a, b)
	}
	out := append(ad[:n-1:n-1], bd[n-1])
	return tensor.MustShape(out...), status.Ok()
}

// DeduceInterelem returns the broadcast shape of an element-wise operation.
func DeduceInterelem(a, b tensor.Layout, p InterelemParam) (tensor.Shape, status.Status) {
	if !p.Op.Valid() {
		return tensor.Shape{}, status.New(status.Core, status.InvalidParam,
			"interelem: unknown operator %v", p.Op)
	}
	if a.DType() != b.DType() {
		return tensor.Shape{}, status.New(status.Core, status.MismatchedDType,
			"interelem: dtype mismatch %s vs %s", a.DType(), b.DType())
	}
	out, err := tensor.BroadcastShapes(a.Shape, b.Shape)
	if err != nil {
		return tensor.Shape{}, status.New(status.Core, status.MismatchedShape,
			"interelem: %v", err)
	}
	return out, status.Ok()
}

// DeduceRepeat returns the shape of src repeated along p.Axis.
func DeduceRepeat(src tensor.Shape, p RepeatParam) (tensor.Shape, status.Status) {
	if p.Repeats <= 0 {
		return tensor.Shape{}, status.New(status.Core, status.InvalidParam,
			"repeat: the repeats count must be a positive number, got %d", p.Repeats)
	}
	if p.Axis < 0 || p.Axis >= src.NDim() {
		return tensor.Shape{}, status.New(status.Core, status.InvalidParam,
			"repeat: axis %d out of range for %v", p.Axis, src)
	}
	dims := src.Dims()
	dims[p.Axis] *= p.Repeats
	return tensor.MustShape(dims...), status.Ok()
}

// CheckOutput verifies that out has the shape an operator produces.
func CheckOutput(op string, want tensor.Shape, out tensor.Layout) status.Status {
	if !out.IsShape(want) {
		return status.New(status.Core, status.MismatchedShape,
			"%s: output shape %v, want %v", op, out.Shape, want)
	}
	return status.Ok()
}

// CheckNotEmpty rejects empty operands: views over them cannot be accessed.
func CheckNotEmpty(op string, layouts ...tensor.Layout) status.Status {
	for i, l := range layouts {
		if l.IsEmpty() {
			return status.New(status.Core, status.InvalidArgument,
				"%s: operand %d is empty %v", op, i, l)
		}
	}
	return status.Ok()
}

// CheckDTypes requires every operand to share the first operand's dtype.
func CheckDTypes(op string, layouts ...tensor.Layout) status.Status {
	for i, l := range layouts {
		if l.DType() != layouts[0].DType() {
			return status.New(status.Core, status.MismatchedDType,
				"%s: operand %d has dtype %s, want %s", op, i, l.DType(), layouts[0].DType())
		}
	}
	return status.Ok()
}
