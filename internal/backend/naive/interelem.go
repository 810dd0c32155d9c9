package naive

import (
	"math"

	"github.com/born-ml/numnet/internal/opr"
	"github.com/born-ml/numnet/internal/status"
	"github.com/born-ml/numnet/internal/tensor"
)

// Interelem applies p.Op element-wise with NumPy-style broadcasting of both
// inputs to the output shape.
//
// Add, Sub, Mul, Div and Mod are defined for numeric dtypes; And, Or and Xor
// for integer and bool dtypes. Integer division by zero is reported before
// anything is written.
func (nb *Backend) Interelem(a, b tensor.Tensor, out *tensor.MutableTensor, p opr.InterelemParam) status.Status {
	if st := opr.CheckNotEmpty("interelem", a.Layout(), b.Layout(), out.Layout()); !st.IsOK() {
		return st
	}
	want, st := opr.DeduceInterelem(a.Layout(), b.Layout(), p)
	if !st.IsOK() {
		return st
	}
	if st := opr.CheckOutput("interelem", want, out.Layout()); !st.IsOK() {
		return st
	}
	dt := a.DType()
	if out.DType() != dt {
		return status.New(status.Kernel, status.MismatchedDType,
			"interelem: output dtype %s, want %s", out.DType(), dt)
	}
	if st := checkElemwiseDType(p.Op, dt); !st.IsOK() {
		return st
	}

	al, err := a.Layout().BroadcastTo(want)
	if err != nil {
		return status.New(status.Kernel, status.MismatchedShape, "interelem: %v", err)
	}
	bl, err := b.Layout().BroadcastTo(want)
	if err != nil {
		return status.New(status.Kernel, status.MismatchedShape, "interelem: %v", err)
	}

	switch dt {
	case tensor.Float32:
		elemwise(a, b, out, al, bl, floatOp[float32](p.Op))
	case tensor.Float64:
		elemwise(a, b, out, al, bl, floatOp[float64](p.Op))
	case tensor.Int32:
		return intElemwise[int32](a, b, out, al, bl, p.Op)
	case tensor.Int64:
		return intElemwise[int64](a, b, out, al, bl, p.Op)
	case tensor.Uint8:
		return intElemwise[uint8](a, b, out, al, bl, p.Op)
	case tensor.Bool:
		elemwise(a, b, out, al, bl, boolOp(p.Op))
	case tensor.Float16, tensor.BFloat16:
		wa, wb := widen(a), widen(b)
		wal, _ := wa.Layout().BroadcastTo(want)
		wbl, _ := wb.Layout().BroadcastTo(want)
		tmp := scratch(want)
		elemwise(wa, wb, tmp, wal, wbl, floatOp[float32](p.Op))
		narrow(tmp.View(), out)
	default:
		return status.New(status.Kernel, status.NotImplemented,
			"interelem: unsupported dtype %s", dt)
	}
	return status.Ok()
}

// checkElemwiseDType rejects operator/dtype pairs that have no meaning.
func checkElemwiseDType(op opr.ElemwiseOp, dt tensor.DataType) status.Status {
	switch {
	case op.IsLogical() && dt.IsFloat():
		return status.New(status.Kernel, status.InvalidArgument,
			"interelem: %v is not defined for %s", op, dt)
	case !op.IsLogical() && dt == tensor.Bool:
		return status.New(status.Kernel, status.InvalidArgument,
			"interelem: %v is not defined for %s", op, dt)
	}
	return status.Ok()
}

// elemwise walks a, b and out in lockstep; al and bl are a's and b's layouts
// broadcast to the output shape.
func elemwise[T tensor.DType](a, b tensor.Tensor, out *tensor.MutableTensor, al, bl tensor.Layout, f func(x, y T) T) {
	ad, bd, od := tensor.Elements[T](a), tensor.Elements[T](b), tensor.MutableElements[T](out)
	tensor.ForEachOffsets(func(_ int, off []int) {
		od[off[2]] = f(ad[off[0]], bd[off[1]])
	}, al, bl, out.Layout())
}

func intElemwise[T integer](a, b tensor.Tensor, out *tensor.MutableTensor, al, bl tensor.Layout, op opr.ElemwiseOp) status.Status {
	if op == opr.Div || op == opr.Mod {
		bd := tensor.Elements[T](b)
		zero := false
		tensor.ForEachOffset(bl, func(_, off int) {
			if bd[off] == 0 {
				zero = true
			}
		})
		if zero {
			return status.New(status.Kernel, status.DivideByZero,
				"interelem: integer %v by zero", op)
		}
	}
	elemwise(a, b, out, al, bl, intOp[T](op))
	return status.Ok()
}

func floatOp[T float](op opr.ElemwiseOp) func(x, y T) T {
	switch op {
	case opr.Add:
		return func(x, y T) T { return x + y }
	case opr.Sub:
		return func(x, y T) T { return x - y }
	case opr.Mul:
		return func(x, y T) T { return x * y }
	case opr.Div:
		return func(x, y T) T { return x / y }
	case opr.Mod:
		return func(x, y T) T { return T(math.Mod(float64(x), float64(y))) }
	default:
		panic("floatOp: unsupported operator " + op.String())
	}
}

func intOp[T integer](op opr.ElemwiseOp) func(x, y T) T {
	switch op {
	case opr.Add:
		return func(x, y T) T { return x + y }
	case opr.Sub:
		return func(x, y T) T { return x - y }
	case opr.Mul:
		return func(x, y T) T { return x * y }
	case opr.Div:
		return func(x, y T) T { return x / y }
	case opr.Mod:
		return func(x, y T) T { return x % y }
	case opr.And:
		return func(x, y T) T { return x & y }
	case opr.Or:
		return func(x, y T) T { return x | y }
	case opr.Xor:
		return func(x, y T) T { return x ^ y }
	default:
		panic("intOp: unsupported operator " + op.String())
	}
}

func boolOp(op opr.ElemwiseOp) func(x, y bool) bool {
	switch op {
	case opr.And:
		return func(x, y bool) bool { return x && y }
	case opr.Or:
		return func(x, y bool) bool { return x || y }
	case opr.Xor:
		return func(x, y bool) bool { return x != y }
	default:
		panic("boolOp: unsupported operator " + op.String())
	}
}
