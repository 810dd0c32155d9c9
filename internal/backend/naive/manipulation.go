package naive

import (
	"github.com/born-ml/numnet/internal/opr"
	"github.com/born-ml/numnet/internal/status"
	"github.com/born-ml/numnet/internal/tensor"
)

// Repeat repeats each element of src p.Repeats times along p.Axis,
// like numpy.repeat. Works on raw element bytes, so every dtype is supported.
func (nb *Backend) Repeat(src tensor.Tensor, out *tensor.MutableTensor, p opr.RepeatParam) status.Status {
	if st := opr.CheckNotEmpty("repeat", src.Layout(), out.Layout()); !st.IsOK() {
		return st
	}
	want, st := opr.DeduceRepeat(src.Shape(), p)
	if !st.IsOK() {
		return st
	}
	if st := opr.CheckOutput("repeat", want, out.Layout()); !st.IsOK() {
		return st
	}
	if src.DType() != out.DType() {
		return status.New(status.Kernel, status.MismatchedDType,
			"repeat: dtype mismatch %s -> %s", src.DType(), out.DType())
	}

	// Output index (.., j, ..) reads source index (.., j/repeats, ..).
	sl, ol := src.Layout(), out.Layout()
	dims, sstr := ol.Dims(), sl.Strides()
	srcOffsets := make([]int, 0, ol.Count())
	rank := len(dims)
	idx := make([]int, rank)
	for i := 0; i < ol.Count(); i++ {
		off := 0
		for ax, v := range idx {
			if ax == p.Axis {
				v /= p.Repeats
			}
			off += v * sstr[ax]
		}
		srcOffsets = append(srcOffsets, off)
		for ax := rank - 1; ax >= 0; ax-- {
			idx[ax]++
			if idx[ax] < dims[ax] {
				break
			}
			idx[ax] = 0
		}
	}

	moveElements(src, out, srcOffsets)
	return status.Ok()
}

// Copy copies src into out element by element in row-major order. Only the
// element counts have to agree, so Copy also reshapes, and copying a strided
// view into a dense one makes it contiguous.
func (nb *Backend) Copy(src tensor.Tensor, out *tensor.MutableTensor) status.Status {
	if st := opr.CheckNotEmpty("copy", src.Layout(), out.Layout()); !st.IsOK() {
		return st
	}
	if src.DType() != out.DType() {
		return status.New(status.Kernel, status.MismatchedDType,
			"copy: dtype mismatch %s -> %s", src.DType(), out.DType())
	}
	if src.Layout().Count() != out.Layout().Count() {
		return status.New(status.Core, status.MismatchedShape,
			"copy: cannot copy %v into %v: element counts differ", src.Shape(), out.Shape())
	}

	srcOffsets := make([]int, 0, src.Layout().Count())
	tensor.ForEachOffset(src.Layout(), func(_, off int) {
		srcOffsets = append(srcOffsets, off)
	})
	moveElements(src, out, srcOffsets)
	return status.Ok()
}

// moveElements writes the element of src at srcOffsets[i] to the i-th
// element of out in row-major order.
func moveElements(src tensor.Tensor, out *tensor.MutableTensor, srcOffsets []int) {
	size := src.DType().Size()
	sb := src.Ref().Bytes()
	ob := out.View().Ref().Bytes()
	tensor.ForEachOffset(out.Layout(), func(i, off int) {
		s := srcOffsets[i] * size
		copy(ob[off*size:off*size+size], sb[s:s+size])
	})
}
