package naive

import (
	"github.com/born-ml/numnet/internal/opr"
	"github.com/born-ml/numnet/internal/status"
	"github.com/born-ml/numnet/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D views: (M, K) @ (K, N) -> (M, N). Higher ranks are batches of
// matrices with identical batch dims. Uses a naive O(n³) loop that reads and
// writes through the views' strides, so transposed inputs need no copy.
func (nb *Backend) MatMul(a, b tensor.Tensor, out *tensor.MutableTensor, _ opr.MatMulParam) status.Status {
	if st := opr.CheckNotEmpty("matmul", a.Layout(), b.Layout(), out.Layout()); !st.IsOK() {
		return st
	}
	want, st := opr.DeduceMatMul(a.Shape(), b.Shape())
	if !st.IsOK() {
		return st
	}
	if st := opr.CheckOutput("matmul", want, out.Layout()); !st.IsOK() {
		return st
	}
	if a.DType() != b.DType() || a.DType() != out.DType() {
		return status.New(status.Kernel, status.MismatchedDType,
			"matmul: dtype mismatch %s @ %s -> %s", a.DType(), b.DType(), out.DType())
	}

	// Dispatch to type-specific implementation
	switch a.DType() {
	case tensor.Float32:
		matmul[float32](a, b, out)
	case tensor.Float64:
		matmul[float64](a, b, out)
	case tensor.Int32:
		matmul[int32](a, b, out)
	case tensor.Int64:
		matmul[int64](a, b, out)
	case tensor.Uint8:
		matmul[uint8](a, b, out)
	case tensor.Float16, tensor.BFloat16:
		tmp := scratch(out.Shape())
		matmul[float32](widen(a), widen(b), tmp)
		narrow(tmp.View(), out)
	default:
		return status.New(status.Kernel, status.NotImplemented,
			"matmul: unsupported dtype %s", a.DType())
	}
	return status.Ok()
}

// matmul computes C[..., i, j] = sum_k A[..., i, k] * B[..., k, j].
func matmul[T number](a, b tensor.Tensor, out *tensor.MutableTensor) {
	al, bl, ol := a.Layout(), b.Layout(), out.Layout()
	ad, bd, od := tensor.Elements[T](a), tensor.Elements[T](b), tensor.MutableElements[T](out)

	rank := ol.NDim()
	m, n, k := ol.Dim(rank-2), ol.Dim(rank-1), al.Dim(rank-1)
	as, bs, os := al.Strides(), bl.Strides(), ol.Strides()
	aRow, aCol := as[rank-2], as[rank-1]
	bRow, bCol := bs[rank-2], bs[rank-1]
	oRow, oCol := os[rank-2], os[rank-1]

	batches := batchLayouts(rank-2, al, bl, ol)
	tensor.ForEachOffsets(func(_ int, base []int) {
		aBase, bBase, oBase := base[0], base[1], base[2]
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var sum T
				for p := 0; p < k; p++ {
					sum += ad[aBase+i*aRow+p*aCol] * bd[bBase+p*bRow+j*bCol]
				}
				od[oBase+i*oRow+j*oCol] = sum
			}
		}
	}, batches...)
}

// batchLayouts returns layouts covering only the outer nbatch axes of each
// input layout, keeping their strides. With no batch axes they are rank 0,
// which visits the single base offset 0.
func batchLayouts(nbatch int, layouts ...tensor.Layout) []tensor.Layout {
	out := make([]tensor.Layout, len(layouts))
	for i, l := range layouts {
		shape := tensor.MustShape(l.Dims()[:nbatch]...)
		bl, err := tensor.NewStridedLayout(shape, l.Strides()[:nbatch], l.DType())
		if err != nil {
			panic("batchLayouts: " + err.Error())
		}
		out[i] = bl
	}
	return out
}
