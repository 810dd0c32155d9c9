package api

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/born-ml/numnet/internal/backend/naive"
	"github.com/born-ml/numnet/internal/opr"
	"github.com/born-ml/numnet/internal/status"
	"github.com/born-ml/numnet/internal/tensor"
)

// countingProvider wraps the naive backend and counts kernel invocations.
type countingProvider struct {
	*naive.Backend
	calls atomic.Int64
	fail  status.Status
}

func (c *countingProvider) MatMul(a, b tensor.Tensor, out *tensor.MutableTensor, p opr.MatMulParam) status.Status {
	c.calls.Add(1)
	if !c.fail.IsOK() {
		return c.fail
	}
	return c.Backend.MatMul(a, b, out, p)
}

func newCountingDispatcher(c *countingProvider) *Dispatcher {
	return NewDispatcherWithLookup(func(p opr.Provider) (opr.OpBase, bool) {
		if p != opr.Naive {
			return nil, false
		}
		return c, true
	})
}

func TestMatMul(t *testing.T) {
	a := FromSlice([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	b := FromSlice([]float32{7, 8, 9, 10, 11, 12}, 3, 2)
	outData := make([]float32, 4)

	err := MatMul(a, b, FromSlice(outData, 2, 2), nil, opr.Naive)
	require.NoError(t, err)
	assert.Equal(t, []float32{58, 64, 139, 154}, outData)
	assert.Equal(t, status.OK, ErrorCode(err))
}

func TestMatMulUnsupportedProvider(t *testing.T) {
	fake := &countingProvider{Backend: naive.New()}
	d := newCountingDispatcher(fake)
	outData := []float32{-1, -1, -1, -1}

	for _, p := range []opr.Provider{0, 2, 99} {
		err := d.MatMul(FromSlice([]float32{1, 2, 3, 4}, 2, 2), FromSlice([]float32{1, 2, 3, 4}, 2, 2),
			FromSlice(outData, 2, 2), nil, p)
		require.Error(t, err)

		var e *status.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, status.Core, e.Category())
		assert.Equal(t, status.InvalidArgument, e.Code())
		assert.Equal(t, "Unsupported provider.", e.Message())
		assert.ErrorIs(t, err, status.ErrInvalidArgument)
	}
	assert.Equal(t, int64(0), fake.calls.Load(), "no kernel may run for an unknown provider")
	assert.Equal(t, []float32{-1, -1, -1, -1}, outData)
}

func TestMatMulIncompatibleShapesSkipKernel(t *testing.T) {
	fake := &countingProvider{Backend: naive.New()}
	d := newCountingDispatcher(fake)
	outData := []float32{-1, -1, -1, -1}

	err := d.MatMul(FromSlice(make([]float32, 6), 2, 3), FromSlice(make([]float32, 8), 4, 2),
		FromSlice(outData, 2, 2), nil, opr.Naive)
	assert.Equal(t, status.MismatchedShape, ErrorCode(err))
	assert.Equal(t, int64(0), fake.calls.Load())
	assert.Equal(t, []float32{-1, -1, -1, -1}, outData)

	err = d.MatMul(FromSlice([]float32{1, 2, 3, 4}, 2, 2), FromSlice([]int32{1, 2, 3, 4}, 2, 2),
		FromSlice(outData, 2, 2), nil, opr.Naive)
	assert.Equal(t, status.MismatchedDType, ErrorCode(err))
	assert.Equal(t, status.Core, status.FromError(err).Category())

	err = d.MatMul(FromSlice([]float32{1, 2, 3, 4}, 2, 2), FromSlice([]float32{1, 2, 3, 4}, 2, 2),
		FromSlice(make([]float64, 4), 2, 2), nil, opr.Naive)
	assert.Equal(t, status.MismatchedDType, ErrorCode(err))
	assert.Equal(t, status.Core, status.FromError(err).Category())

	assert.Equal(t, int64(0), fake.calls.Load())
	assert.Equal(t, []float32{-1, -1, -1, -1}, outData)
}

func TestOutputDTypeCheckedBeforeKernel(t *testing.T) {
	err := Interelem(FromSlice([]int32{1, 2}, 2), FromSlice([]int32{1, 2}, 2),
		FromSlice(make([]int64, 2), 2), opr.InterelemParam{Op: opr.Add}, opr.Naive)
	assert.ErrorIs(t, err, status.ErrMismatchedDType)
	assert.Equal(t, status.Core, status.FromError(err).Category())

	err = Repeat(FromSlice([]uint8{1, 2}, 2), FromSlice(make([]int32, 4), 4), opr.RepeatParam{Repeats: 2}, opr.Naive)
	assert.Equal(t, status.MismatchedDType, ErrorCode(err))
	assert.Equal(t, status.Core, status.FromError(err).Category())

	err = Copy(FromSlice([]float32{1, 2}, 2), FromSlice(make([]float64, 2), 2), opr.Naive)
	assert.Equal(t, status.MismatchedDType, ErrorCode(err))
	assert.Equal(t, status.Core, status.FromError(err).Category())
}

func TestKernelFailureIsTaggedKernel(t *testing.T) {
	fake := &countingProvider{
		Backend: naive.New(),
		fail:    status.New(status.None, status.Fail, "device lost"),
	}
	d := newCountingDispatcher(fake)

	err := d.MatMul(FromSlice([]float32{1, 2, 3, 4}, 2, 2), FromSlice([]float32{1, 2, 3, 4}, 2, 2),
		FromSlice(make([]float32, 4), 2, 2), &opr.MatMulParam{}, opr.Naive)
	require.Error(t, err)
	assert.Equal(t, int64(1), fake.calls.Load())
	assert.Equal(t, status.Fail, ErrorCode(err))
	assert.Equal(t, "device lost", ErrorMessage(err))
	assert.Equal(t, status.Kernel, status.FromError(err).Category())
}

func TestInvalidDescriptors(t *testing.T) {
	a := FromSlice([]float32{1, 2, 3, 4}, 2, 2)

	err := MatMul(nil, a, FromSlice(make([]float32, 4), 2, 2), nil, opr.Naive)
	assert.Equal(t, status.InvalidArgument, ErrorCode(err))

	err = MatMul(a, a, nil, nil, opr.Naive)
	assert.Equal(t, status.InvalidArgument, ErrorCode(err))

	short := &NativeTensor{DType: tensor.Float32, Shape: []int{2, 2}, Data: make([]byte, 8)}
	err = MatMul(a, short, FromSlice(make([]float32, 4), 2, 2), nil, opr.Naive)
	assert.Equal(t, status.InvalidArgument, ErrorCode(err))
	assert.Equal(t, status.Core, status.FromError(err).Category())

	err = MatMul(FromSlice([]float32{}, 0, 2), FromSlice(make([]float32, 4), 2, 2), FromSlice([]float32{}, 0, 2), nil, opr.Naive)
	assert.Equal(t, status.InvalidArgument, ErrorCode(err))
}

func TestInterelem(t *testing.T) {
	outData := make([]int32, 6)
	err := Interelem(FromSlice([]int32{1, 2, 3}, 3), FromSlice([]int32{10, 20}, 2, 1),
		FromSlice(outData, 2, 3), opr.InterelemParam{Op: opr.Mul}, opr.Naive)
	require.NoError(t, err)
	assert.Equal(t, []int32{10, 20, 30, 20, 40, 60}, outData)

	err = Interelem(FromSlice([]int32{1}, 1), FromSlice([]int32{0}, 1),
		FromSlice(make([]int32, 1), 1), opr.InterelemParam{Op: opr.Div}, opr.Naive)
	assert.ErrorIs(t, err, status.ErrDivideByZero)
	assert.Equal(t, status.Kernel, status.FromError(err).Category())

	err = Interelem(FromSlice([]int32{1, 2}, 2), FromSlice([]int32{1, 2}, 2),
		FromSlice(make([]int32, 4), 4), opr.InterelemParam{Op: opr.Add}, opr.Naive)
	assert.ErrorIs(t, err, status.ErrMismatchedShape)
}

func TestRepeatAndCopy(t *testing.T) {
	rep := make([]uint8, 6)
	err := Repeat(FromSlice([]uint8{1, 2, 3}, 3), FromSlice(rep, 6), opr.RepeatParam{Repeats: 2}, opr.Naive)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 1, 2, 2, 3, 3}, rep)

	err = Repeat(FromSlice([]uint8{1, 2, 3}, 3), FromSlice(rep, 6), opr.RepeatParam{Repeats: -1}, opr.Naive)
	assert.ErrorIs(t, err, status.ErrInvalidParam)

	src := &NativeTensor{
		DType:   tensor.Float32,
		Shape:   []int{2, 2},
		Strides: []int{1, 2},
		Data:    FromSlice([]float32{1, 2, 3, 4}, 4).Data,
	}
	dst := make([]float32, 4)
	require.NoError(t, Copy(src, FromSlice(dst, 2, 2), opr.Naive))
	assert.Equal(t, []float32{1, 3, 2, 4}, dst)

	err = Copy(src, FromSlice(make([]float32, 3), 3), opr.Naive)
	assert.ErrorIs(t, err, status.ErrMismatchedShape)
}

func TestConcurrentCalls(t *testing.T) {
	const workers = 16
	results := make([][]float64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			scale := float64(w + 1)
			a := FromSlice([]float64{scale, 0, 0, scale}, 2, 2)
			b := FromSlice([]float64{1, 2, 3, 4}, 2, 2)
			out := make([]float64, 4)
			if err := MatMul(a, b, FromSlice(out, 2, 2), nil, opr.Naive); err != nil {
				return fmt.Errorf("worker %d: %w", w, err)
			}
			results[w] = out
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for w, got := range results {
		s := float64(w + 1)
		assert.Equal(t, []float64{s, 2 * s, 3 * s, 4 * s}, got, "worker %d", w)
	}
}

func TestErrorHelpers(t *testing.T) {
	assert.Equal(t, status.OK, ErrorCode(nil))
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, status.Fail, ErrorCode(errors.New("plain")))
}

func TestDefaultDispatcherRejectsUnknownProvider(t *testing.T) {
	err := Copy(FromSlice([]int64{1}, 1), FromSlice(make([]int64, 1), 1), opr.Provider(7))
	assert.Equal(t, status.InvalidArgument, ErrorCode(err))
	assert.Equal(t, "Unsupported provider.", ErrorMessage(err))
	assert.Equal(t, "numnet INVALID_ARGUMENT: Unsupported provider.", err.Error())
}
