package naive

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/numnet/internal/tensor"
)

// bytesOf aliases data as raw bytes.
func bytesOf[T tensor.DType](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*int(unsafe.Sizeof(zero)))
}

func input[T tensor.DType](t *testing.T, data []T, dims ...int) tensor.Tensor {
	t.Helper()
	layout := tensor.NewLayout(tensor.MustShape(dims...), tensor.DataTypeOf[T]())
	view, err := tensor.NewTensor(layout, bytesOf(data), 0)
	require.NoError(t, err)
	return view
}

func strided[T tensor.DType](t *testing.T, data []T, dims, strides []int) tensor.Tensor {
	t.Helper()
	layout, err := tensor.NewStridedLayout(tensor.MustShape(dims...), strides, tensor.DataTypeOf[T]())
	require.NoError(t, err)
	view, err := tensor.NewTensor(layout, bytesOf(data), 0)
	require.NoError(t, err)
	return view
}

func output[T tensor.DType](t *testing.T, data []T, dims ...int) *tensor.MutableTensor {
	t.Helper()
	layout := tensor.NewLayout(tensor.MustShape(dims...), tensor.DataTypeOf[T]())
	view, err := tensor.NewMutableTensor(layout, bytesOf(data), 0)
	require.NoError(t, err)
	return view
}
