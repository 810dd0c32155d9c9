// Package api is the boundary between caller-owned buffers and numnet
// operators: it wraps plain buffer descriptors as tensor views, dispatches to
// a provider and reports failures as *status.Error values.
package api

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/numnet/internal/tensor"
)

// NativeTensor describes a caller-owned buffer.
//
// Shape and Strides are listed outermost first; Strides count elements and
// may be nil for a dense row-major buffer. Offset is in bytes. numnet never
// allocates, retains or frees Data beyond the call it is passed to.
type NativeTensor struct {
	DType   tensor.DataType
	Shape   []int
	Strides []int
	Data    []byte
	Offset  int
}

// FromSlice describes data as a dense tensor of the given shape without
// copying: the descriptor aliases the slice's memory.
func FromSlice[T tensor.DType](data []T, shape ...int) *NativeTensor {
	var buf []byte
	if len(data) > 0 {
		size := int(unsafe.Sizeof(data[0]))
		//nolint:gosec // reinterpretation of caller memory, length derived from the slice
		buf = unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*size)
	}
	return &NativeTensor{
		DType: tensor.DataTypeOf[T](),
		Shape: append([]int(nil), shape...),
		Data:  buf,
	}
}

// Layout builds the layout the descriptor declares.
func (nt *NativeTensor) Layout() (tensor.Layout, error) {
	if !nt.DType.Valid() {
		return tensor.Layout{}, fmt.Errorf("invalid data type %d", int(nt.DType))
	}
	shape, err := tensor.NewShape(nt.Shape...)
	if err != nil {
		return tensor.Layout{}, fmt.Errorf("invalid shape: %w", err)
	}
	if nt.Strides == nil {
		return tensor.NewLayout(shape, nt.DType), nil
	}
	layout, err := tensor.NewStridedLayout(shape, nt.Strides, nt.DType)
	if err != nil {
		return tensor.Layout{}, fmt.Errorf("invalid strides: %w", err)
	}
	return layout, nil
}

// ToTensor wraps the descriptor as a read-only view.
func (nt *NativeTensor) ToTensor() (tensor.Tensor, error) {
	layout, err := nt.Layout()
	if err != nil {
		return tensor.Tensor{}, err
	}
	return tensor.NewTensor(layout, nt.Data, nt.Offset)
}

// ToMutableTensor wraps the descriptor as a writable view.
func (nt *NativeTensor) ToMutableTensor() (*tensor.MutableTensor, error) {
	layout, err := nt.Layout()
	if err != nil {
		return nil, err
	}
	return tensor.NewMutableTensor(layout, nt.Data, nt.Offset)
}
