// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/numnet/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for the element types a view can be read as.
// Supported types: float32, float64, int32, int64, uint8, bool, float16.Float16, BF16.
type DType = tensor.DType

// DataType represents the element type of a layout.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32  DataType = tensor.Float32
	Float64  DataType = tensor.Float64
	Int32    DataType = tensor.Int32
	Int64    DataType = tensor.Int64
	Uint8    DataType = tensor.Uint8
	Bool     DataType = tensor.Bool
	Float16  DataType = tensor.Float16
	BFloat16 DataType = tensor.BFloat16
)

// BF16 is the bfloat16 element type.
type BF16 = tensor.BF16

// MaxNDim is the maximum rank of a Shape.
const MaxNDim = tensor.MaxNDim

// Shape holds up to MaxNDim extents.
// Example: MustShape(2, 3, 4) represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Format tags how elements are arranged in memory.
type Format = tensor.Format

// FormatDefault is the dense row-major arrangement.
const FormatDefault Format = tensor.FormatDefault

// Layout is a Shape plus strides, element type and format.
type Layout = tensor.Layout

// Ref is an immutable reference to caller-owned memory.
type Ref = tensor.Ref

// MutableRef is a rebindable reference cell.
type MutableRef = tensor.MutableRef

// Tensor is a read-only view over caller-owned memory.
type Tensor = tensor.Tensor

// MutableTensor is a writable, rebindable view over caller-owned memory.
type MutableTensor = tensor.MutableTensor

// Shape and layout construction

// NewShape creates a shape from extents listed outermost first.
//
// Example:
//
//	s, err := tensor.NewShape(2, 3)
//	fmt.Println(s, s.Count()) // {2, 3} 6
func NewShape(dims ...int) (Shape, error) {
	return tensor.NewShape(dims...)
}

// MustShape is like NewShape but panics on invalid extents.
func MustShape(dims ...int) Shape {
	return tensor.MustShape(dims...)
}

// NewScalarLayout creates a rank-0 layout.
func NewScalarLayout(dtype DataType) Layout {
	return tensor.NewScalarLayout(dtype)
}

// NewLayout creates a dense row-major layout.
//
// Example:
//
//	l := tensor.NewLayout(tensor.MustShape(2, 3), tensor.Float32)
//	fmt.Println(l) // (shape = {2, 3}, stride = {3, 1}, dtype = float32)
func NewLayout(shape Shape, dtype DataType) Layout {
	return tensor.NewLayout(shape, dtype)
}

// NewStridedLayout creates a layout with explicit element strides.
func NewStridedLayout(shape Shape, strides []int, dtype DataType) (Layout, error) {
	return tensor.NewStridedLayout(shape, strides, dtype)
}

// BroadcastShapes computes the broadcast shape for two shapes following NumPy broadcasting rules.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// Views

// NewTensor creates a read-only view of layout over buf at a byte offset.
func NewTensor(layout Layout, buf []byte, offset int) (Tensor, error) {
	return tensor.NewTensor(layout, buf, offset)
}

// NewMutableTensor creates a writable view of layout over buf at a byte offset.
func NewMutableTensor(layout Layout, buf []byte, offset int) (*MutableTensor, error) {
	return tensor.NewMutableTensor(layout, buf, offset)
}

// Elements returns the view's memory as a typed slice (zero-copy).
// Panics if T does not match the view's dtype.
func Elements[T DType](t Tensor) []T {
	return tensor.Elements[T](t)
}

// At returns the element at the given indices.
func At[T DType](t Tensor, indices ...int) T {
	return tensor.At[T](t, indices...)
}

// SetAt sets the element at the given indices.
func SetAt[T DType](t *MutableTensor, value T, indices ...int) {
	tensor.SetAt(t, value, indices...)
}
