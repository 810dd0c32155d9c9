package tensor

import (
	"fmt"
	"unsafe"
)

// Tensor is a read-only view: a Layout over externally owned memory.
// It never allocates or frees the buffer it points at.
type Tensor struct {
	layout Layout
	ref    Ref
}

// NewTensor creates a view of layout over buf starting offset bytes in.
func NewTensor(layout Layout, buf []byte, offset int) (Tensor, error) {
	if err := checkBinding(layout, buf, offset); err != nil {
		return Tensor{}, err
	}
	return Tensor{layout: layout, ref: NewRef(buf, offset)}, nil
}

// Layout returns the view's layout.
func (t Tensor) Layout() Layout {
	return t.layout
}

// Shape returns the view's shape.
func (t Tensor) Shape() Shape {
	return t.layout.Shape
}

// DType returns the view's data type.
func (t Tensor) DType() DataType {
	return t.layout.dtype
}

// Ref returns the reference the view reads through.
func (t Tensor) Ref() Ref {
	return t.ref
}

// String returns a short description of the view.
func (t Tensor) String() string {
	return fmt.Sprintf("Tensor%v@%d", t.layout, t.ref.offset)
}

// MutableTensor is a writable view whose pointer can be rebound with
// ResetPtr. Kernels write their results through it.
type MutableTensor struct {
	layout Layout
	ref    *MutableRef
}

// NewMutableTensor creates a writable view of layout over buf at offset.
func NewMutableTensor(layout Layout, buf []byte, offset int) (*MutableTensor, error) {
	return NewMutableTensorOn(layout, NewMutableRef(buf, offset))
}

// NewMutableTensorOn creates a writable view sharing the reference cell ref.
// The view is attached to the cell: later Resets must keep serving it.
func NewMutableTensorOn(layout Layout, ref *MutableRef) (*MutableTensor, error) {
	if !layout.dtype.Valid() {
		return nil, fmt.Errorf("invalid data type %d", int(layout.dtype))
	}
	size := layout.dtype.Size()
	if err := ref.attach(layout.SpanElements()*size, size); err != nil {
		return nil, fmt.Errorf("binding %v: %w", layout, err)
	}
	return &MutableTensor{layout: layout, ref: ref}, nil
}

// Layout returns the view's layout.
func (t *MutableTensor) Layout() Layout {
	return t.layout
}

// Shape returns the view's shape.
func (t *MutableTensor) Shape() Shape {
	return t.layout.Shape
}

// DType returns the view's data type.
func (t *MutableTensor) DType() DataType {
	return t.layout.dtype
}

// RefCell returns the shared reference cell.
func (t *MutableTensor) RefCell() *MutableRef {
	return t.ref
}

// ResetPtr rebinds the view, and every view sharing its cell, to buf at
// offset. The new binding must be able to hold all of their layouts.
func (t *MutableTensor) ResetPtr(buf []byte, offset int) error {
	if err := t.ref.Reset(buf, offset); err != nil {
		return fmt.Errorf("reset ptr: %w", err)
	}
	return nil
}

// View returns a read-only view of the current binding.
func (t *MutableTensor) View() Tensor {
	return Tensor{layout: t.layout, ref: t.ref.Ref()}
}

// String returns a short description of the view.
func (t *MutableTensor) String() string {
	return fmt.Sprintf("MutableTensor%v@%d", t.layout, t.ref.Ref().offset)
}

// checkBinding validates that buf[offset:] can hold every element layout addresses.
func checkBinding(layout Layout, buf []byte, offset int) error {
	if !layout.dtype.Valid() {
		return fmt.Errorf("invalid data type %d", int(layout.dtype))
	}
	size := layout.dtype.Size()
	if err := checkSpan(buf, offset, layout.SpanElements()*size, size); err != nil {
		return fmt.Errorf("binding %v: %w", layout, err)
	}
	return nil
}

// Elements returns the view's memory as a []T of SpanElements() length.
// Element (i0, i1, ...) lives at index Layout().Offset(i0, i1, ...).
// Panics if T does not match the view's dtype or the layout is empty.
func Elements[T DType](t Tensor) []T {
	want := DataTypeOf[T]()
	if want != t.layout.dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", t.layout.dtype, want))
	}
	if t.layout.IsEmpty() {
		panic(fmt.Sprintf("cannot access elements of empty layout %v", t.layout))
	}
	data := t.ref.Bytes()
	if len(data) < t.layout.SpanElements()*want.Size() {
		panic(fmt.Sprintf("buffer of %d bytes cannot hold %v", len(data), t.layout))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked above
	return unsafe.Slice((*T)(unsafe.Pointer(&data[0])), t.layout.SpanElements())
}

// MutableElements is Elements for a writable view.
func MutableElements[T DType](t *MutableTensor) []T {
	return Elements[T](t.View())
}

// At returns the element at the given indices.
// Panics on dtype mismatch or out of bounds indices.
func At[T DType](t Tensor, indices ...int) T {
	return Elements[T](t)[t.layout.Offset(indices...)]
}

// SetAt sets the element at the given indices.
// Panics on dtype mismatch or out of bounds indices.
func SetAt[T DType](t *MutableTensor, value T, indices ...int) {
	MutableElements[T](t)[t.layout.Offset(indices...)] = value
}
