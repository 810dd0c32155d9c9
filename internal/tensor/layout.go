package tensor

import (
	"errors"
	"fmt"
)

// ErrStrideMismatch is returned when a stride vector does not match the shape's rank.
var ErrStrideMismatch = errors.New("size of shape mismatched that of stride")

// Format tags how elements are arranged in memory.
type Format int

// Supported formats.
const (
	FormatDefault Format = iota
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatDefault {
		return "default"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Layout is a Shape plus element strides, a data type and a format.
// Strides are counted in elements and stored in the same reversed order as
// the extents.
type Layout struct {
	Shape
	dtype  DataType
	format Format
	stride [MaxNDim]int
}

// NewScalarLayout creates a rank-0 layout of dtype.
func NewScalarLayout(dtype DataType) Layout {
	return Layout{dtype: dtype, format: FormatDefault}
}

// NewLayout creates a dense row-major layout over shape.
func NewLayout(shape Shape, dtype DataType) Layout {
	return NewLayoutWithFormat(shape, dtype, FormatDefault)
}

// NewLayoutWithFormat creates a dense layout with an explicit format.
// The stride of internal axis i is the product of the extents of axes 0..i-1,
// so the innermost axis has stride 1.
func NewLayoutWithFormat(shape Shape, dtype DataType, format Format) Layout {
	l := Layout{Shape: shape, dtype: dtype, format: format}
	s := 1
	for i := 0; i < shape.ndim; i++ {
		l.stride[i] = s
		s *= shape.extents[i]
	}
	return l
}

// NewStridedLayout creates a layout with explicit strides, listed in the
// same outermost-first order as the shape's extents.
func NewStridedLayout(shape Shape, strides []int, dtype DataType) (Layout, error) {
	return NewStridedLayoutWithFormat(shape, strides, dtype, FormatDefault)
}

// NewStridedLayoutWithFormat is NewStridedLayout with an explicit format.
func NewStridedLayoutWithFormat(shape Shape, strides []int, dtype DataType, format Format) (Layout, error) {
	if len(strides) != shape.ndim {
		return Layout{}, fmt.Errorf("%w: shape %v has %d dims, got %d strides",
			ErrStrideMismatch, shape, shape.ndim, len(strides))
	}
	l := Layout{Shape: shape, dtype: dtype, format: format}
	for i, st := range strides {
		if st < 0 {
			return Layout{}, fmt.Errorf("invalid stride at index %d: %d (must be >= 0)", i, st)
		}
		l.stride[shape.ndim-1-i] = st
	}
	return l, nil
}

// DType returns the element type.
func (l Layout) DType() DataType {
	return l.dtype
}

// Format returns the memory arrangement tag.
func (l Layout) Format() Format {
	return l.format
}

// Stride returns the stride of axis i in construction order.
func (l Layout) Stride(i int) int {
	if i < 0 || i >= l.ndim {
		panic(fmt.Sprintf("axis %d out of range for %d-D layout", i, l.ndim))
	}
	return l.stride[l.ndim-1-i]
}

// Strides returns the strides in construction order.
func (l Layout) Strides() []int {
	strides := make([]int, l.ndim)
	for i := range strides {
		strides[i] = l.stride[l.ndim-1-i]
	}
	return strides
}

// IsSameLayout reports whether both layouts address elements identically:
// same dtype, format, shape and every stride.
func (l Layout) IsSameLayout(rhs Layout) bool {
	if l.dtype != rhs.dtype || l.format != rhs.format || !l.IsShape(rhs.Shape) {
		return false
	}
	for i := 0; i < l.ndim; i++ {
		if l.stride[i] != rhs.stride[i] {
			return false
		}
	}
	return true
}

// IsEquivalentLayout reports whether dtype and format match and the shapes
// are equivalent. Strides are not compared.
func (l Layout) IsEquivalentLayout(rhs Layout) bool {
	return l.dtype == rhs.dtype && l.format == rhs.format && l.IsEquivalentShape(rhs.Shape)
}

// ContentBytes returns Count() * dtype size.
func (l Layout) ContentBytes() int {
	return l.Count() * l.dtype.Size()
}

// IsContiguous reports whether the strides are the dense row-major ones.
func (l Layout) IsContiguous() bool {
	s := 1
	for i := 0; i < l.ndim; i++ {
		if l.extents[i] != 1 && l.stride[i] != s {
			return false
		}
		s *= l.extents[i]
	}
	return true
}

// Contiguous returns the dense layout with the same shape, dtype and format.
func (l Layout) Contiguous() Layout {
	return NewLayoutWithFormat(l.Shape, l.dtype, l.format)
}

// SpanElements returns how many elements, counted from the view's base,
// the layout can address: the largest element offset plus one.
// Empty layouts span nothing; rank-0 layouts span one element.
func (l Layout) SpanElements() int {
	if l.ndim == 0 {
		return 1
	}
	if l.IsEmpty() {
		return 0
	}
	last := 0
	for i := 0; i < l.ndim; i++ {
		last += (l.extents[i] - 1) * l.stride[i]
	}
	return last + 1
}

// BroadcastTo returns a view layout of shape target over the same elements.
// Axes that are broadcast get stride 0.
func (l Layout) BroadcastTo(target Shape) (Layout, error) {
	if target.ndim < l.ndim {
		return Layout{}, fmt.Errorf("cannot broadcast %v to lower rank shape %v", l.Shape, target)
	}
	out := Layout{Shape: target, dtype: l.dtype, format: l.format}
	for i := 0; i < target.ndim; i++ {
		switch {
		case i >= l.ndim:
			out.stride[i] = 0
		case l.extents[i] == target.extents[i]:
			out.stride[i] = l.stride[i]
		case l.extents[i] == 1:
			out.stride[i] = 0
		default:
			return Layout{}, fmt.Errorf("cannot broadcast %v to %v (axis %d: %d vs %d)",
				l.Shape, target, target.ndim-1-i, l.extents[i], target.extents[i])
		}
	}
	return out, nil
}

// String renders the layout, e.g. "(shape = {2, 3}, stride = {3, 1}, dtype = float32)".
func (l Layout) String() string {
	r := "("
	if l.ndim == 0 {
		r += " Scalar"
	} else {
		r += "shape = {" + joinReversed(l.extents[:l.ndim]) + "}"
		r += ", stride = {" + joinReversed(l.stride[:l.ndim]) + "}"
	}
	return r + ", dtype = " + l.dtype.String() + ")"
}
