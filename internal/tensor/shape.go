package tensor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxNDim is the maximum rank of a Shape.
const MaxNDim = 7

// ErrTooManyDims is returned when a shape exceeds MaxNDim axes.
var ErrTooManyDims = errors.New("too many dimensions")

// Shape represents the extents of a tensor.
//
// Extents are kept in a fixed-size array, reversed from construction order:
// internal axis 0 is the last extent given to NewShape (the fastest varying
// one). Dim and Dims translate back to construction order.
type Shape struct {
	ndim    int
	extents [MaxNDim]int
}

// NewShape creates a shape from extents listed outermost first.
func NewShape(dims ...int) (Shape, error) {
	if len(dims) > MaxNDim {
		return Shape{}, fmt.Errorf("%w: got %d, the max is %d", ErrTooManyDims, len(dims), MaxNDim)
	}
	s := Shape{ndim: len(dims)}
	for i, d := range dims {
		if d < 0 {
			return Shape{}, fmt.Errorf("invalid dimension at index %d: %d (must be >= 0)", i, d)
		}
		s.extents[s.ndim-1-i] = d
	}
	return s, nil
}

// MustShape is like NewShape but panics on invalid extents.
func MustShape(dims ...int) Shape {
	s, err := NewShape(dims...)
	if err != nil {
		panic(err)
	}
	return s
}

// NDim returns the number of axes.
func (s Shape) NDim() int {
	return s.ndim
}

// Dim returns the extent of axis i in construction order.
// Panics if i is out of range.
func (s Shape) Dim(i int) int {
	if i < 0 || i >= s.ndim {
		panic(fmt.Sprintf("axis %d out of range for %d-D shape", i, s.ndim))
	}
	return s.extents[s.ndim-1-i]
}

// Dims returns the extents in construction order.
func (s Shape) Dims() []int {
	dims := make([]int, s.ndim)
	for i := range dims {
		dims[i] = s.extents[s.ndim-1-i]
	}
	return dims
}

// IsScalar reports whether the shape is {1}.
func (s Shape) IsScalar() bool {
	return s.ndim == 1 && s.extents[0] == 1
}

// IsEmpty reports whether the shape has no axes or a zero extent.
func (s Shape) IsEmpty() bool {
	if s.ndim == 0 {
		return true
	}
	for i := 0; i < s.ndim; i++ {
		if s.extents[i] == 0 {
			return true
		}
	}
	return false
}

// IsShape reports whether both shapes have the same rank and extents.
func (s Shape) IsShape(rhs Shape) bool {
	if s.ndim != rhs.ndim {
		return false
	}
	for i := 0; i < s.ndim; i++ {
		if s.extents[i] != rhs.extents[i] {
			return false
		}
	}
	return true
}

// IsEquivalentShape reports whether the shapes agree on the innermost
// min(rank) axes, with every extra outer axis of the longer shape equal to 1.
// {1, 2, 3} is equivalent to {2, 3}; {2, 3, 1} is not.
func (s Shape) IsEquivalentShape(rhs Shape) bool {
	n := min(s.ndim, rhs.ndim)
	for i := 0; i < n; i++ {
		if s.extents[i] != rhs.extents[i] {
			return false
		}
	}
	for i := n; i < s.ndim; i++ {
		if s.extents[i] != 1 {
			return false
		}
	}
	for i := n; i < rhs.ndim; i++ {
		if rhs.extents[i] != 1 {
			return false
		}
	}
	return true
}

// Count returns the number of elements. A rank-0 shape counts 1.
func (s Shape) Count() int {
	n := 1
	for i := 0; i < s.ndim; i++ {
		n *= s.extents[i]
	}
	return n
}

// String renders the shape outermost first, e.g. "{2, 3}".
func (s Shape) String() string {
	return "{" + joinReversed(s.extents[:s.ndim]) + "}"
}

// joinReversed renders internal-order values in construction order.
func joinReversed(v []int) string {
	var sb strings.Builder
	for i := len(v) - 1; i >= 0; i-- {
		sb.WriteString(strconv.Itoa(v[i]))
		if i != 0 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// BroadcastShapes implements NumPy-style broadcasting rules.
//
// Shapes are aligned on their innermost axis; two extents are compatible when
// they are equal or one of them is 1, and missing axes count as 1.
//
//	{3, 1} + {3, 5} -> {3, 5}
//	{5}    + {3, 5} -> {3, 5}
//	{3, 4} + {3, 5} -> error
func BroadcastShapes(a, b Shape) (Shape, error) {
	out := Shape{ndim: max(a.ndim, b.ndim)}
	for i := 0; i < out.ndim; i++ {
		aDim, bDim := 1, 1
		if i < a.ndim {
			aDim = a.extents[i]
		}
		if i < b.ndim {
			bDim = b.extents[i]
		}

		switch {
		case aDim == bDim:
			out.extents[i] = aDim
		case aDim == 1:
			out.extents[i] = bDim
		case bDim == 1:
			out.extents[i] = aDim
		default:
			return Shape{}, fmt.Errorf("shapes not compatible for broadcasting: %v vs %v (axis %d: %d vs %d)",
				a, b, out.ndim-1-i, aDim, bDim)
		}
	}
	return out, nil
}
