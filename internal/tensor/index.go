package tensor

import "fmt"

// Offset returns the element offset of the given indices, listed outermost
// first. Panics if the number of indices or any index is out of range.
func (l Layout) Offset(indices ...int) int {
	if len(indices) != l.ndim {
		panic(fmt.Sprintf("expected %d indices, got %d", l.ndim, len(indices)))
	}
	offset := 0
	for i, idx := range indices {
		ax := l.ndim - 1 - i
		if idx < 0 || idx >= l.extents[ax] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, l.extents[ax]))
		}
		offset += idx * l.stride[ax]
	}
	return offset
}

// ForEachOffset calls fn for every element of l in row-major order with the
// element's linear position and its offset from the view base.
// A rank-0 layout visits a single element at offset 0.
func ForEachOffset(l Layout, fn func(i, offset int)) {
	ForEachOffsets(func(i int, offsets []int) {
		fn(i, offsets[0])
	}, l)
}

// ForEachOffsets walks layouts sharing one shape in lockstep, calling fn with
// the linear position and each layout's element offset. Layouts produced by
// BroadcastTo let operands of different shapes be walked together.
// Panics if the layouts do not all have the first layout's shape.
func ForEachOffsets(fn func(i int, offsets []int), layouts ...Layout) {
	if len(layouts) == 0 {
		return
	}
	shape := layouts[0].Shape
	for _, l := range layouts[1:] {
		if !l.IsShape(shape) {
			panic(fmt.Sprintf("layout %v does not have shape %v", l, shape))
		}
	}
	if shape.ndim != 0 && shape.IsEmpty() {
		return
	}

	var idx [MaxNDim]int
	offsets := make([]int, len(layouts))
	n := shape.Count()
	for i := 0; i < n; i++ {
		fn(i, offsets)
		for ax := 0; ax < shape.ndim; ax++ {
			idx[ax]++
			for j := range layouts {
				offsets[j] += layouts[j].stride[ax]
			}
			if idx[ax] < shape.extents[ax] {
				break
			}
			for j := range layouts {
				offsets[j] -= idx[ax] * layouts[j].stride[ax]
			}
			idx[ax] = 0
		}
	}
}
