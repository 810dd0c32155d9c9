// Package naive implements the reference provider: straightforward loops
// over strided views, no SIMD and no goroutines.
package naive

import (
	"github.com/born-ml/numnet/internal/opr"
)

// Backend is the naive reference provider.
// It has no mutable state, so one instance serves concurrent calls.
type Backend struct{}

var _ opr.OpBase = (*Backend)(nil)

// New creates a naive backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the provider name.
func (nb *Backend) Name() string {
	return opr.Naive.String()
}

// number is the set of element types with native Go arithmetic.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

type integer interface {
	~int32 | ~int64 | ~uint8
}

type float interface {
	~float32 | ~float64
}
