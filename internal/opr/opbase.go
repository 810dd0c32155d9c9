// Package opr defines the operator surface that numnet providers implement.
package opr

import (
	"fmt"
	"strings"

	"github.com/born-ml/numnet/internal/status"
	"github.com/born-ml/numnet/internal/tensor"
)

// Provider selects a backend implementation.
type Provider int

// Known providers. Any other value resolves to no provider.
const (
	Naive Provider = 1
)

// String returns the provider name.
func (p Provider) String() string {
	if p == Naive {
		return "naive"
	}
	return fmt.Sprintf("provider(%d)", int(p))
}

// ParseProvider returns the provider named by s.
func ParseProvider(s string) (Provider, error) {
	if strings.EqualFold(strings.TrimSpace(s), Naive.String()) {
		return Naive, nil
	}
	return 0, fmt.Errorf("unknown provider %q", s)
}

// OpBase is the operator set a provider implements.
//
// Kernels read the input views and write into out. They must validate every
// precondition before the first write, so a failed Status never leaves a
// partially written output. Implementations must not mutate their own state:
// one instance serves concurrent calls on independent views.
type OpBase interface {
	// Name returns the provider name.
	Name() string

	// MatMul writes the matrix product a @ b into out.
	MatMul(a, b tensor.Tensor, out *tensor.MutableTensor, p MatMulParam) status.Status

	// Interelem applies a broadcasting element-wise binary operator.
	Interelem(a, b tensor.Tensor, out *tensor.MutableTensor, p InterelemParam) status.Status

	// Repeat repeats each element of src along an axis.
	Repeat(src tensor.Tensor, out *tensor.MutableTensor, p RepeatParam) status.Status

	// Copy copies src element by element into out, honoring both layouts.
	Copy(src tensor.Tensor, out *tensor.MutableTensor) status.Status
}
