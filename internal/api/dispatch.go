package api

import (
	"k8s.io/klog/v2"

	"github.com/born-ml/numnet/internal/opr"
	"github.com/born-ml/numnet/internal/provider"
	"github.com/born-ml/numnet/internal/status"
	"github.com/born-ml/numnet/internal/tensor"
)

// Lookup resolves a provider identifier to its implementation.
type Lookup func(opr.Provider) (opr.OpBase, bool)

// Dispatcher runs operators against the providers its Lookup resolves.
// It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	lookup Lookup
}

// NewDispatcher creates a dispatcher over the process-wide provider registry.
func NewDispatcher() *Dispatcher {
	return NewDispatcherWithLookup(provider.Get)
}

// NewDispatcherWithLookup creates a dispatcher over a custom lookup.
func NewDispatcherWithLookup(lookup Lookup) *Dispatcher {
	return &Dispatcher{lookup: lookup}
}

var defaultDispatcher = NewDispatcher()

// MatMul writes a @ b into out. p may be nil.
func (d *Dispatcher) MatMul(a, b, out *NativeTensor, p *opr.MatMulParam, prov opr.Provider) error {
	param := opr.MatMulParam{}
	if p != nil {
		param = *p
	}
	return d.run("matmul", prov, []*NativeTensor{a, b}, out,
		func(in []tensor.Tensor, out tensor.Layout) status.Status {
			want, st := opr.DeduceMatMul(in[0].Shape(), in[1].Shape())
			if !st.IsOK() {
				return st
			}
			return opr.CheckOutput("matmul", want, out)
		},
		func(impl opr.OpBase, in []tensor.Tensor, out *tensor.MutableTensor) status.Status {
			return impl.MatMul(in[0], in[1], out, param)
		})
}

// Interelem writes the broadcast element-wise result of a op b into out.
func (d *Dispatcher) Interelem(a, b, out *NativeTensor, p opr.InterelemParam, prov opr.Provider) error {
	return d.run("interelem", prov, []*NativeTensor{a, b}, out,
		func(in []tensor.Tensor, out tensor.Layout) status.Status {
			want, st := opr.DeduceInterelem(in[0].Layout(), in[1].Layout(), p)
			if !st.IsOK() {
				return st
			}
			return opr.CheckOutput("interelem", want, out)
		},
		func(impl opr.OpBase, in []tensor.Tensor, out *tensor.MutableTensor) status.Status {
			return impl.Interelem(in[0], in[1], out, p)
		})
}

// Repeat writes src with every element repeated along an axis into out.
func (d *Dispatcher) Repeat(src, out *NativeTensor, p opr.RepeatParam, prov opr.Provider) error {
	return d.run("repeat", prov, []*NativeTensor{src}, out,
		func(in []tensor.Tensor, out tensor.Layout) status.Status {
			want, st := opr.DeduceRepeat(in[0].Shape(), p)
			if !st.IsOK() {
				return st
			}
			return opr.CheckOutput("repeat", want, out)
		},
		func(impl opr.OpBase, in []tensor.Tensor, out *tensor.MutableTensor) status.Status {
			return impl.Repeat(in[0], out, p)
		})
}

// Copy copies src into out in row-major element order.
func (d *Dispatcher) Copy(src, out *NativeTensor, prov opr.Provider) error {
	return d.run("copy", prov, []*NativeTensor{src}, out,
		func(in []tensor.Tensor, out tensor.Layout) status.Status {
			if in[0].Layout().Count() != out.Count() {
				return status.New(status.Core, status.MismatchedShape,
					"copy: cannot copy %v into %v: element counts differ", in[0].Shape(), out.Shape)
			}
			return status.Ok()
		},
		func(impl opr.OpBase, in []tensor.Tensor, out *tensor.MutableTensor) status.Status {
			return impl.Copy(in[0], out)
		})
}

// run resolves the provider, wraps the descriptors and invokes kernel only
// once every precondition checked here has passed.
func (d *Dispatcher) run(
	op string,
	prov opr.Provider,
	inputs []*NativeTensor,
	output *NativeTensor,
	check func(in []tensor.Tensor, out tensor.Layout) status.Status,
	kernel func(impl opr.OpBase, in []tensor.Tensor, out *tensor.MutableTensor) status.Status,
) error {
	impl, ok := d.lookup(prov)
	if !ok {
		return reject(op, prov, status.New(status.Core, status.InvalidArgument, "Unsupported provider."))
	}

	in := make([]tensor.Tensor, len(inputs))
	layouts := make([]tensor.Layout, 0, len(inputs)+1)
	for i, nt := range inputs {
		if nt == nil {
			return reject(op, prov, status.New(status.Core, status.InvalidArgument, "%s: input %d is nil", op, i))
		}
		t, err := nt.ToTensor()
		if err != nil {
			return reject(op, prov, status.New(status.Core, status.InvalidArgument, "%s: input %d: %v", op, i, err))
		}
		in[i] = t
		layouts = append(layouts, t.Layout())
	}
	if output == nil {
		return reject(op, prov, status.New(status.Core, status.InvalidArgument, "%s: output is nil", op))
	}
	out, err := output.ToMutableTensor()
	if err != nil {
		return reject(op, prov, status.New(status.Core, status.InvalidArgument, "%s: output: %v", op, err))
	}
	layouts = append(layouts, out.Layout())

	if st := opr.CheckNotEmpty(op, layouts...); !st.IsOK() {
		return reject(op, prov, st)
	}
	if st := opr.CheckDTypes(op, layouts...); !st.IsOK() {
		return reject(op, prov, st)
	}
	if st := check(in, out.Layout()); !st.IsOK() {
		return reject(op, prov, st)
	}

	klog.V(4).InfoS("Dispatching operator", "op", op, "provider", impl.Name(), "output", out.Layout())
	st := kernel(impl, in, out)
	if st.IsOK() {
		return nil
	}
	if st.Category() != status.Core {
		st = st.WithCategory(status.Kernel)
	}
	return reject(op, prov, st)
}

func reject(op string, prov opr.Provider, st status.Status) error {
	klog.V(2).InfoS("Operator failed", "op", op, "provider", prov, "category", st.Category(), "code", st.Code(), "message", st.Message())
	return st.Err()
}

// MatMul runs Dispatcher.MatMul on the default dispatcher.
func MatMul(a, b, out *NativeTensor, p *opr.MatMulParam, prov opr.Provider) error {
	return defaultDispatcher.MatMul(a, b, out, p, prov)
}

// Interelem runs Dispatcher.Interelem on the default dispatcher.
func Interelem(a, b, out *NativeTensor, p opr.InterelemParam, prov opr.Provider) error {
	return defaultDispatcher.Interelem(a, b, out, p, prov)
}

// Repeat runs Dispatcher.Repeat on the default dispatcher.
func Repeat(src, out *NativeTensor, p opr.RepeatParam, prov opr.Provider) error {
	return defaultDispatcher.Repeat(src, out, p, prov)
}

// Copy runs Dispatcher.Copy on the default dispatcher.
func Copy(src, out *NativeTensor, prov opr.Provider) error {
	return defaultDispatcher.Copy(src, out, prov)
}

// ErrorCode returns the failure code carried by err, OK for nil.
func ErrorCode(err error) status.Code {
	return status.FromError(err).Code()
}

// ErrorMessage returns the failure message carried by err.
func ErrorMessage(err error) string {
	return status.FromError(err).Message()
}
