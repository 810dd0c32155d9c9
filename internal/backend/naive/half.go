package naive

import (
	bfloat16 "github.com/d4l3k/go-bfloat16"
	"github.com/x448/float16"

	"github.com/born-ml/numnet/internal/tensor"
)

// widen copies a float16/bfloat16 view into a dense float32 scratch view.
func widen(t tensor.Tensor) tensor.Tensor {
	l := t.Layout()
	dst := make([]float32, l.Count())
	switch t.DType() {
	case tensor.Float16:
		src := tensor.Elements[float16.Float16](t)
		tensor.ForEachOffset(l, func(i, off int) {
			dst[i] = src[off].Float32()
		})
	case tensor.BFloat16:
		if l.IsContiguous() {
			dst = bfloat16.DecodeFloat32(t.Ref().Bytes()[:l.ContentBytes()])
			break
		}
		src := tensor.Elements[tensor.BF16](t)
		tensor.ForEachOffset(l, func(i, off int) {
			dst[i] = src[off].Float32()
		})
	default:
		panic("widen: " + t.DType().String() + " is not a half precision type")
	}
	return float32View(l.Shape, dst)
}

// scratch returns a dense float32 writable view with the given shape.
func scratch(shape tensor.Shape) *tensor.MutableTensor {
	layout := tensor.NewLayout(shape, tensor.Float32)
	out, err := tensor.NewMutableTensor(layout, make([]byte, layout.ContentBytes()), 0)
	if err != nil {
		panic("scratch: " + err.Error())
	}
	return out
}

// narrow rounds the dense float32 view src into the half precision view out.
func narrow(src tensor.Tensor, out *tensor.MutableTensor) {
	vals := tensor.Elements[float32](src)
	l := out.Layout()
	switch out.DType() {
	case tensor.Float16:
		dst := tensor.MutableElements[float16.Float16](out)
		tensor.ForEachOffset(l, func(i, off int) {
			dst[off] = float16.Fromfloat32(vals[i])
		})
	case tensor.BFloat16:
		if l.IsContiguous() {
			copy(out.View().Ref().Bytes(), bfloat16.EncodeFloat32(vals[:l.Count()]))
			return
		}
		dst := tensor.MutableElements[tensor.BF16](out)
		tensor.ForEachOffset(l, func(i, off int) {
			dst[off] = tensor.BF16FromFloat32(vals[i])
		})
	default:
		panic("narrow: " + out.DType().String() + " is not a half precision type")
	}
}

func float32View(shape tensor.Shape, vals []float32) tensor.Tensor {
	layout := tensor.NewLayout(shape, tensor.Float32)
	buf := make([]byte, layout.ContentBytes())
	t, err := tensor.NewTensor(layout, buf, 0)
	if err != nil {
		panic("float32View: " + err.Error())
	}
	if len(vals) > 0 {
		copy(tensor.Elements[float32](t), vals)
	}
	return t
}
