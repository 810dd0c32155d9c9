// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the layout model and views of numnet.
//
// # Overview
//
// A Layout describes how elements are addressed in a buffer:
//   - Shape: up to MaxNDim extents
//   - strides in elements, dense row-major by default
//   - an element DataType and a Format tag
//
// Tensor and MutableTensor are views: they point at memory owned by the
// caller and never allocate or free it. Only a MutableTensor can be rebound
// to another buffer (ResetPtr), so the type decides whether a view is
// rebindable.
//
// # Basic Usage
//
//	buf := make([]byte, 6*4)
//	layout := tensor.NewLayout(tensor.MustShape(2, 3), tensor.Float32)
//	out, err := tensor.NewMutableTensor(layout, buf, 0)
//	if err != nil {
//	    return err
//	}
//	tensor.SetAt[float32](out, 1.5, 1, 2)
//
// # Equivalence
//
// IsShape and IsSameLayout compare exactly. IsEquivalentShape and
// IsEquivalentLayout also accept extra outer axes of extent 1, so {1, 2, 3}
// is equivalent to {2, 3}. Layout equivalence ignores strides.
package tensor
