// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package api runs numnet operators on caller-owned buffers.
//
// A NativeTensor describes a buffer (dtype, shape, strides, byte offset).
// Every operator takes its inputs and a preallocated output as descriptors
// plus a Provider, validates them and writes the result in place. Failures
// are returned as *Error values that carry a category, a Code and a message:
//
//	a := api.FromSlice([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
//	b := api.FromSlice([]float32{1, 0, 0, 1, 1, 1}, 3, 2)
//	out := api.FromSlice(make([]float32, 4), 2, 2)
//	if err := api.MatMul(a, b, out, nil, api.Naive); err != nil {
//	    return err
//	}
//
// An unrecognized Provider fails with InvalidArgument and the message
// "Unsupported provider." before any kernel runs.
package api

import (
	"github.com/born-ml/numnet/internal/api"
	"github.com/born-ml/numnet/internal/opr"
	"github.com/born-ml/numnet/internal/status"
	"github.com/born-ml/numnet/tensor"
)

// NativeTensor describes a caller-owned buffer.
type NativeTensor = api.NativeTensor

// Dispatcher runs operators against a provider lookup.
type Dispatcher = api.Dispatcher

// Provider selects a backend implementation.
type Provider = opr.Provider

// Naive is the reference provider.
const Naive Provider = opr.Naive

// ParseProvider returns the provider named by s.
func ParseProvider(s string) (Provider, error) {
	return opr.ParseProvider(s)
}

// Operator parameters.
type (
	MatMulParam    = opr.MatMulParam
	InterelemParam = opr.InterelemParam
	RepeatParam    = opr.RepeatParam
	ElemwiseOp     = opr.ElemwiseOp
)

// Element-wise operators.
const (
	Add ElemwiseOp = opr.Add
	Sub ElemwiseOp = opr.Sub
	Mul ElemwiseOp = opr.Mul
	Div ElemwiseOp = opr.Div
	Mod ElemwiseOp = opr.Mod
	And ElemwiseOp = opr.And
	Or  ElemwiseOp = opr.Or
	Xor ElemwiseOp = opr.Xor
)

// Error is the error type returned by every operator.
type Error = status.Error

// Category tells where a failure comes from.
type Category = status.Category

// Failure categories.
const (
	Core   Category = status.Core
	Kernel Category = status.Kernel
)

// Code classifies a failure.
type Code = status.Code

// Failure codes.
const (
	OK              Code = status.OK
	Fail            Code = status.Fail
	InvalidArgument Code = status.InvalidArgument
	InvalidParam    Code = status.InvalidParam
	MismatchedShape Code = status.MismatchedShape
	MismatchedDType Code = status.MismatchedDType
	NotImplemented  Code = status.NotImplemented
	DivideByZero    Code = status.DivideByZero
)

// Sentinel errors for errors.Is checks.
var (
	ErrInvalidArgument = status.ErrInvalidArgument
	ErrInvalidParam    = status.ErrInvalidParam
	ErrMismatchedShape = status.ErrMismatchedShape
	ErrMismatchedDType = status.ErrMismatchedDType
	ErrNotImplemented  = status.ErrNotImplemented
	ErrDivideByZero    = status.ErrDivideByZero
)

// FromSlice describes data as a dense tensor without copying.
func FromSlice[T tensor.DType](data []T, shape ...int) *NativeTensor {
	return api.FromSlice(data, shape...)
}

// NewDispatcher creates a dispatcher over the process-wide providers.
func NewDispatcher() *Dispatcher {
	return api.NewDispatcher()
}

// MatMul writes a @ b into out. p may be nil.
func MatMul(a, b, out *NativeTensor, p *MatMulParam, prov Provider) error {
	return api.MatMul(a, b, out, p, prov)
}

// Interelem writes the broadcast element-wise result of a op b into out.
func Interelem(a, b, out *NativeTensor, p InterelemParam, prov Provider) error {
	return api.Interelem(a, b, out, p, prov)
}

// Repeat writes src with each element repeated along p.Axis into out.
func Repeat(src, out *NativeTensor, p RepeatParam, prov Provider) error {
	return api.Repeat(src, out, p, prov)
}

// Copy copies src into out in row-major element order.
func Copy(src, out *NativeTensor, prov Provider) error {
	return api.Copy(src, out, prov)
}

// ErrorCode returns the Code carried by err, OK for nil.
func ErrorCode(err error) Code {
	return api.ErrorCode(err)
}

// ErrorCategory returns the Category carried by err.
func ErrorCategory(err error) Category {
	return status.FromError(err).Category()
}

// ErrorMessage returns the message carried by err.
func ErrorMessage(err error) string {
	return api.ErrorMessage(err)
}
