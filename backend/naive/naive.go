// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package naive provides the reference provider of numnet.
//
// The naive provider runs plain Go loops over strided views: no SIMD, no
// goroutines. It is the provider selected by api.Naive.
package naive

import (
	internalnaive "github.com/born-ml/numnet/internal/backend/naive"
	"github.com/born-ml/numnet/internal/opr"
)

// Backend is the naive reference provider.
type Backend = internalnaive.Backend

// Compile-time check that Backend implements the provider interface.
var _ opr.OpBase = (*Backend)(nil)

// New creates a naive backend.
//
// Most callers go through the api package, which uses the process-wide
// instance; New is useful to call kernels on views directly.
func New() *Backend {
	return internalnaive.New()
}
