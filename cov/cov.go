// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cov represents the covariance descriptor accepted by the
// inference front-ends: a scalar (isotropic), a diagonal vector, or a
// full symmetric matrix. Each representation exposes only the
// operations the front-ends actually need: Σ·v, vᵀΣv, and vᵀΣ⁻¹v.
package cov

import (
	"github.com/cpmech/gosl/chk"

	"gonum.org/v1/gonum/mat"
)

// T is a covariance descriptor.
type T interface {
	// MulVec returns Σ·v.
	MulVec(v []float64) []float64
	// Quad returns vᵀΣv.
	Quad(v []float64) float64
	// InvQuad returns vᵀΣ⁻¹v.
	InvQuad(v []float64) float64
}

// Scalar is σ²·I.
type Scalar struct{ Sigma2 float64 }

func (s Scalar) MulVec(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = s.Sigma2 * x
	}
	return out
}

func (s Scalar) Quad(v []float64) float64 { return s.Sigma2 * dot(v, v) }

func (s Scalar) InvQuad(v []float64) float64 { return dot(v, v) / s.Sigma2 }

// Diag is diag(d), a vector of per-coordinate variances.
type Diag struct{ D []float64 }

func (c Diag) MulVec(v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = c.D[i] * x
	}
	return out
}

func (c Diag) Quad(v []float64) float64 {
	s := 0.0
	for i, x := range v {
		s += c.D[i] * x * x
	}
	return s
}

func (c Diag) InvQuad(v []float64) float64 {
	s := 0.0
	for i, x := range v {
		s += x * x / c.D[i]
	}
	return s
}

// Full is a dense symmetric covariance matrix.
type Full struct{ Sigma *mat.SymDense }

func (c Full) MulVec(v []float64) []float64 {
	n := c.Sigma.Symmetric()
	vv := mat.NewVecDense(n, v)
	var out mat.VecDense
	out.MulVec(c.Sigma, vv)
	return append([]float64(nil), out.RawVector().Data...)
}

func (c Full) Quad(v []float64) float64 {
	return dot(v, c.MulVec(v))
}

// InvQuad returns vᵀΣ⁻¹v via a Cholesky solve, avoiding an explicit
// matrix inverse.
func (c Full) InvQuad(v []float64) float64 {
	n := c.Sigma.Symmetric()
	var chol mat.Cholesky
	if ok := chol.Factorize(c.Sigma); !ok {
		chk.Panic("cov: covariance matrix is not positive definite\n")
	}
	b := mat.NewVecDense(n, v)
	var x mat.VecDense
	if err := chol.SolveVecTo(&x, b); err != nil {
		chk.Panic("cov: cholesky solve failed: %v\n", err)
	}
	return dot(v, x.RawVector().Data)
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}
