// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly reduces a univariate polynomial inequality p(z) <= 0, or a
// quadratic-form polytope intersection, to a realset.T. Roots are found by
// reading the eigenvalues of the polynomial's companion matrix, the
// standard numerically-stable alternative to a closed-form root formula
// once the degree exceeds two or three.
package poly

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

// DefaultTol is the default coefficient/root tolerance used by BelowZero.
const DefaultTol = 1e-10

// eval computes p(z) = sum coef[i] * z^i.
func eval(coef []float64, z float64) float64 {
	v := 0.0
	pow := 1.0
	for _, c := range coef {
		v += c * pow
		pow *= z
	}
	return v
}

// effectiveDegree returns the highest index with a nonzero coefficient, or
// -1 if coef is all zero.
func effectiveDegree(coef []float64) int {
	for i := len(coef) - 1; i >= 0; i-- {
		if coef[i] != 0 {
			return i
		}
	}
	return -1
}

// realRoots returns the real roots (|imag| < tol) of p(z), sorted
// ascending, as read off the eigenvalues of the companion matrix of the
// effective (trimmed) polynomial of degree d = effectiveDegree(coef).
func realRoots(coef []float64, d int, tol float64) []float64 {
	data := make([]float64, d*d)
	lead := coef[d]
	for i := 0; i < d; i++ {
		data[i*d+(d-1)] = -coef[i] / lead
	}
	for i := 0; i < d-1; i++ {
		data[(i+1)*d+i] = 1
	}
	companion := mat.NewDense(d, d, data)

	var eig mat.Eigen
	ok := eig.Factorize(companion, mat.EigenRight)
	if !ok {
		return nil
	}
	values := eig.Values(nil)

	roots := make([]float64, 0, d)
	for _, v := range values {
		if math.Abs(imag(v)) < tol {
			roots = append(roots, real(v))
		}
	}
	sort.Float64s(roots)
	return roots
}

// BelowZero returns {z : p(z) <= 0} as a realset.T, given the ascending
// coefficients c0, ..., cd of p(z) = sum ci*z^i.
//
// Coefficients with |ci| < tol are treated as zero before root-finding;
// roots with |imag| >= tol are discarded. Degenerate (effectively
// constant) polynomials return the whole line or the empty set depending
// on the sign of the constant term.
func BelowZero(coef []float64, tol float64) (realset.T, error) {
	c := make([]float64, len(coef))
	for i, v := range coef {
		if math.Abs(v) >= tol {
			c[i] = v
		}
	}

	d := effectiveDegree(c)
	if d <= 0 {
		c0 := 0.0
		if d == 0 {
			c0 = c[0]
		}
		if c0 <= 0 {
			return realset.Whole(), nil
		}
		return realset.Empty(), nil
	}

	roots := realRoots(c, d, tol)
	if len(roots) == 0 {
		if eval(c, 0) <= 0 {
			return realset.Whole(), nil
		}
		return realset.Empty(), nil
	}

	var segments [][2]float64
	if eval(c, roots[0]-1) <= 0 {
		segments = append(segments, [2]float64{math.Inf(-1), roots[0]})
	}
	for i := 0; i < len(roots)-1; i++ {
		s, e := roots[i], roots[i+1]
		if e-s < tol {
			continue
		}
		if eval(c, (s+e)/2) <= 0 {
			segments = append(segments, [2]float64{s, e})
		}
	}
	if eval(c, roots[len(roots)-1]+1) <= 0 {
		segments = append(segments, [2]float64{roots[len(roots)-1], math.Inf(1)})
	}

	return realset.New(segments)
}

// dot returns the inner product of u and v.
func dot(u, v []float64) float64 {
	s := 0.0
	for i := range u {
		s += u[i] * v[i]
	}
	return s
}

// matVec returns A*v for a dense A stored row-major as [][]float64.
func matVec(A [][]float64, v []float64) []float64 {
	out := make([]float64, len(A))
	for i, row := range A {
		s := 0.0
		for j, a := range row {
			s += a * v[j]
		}
		out[i] = s
	}
	return out
}

// PolytopeToInterval reduces the polytope selection event
//
//	{z : (a+b*z)'A(a+b*z) + beta'(a+b*z) + gamma <= 0}
//
// to {z : alpha*z^2 + beta'*z + gamma' <= 0} and returns it as a
// realset.T. A, beta may be nil to omit the corresponding quadratic or
// linear term; gamma is always added (pass 0 to omit the constant term).
func PolytopeToInterval(a, b []float64, A [][]float64, beta []float64, gamma, tol float64) (realset.T, error) {
	alpha, betaP, gammaP := 0.0, 0.0, gamma
	if A != nil {
		Ab := matVec(A, b)
		Aa := matVec(A, a)
		alpha += dot(b, Ab)
		betaP += dot(a, Ab) + dot(b, Aa)
		gammaP += dot(a, Aa)
	}
	if beta != nil {
		betaP += dot(beta, b)
		gammaP += dot(beta, a)
	}
	return BelowZero([]float64{gammaP, betaP, alpha}, tol)
}
