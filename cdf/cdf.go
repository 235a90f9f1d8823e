// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cdf supplies the null distributions (normal, chi, chi-square,
// t, F) used as the right-hand side of a selective p-value, each
// evaluated at arbitrary precision via package bigmath, and the
// truncated-CDF facade that turns a raw CDF plus a RealSubset into
// F_trunc(x; S) = mu(S cap (-inf, x]) / mu(S).
//
// Distribution kinds are a closed sum type (Normal, Chi, ChiSquare, T, F)
// rather than a string tag, so the facade dispatches by method call
// instead of by name comparison.
package cdf

import (
	"math"
	"math/big"

	"github.com/Takeuchi-Lab-SI-Group/sicore/bigmath"
	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

// Kind is a null distribution usable with the truncated-CDF facade.
type Kind interface {
	cdfBig(p bigmath.Prec, x float64) *big.Float
	// LogPDF is the log-density at x, in double precision: it is only
	// ever used to rank candidate probe points, never to compute a
	// p-value, so it does not need arbitrary-precision arithmetic.
	LogPDF(x float64) float64
	Mode() float64
	Support() realset.T
	// Symmetric reports whether the distribution is symmetric about 0,
	// which is what makes alternative=abs foldable via F(x)-F(-x).
	Symmetric() bool
	String() string
}

// Normal is N(Mu, Sigma2).
type Normal struct {
	Mu     float64
	Sigma2 float64
}

func (k Normal) String() string { return "normal" }

func (k Normal) cdfBig(p bigmath.Prec, x float64) *big.Float {
	if math.IsInf(x, 1) {
		return p.new().SetInt64(1)
	}
	if math.IsInf(x, -1) {
		return p.new()
	}
	xb := p.new().SetFloat64(x - k.Mu)
	sd := p.Sqrt(p.new().SetFloat64(k.Sigma2))
	z := p.new().Quo(xb, sd)
	return p.Phi(z)
}

func (k Normal) LogPDF(x float64) float64 {
	d := x - k.Mu
	return -0.5*math.Log(2*math.Pi*k.Sigma2) - d*d/(2*k.Sigma2)
}

func (k Normal) Mode() float64       { return k.Mu }
func (k Normal) Support() realset.T  { return realset.Whole() }
func (k Normal) Symmetric() bool     { return true }

// T is the Student-t distribution with Nu degrees of freedom.
type T struct {
	Nu float64
}

func (k T) String() string { return "t" }

func (k T) cdfBig(p bigmath.Prec, x float64) *big.Float {
	if math.IsInf(x, -1) {
		return p.new()
	}
	if math.IsInf(x, 1) {
		return p.new().SetInt64(1)
	}
	nu := p.new().SetFloat64(k.Nu)
	x2 := p.new().SetFloat64(x * x)
	denom := p.new().Add(nu, x2)
	xt := p.new().Quo(nu, denom)
	half := p.new().SetFloat64(0.5)
	nuHalf := p.new().Quo(nu, p.new().SetInt64(2))
	ib := p.IncompleteBetaRegularized(xt, nuHalf, half)
	if x >= 0 {
		v := p.new().Mul(half, ib)
		return p.new().Sub(p.new().SetInt64(1), v)
	}
	return p.new().Mul(half, ib)
}

func (k T) LogPDF(x float64) float64 {
	nu := k.Nu
	return mathLgamma((nu+1)/2) - mathLgamma(nu/2) - 0.5*math.Log(nu*math.Pi) -
		(nu+1)/2*math.Log(1+x*x/nu)
}

func (k T) Mode() float64      { return 0 }
func (k T) Support() realset.T { return realset.Whole() }
func (k T) Symmetric() bool    { return true }

// Chi is the chi distribution on [0, inf) with K degrees of freedom.
type Chi struct {
	K float64
}

func (k Chi) String() string { return "chi" }

func (k Chi) cdfBig(p bigmath.Prec, x float64) *big.Float {
	if x <= 0 {
		return p.new()
	}
	if math.IsInf(x, 1) {
		return p.new().SetInt64(1)
	}
	half := p.new().Quo(p.new().SetFloat64(k.K), p.new().SetInt64(2))
	x2 := p.new().SetFloat64(x * x / 2)
	return p.GammaP(half, x2)
}

func (k Chi) LogPDF(x float64) float64 {
	if x <= 0 {
		if k.K == 1 {
			return 0.5*math.Log(2/math.Pi) - x*x/2
		}
		return math.Inf(-1)
	}
	return (k.K-1)*math.Log(x) - x*x/2 - (k.K/2-1)*math.Log(2) - mathLgamma(k.K/2)
}

func (k Chi) Mode() float64 {
	if k.K >= 1 {
		return math.Sqrt(k.K - 1)
	}
	return 0
}
func (k Chi) Support() realset.T { return realset.MustNew([][2]float64{{0, math.Inf(1)}}) }
func (k Chi) Symmetric() bool    { return false }

// ChiSquare is the chi-square distribution on [0, inf) with K degrees
// of freedom.
type ChiSquare struct {
	K float64
}

func (k ChiSquare) String() string { return "chi2" }

func (k ChiSquare) cdfBig(p bigmath.Prec, x float64) *big.Float {
	if x <= 0 {
		return p.new()
	}
	if math.IsInf(x, 1) {
		return p.new().SetInt64(1)
	}
	half := p.new().Quo(p.new().SetFloat64(k.K), p.new().SetInt64(2))
	xh := p.new().SetFloat64(x / 2)
	return p.GammaP(half, xh)
}

func (k ChiSquare) LogPDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	return (k.K/2-1)*math.Log(x) - x/2 - (k.K/2)*math.Log(2) - mathLgamma(k.K/2)
}

func (k ChiSquare) Mode() float64 {
	if k.K >= 2 {
		return k.K - 2
	}
	return 0
}
func (k ChiSquare) Support() realset.T { return realset.MustNew([][2]float64{{0, math.Inf(1)}}) }
func (k ChiSquare) Symmetric() bool    { return false }

// F is the F distribution with D1, D2 degrees of freedom.
type F struct {
	D1, D2 float64
}

func (k F) String() string { return "f" }

func (k F) cdfBig(p bigmath.Prec, x float64) *big.Float {
	if x <= 0 {
		return p.new()
	}
	if math.IsInf(x, 1) {
		return p.new().SetInt64(1)
	}
	d1 := p.new().SetFloat64(k.D1)
	d2 := p.new().SetFloat64(k.D2)
	num := p.new().Mul(d1, p.new().SetFloat64(x))
	denom := p.new().Add(num, d2)
	xf := p.new().Quo(num, denom)
	return p.IncompleteBetaRegularized(xf, p.new().Quo(d1, p.new().SetInt64(2)), p.new().Quo(d2, p.new().SetInt64(2)))
}

func (k F) LogPDF(x float64) float64 {
	if x <= 0 {
		return math.Inf(-1)
	}
	d1, d2 := k.D1, k.D2
	lbeta := mathLgamma(d1/2) + mathLgamma(d2/2) - mathLgamma((d1+d2)/2)
	return 0.5*d1*math.Log(d1/d2) + (d1/2-1)*math.Log(x) -
		(d1+d2)/2*math.Log(1+d1*x/d2) - lbeta
}

func (k F) Mode() float64 {
	if k.D1 > 2 {
		return (k.D2 * (k.D1 - 2)) / (k.D1 * (k.D2 + 2))
	}
	return 0
}
func (k F) Support() realset.T { return realset.MustNew([][2]float64{{0, math.Inf(1)}}) }
func (k F) Symmetric() bool    { return false }

// CDF returns the untruncated CDF of k at x, computed at digits decimal
// digits of precision (0 selects a default working precision).
func CDF(k Kind, x float64, digits int) float64 {
	if digits <= 0 {
		digits = 30
	}
	p := bigmath.FromDigits(digits)
	v, _ := k.cdfBig(p, x).Float64()
	return v
}

func mathLgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
