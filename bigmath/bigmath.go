// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bigmath is the arbitrary-precision kernel behind the
// truncated-CDF evaluator (package cdf). It wraps math/big.Float the
// way JonasLazardGIT-SPRUCE/ntru/ffsampler.go wraps Gram-matrix entries:
// every value carries an explicit precision, and every guard against
// cancellation is an explicit Sign/Cmp/Abs check rather than a
// tolerance baked into the arithmetic.
//
// The Go ecosystem has no arbitrary-precision equivalent of mpmath's
// erf/gammainc/betainc, so these are implemented directly on
// math/big.Float: Taylor/continued-fraction evaluation for exp, ln,
// erf/erfc, and Spouge's approximation for log-Gamma, which (unlike the
// classic double-precision Lanczos coefficients) scales its parameter
// with the requested precision.
package bigmath

import (
	"math/big"
)

// Prec bundles a precision (in bits) used for a chain of big.Float
// operations, analogous to mpmath's mp.dps.
type Prec uint

// FromDigits converts a decimal-digit precision (as in mpmath's dps) to
// a bit precision suitable for big.Float.SetPrec.
func FromDigits(digits int) Prec {
	bits := uint(float64(digits)*3.3219280948873626) + 64
	return Prec(bits)
}

func (p Prec) new() *big.Float {
	return new(big.Float).SetPrec(uint(p))
}

func (p Prec) fromInt64(v int64) *big.Float {
	return p.new().SetInt64(v)
}

func (p Prec) fromFloat64(v float64) *big.Float {
	return p.new().SetFloat64(v)
}

var (
	one  = big.NewFloat(1)
	zero = big.NewFloat(0)
	two  = big.NewFloat(2)
)

// Ln2 returns ln(2) at the given precision via the quickly-convergent
// series ln(2) = sum_{n=1}^inf 1/(n*2^n).
func (p Prec) Ln2() *big.Float {
	sum := p.new()
	term := p.fromFloat64(1)
	two_ := p.fromFloat64(2)
	for n := int64(1); n < int64(p)*2+64; n++ {
		term.Quo(term, two_)
		contrib := p.new().Quo(term, p.fromInt64(n))
		sum.Add(sum, contrib)
		if isNegligible(contrib, p) {
			break
		}
	}
	return sum
}

// isNegligible reports whether x is smaller in magnitude than
// 2^(7-prec), i.e. below the working precision's resolution up to a
// few guard bits.
func isNegligible(x *big.Float, p Prec) bool {
	if x.Sign() == 0 {
		return true
	}
	exp := x.MantExp(nil)
	return exp < -int(p)+8
}

// Exp returns e^x at precision p, via argument reduction
// (exp(x) = exp(x/2^k)^(2^k) for an integer k chosen so |x/2^k| < 1)
// followed by a Taylor series.
func (p Prec) Exp(x *big.Float) *big.Float {
	if x.Sign() == 0 {
		return p.new().Set(one)
	}
	neg := x.Sign() < 0
	ax := p.new().Abs(x)

	k := 0
	half := p.new().Set(ax)
	for half.Cmp(one) > 0 {
		half.Quo(half, two)
		k++
	}

	sum := p.new().Set(one)
	term := p.new().Set(one)
	for n := int64(1); n < int64(p)+256; n++ {
		term.Mul(term, half)
		term.Quo(term, p.fromInt64(n))
		sum.Add(sum, term)
		if isNegligible(term, p) {
			break
		}
	}

	for i := 0; i < k; i++ {
		sum.Mul(sum, sum)
	}

	if neg {
		return p.new().Quo(one, sum)
	}
	return sum
}

// Ln returns ln(x) at precision p for x > 0, by writing x = m * 2^e
// with m in [1, 2) and summing the atanh-based series
// ln(m) = 2*atanh((m-1)/(m+1)).
func (p Prec) Ln(x *big.Float) *big.Float {
	if x.Sign() <= 0 {
		panic("bigmath: Ln of non-positive value")
	}
	mant := new(big.Float)
	e := x.MantExp(mant)
	// mant is in [0.5, 1); rescale to [1, 2) and adjust exponent.
	mant.Mul(mant, two)
	e--

	mant.SetPrec(uint(p))
	a := p.new().Sub(mant, one)
	b := p.new().Add(mant, one)
	y := p.new().Quo(a, b)
	y2 := p.new().Mul(y, y)

	sum := p.new().Set(y)
	term := p.new().Set(y)
	for n := int64(1); n < int64(p)+256; n++ {
		term.Mul(term, y2)
		denom := p.fromInt64(2*n + 1)
		contrib := p.new().Quo(term, denom)
		sum.Add(sum, contrib)
		if isNegligible(contrib, p) {
			break
		}
	}
	sum.Mul(sum, two)

	if e != 0 {
		sum.Add(sum, p.new().Mul(p.fromInt64(int64(e)), p.Ln2()))
	}
	return sum
}

// Pow returns x^y = exp(y*ln(x)) for x > 0.
func (p Prec) Pow(x, y *big.Float) *big.Float {
	return p.Exp(p.new().Mul(y, p.Ln(x)))
}

// Sqrt returns the square root of x (delegates to big.Float.Sqrt, which
// is already arbitrary precision).
func (p Prec) Sqrt(x *big.Float) *big.Float {
	return p.new().Sqrt(x)
}

// Pi returns pi at precision p via the Chudnovsky-free Machin-like
// formula pi = 16*atan(1/5) - 4*atan(1/239), which converges quickly
// enough for the precisions this package targets.
func (p Prec) Pi() *big.Float {
	atan := func(invX int64) *big.Float {
		x := p.new().Quo(one, p.fromInt64(invX))
		x2 := p.new().Mul(x, x)
		sum := p.new().Set(x)
		term := p.new().Set(x)
		sign := 1
		for n := int64(1); n < int64(p)+256; n++ {
			term.Mul(term, x2)
			denom := p.fromInt64(2*n + 1)
			contrib := p.new().Quo(term, denom)
			if sign > 0 {
				sum.Sub(sum, contrib)
			} else {
				sum.Add(sum, contrib)
			}
			sign = -sign
			if isNegligible(contrib, p) {
				break
			}
		}
		return sum
	}
	t1 := p.new().Mul(p.fromInt64(16), atan(5))
	t2 := p.new().Mul(p.fromInt64(4), atan(239))
	return t1.Sub(t1, t2)
}
