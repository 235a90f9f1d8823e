// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import (
	"math"
	"testing"
)

const testDigits = 40

func closeFloat(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

func Test_exp_ln_roundtrip01(tst *testing.T) {
	p := FromDigits(testDigits)
	x := p.fromFloat64(2.3456)
	y := p.Exp(p.Ln(x))
	v, _ := y.Float64()
	if !closeFloat(v, 2.3456, 1e-10) {
		tst.Fatalf("exp(ln(x))=%v, want 2.3456", v)
	}
}

func Test_pi01(tst *testing.T) {
	p := FromDigits(testDigits)
	v, _ := p.Pi().Float64()
	if !closeFloat(v, math.Pi, 1e-12) {
		tst.Fatalf("Pi()=%v, want %v", v, math.Pi)
	}
}

func Test_phi01_standard_normal(tst *testing.T) {
	p := FromDigits(testDigits)
	cases := []struct{ x, want float64 }{
		{0, 0.5},
		{1.959963985, 0.975},
		{-1.959963985, 0.025},
	}
	for _, c := range cases {
		v, _ := p.Phi(p.fromFloat64(c.x)).Float64()
		if !closeFloat(v, c.want, 1e-6) {
			tst.Fatalf("Phi(%v)=%v, want %v", c.x, v, c.want)
		}
	}
}

func Test_gammap01(tst *testing.T) {
	p := FromDigits(testDigits)
	// chi2 cdf with k=2 at x=1 is GammaP(1, 0.5) = 1-exp(-0.5).
	v, _ := p.GammaP(p.fromFloat64(1), p.fromFloat64(0.5)).Float64()
	want := 1 - math.Exp(-0.5)
	if !closeFloat(v, want, 1e-10) {
		tst.Fatalf("GammaP(1,0.5)=%v, want %v", v, want)
	}
}

func Test_incompletebeta01_symmetry(tst *testing.T) {
	p := FromDigits(testDigits)
	// I_x(a,b) + I_(1-x)(b,a) == 1.
	x := p.fromFloat64(0.3)
	a := p.fromFloat64(2)
	b := p.fromFloat64(5)
	ix := p.IncompleteBetaRegularized(x, a, b)
	iy := p.IncompleteBetaRegularized(p.new().Sub(one, x), b, a)
	sum := p.new().Add(ix, iy)
	v, _ := sum.Float64()
	if !closeFloat(v, 1.0, 1e-10) {
		tst.Fatalf("I_x(a,b)+I_1-x(b,a)=%v, want 1", v)
	}
}

// Test_incompletebeta01_closed_form pins IncompleteBetaRegularized
// against closed forms (I_x(a,1)=x^a, I_x(1,b)=1-(1-x)^b, I_x(1,1)=x)
// that fix the absolute scale, unlike the symmetry identity above
// which cancels any common scaling factor on both sides.
func Test_incompletebeta01_closed_form(tst *testing.T) {
	p := FromDigits(testDigits)

	// I_0.5(2,1) = 0.5^2 = 0.25.
	v, _ := p.IncompleteBetaRegularized(p.fromFloat64(0.5), p.fromFloat64(2), p.fromFloat64(1)).Float64()
	if !closeFloat(v, 0.25, 1e-10) {
		tst.Fatalf("I_0.5(2,1)=%v, want 0.25", v)
	}

	// I_0.3(1,5) = 1-(1-0.3)^5 = 1-0.7^5.
	v, _ = p.IncompleteBetaRegularized(p.fromFloat64(0.3), p.fromFloat64(1), p.fromFloat64(5)).Float64()
	want := 1 - math.Pow(0.7, 5)
	if !closeFloat(v, want, 1e-10) {
		tst.Fatalf("I_0.3(1,5)=%v, want %v", v, want)
	}

	// I_x(1,1) = x.
	v, _ = p.IncompleteBetaRegularized(p.fromFloat64(0.42), p.fromFloat64(1), p.fromFloat64(1)).Float64()
	if !closeFloat(v, 0.42, 1e-10) {
		tst.Fatalf("I_0.42(1,1)=%v, want 0.42", v)
	}
}
