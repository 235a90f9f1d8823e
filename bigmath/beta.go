// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigmath

import "math/big"

// betacf evaluates the continued fraction for the incomplete beta
// function via the modified Lentz's method (the same structural
// approach as gcf, specialized to the a,b,x continued fraction).
func (p Prec) betacf(a, b, x *big.Float) *big.Float {
	const tiny = 1e-300
	eps := p.epsFloat()

	qab := p.new().Add(a, b)
	qap := p.new().Add(a, one)
	qam := p.new().Sub(a, one)

	c := p.new().Set(one)
	d := p.new().Mul(x, p.new().Quo(qab, qap))
	d.Sub(one, d)
	if p.new().Abs(d).Cmp(p.fromFloat64(tiny)) < 0 {
		d.SetFloat64(tiny)
	}
	d.Quo(one, d)
	h := p.new().Set(d)

	for m := 1; m < gammaMaxIter; m++ {
		m2 := p.fromInt64(int64(2 * m))
		fm := p.fromInt64(int64(m))
		aPlusM2 := p.new().Add(a, m2)
		qamPlusM2 := p.new().Add(qam, m2)
		qapPlusM2 := p.new().Add(qap, m2)

		// even step: aa = m*(b-m)*x / ((qam+2m)*(a+2m))
		aa := p.new().Mul(fm, p.new().Sub(b, fm))
		aa.Mul(aa, x)
		aa.Quo(aa, p.new().Mul(qamPlusM2, aPlusM2))

		d.Mul(aa, d)
		d.Add(one, d)
		if p.new().Abs(d).Cmp(p.fromFloat64(tiny)) < 0 {
			d.SetFloat64(tiny)
		}
		c.Add(one, p.new().Quo(aa, c))
		if p.new().Abs(c).Cmp(p.fromFloat64(tiny)) < 0 {
			c.SetFloat64(tiny)
		}
		d.Quo(one, d)
		h.Mul(h, p.new().Mul(d, c))

		// odd step: aa = -(a+m)*(qab+m)*x / ((a+2m)*(qap+2m))
		aa = p.new().Neg(p.new().Mul(p.new().Add(a, fm), p.new().Add(qab, fm)))
		aa.Mul(aa, x)
		aa.Quo(aa, p.new().Mul(aPlusM2, qapPlusM2))

		d.Mul(aa, d)
		d.Add(one, d)
		if p.new().Abs(d).Cmp(p.fromFloat64(tiny)) < 0 {
			d.SetFloat64(tiny)
		}
		c.Add(one, p.new().Quo(aa, c))
		if p.new().Abs(c).Cmp(p.fromFloat64(tiny)) < 0 {
			c.SetFloat64(tiny)
		}
		d.Quo(one, d)
		del := p.new().Mul(d, c)
		h.Mul(h, del)

		if p.new().Abs(p.new().Sub(del, one)).Cmp(eps) < 0 {
			break
		}
	}
	return h
}

// IncompleteBetaRegularized returns I_x(a, b), the regularized
// incomplete beta function, for 0 <= x <= 1, a > 0, b > 0.
func (p Prec) IncompleteBetaRegularized(x, a, b *big.Float) *big.Float {
	if x.Sign() <= 0 {
		return p.new().Set(zero)
	}
	if x.Cmp(one) >= 0 {
		return p.new().Set(one)
	}

	lnBeta := p.new().Add(p.LogGamma(a), p.LogGamma(b))
	lnBeta = p.new().Sub(p.LogGamma(p.new().Add(a, b)), lnBeta)

	lnFront := p.new().Mul(a, p.Ln(x))
	lnFront.Add(lnFront, p.new().Mul(b, p.Ln(p.new().Sub(one, x))))
	lnFront.Add(lnFront, lnBeta)
	front := p.Exp(lnFront)

	cutoff := p.new().Quo(p.new().Add(a, one), p.new().Add(p.new().Add(a, b), two))
	if x.Cmp(cutoff) < 0 {
		cf := p.betacf(a, b, x)
		return p.new().Quo(p.new().Mul(front, cf), a)
	}
	cf := p.betacf(b, a, p.new().Sub(one, x))
	v := p.new().Quo(p.new().Mul(front, cf), b)
	return p.new().Sub(one, v)
}
