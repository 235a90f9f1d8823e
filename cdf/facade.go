// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cdf

import (
	"math"
	"math/big"
	"strconv"
	"sync"

	"github.com/Takeuchi-Lab-SI-Group/sicore/bigmath"
	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

const (
	baseDigits    = 30
	defaultMaxDps = 5000
)

var nonNegative = realset.MustNew([][2]float64{{0, math.Inf(1)}})

// foldNegative reflects the part of s lying on the negative axis onto
// the positive axis: fold([-3,-1]) = [1,3]. Used for alternative=abs
// folding; the chi-like branch of TruncatedCDF also applies it, but
// only after S has been restricted to the support.
func foldNegative(s realset.T) realset.T {
	pos := s.Intersection(nonNegative)
	neg := s.Intersection(nonNegative.Complement())
	return pos.Union(neg.Negate())
}

// Escalator resolves truncated CDFs via a precision that is raised
// until the result is numerically trustworthy, caching the digit count
// that worked last time per distribution kind so repeated calls (as
// happen across search iterations) do not restart from the base
// precision every time. It is safe for concurrent use by n_jobs>1
// workers.
type Escalator struct {
	MaxDps int
	// OnEscalate, if set, is called whenever the working precision is
	// raised past the cached value, and once more if max_dps is hit
	// without a trustworthy result. Intended for the driver's out_log.
	OnEscalate func(msg string)

	mu  sync.Mutex
	dps map[string]int
}

// NewEscalator returns an Escalator with the default max_dps of 5000.
func NewEscalator() *Escalator {
	return &Escalator{MaxDps: defaultMaxDps, dps: make(map[string]int)}
}

func (e *Escalator) startDigits(key string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dps == nil {
		e.dps = make(map[string]int)
	}
	if d, ok := e.dps[key]; ok {
		return d
	}
	return baseDigits
}

func (e *Escalator) remember(key string, digits int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.dps == nil {
		e.dps = make(map[string]int)
	}
	e.dps[key] = digits
}

func (e *Escalator) log(msg string) {
	if e.OnEscalate != nil {
		e.OnEscalate(msg)
	}
}

func (e *Escalator) maxDps() int {
	if e.MaxDps <= 0 {
		return defaultMaxDps
	}
	return e.MaxDps
}

// mu sums F(u)-F(l) over the intervals of s, using cdf as the (possibly
// folded) CDF.
func muMeasure(p bigmath.Prec, cdf func(bigmath.Prec, float64) *big.Float, s realset.T) *big.Float {
	sum := p.new()
	for _, iv := range s.Intervals {
		sum.Add(sum, p.new().Sub(cdf(p, iv.U), cdf(p, iv.L)))
	}
	return sum
}

// TruncatedCDF evaluates F_trunc(x; S) = mu(S cap (-inf, x]) / mu(S) for
// the given null distribution kind, folding for chi's signed radius and
// (if absolute) for the |stat| alternative, escalating precision until
// the denominator is resolvable or max_dps is hit.
func (e *Escalator) TruncatedCDF(k Kind, x float64, s realset.T, absolute bool) (float64, error) {
	cdf := func(p bigmath.Prec, v float64) *big.Float { return k.cdfBig(p, v) }
	effS := s.Intersection(k.Support())
	effX := x

	if !k.Symmetric() {
		// Chi-like: S has already been restricted to the support, so any
		// part of S with z < 0 is dropped rather than reflected; x is
		// replaced by |x|.
		effS = foldNegative(effS).Intersection(k.Support())
		effX = math.Abs(effX)
	} else if absolute {
		effS = foldNegative(effS).Intersection(nonNegative)
		effX = math.Abs(effX)
		base := cdf
		cdf = func(p bigmath.Prec, v float64) *big.Float {
			return p.new().Sub(base(p, v), base(p, -v))
		}
	}

	key := k.String()
	digits := e.startDigits(key)
	max := e.maxDps()

	for {
		prec := bigmath.FromDigits(digits)
		denom := muMeasure(prec, cdf, effS)
		numerSet := effS.Intersection(realset.MustNew([][2]float64{{math.Inf(-1), effX}}))
		numer := muMeasure(prec, cdf, numerSet)

		if denom.Sign() != 0 {
			ratio := new(big.Float).SetPrec(uint(prec)).Quo(numer, denom)
			v, _ := ratio.Float64()
			if v > -1e-9 && v < 1+1e-9 {
				if v < 0 {
					v = 0
				}
				if v > 1 {
					v = 1
				}
				e.remember(key, digits)
				return v, nil
			}
		}

		if digits >= max {
			e.log("sicore/cdf: precision exceeded at max_dps=" + strconv.Itoa(max) + " for " + key)
			return fallback(s, x), nil
		}
		digits *= 2
		if digits > max {
			digits = max
		}
		e.log("sicore/cdf: escalating precision to " + strconv.Itoa(digits) + " digits for " + key)
	}
}

// fallback implements the deterministic mu(S)=0 policy: 0.5 if x is in
// S, else 0 or 1 depending on whether x lies below or above S's span.
func fallback(s realset.T, x float64) float64 {
	if s.Contains(x) {
		return 0.5
	}
	if s.IsEmpty() {
		return 0
	}
	lo := s.Intervals[0].L
	hi := s.Intervals[len(s.Intervals)-1].U
	if x <= lo {
		return 0
	}
	if x >= hi {
		return 1
	}
	if x < (lo+hi)/2 {
		return 0
	}
	return 1
}

