// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search implements the probe-point strategies that drive the
// parametric search: given the region of the line already searched,
// choose where to look next. Named strategies are registered the way
// package retention registers liquid-retention models: a name maps to
// a constructor in a package-level table, looked up by New.
package search

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

// Context carries the driver state a strategy needs to pick its next
// probe points. It is read-only from the strategy's point of view.
type Context struct {
	Stat    float64
	Mode    float64
	LogPDF  func(z float64) float64
	Support realset.T
	Limits  realset.T
	Step    float64
	NJobs   int
}

// Strategy returns the next probe points given the region already
// searched.
type Strategy func(ctx *Context, searched realset.T) []float64

var allocators = map[string]Strategy{}

func init() {
	allocators["exhaustive"] = Exhaustive
	allocators["over_conditioning"] = OverConditioning
	allocators["pi1"] = PI1
	allocators["pi2"] = PI2
	allocators["pi3"] = PI3
	allocators["parallel"] = Parallel
}

// New returns the named search strategy.
func New(name string) (Strategy, error) {
	s, ok := allocators[name]
	if !ok {
		return nil, chk.Err("search: strategy %q is not available\n", name)
	}
	return s, nil
}

// Exhaustive sweeps the line left to right in Step increments.
func Exhaustive(ctx *Context, searched realset.T) []float64 {
	if searched.IsEmpty() {
		return []float64{ctx.Limits.Intervals[0].L}
	}
	return []float64{searched.Intervals[0].U + ctx.Step}
}

// OverConditioning probes only the observed statistic; the driver
// terminates after this single iteration.
func OverConditioning(ctx *Context, searched realset.T) []float64 {
	return []float64{ctx.Stat}
}

// PI1 targets the statistic, preferring the probe nearest to it.
func PI1(ctx *Context, searched realset.T) []float64 {
	return genericParametric(ctx, searched, ctx.Stat, func(z float64) float64 {
		return math.Abs(z - ctx.Stat)
	})
}

// PI2 targets the null mode, preferring the highest-density probe.
func PI2(ctx *Context, searched realset.T) []float64 {
	return genericParametric(ctx, searched, ctx.Mode, func(z float64) float64 {
		return -ctx.LogPDF(z)
	})
}

// PI3 targets the statistic, breaking ties by density.
func PI3(ctx *Context, searched realset.T) []float64 {
	return genericParametric(ctx, searched, ctx.Stat, func(z float64) float64 {
		return -ctx.LogPDF(z)
	})
}

// genericParametric implements the rule shared by pi1/pi2/pi3: probe
// the target directly while it is unsearched; once it is enclosed by a
// searched interval, step outward from that interval's edges (decaying
// the step when the immediate neighbor is already searched) and keep
// whichever of the two candidates minimizes metric.
func genericParametric(ctx *Context, searched realset.T, target float64, metric func(float64) float64) []float64 {
	if searched.IsEmpty() {
		return []float64{ctx.Stat}
	}
	unsearched := ctx.Support.Difference(searched)
	if unsearched.Contains(target) {
		return []float64{target}
	}
	iv, err := searched.FindIntervalContaining(target)
	if err != nil {
		return []float64{ctx.Stat}
	}

	var candidates []float64
	for _, side := range [...]struct{ edge, sign float64 }{{iv.L, -1}, {iv.U, 1}} {
		if math.IsInf(side.edge, 0) {
			continue
		}
		delta := ctx.Step
		for math.Abs(delta) >= 1e-11 {
			cand := side.edge + side.sign*delta
			if unsearched.Contains(cand) {
				candidates = append(candidates, cand)
				break
			}
			delta /= 10
		}
	}
	if len(candidates) == 0 {
		return []float64{ctx.Stat}
	}

	best := candidates[0]
	bestMetric := metric(best)
	for _, c := range candidates[1:] {
		if m := metric(c); m < bestMetric {
			best, bestMetric = c, m
		}
	}
	return []float64{best}
}

// Parallel emits NJobs*pointsPerCore probe points, expanding outward
// in symmetric shells around the statistic (or the denser edge of the
// interval currently enclosing it), for concurrent evaluation.
func Parallel(ctx *Context, searched realset.T) []float64 {
	const pointsPerCore = 4
	const expandWidth = 0.5

	jobs := ctx.NJobs
	if jobs <= 0 {
		jobs = 1
	}
	numPoints := jobs * pointsPerCore

	unsearched := ctx.Support.Difference(searched)
	var loc float64
	var zList []float64
	if unsearched.Contains(ctx.Stat) {
		zList = []float64{ctx.Stat}
		loc = ctx.Stat
	} else if iv, err := searched.FindIntervalContaining(ctx.Stat); err == nil {
		loc = iv.L
		bestMetric := -ctx.LogPDF(iv.L)
		if m := -ctx.LogPDF(iv.U); m < bestMetric {
			loc = iv.U
		}
	} else {
		loc = ctx.Stat
	}

	tail := 0.0
	for len(zList) < numPoints && tail < 1e6 {
		inner, outer := tail, tail+expandWidth
		shell := realset.MustNew([][2]float64{{loc - outer, loc - inner}, {loc + inner, loc + outer}})
		for _, iv := range unsearched.Intersection(shell).Intervals {
			if iv.L+ctx.Step < iv.U {
				for v := iv.L + ctx.Step; v < iv.U; v += ctx.Step {
					zList = append(zList, v)
				}
			} else {
				zList = append(zList, (iv.L+iv.U)/2)
			}
		}
		tail = outer
	}
	if len(zList) > numPoints {
		zList = zList[:numPoints]
	}
	return zList
}
