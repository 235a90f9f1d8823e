// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termination implements the stopping rules for the
// parametric search driver, registered by name the same way package
// search registers its probe strategies.
package termination

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

// Context carries what a termination criterion needs to decide whether
// to stop: the numerical limits clipping region, the significance
// level and precision targets, and a callback to the driver's
// current p-value bounds (which itself depends on C3/C4).
type Context struct {
	Limits            realset.T
	SignificanceLevel float64
	Precision         float64
	Bounds            func(searched, truncated realset.T) (infP, supP float64)
}

// Criterion decides whether the search should stop, given the
// searched and truncated regions accumulated so far.
type Criterion func(ctx *Context, searched, truncated realset.T) bool

var allocators = map[string]Criterion{}

func init() {
	allocators["exhaustive"] = Exhaustive
	allocators["over_conditioning"] = OverConditioning
	allocators["precision"] = Precision
	allocators["decision"] = Decision
}

// New returns the named termination criterion.
func New(name string) (Criterion, error) {
	c, ok := allocators[name]
	if !ok {
		return nil, chk.Err("termination: criterion %q is not available\n", name)
	}
	return c, nil
}

// Exhaustive stops once the numerical limits have been fully searched.
func Exhaustive(ctx *Context, searched, truncated realset.T) bool {
	return ctx.Limits.Subset(searched)
}

// OverConditioning stops after the first (and only) iteration.
func OverConditioning(ctx *Context, searched, truncated realset.T) bool {
	return true
}

// Precision stops once the p-value bounds have converged to within
// ctx.Precision of each other.
func Precision(ctx *Context, searched, truncated realset.T) bool {
	infP, supP := ctx.Bounds(searched, truncated)
	return math.Abs(supP-infP) < ctx.Precision
}

// Decision stops as soon as the accept/reject decision at
// ctx.SignificanceLevel is settled regardless of further search.
func Decision(ctx *Context, searched, truncated realset.T) bool {
	infP, supP := ctx.Bounds(searched, truncated)
	return infP > ctx.SignificanceLevel || supP <= ctx.SignificanceLevel
}
