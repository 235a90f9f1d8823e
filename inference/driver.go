// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inference implements the parametric search driver (the
// "core" of selective inference): it owns the line parametrization
// x(z) = a + b*z, repeatedly probes a user-supplied selection
// algorithm, accumulates the searched and truncated regions of the
// line, and reduces them to a p-value and its bounds via package cdf.
package inference

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/cpmech/gosl/io"

	"github.com/Takeuchi-Lab-SI-Group/sicore/cdf"
	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
	"github.com/Takeuchi-Lab-SI-Group/sicore/search"
	"github.com/Takeuchi-Lab-SI-Group/sicore/termination"
)

// Algorithm is the external selection procedure: given the line
// parametrization (a, b) and a probe z, it returns the selected model
// and the interval (or union of intervals) of z for which that same
// model is selected. The contract (every z' in intervals selects the
// same model) is the caller's responsibility; violating it manifests
// as non-progress and an InfiniteLoopError.
type Algorithm func(a, b []float64, z float64) (model any, intervals realset.T)

// ModelSelector reports whether model matches the one observed at the
// actual statistic.
type ModelSelector func(model any) bool

// Driver owns the parametric line and the null distribution and runs
// the search-and-truncate loop described by Inference.
type Driver struct {
	A, B    []float64
	Stat    float64
	Null    cdf.Kind
	Support realset.T
	Limits  realset.T

	// Escalator is reused across calls to share its precision cache;
	// if nil, a fresh one is created per Inference call.
	Escalator *cdf.Escalator
}

// ComputePvalue converts a CDF value into a p-value under the given
// alternative hypothesis. It is exported so the naive front-ends in
// package norm and package chi can share it with the driver.
func ComputePvalue(F float64, alternative string) float64 {
	switch alternative {
	case "two-sided":
		if F < 1-F {
			return 2 * F
		}
		return 2 * (1 - F)
	case "less", "abs":
		return 1 - F
	case "greater":
		return F
	default:
		return 1 - F
	}
}

func computePvalue(F float64, alternative string) float64 { return ComputePvalue(F, alternative) }

func sortedPair(a, b float64) (lo, hi float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// finiteBounds returns the smallest and largest finite values among
// all of s's interval endpoints (L and U pooled together, the way a
// flattened, finite-filtered view of s's endpoints would read).
func finiteBounds(s realset.T) (lo, hi float64, ok bool) {
	lo, hi = posInf, negInf
	consider := func(v float64) {
		if isInf(v) {
			return
		}
		ok = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for _, iv := range s.Intervals {
		consider(iv.L)
		consider(iv.U)
	}
	return lo, hi, ok
}

// clipToLimits applies the driver's "don't introduce spurious
// truncation at the limits boundary" rule: s is intersected with
// limits only when both of s's smallest and largest finite endpoints
// lie strictly inside limits, so only the ill-conditioned tails beyond
// limits are cut; otherwise s is returned unchanged.
func clipToLimits(s, limits realset.T) realset.T {
	lo, hi, ok := finiteBounds(s)
	if !ok {
		return s
	}
	inside := func(v float64) bool {
		iv, err := limits.FindIntervalContaining(v)
		return err == nil && iv.L < v && v < iv.U
	}
	if inside(lo) && inside(hi) {
		return s.Intersection(limits)
	}
	return s
}

func (d *Driver) pvalueBounds(esc *cdf.Escalator, searched, truncated realset.T, alternative string) (infP, supP float64) {
	var mask realset.T
	if alternative == "abs" {
		mask = realset.MustNew([][2]float64{{-absf(d.Stat), absf(d.Stat)}})
	} else {
		mask = realset.MustNew([][2]float64{{negInf, d.Stat}})
	}
	unsearched := searched.Complement()
	infIntervals := truncated.Union(unsearched.Difference(mask)).Intersection(d.Support)
	supIntervals := truncated.Union(unsearched.Intersection(mask)).Intersection(d.Support)

	infIntervals = clipToLimits(infIntervals, d.Limits)
	supIntervals = clipToLimits(supIntervals, d.Limits)

	absolute := alternative == "abs"
	infF, _ := esc.TruncatedCDF(d.Null, d.Stat, infIntervals, absolute)
	supF, _ := esc.TruncatedCDF(d.Null, d.Stat, supIntervals, absolute)

	p1 := computePvalue(infF, alternative)
	p2 := computePvalue(supF, alternative)
	return sortedPair(p1, p2)
}

type probeResult struct {
	model     any
	intervals realset.T
}

// Inference runs the parametric search driver: it asks the resolved
// search strategy for probe points, evaluates algorithm at each (in
// parallel when opts.NJobs > 1), folds the results into the searched
// and truncated regions, and stops when the resolved termination
// criterion is satisfied. It returns InfiniteLoopError if a full
// iteration makes no progress or max_iter is exceeded.
func (d *Driver) Inference(algorithm Algorithm, modelSelector ModelSelector, optFns ...Option) (*Result, error) {
	opts := NewOptions(optFns...)
	if err := opts.validate(); err != nil {
		return nil, err
	}

	strategy, err := resolveStrategy(opts)
	if err != nil {
		return nil, err
	}
	criterion, err := resolveCriterion(opts)
	if err != nil {
		return nil, err
	}

	esc := d.Escalator
	if esc == nil {
		esc = cdf.NewEscalator()
	}
	var logMu sync.Mutex
	var logLines []string
	if opts.OutLog != "" {
		esc.OnEscalate = func(msg string) {
			logMu.Lock()
			logLines = append(logLines, msg)
			logMu.Unlock()
		}
	}

	searchCtx := &search.Context{
		Stat: d.Stat, Mode: d.Null.Mode(), LogPDF: d.Null.LogPDF,
		Support: d.Support, Limits: d.Limits, Step: opts.Step, NJobs: opts.NJobs,
	}
	boundsFn := func(searched, truncated realset.T) (float64, float64) {
		return d.pvalueBounds(esc, searched, truncated, opts.Alternative)
	}
	termCtx := &termination.Context{
		Limits: d.Limits, SignificanceLevel: opts.SignificanceLevel,
		Precision: opts.Precision, Bounds: boundsFn,
	}

	searched := realset.Empty()
	truncated := realset.Empty()
	before := realset.Empty()
	searchCount, detectCount := 0, 0

	for {
		zList := strategy(searchCtx, searched)
		results := make([]probeResult, len(zList))

		if opts.NJobs <= 1 {
			for i, z := range zList {
				model, intervals := algorithm(d.A, d.B, z)
				results[i] = probeResult{model, intervals}
			}
		} else {
			var wg sync.WaitGroup
			sem := make(chan struct{}, opts.NJobs)
			for i, z := range zList {
				wg.Add(1)
				sem <- struct{}{}
				go func(i int, z float64) {
					defer wg.Done()
					defer func() { <-sem }()
					model, intervals := algorithm(d.A, d.B, z)
					results[i] = probeResult{model, intervals}
				}(i, z)
			}
			wg.Wait()
		}

		for _, r := range results {
			searchCount++
			searched = searched.Union(r.intervals)
			if modelSelector(r.model) {
				detectCount++
				truncated = truncated.Union(r.intervals)
			}
		}

		if searchCount > opts.MaxIter || searched.Equal(before) {
			diag := ""
			if searched.Equal(before) && !searched.IsEmpty() {
				diag = "searched region did not grow; check the algorithm's interval contract"
			}
			return nil, &InfiniteLoopError{SearchCount: searchCount, Diagnostic: diag}
		}
		before = searched

		if criterion(termCtx, searched, truncated) {
			break
		}
	}

	if opts.OutLog != "" {
		logMu.Lock()
		if len(logLines) > 0 {
			dir, fn := filepath.Split(opts.OutLog)
			if dir == "" {
				dir = "."
			}
			io.WriteFileSD(dir, fn, strings.Join(logLines, "\n")+"\n")
		}
		logMu.Unlock()
	}

	absolute := opts.Alternative == "abs"
	finalTruncated := clipToLimits(truncated, d.Limits)
	finalF, _ := esc.TruncatedCDF(d.Null, d.Stat, finalTruncated, absolute)
	pValue := computePvalue(finalF, opts.Alternative)

	infP, supP := d.pvalueBounds(esc, searched, truncated, opts.Alternative)

	naiveF, _ := esc.TruncatedCDF(d.Null, d.Stat, d.Support, absolute)
	naiveP := computePvalue(naiveF, opts.Alternative)

	return &Result{
		Stat: d.Stat, Alpha: opts.SignificanceLevel,
		PValue: pValue, InfP: infP, SupP: supP, NaiveP: naiveP,
		SearchedIntervals: searched.ToList(), TruncatedIntervals: truncated.ToList(),
		SearchCount: searchCount, DetectCount: detectCount,
	}, nil
}

func resolveStrategy(o Options) (search.Strategy, error) {
	switch v := o.SearchStrategy.(type) {
	case search.Strategy:
		return v, nil
	case string:
		name := v
		switch o.InferenceMode {
		case "exhaustive":
			name = "exhaustive"
		case "over_conditioning":
			name = "over_conditioning"
		}
		return search.New(name)
	default:
		return nil, &InvalidArgument{Msg: "search_strategy must be a string name or a search.Strategy"}
	}
}

func resolveCriterion(o Options) (termination.Criterion, error) {
	switch v := o.TerminationCriterion.(type) {
	case termination.Criterion:
		return v, nil
	case string:
		name := v
		switch o.InferenceMode {
		case "exhaustive":
			name = "exhaustive"
		case "over_conditioning":
			name = "over_conditioning"
		}
		return termination.New(name)
	default:
		return nil, &InvalidArgument{Msg: "termination_criterion must be a string name or a termination.Criterion"}
	}
}
