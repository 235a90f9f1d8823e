// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inference

import (
	"math"
	"testing"

	"github.com/Takeuchi-Lab-SI-Group/sicore/cdf"
	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

func closeTo(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s: got %.9f, want %.9f", what, got, want)
	}
}

// Test_trivial_algorithm exercises an algorithm that selects the same
// model everywhere: the driver must converge in a single probe, with
// p_value == naive_p and inf_p == sup_p == p_value.
func Test_trivial_algorithm(t *testing.T) {
	d := &Driver{
		Stat:    0.8,
		Null:    cdf.Normal{Mu: 0, Sigma2: 1},
		Support: realset.Whole(),
		Limits:  realset.Whole(),
	}

	always := func(a, b []float64, z float64) (any, realset.T) {
		return "only-model", realset.Whole()
	}
	selector := func(model any) bool { return model == "only-model" }

	res, err := d.Inference(always, selector)
	if err != nil {
		t.Fatalf("Inference: %v", err)
	}
	if res.SearchCount != 1 {
		t.Fatalf("search_count = %d, want 1", res.SearchCount)
	}
	closeTo(t, res.PValue, res.NaiveP, 1e-12, "p_value vs naive_p")
	closeTo(t, res.InfP, res.SupP, 1e-12, "inf_p vs sup_p")
	closeTo(t, res.InfP, res.PValue, 1e-12, "inf_p vs p_value")
}

// Test_bisected_line exercises an algorithm that switches model at 0:
// model A on (-inf, 0], model B on [0, inf). model_selector picks A,
// stat = -0.5 lands inside A's region, so the truncation collapses to
// (-inf, 0] after the second probe closes off B's half of the line.
func Test_bisected_line(t *testing.T) {
	d := &Driver{
		Stat:    -0.5,
		Null:    cdf.Normal{Mu: 0, Sigma2: 1},
		Support: realset.Whole(),
		Limits:  realset.Whole(),
	}

	bisect := func(a, b []float64, z float64) (any, realset.T) {
		if z <= 0 {
			return "A", realset.MustNew([][2]float64{{math.Inf(-1), 0}})
		}
		return "B", realset.MustNew([][2]float64{{0, math.Inf(1)}})
	}
	selector := func(model any) bool { return model == "A" }

	res, err := d.Inference(bisect, selector, WithAlternative("less"))
	if err != nil {
		t.Fatalf("Inference: %v", err)
	}
	if len(res.TruncatedIntervals) != 1 {
		t.Fatalf("truncated intervals = %v, want one interval", res.TruncatedIntervals)
	}
	want := 0.382924922
	closeTo(t, res.PValue, want, 1e-6, "p_value")
	closeTo(t, res.InfP, res.PValue, 1e-12, "inf_p vs p_value")
	closeTo(t, res.SupP, res.PValue, 1e-12, "sup_p vs p_value")
}

func Test_invalid_alternative_rejected(t *testing.T) {
	d := &Driver{Stat: 0, Null: cdf.Normal{Mu: 0, Sigma2: 1}, Support: realset.Whole(), Limits: realset.Whole()}
	_, err := d.Inference(
		func(a, b []float64, z float64) (any, realset.T) { return nil, realset.Whole() },
		func(model any) bool { return true },
		WithAlternative("bogus"),
	)
	if _, ok := err.(*InvalidArgument); !ok {
		t.Fatalf("expected *InvalidArgument, got %v", err)
	}
}
