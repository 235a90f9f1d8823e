// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package search

import (
	"math"
	"testing"

	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

func stdNormalLogPDF(z float64) float64 {
	return -0.5*math.Log(2*math.Pi) - 0.5*z*z
}

func Test_New_unknown_strategy(t *testing.T) {
	if _, err := New("does-not-exist"); err == nil {
		t.Fatal("expected error for unknown strategy name")
	}
}

func Test_PI3_first_probe_is_stat(t *testing.T) {
	ctx := &Context{Stat: 1.5, Mode: 0, LogPDF: stdNormalLogPDF, Support: realset.Whole(), Step: 1e-3}
	got := PI3(ctx, realset.Empty())
	if len(got) != 1 || got[0] != 1.5 {
		t.Fatalf("PI3 first probe = %v, want [1.5]", got)
	}
}

func Test_PI3_steps_outward_from_searched_edge(t *testing.T) {
	ctx := &Context{Stat: 1.5, Mode: 0, LogPDF: stdNormalLogPDF, Support: realset.Whole(), Step: 1e-3}
	searched := realset.MustNew([][2]float64{{0, 2}})
	got := PI3(ctx, searched)
	if len(got) != 1 {
		t.Fatalf("expected a single probe, got %v", got)
	}
	// The candidates are 0-step and 2+step; under the standard normal
	// the one just below 0 has the higher density, so pi3 picks it.
	if got[0] >= 0 {
		t.Fatalf("expected probe just below the searched region's lower edge, got %v", got[0])
	}
}

func Test_OverConditioning_always_stat(t *testing.T) {
	ctx := &Context{Stat: 3.0}
	got := OverConditioning(ctx, realset.MustNew([][2]float64{{0, 1}}))
	if len(got) != 1 || got[0] != 3.0 {
		t.Fatalf("OverConditioning = %v, want [3.0]", got)
	}
}

func Test_Exhaustive_starts_at_limit(t *testing.T) {
	ctx := &Context{Limits: realset.MustNew([][2]float64{{-10, 10}}), Step: 0.5}
	got := Exhaustive(ctx, realset.Empty())
	if len(got) != 1 || got[0] != -10 {
		t.Fatalf("Exhaustive first probe = %v, want [-10]", got)
	}
	searched := realset.MustNew([][2]float64{{-10, -9}})
	got = Exhaustive(ctx, searched)
	if len(got) != 1 || got[0] != -9+0.5 {
		t.Fatalf("Exhaustive next probe = %v, want [%v]", got, -9+0.5)
	}
}

func Test_Parallel_emits_njobs_times_four(t *testing.T) {
	ctx := &Context{
		Stat: 0, Mode: 0, LogPDF: stdNormalLogPDF,
		Support: realset.Whole(), Step: 0.1, NJobs: 2,
	}
	got := Parallel(ctx, realset.Empty())
	if len(got) == 0 {
		t.Fatal("expected at least one probe point")
	}
	if len(got) > 8 {
		t.Fatalf("got %d probes, want at most njobs*4=8", len(got))
	}
}
