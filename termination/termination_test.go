// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termination

import (
	"testing"

	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

func Test_New_unknown_criterion(t *testing.T) {
	if _, err := New("does-not-exist"); err == nil {
		t.Fatal("expected error for unknown criterion name")
	}
}

func Test_Exhaustive_stops_when_limits_covered(t *testing.T) {
	ctx := &Context{Limits: realset.MustNew([][2]float64{{-5, 5}})}
	if Exhaustive(ctx, realset.MustNew([][2]float64{{-3, 3}}), realset.Empty()) {
		t.Fatal("should not stop while limits are only partially searched")
	}
	if !Exhaustive(ctx, realset.MustNew([][2]float64{{-5, 5}}), realset.Empty()) {
		t.Fatal("should stop once limits are fully searched")
	}
}

func Test_OverConditioning_always_stops(t *testing.T) {
	ctx := &Context{}
	if !OverConditioning(ctx, realset.Empty(), realset.Empty()) {
		t.Fatal("over_conditioning must stop after the first iteration")
	}
}

func Test_Precision_stops_within_tolerance(t *testing.T) {
	ctx := &Context{
		Precision: 1e-3,
		Bounds: func(searched, truncated realset.T) (float64, float64) {
			return 0.1, 0.1005
		},
	}
	if !Precision(ctx, realset.Empty(), realset.Empty()) {
		t.Fatal("bounds within precision should stop")
	}
	ctx.Bounds = func(searched, truncated realset.T) (float64, float64) { return 0.1, 0.5 }
	if Precision(ctx, realset.Empty(), realset.Empty()) {
		t.Fatal("bounds far apart should not stop")
	}
}

func Test_Decision_stops_when_settled(t *testing.T) {
	ctx := &Context{
		SignificanceLevel: 0.05,
		Bounds: func(searched, truncated realset.T) (float64, float64) {
			return 0.2, 0.3
		},
	}
	if !Decision(ctx, realset.Empty(), realset.Empty()) {
		t.Fatal("inf_p above alpha should settle the decision")
	}
	ctx.Bounds = func(searched, truncated realset.T) (float64, float64) { return 0.01, 0.3 }
	if Decision(ctx, realset.Empty(), realset.Empty()) {
		t.Fatal("straddling alpha should not settle the decision")
	}
}
