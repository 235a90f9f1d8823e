// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"math"
	"testing"

	"github.com/Takeuchi-Lab-SI-Group/sicore/cov"
	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

func Test_New_derives_stat_and_line(t *testing.T) {
	data := []float64{1.0, 2.0, 3.0}
	eta := []float64{1.0, 0.0, 0.0}
	sigma := cov.Scalar{Sigma2: 2.0}

	sn := New(data, sigma, eta, 0)
	if sn.Stat != 1.0 {
		t.Fatalf("stat = %v, want 1.0", sn.Stat)
	}
	if sn.EtaVar != 2.0 {
		t.Fatalf("etaVar = %v, want 2.0", sn.EtaVar)
	}
	// a + b*stat must reconstruct the original data exactly.
	for i := range data {
		got := sn.A[i] + sn.B[i]*sn.Stat
		if math.Abs(got-data[i]) > 1e-9 {
			t.Fatalf("reconstruction at %d: got %v, want %v", i, got, data[i])
		}
	}
}

func Test_NaiveInferenceNorm_matches_standard_normal(t *testing.T) {
	data := []float64{0.0}
	eta := []float64{1.0}
	sigma := cov.Scalar{Sigma2: 1.0}

	naive := NewNaive(data, sigma, eta, 0)
	p, err := naive.Inference("abs")
	if err != nil {
		t.Fatalf("Inference: %v", err)
	}
	if math.Abs(p-1.0) > 1e-6 {
		t.Fatalf("p_value = %v, want ~1.0 at stat=0 under abs", p)
	}
}

func Test_trivial_model_selector(t *testing.T) {
	data := []float64{0.8}
	eta := []float64{1.0}
	sigma := cov.Scalar{Sigma2: 1.0}
	sn := New(data, sigma, eta, 0)

	always := func(a, b []float64, z float64) (any, realset.T) {
		return "m", realset.Whole()
	}
	res, err := sn.Inference(always, func(m any) bool { return m == "m" })
	if err != nil {
		t.Fatalf("Inference: %v", err)
	}
	if math.Abs(res.PValue-res.NaiveP) > 1e-9 {
		t.Fatalf("p_value=%v naive_p=%v, want equal", res.PValue, res.NaiveP)
	}
}
