// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chi

import (
	"math"
	"testing"

	"github.com/Takeuchi-Lab-SI-Group/sicore/cov"
)

func Test_New_derives_stat_and_line(t *testing.T) {
	data := []float64{3.0, 4.0}
	sigma := cov.Scalar{Sigma2: 1.0}
	p := [][]float64{{1, 0}, {0, 1}}

	sc := New(data, sigma, p, 2.0)
	if math.Abs(sc.Stat-5.0) > 1e-9 {
		t.Fatalf("stat = %v, want 5.0", sc.Stat)
	}
	for i := range data {
		got := sc.A[i] + sc.B[i]*sc.Stat
		if math.Abs(got-data[i]) > 1e-9 {
			t.Fatalf("reconstruction at %d: got %v, want %v", i, got, data[i])
		}
	}
}

func Test_NaiveInferenceChi(t *testing.T) {
	data := []float64{3.0, 4.0}
	sigma := cov.Scalar{Sigma2: 1.0}
	p := [][]float64{{1, 0}, {0, 1}}

	naive := NewNaive(data, sigma, p, 2.0)
	pval, err := naive.Inference("greater")
	if err != nil {
		t.Fatalf("Inference: %v", err)
	}
	if pval <= 0 || pval >= 1 {
		t.Fatalf("p_value = %v, want in (0,1)", pval)
	}
}
