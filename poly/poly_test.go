// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"math"
	"testing"

	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

func Test_belowzero01_quadratic(tst *testing.T) {
	// p(z) = z^2 - 1 <= 0  =>  [-1, 1]
	s, err := BelowZero([]float64{-1, 0, 1}, DefaultTol)
	if err != nil {
		tst.Fatal(err)
	}
	want := realset.MustNew([][2]float64{{-1, 1}})
	if !closeTo(s, want, 1e-8) {
		tst.Fatalf("got %v, want %v", s.ToList(), want.ToList())
	}
}

func Test_belowzero02_quadratic(tst *testing.T) {
	// p(z) = (z-2)(z+3) = z^2 + z - 6 <= 0  =>  [-3, 2]
	s, err := BelowZero([]float64{-6, 1, 1}, DefaultTol)
	if err != nil {
		tst.Fatal(err)
	}
	want := realset.MustNew([][2]float64{{-3, 2}})
	if !closeTo(s, want, 1e-8) {
		tst.Fatalf("got %v, want %v", s.ToList(), want.ToList())
	}
}

func Test_belowzero03_constant(tst *testing.T) {
	s, err := BelowZero([]float64{-1}, DefaultTol)
	if err != nil {
		tst.Fatal(err)
	}
	if !s.Equal(realset.Whole()) {
		tst.Fatalf("got %v, want R", s.ToList())
	}

	s2, err := BelowZero([]float64{1}, DefaultTol)
	if err != nil {
		tst.Fatal(err)
	}
	if !s2.IsEmpty() {
		tst.Fatalf("got %v, want empty", s2.ToList())
	}
}

func Test_polytope_to_interval(tst *testing.T) {
	// A = I, beta = 0, gamma = -1: ||a+b z||^2 - 1 <= 0 with a=[0,0], b=[1,0]
	// reduces to z^2 - 1 <= 0 => [-1, 1]
	A := [][]float64{{1, 0}, {0, 1}}
	a := []float64{0, 0}
	b := []float64{1, 0}
	s, err := PolytopeToInterval(a, b, A, nil, -1, DefaultTol)
	if err != nil {
		tst.Fatal(err)
	}
	want := realset.MustNew([][2]float64{{-1, 1}})
	if !closeTo(s, want, 1e-8) {
		tst.Fatalf("got %v, want %v", s.ToList(), want.ToList())
	}
}

func closeTo(a, b realset.T, tol float64) bool {
	al, bl := a.ToList(), b.ToList()
	if len(al) != len(bl) {
		return false
	}
	for i := range al {
		for k := 0; k < 2; k++ {
			if math.Abs(al[i][k]-bl[i][k]) > tol {
				return false
			}
		}
	}
	return true
}
