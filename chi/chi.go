// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chi is the chi-statistic inference front-end: it derives the
// parametric line x(z) = a + b*z for the norm of a whitened projection
// of Gaussian data and hands it to package inference.
package chi

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/Takeuchi-Lab-SI-Group/sicore/cdf"
	"github.com/Takeuchi-Lab-SI-Group/sicore/cov"
	"github.com/Takeuchi-Lab-SI-Group/sicore/inference"
	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

// SelectiveInferenceChi conducts selective inference on the norm of a
// projection Px of normally distributed data.
type SelectiveInferenceChi struct {
	Data  []float64
	Sigma cov.T
	P     [][]float64 // projection matrix, rank K
	K     float64

	Stat    float64
	A       []float64
	B       []float64
	Limits  realset.T
	Support realset.T
}

// New derives the parametric line and the null Chi(k) distribution
// from data, Sigma, the projection P, and its rank k.
func New(data []float64, sigma cov.T, p [][]float64, k float64) *SelectiveInferenceChi {
	if len(p) == 0 || len(p[0]) != len(data) {
		chk.Panic("chi: projection matrix P is not conformant with data\n")
	}
	px := matVec(p, data)
	statSq := sigma.InvQuad(px)
	if statSq < 0 {
		statSq = 0
	}
	stat := math.Sqrt(statSq)
	if stat == 0 {
		chk.Panic("chi: stat == 0, whitened projection is degenerate\n")
	}

	b := make([]float64, len(data))
	a := make([]float64, len(data))
	for i := range data {
		b[i] = px[i] / stat
		a[i] = data[i] - px[i]
	}

	limitHi := math.Max(k+4*math.Sqrt(2*k), stat+10)
	limits := realset.MustNew([][2]float64{{0, limitHi}})
	support := realset.MustNew([][2]float64{{0, math.Inf(1)}})

	return &SelectiveInferenceChi{
		Data: data, Sigma: sigma, P: p, K: k,
		Stat: stat, A: a, B: b, Limits: limits, Support: support,
	}
}

func matVec(m [][]float64, v []float64) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		s := 0.0
		for j, x := range row {
			s += x * v[j]
		}
		out[i] = s
	}
	return out
}

// Null returns the Chi(K) null distribution.
func (s *SelectiveInferenceChi) Null() cdf.Chi { return cdf.Chi{K: s.K} }

// Inference runs the parametric search driver over the derived line.
func (s *SelectiveInferenceChi) Inference(algorithm inference.Algorithm, modelSelector inference.ModelSelector, opts ...inference.Option) (*inference.Result, error) {
	d := &inference.Driver{
		A: s.A, B: s.B, Stat: s.Stat,
		Null: s.Null(), Support: s.Support, Limits: s.Limits,
	}
	return d.Inference(algorithm, modelSelector, opts...)
}

// NaiveInferenceChi evaluates the untruncated p-value for the same
// statistic, ignoring any model selection.
type NaiveInferenceChi struct {
	Stat float64
	K    float64
}

// NewNaive derives the naive front-end from the same inputs as New.
func NewNaive(data []float64, sigma cov.T, p [][]float64, k float64) *NaiveInferenceChi {
	px := matVec(p, data)
	statSq := sigma.InvQuad(px)
	if statSq < 0 {
		statSq = 0
	}
	return &NaiveInferenceChi{Stat: math.Sqrt(statSq), K: k}
}

// Inference returns the untruncated p-value under the given
// alternative.
func (n *NaiveInferenceChi) Inference(alternative string) (float64, error) {
	esc := cdf.NewEscalator()
	kind := cdf.Chi{K: n.K}
	support := realset.MustNew([][2]float64{{0, math.Inf(1)}})
	absolute := alternative == "abs"
	F, err := esc.TruncatedCDF(kind, n.Stat, support, absolute)
	if err != nil {
		return 0, err
	}
	return inference.ComputePvalue(F, alternative), nil
}
