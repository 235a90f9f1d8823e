// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package norm is the normal-contrast inference front-end: it derives
// the parametric line x(z) = a + b*z for a linear contrast etaT*x of
// Gaussian data and hands it to package inference.
package norm

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/Takeuchi-Lab-SI-Group/sicore/cdf"
	"github.com/Takeuchi-Lab-SI-Group/sicore/cov"
	"github.com/Takeuchi-Lab-SI-Group/sicore/inference"
	"github.com/Takeuchi-Lab-SI-Group/sicore/realset"
)

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// SelectiveInferenceNorm conducts selective inference on a linear
// contrast etaT*x of normally distributed data with covariance Sigma.
type SelectiveInferenceNorm struct {
	Data  []float64
	Sigma cov.T
	Eta   []float64
	Mu0   float64

	Stat   float64
	A      []float64
	B      []float64
	EtaVar float64 // etaT*Sigma*eta
	Limits realset.T
}

// New derives the parametric line and the null distribution's scale
// from data, Sigma, eta, and the null mean mu0.
func New(data []float64, sigma cov.T, eta []float64, mu0 float64) *SelectiveInferenceNorm {
	if len(data) != len(eta) {
		chk.Panic("norm: len(data)=%d != len(eta)=%d\n", len(data), len(eta))
	}
	stat := dot(eta, data)
	sigmaEta := sigma.MulVec(eta)
	etaVar := sigma.Quad(eta)
	if etaVar <= 0 {
		chk.Panic("norm: etaT*Sigma*eta must be positive, got %v\n", etaVar)
	}

	b := make([]float64, len(data))
	a := make([]float64, len(data))
	for i := range data {
		b[i] = sigmaEta[i] / etaVar
		a[i] = data[i] - stat*b[i]
	}

	sd := math.Sqrt(etaVar)
	standardized := (stat - mu0) / sd
	L := math.Max(30, 10+math.Abs(standardized))
	limits := realset.MustNew([][2]float64{{mu0 - L*sd, mu0 + L*sd}})

	return &SelectiveInferenceNorm{
		Data: data, Sigma: sigma, Eta: eta, Mu0: mu0,
		Stat: stat, A: a, B: b, EtaVar: etaVar, Limits: limits,
	}
}

// Null returns the normal null distribution N(mu0, etaT*Sigma*eta).
func (s *SelectiveInferenceNorm) Null() cdf.Normal {
	return cdf.Normal{Mu: s.Mu0, Sigma2: s.EtaVar}
}

// Inference runs the parametric search driver over the derived line.
func (s *SelectiveInferenceNorm) Inference(algorithm inference.Algorithm, modelSelector inference.ModelSelector, opts ...inference.Option) (*inference.Result, error) {
	d := &inference.Driver{
		A: s.A, B: s.B, Stat: s.Stat,
		Null: s.Null(), Support: realset.Whole(), Limits: s.Limits,
	}
	return d.Inference(algorithm, modelSelector, opts...)
}

// NaiveInferenceNorm evaluates the untruncated p-value for the same
// contrast, ignoring any model selection.
type NaiveInferenceNorm struct {
	Stat   float64
	Mu0    float64
	EtaVar float64
}

// NewNaive derives the naive front-end from the same inputs as New.
func NewNaive(data []float64, sigma cov.T, eta []float64, mu0 float64) *NaiveInferenceNorm {
	return &NaiveInferenceNorm{
		Stat:   dot(eta, data),
		Mu0:    mu0,
		EtaVar: sigma.Quad(eta),
	}
}

// Inference returns the untruncated p-value under the given
// alternative.
func (n *NaiveInferenceNorm) Inference(alternative string) (float64, error) {
	esc := cdf.NewEscalator()
	kind := cdf.Normal{Mu: n.Mu0, Sigma2: n.EtaVar}
	absolute := alternative == "abs"
	F, err := esc.TruncatedCDF(kind, n.Stat, realset.Whole(), absolute)
	if err != nil {
		return 0, err
	}
	return inference.ComputePvalue(F, alternative), nil
}
