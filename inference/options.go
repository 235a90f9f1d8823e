// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inference

// Options configures a call to Driver.Inference. The zero value is not
// meaningful on its own; build one with NewOptions and functional
// Option setters, which layer onto DefaultOptions.
type Options struct {
	Alternative string // two-sided | less | greater | abs

	InferenceMode string // parametric | exhaustive | over_conditioning

	// SearchStrategy is either a search-strategy name (pi1, pi2, pi3,
	// parallel) or a search.Strategy callable.
	SearchStrategy any
	// TerminationCriterion is either a criterion name (precision,
	// decision) or a termination.Criterion callable.
	TerminationCriterion any

	MaxIter           int
	NJobs             int
	Step              float64
	SignificanceLevel float64
	Precision         float64

	// OutLog, if non-empty, receives precision-escalation warnings
	// raised while computing truncated CDFs.
	OutLog string
}

// DefaultOptions returns the options used when no Option overrides a
// field.
func DefaultOptions() Options {
	return Options{
		Alternative:          "abs",
		InferenceMode:        "parametric",
		SearchStrategy:       "pi3",
		TerminationCriterion: "precision",
		MaxIter:              100_000,
		NJobs:                1,
		Step:                 1e-6,
		SignificanceLevel:    0.05,
		Precision:            1e-3,
	}
}

// Option mutates an Options value built from DefaultOptions.
type Option func(*Options)

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithAlternative(v string) Option    { return func(o *Options) { o.Alternative = v } }
func WithInferenceMode(v string) Option  { return func(o *Options) { o.InferenceMode = v } }
func WithSearchStrategy(v any) Option    { return func(o *Options) { o.SearchStrategy = v } }
func WithTerminationCriterion(v any) Option {
	return func(o *Options) { o.TerminationCriterion = v }
}
func WithMaxIter(v int) Option  { return func(o *Options) { o.MaxIter = v } }
func WithNJobs(v int) Option    { return func(o *Options) { o.NJobs = v } }
func WithStep(v float64) Option { return func(o *Options) { o.Step = v } }
func WithSignificanceLevel(v float64) Option {
	return func(o *Options) { o.SignificanceLevel = v }
}
func WithPrecision(v float64) Option { return func(o *Options) { o.Precision = v } }
func WithOutLog(v string) Option     { return func(o *Options) { o.OutLog = v } }

func (o Options) validate() error {
	switch o.Alternative {
	case "two-sided", "less", "greater", "abs":
	default:
		return &InvalidArgument{Msg: "alternative must be one of two-sided, less, greater, abs"}
	}
	switch o.InferenceMode {
	case "parametric", "exhaustive", "over_conditioning":
	default:
		return &InvalidArgument{Msg: "inference_mode must be one of parametric, exhaustive, over_conditioning"}
	}
	if o.NJobs <= 0 {
		return &InvalidArgument{Msg: "n_jobs must be a positive integer"}
	}
	if o.MaxIter <= 0 {
		return &InvalidArgument{Msg: "max_iter must be positive"}
	}
	if o.Step <= 0 {
		return &InvalidArgument{Msg: "step must be positive"}
	}
	if o.Precision <= 0 {
		return &InvalidArgument{Msg: "precision must be positive"}
	}
	return nil
}
