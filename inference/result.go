// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inference

import (
	"fmt"
	"strings"
)

// Result is the outcome of a completed Inference call.
type Result struct {
	Stat  float64
	Alpha float64

	PValue float64
	InfP   float64
	SupP   float64
	NaiveP float64

	SearchedIntervals  [][2]float64
	TruncatedIntervals [][2]float64

	SearchCount int
	DetectCount int
}

// String renders the result the way SelectiveInferenceResult is
// reported: fixed six-decimal lines followed by the truncated
// intervals and the iteration counters.
func (r Result) String() string {
	var ivs []string
	for _, iv := range r.TruncatedIntervals {
		ivs = append(ivs, fmt.Sprintf("[%.6f, %.6f]", iv[0], iv[1]))
	}
	lines := []string{
		fmt.Sprintf("stat: %.6f", r.Stat),
		fmt.Sprintf("p_value: %.6f", r.PValue),
		fmt.Sprintf("inf_p: %.6f", r.InfP),
		fmt.Sprintf("sup_p: %.6f", r.SupP),
		fmt.Sprintf("naive_p: %.6f", r.NaiveP),
		fmt.Sprintf("truncated_intervals: [%s]", strings.Join(ivs, ", ")),
		fmt.Sprintf("search_count: %d", r.SearchCount),
		fmt.Sprintf("detect_count: %d", r.DetectCount),
	}
	return strings.Join(lines, "\n")
}
