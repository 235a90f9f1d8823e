// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inference

import "math"

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

func isInf(x float64) bool { return math.IsInf(x, 0) }

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
