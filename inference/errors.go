// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inference

import "fmt"

// InvalidArgument reports a malformed call: an illegal alternative, a
// non-positive n_jobs, or similar. Fatal at the call boundary.
type InvalidArgument struct {
	Msg string
}

func (e *InvalidArgument) Error() string { return "sicore: invalid argument: " + e.Msg }

// InfiniteLoopError reports that the search made no progress across a
// full iteration, or exceeded max_iter. Diagnostic is non-empty when
// the searched region was non-empty and did not grow in the last
// iteration; the models behind the probe intervals are not compared.
type InfiniteLoopError struct {
	SearchCount int
	Diagnostic  string
}

func (e *InfiniteLoopError) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("sicore: infinite loop after %d probes: %s", e.SearchCount, e.Diagnostic)
	}
	return fmt.Sprintf("sicore: infinite loop after %d probes", e.SearchCount)
}
