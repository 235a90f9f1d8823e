// Copyright 2015 The Sicore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package realset implements RealSubset, a finite union of closed
// intervals of the real line, together with the boolean algebra over
// it (union, intersection, complement, difference) needed to assemble
// and query a model-selection truncation set.
package realset

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Interval is a closed interval [L, U] with L <= U. Endpoints may be
// +Inf/-Inf.
type Interval struct {
	L, U float64
}

// T is a normalized finite union of pairwise disjoint, non-touching
// closed intervals, stored in ascending order. The zero value is the
// empty set.
type T struct {
	Intervals []Interval
}

// Empty returns the empty RealSubset.
func Empty() T {
	return T{}
}

// Whole returns the RealSubset representing the whole real line.
func Whole() T {
	return T{Intervals: []Interval{{L: math.Inf(-1), U: math.Inf(1)}}}
}

// New builds a normalized RealSubset from a list of (possibly
// overlapping, unordered) closed-interval pairs. It returns an error if
// any pair is inverted (l > u).
func New(pairs [][2]float64) (T, error) {
	ivs := make([]Interval, 0, len(pairs))
	for _, p := range pairs {
		if p[0] > p[1] {
			return T{}, chk.Err("realset: inverted interval [%g, %g]\n", p[0], p[1])
		}
		ivs = append(ivs, Interval{L: p[0], U: p[1]})
	}
	return T{Intervals: normalize(ivs)}, nil
}

// MustNew is like New but panics on error. Intended for literal,
// compile-time-known constants inside the package and its tests.
func MustNew(pairs [][2]float64) T {
	s, err := New(pairs)
	if err != nil {
		chk.Panic("realset: %v", err)
	}
	return s
}

// normalize sorts intervals by lower endpoint and coalesces any pair
// that touches or overlaps (tol = 0, the canonical policy: u_i >= l_j).
func normalize(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}
	sort.Slice(ivs, func(i, j int) bool { return ivs[i].L < ivs[j].L })
	out := make([]Interval, 0, len(ivs))
	cur := ivs[0]
	for _, iv := range ivs[1:] {
		if iv.L <= cur.U {
			if iv.U > cur.U {
				cur.U = iv.U
			}
			continue
		}
		out = append(out, cur)
		cur = iv
	}
	out = append(out, cur)
	return out
}

// IsEmpty returns true if the subset has no intervals.
func (s T) IsEmpty() bool {
	return len(s.Intervals) == 0
}

// Measure returns the Lebesgue measure of the subset. It is +Inf if any
// stored interval is unbounded.
func (s T) Measure() float64 {
	total := 0.0
	for _, iv := range s.Intervals {
		total += iv.U - iv.L
	}
	return total
}

// ToList returns the stored intervals as [2]float64 pairs.
func (s T) ToList() [][2]float64 {
	out := make([][2]float64, len(s.Intervals))
	for i, iv := range s.Intervals {
		out[i] = [2]float64{iv.L, iv.U}
	}
	return out
}

// Contains reports whether z lies in one of the stored intervals.
func (s T) Contains(z float64) bool {
	n := len(s.Intervals)
	if n == 0 {
		return false
	}
	i := sort.Search(n, func(i int) bool { return s.Intervals[i].U >= z })
	if i == n {
		return false
	}
	return s.Intervals[i].L <= z && z <= s.Intervals[i].U
}

// FindIntervalContaining returns the stored interval [l, u] with
// z in [l, u] subset of s, or an error if no such interval exists.
func (s T) FindIntervalContaining(z float64) (Interval, error) {
	n := len(s.Intervals)
	i := sort.Search(n, func(i int) bool { return s.Intervals[i].U >= z })
	if i == n || s.Intervals[i].L > z {
		return Interval{}, chk.Err("realset: %g is not contained in the subset\n", z)
	}
	return s.Intervals[i], nil
}

// Union returns s | other.
func (s T) Union(other T) T {
	merged := make([]Interval, 0, len(s.Intervals)+len(other.Intervals))
	merged = append(merged, s.Intervals...)
	merged = append(merged, other.Intervals...)
	return T{Intervals: normalize(merged)}
}

// Intersection returns s & other via a sweep of the two sorted
// sequences.
func (s T) Intersection(other T) T {
	var out []Interval
	i, j := 0, 0
	for i < len(s.Intervals) && j < len(other.Intervals) {
		a, b := s.Intervals[i], other.Intervals[j]
		lo := math.Max(a.L, b.L)
		hi := math.Min(a.U, b.U)
		if lo < hi {
			out = append(out, Interval{L: lo, U: hi})
		}
		if a.U < b.U {
			i++
		} else {
			j++
		}
	}
	return T{Intervals: out}
}

// Complement returns the complement of s in R.
func (s T) Complement() T {
	if s.IsEmpty() {
		return Whole()
	}
	var out []Interval
	first := s.Intervals[0]
	if first.L > math.Inf(-1) {
		out = append(out, Interval{L: math.Inf(-1), U: first.L})
	}
	for i := 0; i < len(s.Intervals)-1; i++ {
		out = append(out, Interval{L: s.Intervals[i].U, U: s.Intervals[i+1].L})
	}
	last := s.Intervals[len(s.Intervals)-1]
	if last.U < math.Inf(1) {
		out = append(out, Interval{L: last.U, U: math.Inf(1)})
	}
	return T{Intervals: out}
}

// Difference returns s \ other.
func (s T) Difference(other T) T {
	return s.Intersection(other.Complement())
}

// SymmetricDifference returns (s \ other) | (other \ s).
func (s T) SymmetricDifference(other T) T {
	return s.Difference(other).Union(other.Difference(s))
}

// Negate returns the set of -z for z in s, i.e. {-z : z in s}.
func (s T) Negate() T {
	ivs := make([]Interval, len(s.Intervals))
	for i, iv := range s.Intervals {
		ivs[i] = Interval{L: -iv.U, U: -iv.L}
	}
	return T{Intervals: normalize(ivs)}
}

// Subset reports whether s is a subset of other.
func (s T) Subset(other T) bool {
	return s.Intersection(other).Equal(s)
}

// Equal reports structural equality on the normalized representation.
func (s T) Equal(other T) bool {
	if len(s.Intervals) != len(other.Intervals) {
		return false
	}
	for i := range s.Intervals {
		if s.Intervals[i] != other.Intervals[i] {
			return false
		}
	}
	return true
}
