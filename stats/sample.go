// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of unweighted observations.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Sum returns the sum of the sample.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Weight returns the number of observations in the sample.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Mean returns the arithmetic mean of the sample, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// StdDev returns the sample standard deviation. It is NaN for
// samples of fewer than two values.
func (s Sample) StdDev() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.StdDev(s.Xs, nil)
}

// Bounds returns the smallest and largest values in the sample. If
// the sample is empty, it returns NaN, NaN.
func (s Sample) Bounds() (min float64, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Quantile returns the q'th quantile of the sample, interpolating
// linearly between order statistics. q is clamped to [0, 1].
//
// This sorts a copy of the sample unless it is already sorted.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}
	q = math.Max(0, math.Min(1, q))
	return stat.Quantile(q, stat.LinInterp, s.Xs, nil)
}

// Percentile is an alias for Quantile.
func (s Sample) Percentile(pctile float64) float64 {
	return s.Quantile(pctile)
}

// Sort sorts the samples in place in s and returns s.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}

// Copy returns a copy of s that does not share storage with s.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{Xs: xs, Sorted: s.Sorted}
}
