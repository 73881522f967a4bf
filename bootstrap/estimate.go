// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"github.com/pkg/errors"

	"github.com/cookiecats/gatetest/stats"
)

// Differences returns the percent difference of the control mean
// over the treatment mean for each bootstrap iteration:
//
//	(control - treatment) / treatment * 100
//
// It fails with ErrDivisionByZero if any iteration's treatment mean
// is zero.
func Differences(res *Result) ([]float64, error) {
	diffs := make([]float64, len(res.Means))
	for i, m := range res.Means {
		if m.Treatment == 0 {
			return nil, errors.Wrapf(ErrDivisionByZero, "iteration %d: %s mean is 0", i, res.Arms.Treatment)
		}
		diffs[i] = (m.Control - m.Treatment) / m.Treatment * 100
	}
	return diffs, nil
}

// Probability returns the fraction of bootstrap iterations in which
// the control mean exceeds the treatment mean, that is, in which the
// percent difference is positive.
func Probability(res *Result) (float64, error) {
	diffs, err := Differences(res)
	if err != nil {
		return 0, err
	}
	return probability(diffs)
}

func probability(diffs []float64) (float64, error) {
	if len(diffs) == 0 {
		return 0, errors.Wrap(ErrInvalidConfiguration, "no bootstrap iterations")
	}
	above := 0
	for _, d := range diffs {
		if d > 0 {
			above++
		}
	}
	return float64(above) / float64(len(diffs)), nil
}

// Estimate summarizes the bootstrap distribution of the percent
// difference between arms.
type Estimate struct {
	// Diffs is the percent difference of each iteration.
	Diffs []float64

	// Probability is the fraction of Diffs above zero.
	Probability float64

	// Mean is the mean percent difference.
	Mean float64

	// Confidence is the requested confidence level.
	Confidence float64

	// Lo and Hi bound the central Confidence fraction of Diffs
	// (the percentile interval).
	Lo, Hi float64

	// Median is the median percent difference, and MedianLo and
	// MedianHi its distribution-free confidence interval at
	// MedianCI.Confidence. The bounds may be infinite for very
	// few iterations.
	Median             float64
	MedianLo, MedianHi float64
	MedianCI           stats.QuantileCIResult
}

// Summarize computes the Estimate of res at the given confidence
// level, which must lie strictly between 0 and 1.
func Summarize(res *Result, confidence float64) (*Estimate, error) {
	if !(confidence > 0 && confidence < 1) {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "confidence %v outside (0, 1)", confidence)
	}
	diffs, err := Differences(res)
	if err != nil {
		return nil, err
	}
	p, err := probability(diffs)
	if err != nil {
		return nil, err
	}

	s := stats.Sample{Xs: diffs}
	sorted := s.Copy().Sort()
	alpha := (1 - confidence) / 2
	est := &Estimate{
		Diffs:       diffs,
		Probability: p,
		Mean:        s.Mean(),
		Confidence:  confidence,
		Lo:          sorted.Quantile(alpha),
		Hi:          sorted.Quantile(1 - alpha),
		Median:      sorted.Quantile(0.5),
		MedianCI:    stats.QuantileCI(len(diffs), 0.5, confidence),
	}
	est.MedianLo, est.MedianHi = est.MedianCI.FromSample(*sorted)
	return est, nil
}
