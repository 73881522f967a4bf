// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookiecats/gatetest/retention"
)

func TestDifferencesZeroTreatment(t *testing.T) {
	// No treatment player ever returns, so every bootstrap
	// treatment mean is 0.
	ds := makeDataset(100, 40, 0)
	res, err := Resampler{Iterations: 50, Seed: 3}.Run(context.Background(), ds, retention.DefaultArms, retention.Retention1)
	require.NoError(t, err)
	for _, m := range res.Means {
		require.Zero(t, m.Treatment)
	}

	_, err = Differences(res)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = Probability(res)
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = Summarize(res, 0.95)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDifferencesFormula(t *testing.T) {
	res := &Result{Arms: retention.DefaultArms, Means: []retention.Means{
		{Control: 0.448, Treatment: 0.442},
		{Control: 0.19, Treatment: 0.182},
		{Control: 0.2, Treatment: 0.25},
	}}
	diffs, err := Differences(res)
	require.NoError(t, err)
	require.Len(t, diffs, 3)
	for i, m := range res.Means {
		assert.Equal(t, (m.Control-m.Treatment)/m.Treatment*100, diffs[i])
	}
	assert.InDelta(t, -20, diffs[2], 1e-9)

	p, err := Probability(res)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, p, 1e-12)
}

func TestProbabilityEmpty(t *testing.T) {
	_, err := Probability(&Result{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestSummarize(t *testing.T) {
	ds := makeDataset(300, 150, 120)
	res, err := Resampler{Iterations: DefaultIterations, Seed: 9}.Run(context.Background(), ds, retention.DefaultArms, retention.Retention1)
	require.NoError(t, err)

	est, err := Summarize(res, 0.95)
	require.NoError(t, err)
	assert.Len(t, est.Diffs, DefaultIterations)
	assert.True(t, est.Probability >= 0 && est.Probability <= 1)
	// Observed difference is (0.5-0.4)/0.4 = 25%.
	assert.InDelta(t, 25, est.Mean, 5)
	assert.Greater(t, est.Probability, 0.9)
	assert.LessOrEqual(t, est.Lo, est.Median)
	assert.LessOrEqual(t, est.Median, est.Hi)
	assert.LessOrEqual(t, est.MedianLo, est.Median)
	assert.LessOrEqual(t, est.Median, est.MedianHi)
	assert.False(t, math.IsInf(est.MedianLo, 0) || math.IsInf(est.MedianHi, 0))
	assert.GreaterOrEqual(t, est.MedianCI.Confidence, 0.95)
	// The median's interval is far narrower than the spread of
	// the distribution itself.
	assert.Less(t, est.MedianHi-est.MedianLo, est.Hi-est.Lo)
}

func TestSummarizeConfidence(t *testing.T) {
	res := &Result{Means: []retention.Means{{Control: 0.5, Treatment: 0.4}}}
	for _, c := range []float64{0, 1, -0.5, 1.5, math.NaN()} {
		_, err := Summarize(res, c)
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "confidence %v", c)
	}
}
