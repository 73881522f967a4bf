// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookiecats/gatetest/bootstrap"
	"github.com/cookiecats/gatetest/retention"
)

// experiment returns n players per arm. Control retains
// retained1/retained7 players at day one/seven, treatment
// retained1-delta/retained7-delta. Control plays a few more rounds.
func experiment(n, retained1, retained7, delta int) retention.Dataset {
	var ds retention.Dataset
	for i := 0; i < n; i++ {
		ds = append(ds,
			retention.Record{
				UserID: int64(2 * i), Version: retention.Gate30, SumGameRounds: i%50 + 5,
				Retention1: i < retained1, Retention7: i < retained7,
			},
			retention.Record{
				UserID: int64(2*i + 1), Version: retention.Gate40, SumGameRounds: i % 50,
				Retention1: i < retained1-delta, Retention7: i < retained7-delta,
			})
	}
	return ds
}

func options() Options {
	return Options{
		Arms:       retention.DefaultArms,
		Metrics:    retention.Metrics,
		Resampler:  bootstrap.Resampler{Iterations: 200, Seed: 5},
		Confidence: 0.95,
	}
}

func TestRun(t *testing.T) {
	ds := experiment(400, 200, 100, 40)
	res, err := Run(context.Background(), ds, options())
	require.NoError(t, err)

	assert.Equal(t, 800, res.Players)
	assert.Equal(t, map[retention.Version]int{retention.Gate30: 400, retention.Gate40: 400}, res.Counts)
	require.Len(t, res.Metrics, 2)

	r1 := res.Metric(retention.Retention1)
	require.NotNil(t, r1)
	assert.InDelta(t, 0.5, r1.Observed.Control, 1e-12)
	assert.InDelta(t, 0.4, r1.Observed.Treatment, 1e-12)
	assert.InDelta(t, 0.45, r1.Overall, 1e-12)
	assert.Len(t, r1.Bootstrap.Means, 200)
	assert.Len(t, r1.Estimate.Diffs, 200)
	assert.Greater(t, r1.Estimate.Probability, 0.9)

	r7 := res.Metric(retention.Retention7)
	require.NotNil(t, r7)
	assert.InDelta(t, 0.25, r7.Observed.Control, 1e-12)
	assert.InDelta(t, 0.15, r7.Observed.Treatment, 1e-12)

	assert.False(t, res.AdoptTreatment)

	require.NotNil(t, res.Rounds.Test)
	assert.Equal(t, 400, res.Rounds.Test.N1)
	assert.Less(t, res.Rounds.Test.P, 0.05)
}

func TestRunFavorsTreatment(t *testing.T) {
	// Treatment retains more players on both days.
	ds := experiment(400, 160, 60, -40)
	res, err := Run(context.Background(), ds, options())
	require.NoError(t, err)
	for _, mr := range res.Metrics {
		assert.Less(t, mr.Estimate.Probability, 0.5, mr.Metric.String())
	}
	assert.True(t, res.AdoptTreatment)
}

func TestRunErrors(t *testing.T) {
	ds := experiment(50, 20, 10, 5)
	ctx := context.Background()

	opts := options()
	opts.Resampler.Iterations = 0
	_, err := Run(ctx, ds, opts)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidConfiguration)

	opts = options()
	opts.Metrics = nil
	_, err = Run(ctx, ds, opts)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidConfiguration)

	opts = options()
	opts.Metrics = []retention.Metric{retention.Retention1, retention.Metric(5)}
	_, err = Run(ctx, ds, opts)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidConfiguration)

	opts = options()
	opts.Arms = retention.Arms{Control: retention.Gate30}
	_, err = Run(ctx, ds, opts)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidConfiguration)

	// No treatment player returns after a week.
	_, err = Run(ctx, experiment(50, 20, 10, 10), options())
	assert.ErrorIs(t, err, bootstrap.ErrDivisionByZero)

	_, err = Run(ctx, nil, options())
	assert.ErrorIs(t, err, retention.ErrEmptyGroup)
}

func TestRunEqualRounds(t *testing.T) {
	ds := experiment(100, 50, 30, 10)
	for i := range ds {
		ds[i].SumGameRounds = 7
	}
	res, err := Run(context.Background(), ds, options())
	require.NoError(t, err)
	assert.Nil(t, res.Rounds.Test)
	assert.Len(t, res.Rounds.Control.Xs, 100)
}
