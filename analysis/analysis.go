// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis runs the complete gate-placement analysis: group
// sizes, observed retention, a bootstrap of each retention metric and
// a comparison of game rounds played.
package analysis // import "github.com/cookiecats/gatetest/analysis"

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/cookiecats/gatetest/bootstrap"
	"github.com/cookiecats/gatetest/retention"
	"github.com/cookiecats/gatetest/stats"
)

// Options controls an analysis run.
type Options struct {
	Arms       retention.Arms
	Metrics    []retention.Metric
	Resampler  bootstrap.Resampler
	Confidence float64
}

// MetricResult is the analysis of one retention metric.
type MetricResult struct {
	Metric retention.Metric

	// Overall is the retention across both arms.
	Overall float64

	// Observed is the retention of each arm in the dataset.
	Observed retention.Means

	Bootstrap *bootstrap.Result
	Estimate  *bootstrap.Estimate
}

// RoundsResult compares game rounds played between the arms.
type RoundsResult struct {
	// Control and Treatment summarize each arm's game rounds.
	Control, Treatment stats.Sample

	// Test is the Mann-Whitney U-test of the two arms, or nil if
	// the rounds admit no ranking (every value equal).
	Test *stats.MannWhitneyUTestResult
}

// Result is the outcome of Run.
type Result struct {
	Arms    retention.Arms
	Players int
	Counts  map[retention.Version]int
	Metrics []MetricResult
	Rounds  RoundsResult

	// AdoptTreatment is true only if no metric favors the control
	// arm with probability of at least one half.
	AdoptTreatment bool
}

// Metric returns the result for m, or nil if m was not analyzed.
func (r *Result) Metric(m retention.Metric) *MetricResult {
	for i := range r.Metrics {
		if r.Metrics[i].Metric == m {
			return &r.Metrics[i]
		}
	}
	return nil
}

// Run analyzes ds. Every stage's failure ends the run.
func Run(ctx context.Context, ds retention.Dataset, opts Options) (*Result, error) {
	if err := opts.Arms.Validate(); err != nil {
		return nil, errors.Wrap(bootstrap.ErrInvalidConfiguration, err.Error())
	}
	if len(opts.Metrics) == 0 {
		return nil, errors.Wrap(bootstrap.ErrInvalidConfiguration, "no metrics")
	}
	for _, m := range opts.Metrics {
		if !m.Valid() {
			return nil, errors.Wrapf(bootstrap.ErrInvalidConfiguration, "unknown metric %d", int(m))
		}
	}

	res := &Result{
		Arms:           opts.Arms,
		Players:        len(ds),
		Counts:         retention.Counts(ds),
		AdoptTreatment: true,
	}
	log.WithFields(log.Fields{
		"players":   len(ds),
		"control":   res.Counts[opts.Arms.Control],
		"treatment": res.Counts[opts.Arms.Treatment],
	}).Info("Analyzing experiment")

	for _, m := range opts.Metrics {
		mr, err := RunMetric(ctx, ds, m, opts)
		if err != nil {
			return nil, errors.Wrap(err, m.String())
		}
		if mr.Estimate.Probability >= 0.5 {
			res.AdoptTreatment = false
		}
		res.Metrics = append(res.Metrics, *mr)
	}

	res.Rounds = compareRounds(ds, opts.Arms)
	return res, nil
}

// RunMetric bootstraps metric m of ds with the resampler and arms of
// opts. Options.Metrics is ignored.
func RunMetric(ctx context.Context, ds retention.Dataset, m retention.Metric, opts Options) (*MetricResult, error) {
	overall, err := retention.Overall(ds, m)
	if err != nil {
		return nil, err
	}
	observed, err := opts.Arms.Means(ds, m)
	if err != nil {
		return nil, err
	}
	boot, err := opts.Resampler.Run(ctx, ds, opts.Arms, m)
	if err != nil {
		return nil, err
	}
	est, err := bootstrap.Summarize(boot, opts.Confidence)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"metric":      m,
		"control":     observed.Control,
		"treatment":   observed.Treatment,
		"probability": est.Probability,
	}).Info("Bootstrapped retention")

	return &MetricResult{
		Metric:    m,
		Overall:   overall,
		Observed:  observed,
		Bootstrap: boot,
		Estimate:  est,
	}, nil
}

func compareRounds(ds retention.Dataset, arms retention.Arms) RoundsResult {
	rr := RoundsResult{
		Control:   stats.Sample{Xs: ds.Rounds(arms.Control)},
		Treatment: stats.Sample{Xs: ds.Rounds(arms.Treatment)},
	}
	test, err := stats.MannWhitneyUTest(rr.Control.Xs, rr.Treatment.Xs)
	if err != nil {
		log.WithError(err).Warn("Skipping game rounds comparison")
		return rr
	}
	rr.Test = test
	return rr
}
