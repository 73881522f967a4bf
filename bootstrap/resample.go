// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bootstrap estimates the uncertainty of a retention
// difference by resampling players with replacement.
package bootstrap // import "github.com/cookiecats/gatetest/bootstrap"

import (
	"context"
	"math/rand/v2"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cookiecats/gatetest/retention"
)

var (
	// ErrInvalidConfiguration is returned for resampler or
	// estimator settings that cannot produce a result, such as a
	// non-positive iteration count.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDivisionByZero is returned when a percent difference is
	// taken relative to a zero treatment mean.
	ErrDivisionByZero = errors.New("division by zero")
)

// DefaultIterations is the resample count used by the published
// analysis. Larger counts such as 10000 give smoother estimates.
const DefaultIterations = 500

// A Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// A SourceFunc returns the random source for one iteration of a
// resampling run.
type SourceFunc func(seed uint64, iteration int) Source

// PCGSource is the default SourceFunc: a PCG generator seeded with
// the run seed and the iteration number.
func PCGSource(seed uint64, iteration int) Source {
	return rand.New(rand.NewPCG(seed, uint64(iteration)))
}

// Resampler draws bootstrap samples of a dataset and records the
// per-arm mean retention of each.
//
// Each iteration draws from its own source, derived from Seed and
// the iteration number, so a run is reproducible and its result does
// not depend on Workers.
type Resampler struct {
	// Iterations is the number of bootstrap samples. It must be
	// positive.
	Iterations int

	// Seed seeds every iteration's source.
	Seed uint64

	// Workers is the number of goroutines sharing the iterations.
	// Values below 2 run the iterations sequentially.
	Workers int

	// Source returns the random source for an iteration. If nil,
	// PCGSource is used.
	Source SourceFunc
}

// Result is the bootstrap distribution of per-arm means.
type Result struct {
	Metric retention.Metric
	Arms   retention.Arms

	// Means holds one entry per iteration, in iteration order.
	Means []retention.Means
}

// Control returns the control arm's bootstrap means.
func (r *Result) Control() []float64 {
	xs := make([]float64, len(r.Means))
	for i, m := range r.Means {
		xs[i] = m.Control
	}
	return xs
}

// Treatment returns the treatment arm's bootstrap means.
func (r *Result) Treatment() []float64 {
	xs := make([]float64, len(r.Means))
	for i, m := range r.Means {
		xs[i] = m.Treatment
	}
	return xs
}

// Resample fills dst with len(ds) rows of ds drawn independently and
// uniformly with replacement, and returns it. dst is grown if it is
// too short; pass nil to allocate.
func Resample(src Source, ds, dst retention.Dataset) retention.Dataset {
	n := len(ds)
	if cap(dst) < n {
		dst = make(retention.Dataset, n)
	}
	dst = dst[:n]
	for i := range dst {
		dst[i] = ds[src.IntN(n)]
	}
	return dst
}

// Run computes r.Iterations bootstrap means of metric m for arms
// over ds.
//
// It fails with ErrInvalidConfiguration if r.Iterations is not
// positive, and with retention.ErrEmptyGroup if ds or any bootstrap
// sample lacks one of the arms.
func (r Resampler) Run(ctx context.Context, ds retention.Dataset, arms retention.Arms, m retention.Metric) (*Result, error) {
	if r.Iterations <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "iterations must be positive, got %d", r.Iterations)
	}
	if err := arms.Validate(); err != nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, err.Error())
	}
	if !m.Valid() {
		return nil, errors.Wrapf(ErrInvalidConfiguration, "unknown metric %d", int(m))
	}
	// A bootstrap sample can only contain groups present in ds.
	if _, err := arms.Means(ds, m); err != nil {
		return nil, err
	}

	source := r.Source
	if source == nil {
		source = PCGSource
	}
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > r.Iterations {
		workers = r.Iterations
	}

	logger := log.WithFields(log.Fields{
		"metric":     m,
		"iterations": r.Iterations,
		"workers":    workers,
		"players":    len(ds),
	})
	logger.Debug("Starting bootstrap")

	res := &Result{Metric: m, Arms: arms, Means: make([]retention.Means, r.Iterations)}
	g, ctx := errgroup.WithContext(ctx)
	per := (r.Iterations + workers - 1) / workers
	for lo := 0; lo < r.Iterations; lo += per {
		hi := min(lo+per, r.Iterations)
		g.Go(func() error {
			var sample retention.Dataset
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				sample = Resample(source(r.Seed, i), ds, sample)
				means, err := arms.Means(sample, m)
				if err != nil {
					return errors.Wrapf(err, "iteration %d", i)
				}
				res.Means[i] = means
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("Finished bootstrap")
	return res, nil
}
