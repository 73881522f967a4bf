// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats provides the distribution machinery behind the
// retention reports: samples, kernel density estimates, quantile
// confidence intervals and rank tests.
package stats // import "github.com/cookiecats/gatetest/stats"

import (
	"math"

	"github.com/pkg/errors"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrSampleSize is returned when a test is given an empty sample.
	ErrSampleSize = errors.New("sample is too small")

	// ErrSamplesEqual is returned by rank tests when every value in
	// both samples is the same, so no ranking exists.
	ErrSamplesEqual = errors.New("all samples are equal")
)
