// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
)

// KDE represents options for constructing a Gaussian kernel density
// estimate.
//
// Bootstrap distributions are reported as kernel density estimates:
// a smooth, non-parametric estimate ƒ̂(x) of the sampling distribution
// of a statistic that, unlike a histogram, needs no bin size.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// BoundaryMethod is the boundary correction method to use for
	// the KDE. The default value is BoundaryReflect; however, the
	// default bounds are effectively +/-inf, which is equivalent
	// to performing no boundary correction.
	BoundaryMethod KDEBoundaryMethod

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as +/-inf. Retention means live in [0, 1].
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data interface {
	StdDev() float64
	Weight() float64
}) float64 {
	return 1.06 * data.StdDev() * math.Pow(data.Weight(), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// It takes the smaller of the sample's standard deviation and the
// IQR-based estimate of a Gaussian's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data interface {
	StdDev() float64
	Weight() float64
	Percentile(float64) float64
}) float64 {
	iqr := data.Percentile(0.75) - data.Percentile(0.25)
	hScale := 1.06 * math.Pow(data.Weight(), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 || iqr == 0 {
		return hScale * stdDev
	}
	return hScale * (iqr / 1.349)
}

// KDEBoundaryMethod represents a boundary correction method for
// constructing a KDE with bounded support.
type KDEBoundaryMethod int

const (
	// BoundaryReflect reflects the density estimate at the
	// boundaries. For a KDE with support [0, inf), this is
	// ƒ̂ᵣ(x)=ƒ̂(x)+ƒ̂(-x) for x>=0. It enforces ƒ̂ᵣ'(0)=0.
	BoundaryReflect KDEBoundaryMethod = iota

	// boundaryNone is used internally when the bounds are -/+inf.
	boundaryNone
)

// From returns the kernel density estimate of sample s.
//
// A degenerate sample (fewer than two values, or no spread) gets a
// narrow fixed bandwidth so the estimate stays a valid density.
func (k KDE) From(s Sample) Dist {
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(s)
	}
	if !(h > 0) || math.IsInf(h, 0) {
		h = 1e-3 * math.Max(math.Abs(s.Mean()), 1)
		if math.IsNaN(h) {
			h = 1e-3
		}
	}

	bm := k.BoundaryMethod
	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	if math.IsInf(min, -1) && math.IsInf(max, 1) {
		bm = boundaryNone
	}

	return &kdeDist{NormalDist{0, h}, s.Xs, bm, min, max}
}

type kdeDist struct {
	kernel   NormalDist
	xs       []float64
	bm       KDEBoundaryMethod
	min, max float64 // Support bounds
}

// shifted returns x - kde.xs. Evaluating kernels centered on each
// of kde.xs at x is the same as evaluating one centered kernel at
// x - kde.xs.
func (kde *kdeDist) shifted(x float64) []float64 {
	txs := make([]float64, len(kde.xs))
	for i, xi := range kde.xs {
		txs[i] = x - xi
	}
	return txs
}

func (kde *kdeDist) PDF(x float64) float64 {
	if x < kde.min || x >= kde.max {
		return 0
	}

	y := func(x float64) float64 {
		return Sample{Xs: kde.kernel.PDFEach(kde.shifted(x))}.Mean()
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) + y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + y(2*kde.max-x)
		}
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			// Images at or above x
			return y(x+n*d) + y(x+n*d-w)
		}) + series(func(n float64) float64 {
			// Images below x
			return y(x-(n+1)*d) + y(x-(n+1)*d-w)
		})
	}
}

func (kde *kdeDist) CDF(x float64) float64 {
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}

	y := func(x float64) float64 {
		return Sample{Xs: kde.kernel.CDFEach(kde.shifted(x))}.Mean()
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) - y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + (1 - y(2*kde.max-x))
		}
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			return y(x+n*d) - y(x+n*d-w)
		}) + series(func(n float64) float64 {
			return y(x-(n+1)*d) - y(x-(n+1)*d-w)
		})
	}
}

// Bounds returns the interval holding the central 99% of the
// estimate's mass, widened by 20% and clipped to the support.
func (kde *kdeDist) Bounds() (low float64, high float64) {
	lowX, highX := Sample{Xs: kde.xs}.Bounds()
	if math.IsNaN(lowX) {
		lowX, highX = 0, 0
	}
	if lowX == highX {
		width := 10 * kde.kernel.Sigma
		lowX -= width
		highX += width
	}

	const (
		lowY      = 0.005
		highY     = 0.995
		tolerance = 0.001
	)
	// bisect needs the roots bracketed.
	for kde.CDF(lowX) > lowY {
		lowX -= highX - lowX
	}
	for kde.CDF(highX) < highY {
		highX += highX - lowX
	}
	low, _ = bisect(func(x float64) float64 { return kde.CDF(x) - lowY }, lowX, highX, tolerance)
	high, _ = bisect(func(x float64) float64 { return kde.CDF(x) - highY }, lowX, highX, tolerance)

	width := high - low
	low, high = low-0.1*width, high+0.1*width

	low, high = math.Max(low, kde.min), math.Min(high, kde.max)
	return
}
