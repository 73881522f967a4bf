// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
)

// QuantileCIResult is the distribution-free confidence interval for
// a quantile of a sample.
type QuantileCIResult struct {
	// Quantile is the quantile of this confidence interval, as
	// passed to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of this interval.
	// This will be >= the requested confidence.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics that
	// bound the confidence interval: given an ordered slice of
	// samples Xs, the CI is Xs[LoOrder-1] to Xs[HiOrder-1].
	//
	// Orders outside [1, N] mean the corresponding bound is
	// infinite, as happens for small samples, high confidence, or
	// quantiles close to 0 or 1.
	LoOrder, HiOrder int

	// Ambiguous indicates that the interval LoOrder+1 to
	// HiOrder+1 has equivalent confidence.
	Ambiguous bool
}

// FromSample returns the confidence interval of q in terms of values
// from s. It may return negative or positive infinity if the interval
// lies outside the sample.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if len(s.Xs) != q.N {
		panic("sample size differs from computed quantile CI")
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	lo, hi = math.Inf(-1), math.Inf(1)
	if q.LoOrder >= 1 {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder-1 < len(s.Xs) {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which a normal
// approximation is used. This is a variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns the bounds of the confidence interval of the
// q'th quantile in a sample of size n.
//
// The number of samples that fall below the population quantile is
// binomially distributed, B(n, q). Its PMF at k is the probability
// that the quantile lies between the k'th and (k+1)'th order
// statistics, so the interval is the narrowest run of those bands
// whose probabilities sum to at least confidence. Ties between
// equally good runs are broken to the left.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	res := QuantileCIResult{N: n, Quantile: q}

	if confidence >= 1 {
		res.Confidence = 1
		res.LoOrder = 0
		res.HiOrder = n + 1
		return res
	}

	samp := BinomialDist{N: n, P: q}
	var l, r int
	if samp.N <= quantileCIApproxThreshold {
		l, r = quantileCIExact(samp, confidence, &res)
	} else {
		l, r = quantileCINormal(samp, confidence, &res)
	}

	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	return res
}

// quantileCIExact grows the band [l, r) outward from the mode of samp,
// always taking the more probable neighbor, until it holds at least
// confidence. The binomial PMF decreases monotonically away from the
// mode, so this yields the narrowest band.
func quantileCIExact(samp BinomialDist, confidence float64, res *QuantileCIResult) (l, r int) {
	// With two equal modes, start from the lower one.
	x := int(math.Ceil(float64(samp.N+1)*samp.P) - 1)
	if samp.P == 0 {
		x = 0
	}
	accum := samp.PMF(float64(x))

	l, r = x, x+1
	lp, rp := samp.PMF(float64(l-1)), samp.PMF(float64(r))
	res.Ambiguous = rp == accum

	// Stop if there's nothing left to accumulate, which guards
	// against rounding keeping accum just under confidence.
	for accum < confidence && (lp > 0 || rp > 0) {
		res.Ambiguous = lp == rp
		if lp >= rp {
			accum += lp
			l--
			lp = samp.PMF(float64(l - 1))
		} else {
			accum += rp
			r++
			rp = samp.PMF(float64(r))
		}
	}
	res.Confidence = accum
	return l, r
}

// quantileCINormal finds the band using the normal approximation to
// samp with a continuity correction: binomial point k corresponds to
// [k-0.5, k+0.5] of the normal distribution.
func quantileCINormal(samp BinomialDist, confidence float64, res *QuantileCIResult) (l, r int) {
	norm := samp.NormalApprox()
	alpha := (1 - confidence) / 2

	// Central confidence mass of the approximation.
	l1 := norm.InvCDF(alpha)
	r1 := 2*norm.Mu - l1

	// Round [l1, r1] out to half-integer boundaries, then recover
	// the binomial band [l, r).
	floorInt := func(x float64) int {
		return int(math.Floor(x))
	}
	l = floorInt(math.Floor(l1-0.5)+0.5) + 1
	r = floorInt(math.Ceil(r1-0.5)+0.5) + 1

	// Pr[l <= X < r] with the continuity correction.
	cdf := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	res.Confidence = cdf(l, r)

	// The band is symmetric. A left-biased band may still meet the
	// requested confidence.
	if biased := cdf(l, r-1); biased >= confidence && biased < res.Confidence {
		res.Confidence, res.Ambiguous = biased, true
		r--
	}
	if l <= 0 && r >= samp.N+1 {
		// The band covers everything, but the normal
		// distribution's infinite support keeps CDF short of 1.
		res.Confidence = 1
		res.Ambiguous = false
	}
	return l, r
}
