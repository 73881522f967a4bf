// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// bisect returns an x in [low, high] such that |f(x)| <= tolerance
// using the bisection method. f(low) and f(high) must have opposite
// signs.
//
// If f does not have a root in this interval (e.g., it is
// discontiguous), this returns the X of the apparent discontinuity
// and false.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	flow, fhigh := f(low), f(high)
	if -tolerance <= flow && flow <= tolerance {
		return low, true
	}
	if -tolerance <= fhigh && fhigh <= tolerance {
		return high, true
	}
	if mathSign(flow) == mathSign(fhigh) {
		panic("root of f is not bracketed by [low, high]")
	}
	for {
		mid := (high + low) / 2
		fmid := f(mid)
		if -tolerance <= fmid && fmid <= tolerance {
			return mid, true
		}
		if mid == high || mid == low {
			return mid, false
		}
		if mathSign(fmid) == mathSign(flow) {
			low = mid
			flow = fmid
		} else {
			high = mid
		}
	}
}

// series returns the sum of f(0), f(1), ... stopping once a term no
// longer changes the sum.
func series(f func(float64) float64) float64 {
	const maxTerms = 1 << 10
	y := 0.0
	for n := 0.0; n < maxTerms; n++ {
		term := f(n)
		next := y + term
		if next == y || math.Abs(term) < 1e-300 {
			return next
		}
		y = next
	}
	return y
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	} else if x > 0 {
		return 1
	}
	return 0
}

func mathSign(x float64) int {
	if math.Signbit(x) {
		return -1
	}
	return 1
}
