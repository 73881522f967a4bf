// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

type quantileCITest struct {
	n         int
	q, conf   float64
	lo, hi    int
	actual    float64
	ambiguous bool
	epsilon   float64
}

func checkQuantileCI(t *testing.T, tests []quantileCITest) {
	t.Helper()
	for _, test := range tests {
		res := QuantileCI(test.n, test.q, test.conf)
		if res.N != test.n || res.Quantile != test.q {
			t.Errorf("QuantileCI(%d, %v, %v) = N %d, Quantile %v", test.n, test.q, test.conf, res.N, res.Quantile)
		}
		if res.LoOrder != test.lo || res.HiOrder != test.hi || res.Ambiguous != test.ambiguous ||
			math.Abs(res.Confidence-test.actual) > test.epsilon {
			t.Errorf("QuantileCI(%d, %v, %v): want [%v,%v]@%v/%v, got [%v,%v]@%v/%v",
				test.n, test.q, test.conf,
				test.lo, test.hi, test.actual, test.ambiguous,
				res.LoOrder, res.HiOrder, res.Confidence, res.Ambiguous)
		}
		if res.Confidence < test.conf {
			t.Errorf("QuantileCI(%d, %v, %v): confidence %v below requested", test.n, test.q, test.conf, res.Confidence)
		}
	}
}

func TestQuantileCIExact(t *testing.T) {
	const e = 1e-12
	checkQuantileCI(t, []quantileCITest{
		// Low confidence falls directly around the quantile.
		{4, 0.5, 0.001, 2, 3, 0.375, false, e},
		// Just beyond the mode band. Left-biased.
		{4, 0.5, 0.3750001, 1, 3, 0.625, true, e},
		// Everything.
		{4, 0.5, 0.99, 0, 5, 1, false, e},
		{5, 0.5, 1, 0, 6, 1, false, e},
		// Two equal modes.
		{5, 0.5, 0.3125001, 2, 4, 0.625, false, e},
		// Quantile at the edges.
		{4, 0, 0.001, 0, 1, 1, false, e},
		{4, 1, 0.001, 4, 5, 1, false, e},
	})
}

func TestQuantileCIMedianNormal(t *testing.T) {
	// Bootstrap iteration counts. All use the normal
	// approximation.
	const e = 1e-4
	checkQuantileCI(t, []quantileCITest{
		{31, 0.5, 0.95, 10, 22, 0.96886, false, e},
		{100, 0.5, 0.95, 40, 60, 0.95342, true, e},
		{500, 0.5, 0.95, 228, 272, 0.95068, true, e},
		{500, 0.5, 0.99, 221, 279, 0.99044, true, e},
		{10000, 0.5, 0.95, 4902, 5099, 0.95116, false, e},
	})
}

func TestQuantileCIMedianCoverage(t *testing.T) {
	// The band found by the normal approximation holds about
	// the requested mass of the exact binomial.
	for _, n := range []int{100, 500, 2000} {
		res := QuantileCI(n, 0.5, 0.95)
		dist := BinomialDist{N: n, P: 0.5}
		mass := 0.0
		for k := res.LoOrder; k < res.HiOrder; k++ {
			mass += dist.PMF(float64(k))
		}
		if math.Abs(mass-res.Confidence) > 0.002 || mass < 0.95 {
			t.Errorf("n=%d: band [%d,%d) has binomial mass %v, reported %v", n, res.LoOrder, res.HiOrder, mass, res.Confidence)
		}
	}
}

func TestQuantileCIFromSample(t *testing.T) {
	// A sorted sample of 500 percent differences.
	var s Sample
	for i := 0; i < 500; i++ {
		s.Xs = append(s.Xs, -10+0.05*float64(i))
	}
	s.Sorted = true
	res := QuantileCI(len(s.Xs), 0.5, 0.95)
	lo, hi := res.FromSample(s)
	if lo != s.Xs[227] || hi != s.Xs[271] {
		t.Errorf("want [%v,%v], got [%v,%v]", s.Xs[227], s.Xs[271], lo, hi)
	}

	// The same values out of order.
	var rev Sample
	for i := len(s.Xs) - 1; i >= 0; i-- {
		rev.Xs = append(rev.Xs, s.Xs[i])
	}
	if rlo, rhi := res.FromSample(rev); rlo != lo || rhi != hi {
		t.Errorf("unsorted sample: want [%v,%v], got [%v,%v]", lo, hi, rlo, rhi)
	}
	if rev.Xs[0] != s.Xs[499] {
		t.Errorf("FromSample sorted its argument in place")
	}

	// Too few values bound the median.
	res = QuantileCI(5, 0.5, 0.99)
	lo, hi = res.FromSample(Sample{Xs: []float64{1, 2, 3, 4, 5}})
	if !math.IsInf(lo, -1) || !math.IsInf(hi, 1) {
		t.Errorf("want [-inf,inf], got [%v,%v]", lo, hi)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("FromSample accepted a sample of the wrong size")
		}
	}()
	res.FromSample(Sample{Xs: []float64{1, 2}})
}

func BenchmarkQuantileCI(b *testing.B) {
	for _, n := range []int{20, 500, 10000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				QuantileCI(n, 0.5, 0.95)
			}
		})
	}
}
