// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P, 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, fmt.Sprintf("%+v.CDF", dist), dist)

	dist = BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation is only close near the
		// center of the distribution, and only loosely.
		if err := math.Abs(b/n - 1); err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialDistDegenerate(t *testing.T) {
	zero := BinomialDist{N: 4, P: 0}
	testFunc(t, "B(4,0).PMF", zero.PMF, map[float64]float64{0: 1, 1: 0, 4: 0})
	testDiscreteCDF(t, "B(4,0).CDF", zero)

	one := BinomialDist{N: 4, P: 1}
	testFunc(t, "B(4,1).PMF", one.PMF, map[float64]float64{0: 0, 3: 0, 4: 1})
	testDiscreteCDF(t, "B(4,1).CDF", one)
}

func TestBinomialDistLarge(t *testing.T) {
	// Beyond exactChooseLimit the PMF switches to log space; the
	// mass must still sum to 1.
	dist := BinomialDist{N: 2000, P: 0.45}
	sum := 0.0
	for k := 0; k <= dist.N; k++ {
		sum += dist.PMF(float64(k))
	}
	if !aeq(1, sum) {
		t.Errorf("Σ PMF = %v, want 1", sum)
	}
	if got, want := dist.CDF(900), 0.5; math.Abs(got-want) > 0.02 {
		t.Errorf("CDF(900) = %v, want ≅ %v", got, want)
	}
}
