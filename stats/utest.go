// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// A MannWhitneyUTestResult is the result of a Mann-Whitney U-test.
type MannWhitneyUTestResult struct {
	// N1 and N2 are the sizes of the input samples.
	N1, N2 int

	// U is the smaller of the two Mann-Whitney U statistics,
	// counting ties as 0.5. The other is N1*N2 - U.
	U float64

	// P is the two-tailed p-value of the test.
	P float64
}

// MannWhitneyUTest performs a Mann-Whitney U-test [1] of the null
// hypothesis that two samples come from the same population against
// the alternative that one tends to have larger values than the
// other. Unlike a t-test it assumes nothing about the shape of the
// distributions, which suits heavily skewed counts such as game
// rounds played.
//
// The p-value comes from the normal approximation of the U
// distribution with tie and continuity corrections [2]. The
// approximation is poor for samples of fewer than about 20 values.
//
// This fails with ErrSampleSize if either sample is empty or
// ErrSamplesEqual if all sample values are equal.
//
// [1] Mann, Henry B.; Whitney, Donald R. (1947). "On a Test of
// Whether one of Two Random Variables is Stochastically Larger than
// the Other". Annals of Mathematical Statistics 18 (1): 50–60.
//
// [2] Klotz, J. H. (1966). "The Wilcoxon, Ties, and the Computer".
// Journal of the American Statistical Association 61 (315): 772-787.
func MannWhitneyUTest(x1, x2 []float64) (*MannWhitneyUTestResult, error) {
	n1, n2 := len(x1), len(x2)
	if n1 == 0 || n2 == 0 {
		return nil, ErrSampleSize
	}

	x1 = append([]float64(nil), x1...)
	x2 = append([]float64(nil), x2...)
	sort.Float64s(x1)
	sort.Float64s(x2)
	merged, labels := labeledMerge(x1, x2)

	// Tied values share the average of their ranks; merged[0] has
	// rank 1.
	R1 := 0.0
	for i := 0; i < len(merged); {
		first, nx1, v := i+1, 0, merged[i]
		for ; i < len(merged) && merged[i] == v; i++ {
			if labels[i] == 1 {
				nx1++
			}
		}
		R1 += float64(i+first) / 2 * float64(nx1)
	}
	U1 := R1 - float64(n1*(n1+1))/2
	U2 := float64(n1*n2) - U1
	if U2 < U1 {
		U1 = U2
	}

	N := float64(n1 + n2)
	t := tieCorrection(merged)
	μ := float64(n1*n2) / 2
	σ := math.Sqrt(float64(n1*n2) * ((N + 1) - t/(N*(N-1))) / 12)
	if σ == 0 || math.IsNaN(σ) {
		return nil, ErrSamplesEqual
	}
	numer := U1 - μ
	numer -= sign(numer) * 0.5 // Continuity correction
	z := numer / σ
	p := 2 * math.Min(StdNormal.CDF(z), 1-StdNormal.CDF(z))

	return &MannWhitneyUTestResult{N1: n1, N2: n2, U: U1, P: p}, nil
}

// labeledMerge merges sorted lists x1 and x2 into sorted list merged.
// labels[i] is 1 or 2 depending on whether merged[i] is a value from
// x1 or x2, respectively.
func labeledMerge(x1, x2 []float64) (merged []float64, labels []byte) {
	merged = make([]float64, 0, len(x1)+len(x2))
	labels = make([]byte, 0, len(x1)+len(x2))

	i, j := 0, 0
	for i < len(x1) || j < len(x2) {
		if j == len(x2) || i < len(x1) && x1[i] < x2[j] {
			merged = append(merged, x1[i])
			labels = append(labels, 1)
			i++
		} else {
			merged = append(merged, x2[j])
			labels = append(labels, 2)
			j++
		}
	}
	return
}

// tieCorrection computes the tie correction factor Σ_j (t_j³ - t_j)
// where t_j is the number of ties in the j'th rank.
func tieCorrection(xs []float64) float64 {
	t := 0.0
	for i := 0; i < len(xs); {
		i1, v1 := i, xs[i]
		for ; i < len(xs) && xs[i] == v1; i++ {
		}
		run := float64(i - i1)
		t += run*run*run - run
	}
	return t
}
