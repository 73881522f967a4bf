// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

func (n NormalDist) dist() distuv.Normal {
	return distuv.Normal{Mu: n.Mu, Sigma: n.Sigma}
}

func (n NormalDist) PDF(x float64) float64 {
	return n.dist().Prob(x)
}

// PDFEach returns PDF(xs[i]) for each i.
func (n NormalDist) PDFEach(xs []float64) []float64 {
	d := n.dist()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.Prob(x)
	}
	return ys
}

func (n NormalDist) CDF(x float64) float64 {
	return n.dist().CDF(x)
}

// CDFEach returns CDF(xs[i]) for each i.
func (n NormalDist) CDFEach(xs []float64) []float64 {
	d := n.dist()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = d.CDF(x)
	}
	return ys
}

// InvCDF returns the x such that CDF(x) = p. p must be in [0, 1].
func (n NormalDist) InvCDF(p float64) float64 {
	return n.dist().Quantile(p)
}

func (n NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return n.Mu - stddevs*n.Sigma, n.Mu + stddevs*n.Sigma
}
