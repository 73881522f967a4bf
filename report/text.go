// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report renders analysis results as text and PNG plots.
package report // import "github.com/cookiecats/gatetest/report"

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/cookiecats/gatetest/analysis"
	"github.com/cookiecats/gatetest/retention"
	"github.com/cookiecats/gatetest/stats"
)

// Percent formats a fraction as a percentage with one decimal, so
// 0.96 becomes "96.0%".
func Percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// FprintCounts prints the number of players in each group.
func FprintCounts(w io.Writer, counts map[retention.Version]int) {
	versions := make([]string, 0, len(counts))
	for v := range counts {
		versions = append(versions, string(v))
	}
	sort.Strings(versions)
	fmt.Fprintf(w, "%-10s %8s\n", "version", "players")
	for _, v := range versions {
		fmt.Fprintf(w, "%-10s %8d\n", v, counts[retention.Version(v)])
	}
}

// FprintMeans prints the mean retention of each group for metric m.
func FprintMeans(w io.Writer, m retention.Metric, means map[retention.Version]float64) {
	versions := make([]string, 0, len(means))
	for v := range means {
		versions = append(versions, string(v))
	}
	sort.Strings(versions)
	fmt.Fprintf(w, "%-10s %12s\n", "version", m)
	for _, v := range versions {
		fmt.Fprintf(w, "%-10s %12s\n", v, Percent(means[retention.Version(v)]))
	}
}

// FprintEstimate prints the bootstrap outcome of one metric.
func FprintEstimate(w io.Writer, arms retention.Arms, mr *analysis.MetricResult) {
	est := mr.Estimate
	fmt.Fprintf(w, "%d-day retention: %s %s, %s %s\n", mr.Metric.Days(),
		arms.Control, Percent(mr.Observed.Control),
		arms.Treatment, Percent(mr.Observed.Treatment))
	fmt.Fprintf(w, "  bootstrap iterations  %d\n", len(est.Diffs))
	fmt.Fprintf(w, "  mean %% difference     %.3g%%\n", est.Mean)
	fmt.Fprintf(w, "  %s interval          [%.3g%%, %.3g%%]\n", conf(est.Confidence), est.Lo, est.Hi)
	fmt.Fprintf(w, "  median %% difference   %.3g%% (%s CI %s)\n",
		est.Median, conf(est.MedianCI.Confidence), interval(est.MedianLo, est.MedianHi))
	fmt.Fprintf(w, "  P(%s > %s)    %s\n", arms.Control, arms.Treatment, Percent(est.Probability))
}

// FprintSummary prints the whole analysis.
func FprintSummary(w io.Writer, res *analysis.Result) {
	fmt.Fprintf(w, "%d players\n", res.Players)
	FprintCounts(w, res.Counts)
	for i := range res.Metrics {
		fmt.Fprintln(w)
		FprintEstimate(w, res.Arms, &res.Metrics[i])
	}

	fmt.Fprintln(w)
	rr := res.Rounds
	fmt.Fprintf(w, "game rounds: %s median %.4g, %s median %.4g",
		res.Arms.Control, rr.Control.Quantile(0.5), res.Arms.Treatment, rr.Treatment.Quantile(0.5))
	if rr.Test != nil {
		fmt.Fprintf(w, " (Mann-Whitney U=%.6g p=%.3g)", rr.Test.U, rr.Test.P)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w)
	if res.AdoptTreatment {
		fmt.Fprintf(w, "Retention does not favor %s: moving to %s is reasonable.\n", res.Arms.Control, res.Arms.Treatment)
	} else {
		fmt.Fprintf(w, "Retention favors %s: keep %s, do not move to %s.\n", res.Arms.Control, res.Arms.Control, res.Arms.Treatment)
	}
}

// FprintDist describes the distribution of s: its size and moments,
// then quartiles and tails.
func FprintDist(w io.Writer, name string, s stats.Sample) {
	if len(s.Xs) == 0 {
		fmt.Fprintf(w, "%s: no values\n", name)
		return
	}
	s = *s.Copy().Sort()
	fmt.Fprintf(w, "%s: N %d  sum %.6g  mean %.6g  std dev %.6g\n",
		name, len(s.Xs), s.Sum(), s.Mean(), s.StdDev())

	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, s.Percentile(float64(p)/100))
	}
}

// FprintPDF prints the density of d across its bounds as a bar per
// row.
func FprintPDF(w io.Writer, d stats.Dist) {
	const (
		rows  = 20
		width = 50
	)
	lo, hi := d.Bounds()
	xs := stats.Linspace(lo, hi, rows)
	ys := stats.PDFEach(d, xs)
	max := 0.0
	for _, y := range ys {
		max = math.Max(max, y)
	}
	for i, x := range xs {
		n := 0
		if max > 0 {
			n = int(math.Round(ys[i] / max * width))
		}
		fmt.Fprintf(w, "%10.4g %s\n", x, strings.Repeat("*", n))
	}
}

func conf(c float64) string {
	return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.2f", c*100), "0"), ".0") + "%"
}

func interval(lo, hi float64) string {
	bound := func(x float64) string {
		if math.IsInf(x, 0) {
			if x < 0 {
				return "-inf"
			}
			return "inf"
		}
		return fmt.Sprintf("%.3g%%", x)
	}
	return "[" + bound(lo) + ", " + bound(hi) + "]"
}
