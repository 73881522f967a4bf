// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cookiecats/gatetest/analysis"
	"github.com/cookiecats/gatetest/report"
	"github.com/cookiecats/gatetest/retention"
	"github.com/cookiecats/gatetest/stats"
)

func (a *app) bootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bootstrap [metric...]",
		Short: "Bootstrap the retention difference of each metric",
		Long: `bootstrap resamples the players and reports the distribution of
the percent difference in retention between the control and treatment
groups. Metrics default to the configured ones.`,
		RunE: a.runBootstrap,
	}
}

func (a *app) runBootstrap(cmd *cobra.Command, args []string) error {
	metrics, err := a.cfg.ParsedMetrics()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		metrics = metrics[:0]
		for _, arg := range args {
			m, err := retention.ParseMetric(arg)
			if err != nil {
				return err
			}
			metrics = append(metrics, m)
		}
	}

	ds, err := a.load()
	if err != nil {
		return err
	}
	opts := a.options(metrics)

	w := cmd.OutOrStdout()
	for i, m := range metrics {
		mr, err := analysis.RunMetric(cmd.Context(), ds, m, opts)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		report.FprintEstimate(w, opts.Arms, mr)
		fmt.Fprintf(w, "\n%% difference density:\n")
		report.FprintPDF(w, stats.KDE{}.From(stats.Sample{Xs: mr.Estimate.Diffs}))

		if err := a.plotMetric(mr); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) options(metrics []retention.Metric) analysis.Options {
	return analysis.Options{
		Arms:       a.cfg.Arms,
		Metrics:    metrics,
		Resampler:  a.cfg.Resampler(),
		Confidence: a.cfg.Confidence,
	}
}

// plotMetric plots the bootstrap means of each arm and the percent
// difference between them.
func (a *app) plotMetric(mr *analysis.MetricResult) error {
	arms := mr.Bootstrap.Arms
	means := stats.KDE{BoundaryMin: 0, BoundaryMax: 1}
	err := a.plot(mr.Metric.String()+"_means.png", report.DensityPlot{
		Title:  fmt.Sprintf("Bootstrap %d-day retention", mr.Metric.Days()),
		XLabel: "mean retention",
		Series: []report.Series{
			{Name: string(arms.Control), Dist: means.From(stats.Sample{Xs: mr.Bootstrap.Control()})},
			{Name: string(arms.Treatment), Dist: means.From(stats.Sample{Xs: mr.Bootstrap.Treatment()})},
		},
	})
	if err != nil {
		return err
	}
	return a.plot(mr.Metric.String()+"_diff.png", report.DensityPlot{
		Title:  fmt.Sprintf("%% difference in %d-day retention", mr.Metric.Days()),
		XLabel: "% difference",
		Series: []report.Series{
			{Name: "diff", Dist: stats.KDE{}.From(stats.Sample{Xs: mr.Estimate.Diffs})},
		},
	})
}
