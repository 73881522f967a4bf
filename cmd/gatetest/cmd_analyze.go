// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/cookiecats/gatetest/analysis"
	"github.com/cookiecats/gatetest/report"
)

func (a *app) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Run the whole analysis and recommend a gate placement",
		Args:  cobra.NoArgs,
		RunE:  a.runAnalyze,
	}
}

func (a *app) runAnalyze(cmd *cobra.Command, args []string) error {
	metrics, err := a.cfg.ParsedMetrics()
	if err != nil {
		return err
	}
	ds, err := a.load()
	if err != nil {
		return err
	}
	res, err := analysis.Run(cmd.Context(), ds, a.options(metrics))
	if err != nil {
		return err
	}
	report.FprintSummary(cmd.OutOrStdout(), res)
	for i := range res.Metrics {
		if err := a.plotMetric(&res.Metrics[i]); err != nil {
			return err
		}
	}
	return nil
}
