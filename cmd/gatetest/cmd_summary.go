// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cookiecats/gatetest/report"
	"github.com/cookiecats/gatetest/retention"
)

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the players and retention of each group",
		Args:  cobra.NoArgs,
		RunE:  a.runSummary,
	}
}

func (a *app) runSummary(cmd *cobra.Command, args []string) error {
	ds, err := a.load()
	if err != nil {
		return err
	}
	metrics, err := a.cfg.ParsedMetrics()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%d players\n", len(ds))
	report.FprintCounts(w, retention.Counts(ds))
	for _, m := range metrics {
		overall, err := retention.Overall(ds, m)
		if err != nil {
			return err
		}
		means, err := retention.GroupMeans(ds, m)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n%s overall %s\n", m, report.Percent(overall))
		report.FprintMeans(w, m, means)
	}
	return nil
}
