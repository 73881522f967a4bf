// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cookiecats/gatetest/report"
	"github.com/cookiecats/gatetest/retention"
	"github.com/cookiecats/gatetest/stats"
)

// plottedRounds is the number of round counts in the players per
// round count plot. The distribution has a very long tail.
const plottedRounds = 100

func (a *app) roundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rounds",
		Short: "Describe the game rounds played in each group",
		Args:  cobra.NoArgs,
		RunE:  a.runRounds,
	}
}

func (a *app) runRounds(cmd *cobra.Command, args []string) error {
	ds, err := a.load()
	if err != nil {
		return err
	}
	arms := a.cfg.Arms
	control := stats.Sample{Xs: ds.Rounds(arms.Control)}
	treatment := stats.Sample{Xs: ds.Rounds(arms.Treatment)}

	w := cmd.OutOrStdout()
	report.FprintDist(w, "all", stats.Sample{Xs: append(append([]float64(nil), control.Xs...), treatment.Xs...)})
	fmt.Fprintln(w)
	report.FprintDist(w, string(arms.Control), control)
	fmt.Fprintln(w)
	report.FprintDist(w, string(arms.Treatment), treatment)
	fmt.Fprintln(w)

	if test, err := stats.MannWhitneyUTest(control.Xs, treatment.Xs); err != nil {
		fmt.Fprintf(w, "Mann-Whitney U-test: %v\n", err)
	} else {
		fmt.Fprintf(w, "Mann-Whitney U-test: n1=%d n2=%d U=%.6g p=%.3g\n", test.N1, test.N2, test.U, test.P)
	}

	hist := retention.RoundsHistogram(ds)
	if len(hist) < 2 {
		if a.cfg.Plots != "" {
			log.WithField("round_counts", len(hist)).Warn("Skipping game rounds plot")
		}
		return nil
	}
	if len(hist) > plottedRounds {
		hist = hist[:plottedRounds]
	}
	p := report.LinePlot{
		Title:  "Players by game rounds played",
		XLabel: "game rounds",
		YLabel: "players",
	}
	for _, rc := range hist {
		p.X = append(p.X, float64(rc.Rounds))
		p.Y = append(p.Y, float64(rc.Players))
	}
	return a.plot("rounds.png", p)
}
