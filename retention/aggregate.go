// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"sort"

	"github.com/pkg/errors"
)

// Means is a pair of per-arm mean retention rates.
type Means struct {
	Control   float64
	Treatment float64
}

// tally counts retained and total players of one group.
type tally struct {
	retained, n int
}

func (t tally) mean() float64 {
	return float64(t.retained) / float64(t.n)
}

// Means returns the mean retention of each arm over ds. It fails
// with ErrEmptyGroup if either arm has no players in ds.
func (a Arms) Means(ds Dataset, m Metric) (Means, error) {
	if !m.Valid() {
		return Means{}, errors.Wrapf(ErrUnknownMetric, "metric %d", int(m))
	}
	var c, t tally
	for i := range ds {
		r := &ds[i]
		var g *tally
		switch r.Version {
		case a.Control:
			g = &c
		case a.Treatment:
			g = &t
		default:
			continue
		}
		g.n++
		if r.Retained(m) {
			g.retained++
		}
	}
	if c.n == 0 {
		return Means{}, errors.Wrapf(ErrEmptyGroup, "group %s", a.Control)
	}
	if t.n == 0 {
		return Means{}, errors.Wrapf(ErrEmptyGroup, "group %s", a.Treatment)
	}
	return Means{Control: c.mean(), Treatment: t.mean()}, nil
}

// GroupMeans returns the mean retention of every group present in
// ds. It fails with ErrEmptyGroup if ds has no players.
func GroupMeans(ds Dataset, m Metric) (map[Version]float64, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(ErrUnknownMetric, "metric %d", int(m))
	}
	if len(ds) == 0 {
		return nil, errors.Wrap(ErrEmptyGroup, "no players")
	}
	tallies := make(map[Version]tally)
	for _, r := range ds {
		t := tallies[r.Version]
		t.n++
		if r.Retained(m) {
			t.retained++
		}
		tallies[r.Version] = t
	}
	means := make(map[Version]float64, len(tallies))
	for v, t := range tallies {
		means[v] = t.mean()
	}
	return means, nil
}

// Overall returns the mean retention across every player of ds.
func Overall(ds Dataset, m Metric) (float64, error) {
	if !m.Valid() {
		return 0, errors.Wrapf(ErrUnknownMetric, "metric %d", int(m))
	}
	if len(ds) == 0 {
		return 0, errors.Wrap(ErrEmptyGroup, "no players")
	}
	var t tally
	for _, r := range ds {
		t.n++
		if r.Retained(m) {
			t.retained++
		}
	}
	return t.mean(), nil
}

// Counts returns the number of players in each group.
func Counts(ds Dataset) map[Version]int {
	counts := make(map[Version]int)
	for _, r := range ds {
		counts[r.Version]++
	}
	return counts
}

// RoundsCount is the number of players who played exactly Rounds
// game rounds.
type RoundsCount struct {
	Rounds  int
	Players int
}

// RoundsHistogram returns the number of players for each distinct
// game round total, in ascending order of rounds.
func RoundsHistogram(ds Dataset) []RoundsCount {
	counts := make(map[int]int)
	for _, r := range ds {
		counts[r.SumGameRounds]++
	}
	hist := make([]RoundsCount, 0, len(counts))
	for rounds, players := range counts {
		hist = append(hist, RoundsCount{Rounds: rounds, Players: players})
	}
	sort.Slice(hist, func(i, j int) bool { return hist[i].Rounds < hist[j].Rounds })
	return hist
}
