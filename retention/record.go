// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package retention holds the player records of a gate-placement A/B
// test and the per-group retention aggregates computed over them.
package retention // import "github.com/cookiecats/gatetest/retention"

import (
	"strings"

	"github.com/pkg/errors"
)

// Version is the A/B group label a player was assigned at install,
// such as "gate_30".
type Version string

// Default group labels of the Cookie Cats gate experiment.
const (
	Gate30 Version = "gate_30"
	Gate40 Version = "gate_40"
)

// Record is one player of the experiment.
type Record struct {
	UserID        int64
	Version       Version
	SumGameRounds int
	Retention1    bool
	Retention7    bool
}

// Retained reports whether the player came back for metric m.
func (r Record) Retained(m Metric) bool {
	switch m {
	case Retention1:
		return r.Retention1
	case Retention7:
		return r.Retention7
	}
	panic("unknown metric " + m.String())
}

// Dataset is the loaded experiment. It is not modified after loading.
type Dataset []Record

// Rounds returns the game rounds played by each player of group v,
// in dataset order.
func (ds Dataset) Rounds(v Version) []float64 {
	var xs []float64
	for _, r := range ds {
		if r.Version == v {
			xs = append(xs, float64(r.SumGameRounds))
		}
	}
	return xs
}

// Metric selects the retention field to aggregate.
type Metric int

//go:generate stringer -type=Metric -linecomment

const (
	Retention1 Metric = iota // retention_1
	Retention7               // retention_7
)

// Metrics lists every metric in column order.
var Metrics = []Metric{Retention1, Retention7}

// Valid reports whether m is one of Metrics.
func (m Metric) Valid() bool {
	return m == Retention1 || m == Retention7
}

// Days returns the number of days after install the metric measures.
func (m Metric) Days() int {
	if m == Retention7 {
		return 7
	}
	return 1
}

// ParseMetric returns the metric named by its CSV column, such as
// "retention_7". The "1d" and "7d" shorthands are also accepted.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "retention_1", "1d", "1":
		return Retention1, nil
	case "retention_7", "7d", "7":
		return Retention7, nil
	}
	return 0, errors.Wrapf(ErrUnknownMetric, "parsing %q", s)
}

// Arms names the two groups being compared. Control is group A, the
// numerator side of every difference.
type Arms struct {
	Control   Version `yaml:"control"`
	Treatment Version `yaml:"treatment"`
}

// DefaultArms is the gate_30 versus gate_40 comparison.
var DefaultArms = Arms{Control: Gate30, Treatment: Gate40}

// Validate checks that both labels are set and distinct.
func (a Arms) Validate() error {
	if a.Control == "" || a.Treatment == "" {
		return errors.New("both group labels must be set")
	}
	if a.Control == a.Treatment {
		return errors.Errorf("control and treatment are both %q", a.Control)
	}
	return nil
}

// Has reports whether v is one of the two arms.
func (a Arms) Has(v Version) bool {
	return v == a.Control || v == a.Treatment
}
