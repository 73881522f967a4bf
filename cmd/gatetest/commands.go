// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cookiecats/gatetest/config"
	"github.com/cookiecats/gatetest/retention"
)

// app is the state shared by the commands of one invocation.
type app struct {
	configPath string
	cfg        *config.Config

	// Flag values. They override cfg only when set.
	data       string
	logLevel   string
	iterations int
	seed       uint64
	workers    int
	plots      string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "gatetest",
		Short: "Bootstrap analysis of the Cookie Cats gate placement experiment",
		Long: `gatetest compares player retention between two versions of the
Cookie Cats game, one gating progress at level 30 and one at level 40.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML settings `file`")
	flags.StringVar(&a.data, "data", "", "experiment CSV `path`")
	flags.StringVar(&a.logLevel, "log-level", "", "logging level (debug, info, warn, error)")
	flags.IntVar(&a.iterations, "iterations", 0, "bootstrap iterations")
	flags.Uint64Var(&a.seed, "seed", 0, "bootstrap random seed")
	flags.IntVar(&a.workers, "workers", 0, "parallel bootstrap workers")
	flags.StringVar(&a.plots, "plots", "", "write PNG plots to `dir`")

	rootCmd.AddCommand(
		a.summaryCmd(),
		a.roundsCmd(),
		a.bootstrapCmd(),
		a.analyzeCmd(),
	)
	return rootCmd
}

// setup loads the settings, applies flag overrides and configures
// logging.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data = a.data
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("iterations") {
		cfg.Iterations = a.iterations
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("plots") {
		cfg.Plots = a.plots
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.SetOutput(cmd.ErrOrStderr())

	a.cfg = cfg
	return nil
}

func (a *app) load() (retention.Dataset, error) {
	log.WithField("path", a.cfg.Data).Info("Loading dataset")
	ds, err := retention.Load(a.cfg.Data, a.cfg.Arms)
	if err != nil {
		return nil, err
	}
	log.WithField("players", len(ds)).Info("Loaded dataset")
	return ds, nil
}

// renderer is implemented by the plots of package report.
type renderer interface {
	Render(w io.Writer) error
}

// plot writes r to name under the plot directory, if there is one.
func (a *app) plot(name string, r renderer) error {
	if a.cfg.Plots == "" {
		return nil
	}
	if err := os.MkdirAll(a.cfg.Plots, 0o755); err != nil {
		return errors.Wrap(err, "creating plot directory")
	}
	path := filepath.Join(a.cfg.Plots, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating plot")
	}
	if err := r.Render(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "rendering %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	log.WithField("path", path).Info("Wrote plot")
	return nil
}
