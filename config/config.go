// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of an analysis run from YAML.
package config // import "github.com/cookiecats/gatetest/config"

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/cookiecats/gatetest/bootstrap"
	"github.com/cookiecats/gatetest/retention"
)

// ErrInvalid is returned by Validate. It wraps
// bootstrap.ErrInvalidConfiguration.
var ErrInvalid = errors.Wrap(bootstrap.ErrInvalidConfiguration, "config")

// Config holds the settings of an analysis run.
type Config struct {
	// Data is the path of the experiment CSV.
	Data string `yaml:"data"`

	// Arms names the compared groups.
	Arms retention.Arms `yaml:",inline"`

	// Metrics lists the retention columns to bootstrap.
	Metrics []string `yaml:"metrics"`

	Iterations int     `yaml:"iterations"`
	Seed       uint64  `yaml:"seed"`
	Workers    int     `yaml:"workers"`
	Confidence float64 `yaml:"confidence"`

	// Plots is a directory for PNG plots. Empty disables plotting.
	Plots string `yaml:"plots"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the settings of the published Cookie Cats analysis.
func Default() *Config {
	return &Config{
		Data:       "datasets/cookie_cats.csv",
		Arms:       retention.DefaultArms,
		Metrics:    []string{retention.Retention1.String(), retention.Retention7.String()},
		Iterations: bootstrap.DefaultIterations,
		Seed:       1,
		Workers:    1,
		Confidence: 0.95,
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path over the defaults. Fields missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot produce a run.
func (c *Config) Validate() error {
	if c.Data == "" {
		return errors.Wrap(ErrInvalid, "data path is empty")
	}
	if err := c.Arms.Validate(); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if c.Iterations <= 0 {
		return errors.Wrapf(ErrInvalid, "iterations must be positive, got %d", c.Iterations)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalid, "workers must not be negative, got %d", c.Workers)
	}
	if !(c.Confidence > 0 && c.Confidence < 1) {
		return errors.Wrapf(ErrInvalid, "confidence %v outside (0, 1)", c.Confidence)
	}
	if _, err := c.ParsedMetrics(); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	return nil
}

// ParsedMetrics returns Metrics as retention metrics, without
// duplicates.
func (c *Config) ParsedMetrics() ([]retention.Metric, error) {
	if len(c.Metrics) == 0 {
		return nil, errors.New("no metrics")
	}
	var ms []retention.Metric
	seen := make(map[retention.Metric]bool)
	for _, s := range c.Metrics {
		m, err := retention.ParseMetric(s)
		if err != nil {
			return nil, err
		}
		if !seen[m] {
			seen[m] = true
			ms = append(ms, m)
		}
	}
	return ms, nil
}

// Resampler returns the bootstrap resampler these settings describe.
func (c *Config) Resampler() bootstrap.Resampler {
	return bootstrap.Resampler{
		Iterations: c.Iterations,
		Seed:       c.Seed,
		Workers:    c.Workers,
	}
}
