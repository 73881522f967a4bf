// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gatetest analyzes the Cookie Cats gate placement experiment: it
// loads the player CSV, reports retention per group and bootstraps the
// difference in 1-day and 7-day retention between the gate_30 and
// gate_40 groups.
//
// Usage:
//
//	gatetest [flags] summary
//	gatetest [flags] rounds
//	gatetest [flags] bootstrap [metric...]
//	gatetest [flags] analyze
//
// Settings come from the YAML file named by --config, falling back to
// built-in defaults; the remaining flags override either.
package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		log.Fatalf("gatetest: %v", err)
	}
}
