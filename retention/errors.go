// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyGroup is returned when a mean is requested over a group
// with no players.
var ErrEmptyGroup = errors.New("empty group")

// ErrUnknownMetric is returned for a metric outside Metrics.
var ErrUnknownMetric = errors.New("unknown metric")

// A DataFormatError reports a malformed input row.
type DataFormatError struct {
	// Line is the 1-based line of the input, counting the header.
	// It is 0 for errors that concern the input as a whole.
	Line int

	// Column is the header name of the offending field, if any.
	Column string

	// Value is the raw field text, if any.
	Value string

	Err error
}

func (e *DataFormatError) Error() string {
	switch {
	case e.Line == 0:
		return fmt.Sprintf("malformed dataset: %v", e.Err)
	case e.Column == "":
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: column %s: bad value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}
