// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Column names of the experiment CSV.
const (
	ColUserID        = "userid"
	ColVersion       = "version"
	ColSumGameRounds = "sum_gamerounds"
	ColRetention1    = "retention_1"
	ColRetention7    = "retention_7"
)

var columns = []string{ColUserID, ColVersion, ColSumGameRounds, ColRetention1, ColRetention7}

// Load reads the experiment CSV at path. See LoadCSV.
func Load(path string, arms Arms) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening dataset")
	}
	defer f.Close()
	ds, err := LoadCSV(f, arms)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return ds, nil
}

// LoadCSV reads player records from CSV. The first row is a header
// naming at least the userid, version, sum_gamerounds, retention_1 and
// retention_7 columns, in any order; other columns are ignored.
//
// Every malformed row fails the load with a *DataFormatError: a field
// of the wrong type, a version outside arms, a negative round count,
// or a repeated userid.
func LoadCSV(r io.Reader, arms Arms) (Dataset, error) {
	if err := arms.Validate(); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, &DataFormatError{Err: errors.New("missing header")}
	} else if err != nil {
		return nil, csvError(err)
	}
	index, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	var ds Dataset
	seen := make(map[int64]int)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(err)
		}
		rec, err := parseRecord(row, index, arms, line)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[rec.UserID]; dup {
			return nil, &DataFormatError{
				Line: line, Column: ColUserID, Value: row[index[ColUserID]],
				Err: errors.Errorf("duplicate of line %d", first),
			}
		}
		seen[rec.UserID] = line
		ds = append(ds, rec)
	}
	return ds, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := index[name]; dup && isColumn(name) {
			return nil, &DataFormatError{Line: 1, Column: name, Value: name, Err: errors.New("repeated column")}
		}
		index[name] = i
	}
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			return nil, &DataFormatError{Line: 1, Err: errors.Errorf("missing column %q", col)}
		}
	}
	return index, nil
}

func isColumn(name string) bool {
	for _, col := range columns {
		if name == col {
			return true
		}
	}
	return false
}

func parseRecord(row []string, index map[string]int, arms Arms, line int) (Record, error) {
	field := func(col string) string {
		return strings.TrimSpace(row[index[col]])
	}
	bad := func(col string, err error) error {
		return &DataFormatError{Line: line, Column: col, Value: field(col), Err: err}
	}

	var rec Record
	var err error
	if rec.UserID, err = strconv.ParseInt(field(ColUserID), 10, 64); err != nil {
		return rec, bad(ColUserID, errors.New("not an integer"))
	}
	rec.Version = Version(field(ColVersion))
	if !arms.Has(rec.Version) {
		return rec, bad(ColVersion, errors.Errorf("want %s or %s", arms.Control, arms.Treatment))
	}
	if rec.SumGameRounds, err = strconv.Atoi(field(ColSumGameRounds)); err != nil {
		return rec, bad(ColSumGameRounds, errors.New("not an integer"))
	}
	if rec.SumGameRounds < 0 {
		return rec, bad(ColSumGameRounds, errors.New("negative"))
	}
	if rec.Retention1, err = strconv.ParseBool(field(ColRetention1)); err != nil {
		return rec, bad(ColRetention1, errors.New("not a boolean"))
	}
	if rec.Retention7, err = strconv.ParseBool(field(ColRetention7)); err != nil {
		return rec, bad(ColRetention7, errors.New("not a boolean"))
	}
	return rec, nil
}

// csvError converts a CSV syntax error, such as a row with the wrong
// number of fields, into a DataFormatError.
func csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &DataFormatError{Line: perr.Line, Err: perr.Err}
	}
	return errors.Wrap(err, "reading dataset")
}
