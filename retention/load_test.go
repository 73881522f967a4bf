// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package retention

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	ds, err := Load("testdata/players.csv", DefaultArms)
	require.NoError(t, err)
	require.Len(t, ds, 10)

	assert.Equal(t, Record{UserID: 116, Version: Gate30, SumGameRounds: 3}, ds[0])
	assert.Equal(t, Record{UserID: 488, Version: Gate40, SumGameRounds: 179, Retention1: true, Retention7: true}, ds[4])
	assert.Equal(t, map[Version]int{Gate30: 3, Gate40: 7}, Counts(ds))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nonexistent.csv", DefaultArms)
	assert.Error(t, err)
}

func TestLoadCSVColumnOrder(t *testing.T) {
	in := "retention_7,retention_1,extra,version,userid,sum_gamerounds\n" +
		"true,false,x,gate_40,7,12\n"
	ds, err := LoadCSV(strings.NewReader(in), DefaultArms)
	require.NoError(t, err)
	assert.Equal(t, Dataset{{UserID: 7, Version: Gate40, SumGameRounds: 12, Retention7: true}}, ds)
}

func TestLoadCSVMalformed(t *testing.T) {
	const header = "userid,version,sum_gamerounds,retention_1,retention_7\n"
	tests := []struct {
		name   string
		in     string
		line   int
		column string
	}{
		{"empty", "", 0, ""},
		{"missing column", "userid,version,sum_gamerounds,retention_1\n1,gate_30,3,True\n", 1, ""},
		{"repeated column", "userid,version,sum_gamerounds,retention_1,retention_7,retention_1\n1,gate_30,3,True,False,False\n", 1, ColRetention1},
		{"bad userid", header + "x1,gate_30,3,True,False\n", 2, ColUserID},
		{"unknown version", header + "1,gate_50,3,True,False\n", 2, ColVersion},
		{"bad rounds", header + "1,gate_30,three,True,False\n", 2, ColSumGameRounds},
		{"negative rounds", header + "1,gate_30,-3,True,False\n", 2, ColSumGameRounds},
		{"bad retention_1", header + "1,gate_30,3,yes,False\n", 2, ColRetention1},
		{"bad retention_7", header + "1,gate_30,3,True,\n", 2, ColRetention7},
		{"duplicate user", header + "1,gate_30,3,True,False\n1,gate_40,4,True,False\n", 3, ColUserID},
		{"short row", header + "1,gate_30,3,True,False\n2,gate_40,4\n", 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.in), DefaultArms)
			require.Error(t, err)
			var ferr *DataFormatError
			require.True(t, errors.As(err, &ferr), "want *DataFormatError, got %T: %v", err, err)
			assert.Equal(t, tt.line, ferr.Line)
			assert.Equal(t, tt.column, ferr.Column)
		})
	}
}

func TestLoadCSVRepeatedExtraColumn(t *testing.T) {
	in := "note,userid,version,sum_gamerounds,retention_1,retention_7,note\n" +
		"a,7,gate_40,12,False,True,b\n"
	ds, err := LoadCSV(strings.NewReader(in), DefaultArms)
	require.NoError(t, err)
	assert.Len(t, ds, 1)
}

func TestLoadCSVCustomArms(t *testing.T) {
	arms := Arms{Control: "A", Treatment: "B"}
	in := "userid,version,sum_gamerounds,retention_1,retention_7\n1,A,0,1,0\n2,B,5,0,1\n"
	ds, err := LoadCSV(strings.NewReader(in), arms)
	require.NoError(t, err)
	m, err := arms.Means(ds, Retention1)
	require.NoError(t, err)
	assert.Equal(t, Means{Control: 1, Treatment: 0}, m)

	_, err = LoadCSV(strings.NewReader(in), DefaultArms)
	assert.Error(t, err)
}
