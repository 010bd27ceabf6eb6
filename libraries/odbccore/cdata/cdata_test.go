// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedSizes(t *testing.T) {
	tests := []struct {
		typ  CDataType
		size int
	}{
		{Bit, 1},
		{UTinyInt, 1},
		{SShort, 2},
		{SLong, 4},
		{Float, 4},
		{SBigInt, 8},
		{UBigInt, 8},
		{Double, 8},
		{TypeDate, 6},
		{Time, 6},
		{TypeTimestamp, 16},
		{Guid, 16},
		{Char, 0},
		{WChar, 0},
		{Binary, 0},
	}

	for _, test := range tests {
		t.Run(test.typ.String(), func(t *testing.T) {
			assert.Equal(t, test.size, test.typ.FixedSize())
			assert.Equal(t, test.size == 0, test.typ.IsVariable())
		})
	}
}

func TestStructRoundTrip(t *testing.T) {
	ts := TimestampStruct{Year: 2022, Month: 10, Day: 10, Hour: 21, Minute: 29, Second: 34, Fraction: 123000000}
	b := ts.Bytes()
	require.Len(t, b, TimestampSize)
	assert.Equal(t, ts, TimestampFromBytes(b))

	d := DateStruct{Year: -12, Month: 1, Day: 31}
	assert.Equal(t, d, DateFromBytes(d.Bytes()))

	tm := TimeStruct{Hour: 23, Minute: 59, Second: 58}
	assert.Equal(t, tm, TimeFromBytes(tm.Bytes()))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "SQL_C_WCHAR", WChar.String())
	assert.Equal(t, "CDataType(1234)", CDataType(1234).String())
	assert.False(t, CDataType(1234).IsKnown())
	assert.Equal(t, "SQL_NO_DATA", NoData.String())
	assert.Equal(t, SLong, SqlInteger.DefaultCType())
	assert.Equal(t, WChar, SqlUnknownType.DefaultCType())
}
